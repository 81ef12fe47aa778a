package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// OrderEventPublisher publishes order lifecycle events. Satisfied by
// *rabbitmq.Client; a nil publisher disables events.
type OrderEventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	ProductVariantID string `json:"product_variant_id" validate:"required"`
	Quantity         int    `json:"quantity" validate:"required,gte=1"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	PaymentMethod   string             `json:"payment_method" validate:"required,oneof=PAYSTACK STRIPE COD"`
	ShippingAddress string             `json:"shipping_address" validate:"omitempty,max=1000"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderService handles order placement and lifecycle.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	variantRepo repositories.VariantRepository
	publisher   OrderEventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, variantRepo repositories.VariantRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		variantRepo: variantRepo,
		publisher:   publisher,
	}
}

// CreateOrder validates the request against the catalog, snapshots unit prices,
// and persists the order with its items as one atomic unit. The returned order
// is enriched with variant and product info for display.
func (s *OrderService) CreateOrder(userID string, req CreateOrderRequest) (*models.OrderDetail, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("an order needs at least one item: %w", ErrInvalidInput)
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be greater than zero: %w", ErrInvalidInput)
		}
	}
	switch req.PaymentMethod {
	case models.PaymentMethodPaystack, models.PaymentMethodStripe, models.PaymentMethodCOD:
	default:
		return nil, fmt.Errorf("unknown payment method %q: %w", req.PaymentMethod, ErrInvalidInput)
	}

	resolved, err := s.variantRepo.ResolveVariants(distinctVariantIDs(req.Items))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve order items: %w", err)
	}

	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		entry, ok := resolved[item.ProductVariantID]
		if !ok || entry.Product == nil {
			return nil, fmt.Errorf("product variant %s: %w", item.ProductVariantID, ErrNotFound)
		}
		// Snapshot the unit price as an exact decimal; no float math on money.
		unitPrice := decimal.NewFromFloat(entry.Product.Price)
		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		orderItems = append(orderItems, models.OrderItem{
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			Price:            unitPrice,
		})
	}

	order := models.Order{
		UserID:          userID,
		Status:          models.OrderStatusPending,
		Amount:          total,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
		Items:           orderItems,
	}
	if err := s.orderRepo.Create(&order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.publishOrderCreated(&order)

	return enrichOrder(order, resolved), nil
}

// ListOrders returns orders with display-enriched items. Staff see every
// order; other callers only their own.
func (s *OrderService) ListOrders(userID string, isStaff bool) ([]models.OrderDetail, error) {
	var (
		orders []models.Order
		err    error
	)
	if isStaff {
		orders, err = s.orderRepo.GetAll()
	} else {
		orders, err = s.orderRepo.GetAllByUser(userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	variantIDs := make([]string, 0)
	seen := make(map[string]bool)
	for _, order := range orders {
		for _, item := range order.Items {
			if !seen[item.ProductVariantID] {
				seen[item.ProductVariantID] = true
				variantIDs = append(variantIDs, item.ProductVariantID)
			}
		}
	}
	resolved, err := s.variantRepo.ResolveVariants(variantIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve order items: %w", err)
	}

	details := make([]models.OrderDetail, 0, len(orders))
	for _, order := range orders {
		details = append(details, *enrichOrder(order, resolved))
	}
	return details, nil
}

// GetOrder fetches one order. Non-staff callers may only see their own.
func (s *OrderService) GetOrder(orderID, userID string, isStaff bool) (*models.OrderDetail, error) {
	order, err := s.loadOwned(orderID, userID, isStaff)
	if err != nil {
		return nil, err
	}

	resolved, err := s.variantRepo.ResolveVariants(orderVariantIDs(order))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve order items: %w", err)
	}
	return enrichOrder(*order, resolved), nil
}

// CancelOrder moves a PENDING order to CANCELLED. The transition runs as a
// conditional update, so of two concurrent cancels exactly one succeeds and
// the other reports the state error.
func (s *OrderService) CancelOrder(orderID, userID string, isStaff bool) error {
	if _, err := s.loadOwned(orderID, userID, isStaff); err != nil {
		return err
	}

	cancelled, err := s.orderRepo.CancelPending(orderID)
	if err != nil {
		return fmt.Errorf("failed to cancel order %s: %w", orderID, err)
	}
	if !cancelled {
		return fmt.Errorf("cannot cancel an ongoing order: %w", ErrInvalidState)
	}
	return nil
}

// loadOwned fetches an order and applies the ownership rule shared by the read
// and cancel paths.
func (s *OrderService) loadOwned(orderID, userID string, isStaff bool) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load order %s: %w", orderID, err)
	}
	if order.UserID != userID && !isStaff {
		return nil, fmt.Errorf("order %s belongs to another user: %w", orderID, ErrForbidden)
	}
	return order, nil
}

func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}
	event := map[string]interface{}{
		"order_id":       order.ID,
		"user_id":        order.UserID,
		"status":         order.Status,
		"amount":         order.Amount.String(),
		"payment_method": order.PaymentMethod,
	}
	// Event delivery is best-effort; the order is already committed.
	if err := s.publisher.PublishOrderCreated(event); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
	}
}

// enrichOrder joins order items with their resolved variant and product for
// display. Items whose variant has since disappeared are omitted from the
// enriched view; the stored rows stay untouched.
func enrichOrder(order models.Order, resolved map[string]repositories.VariantWithProduct) *models.OrderDetail {
	detail := models.OrderDetail{
		Order: order,
		Items: make([]models.OrderItemDetail, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		entry, ok := resolved[item.ProductVariantID]
		if !ok {
			continue
		}
		variant := entry.Variant
		detail.Items = append(detail.Items, models.OrderItemDetail{
			OrderItem:      item,
			ProductVariant: &variant,
			Product:        entry.Product,
		})
	}
	return &detail
}

func distinctVariantIDs(items []OrderItemRequest) []string {
	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if !seen[item.ProductVariantID] {
			seen[item.ProductVariantID] = true
			ids = append(ids, item.ProductVariantID)
		}
	}
	return ids
}

func orderVariantIDs(order *models.Order) []string {
	ids := make([]string, 0, len(order.Items))
	seen := make(map[string]bool, len(order.Items))
	for _, item := range order.Items {
		if !seen[item.ProductVariantID] {
			seen[item.ProductVariantID] = true
			ids = append(ids, item.ProductVariantID)
		}
	}
	return ids
}
