package services

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService handles a user's shopping cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	variantRepo repositories.VariantRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, variantRepo repositories.VariantRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		variantRepo: variantRepo,
	}
}

// GetCart returns the user's cart items enriched with variant and product.
func (s *CartService) GetCart(userID string) ([]models.CartItemDetail, error) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductVariantID)
	}
	resolved, err := s.variantRepo.ResolveVariants(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cart items: %w", err)
	}

	details := make([]models.CartItemDetail, 0, len(items))
	for _, item := range items {
		detail := models.CartItemDetail{CartItem: item}
		if entry, ok := resolved[item.ProductVariantID]; ok {
			variant := entry.Variant
			detail.ProductVariant = &variant
			detail.Product = entry.Product
		}
		details = append(details, detail)
	}
	return details, nil
}

// AddItem puts a variant in the user's cart, or overwrites the quantity if it
// is already there. The variant must resolve to an existing product.
func (s *CartService) AddItem(userID, variantID string, quantity int) (*models.CartItemDetail, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrInvalidInput)
	}

	resolved, err := s.variantRepo.ResolveVariants([]string{variantID})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve variant %s: %w", variantID, err)
	}
	entry, ok := resolved[variantID]
	if !ok || entry.Product == nil {
		return nil, fmt.Errorf("product variant %s: %w", variantID, ErrNotFound)
	}

	item := models.CartItem{
		UserID:           userID,
		ProductVariantID: variantID,
		Quantity:         quantity,
	}
	if err := s.cartRepo.Save(&item); err != nil {
		return nil, err
	}

	variant := entry.Variant
	return &models.CartItemDetail{
		CartItem:       item,
		ProductVariant: &variant,
		Product:        entry.Product,
	}, nil
}

// UpdateItem changes the quantity of an existing cart row.
func (s *CartService) UpdateItem(userID, variantID string, quantity int) (*models.CartItemDetail, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrInvalidInput)
	}

	item, err := s.cartRepo.GetByUserAndVariant(userID, variantID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("cart item for variant %s: %w", variantID, ErrNotFound)
		}
		return nil, err
	}

	item.Quantity = quantity
	if err := s.cartRepo.Save(item); err != nil {
		return nil, err
	}

	detail := models.CartItemDetail{CartItem: *item}
	resolved, err := s.variantRepo.ResolveVariants([]string{variantID})
	if err == nil {
		if entry, ok := resolved[variantID]; ok {
			variant := entry.Variant
			detail.ProductVariant = &variant
			detail.Product = entry.Product
		}
	}
	return &detail, nil
}

// RemoveItem takes a variant out of the user's cart.
func (s *CartService) RemoveItem(userID, variantID string) error {
	return s.cartRepo.Delete(userID, variantID)
}
