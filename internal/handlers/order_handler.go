package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	orderService *services.OrderService
	validate     *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app. Every route
// requires authentication.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	orderRoutes := router.Group("/orders", authRequired)
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/:id", h.HandleGetOrder)
	orderRoutes.Post("/:id/cancel", h.HandleCancelOrder)
}

// HandleCreateOrder places a new order for the authenticated user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var req services.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	order, err := h.orderService.CreateOrder(userID, req)
	if err != nil {
		log.Printf("Error creating order for user %s: %v", userID, err)
		return respondServiceError(c, err, "Could not create order")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created successfully",
		"order":   order,
	})
}

// HandleListOrders returns the caller's orders, or every order for staff.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	userID, isStaff := currentUser(c)

	orders, err := h.orderService.ListOrders(userID, isStaff)
	if err != nil {
		log.Printf("Error listing orders for user %s: %v", userID, err)
		return respondServiceError(c, err, "Could not retrieve orders")
	}

	return c.JSON(orders)
}

// HandleGetOrder returns a single order.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	userID, isStaff := currentUser(c)
	orderID := c.Params("id")

	order, err := h.orderService.GetOrder(orderID, userID, isStaff)
	if err != nil {
		log.Printf("Error getting order %s: %v", orderID, err)
		return respondServiceError(c, err, "Could not retrieve order")
	}

	return c.JSON(order)
}

// HandleCancelOrder cancels a pending order.
func (h *OrderHandler) HandleCancelOrder(c *fiber.Ctx) error {
	userID, isStaff := currentUser(c)
	orderID := c.Params("id")

	if err := h.orderService.CancelOrder(orderID, userID, isStaff); err != nil {
		log.Printf("Error cancelling order %s: %v", orderID, err)
		return respondServiceError(c, err, "Could not cancel order")
	}

	return c.JSON(fiber.Map{
		"message": "Order cancelled successfully",
	})
}
