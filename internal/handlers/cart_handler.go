package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/services"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	cartService *services.CartService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app. Every route
// requires authentication.
func (h *CartHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	cartRoutes := router.Group("/cart", authRequired)
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/", h.HandleAddItem)
	cartRoutes.Patch("/:variant_id", h.HandleUpdateItem)
	cartRoutes.Delete("/:variant_id", h.HandleRemoveItem)
}

// CartItemRequest is the payload for adding or updating a cart row.
type CartItemRequest struct {
	ProductVariantID string `json:"product_variant_id" validate:"required"`
	Quantity         int    `json:"quantity" validate:"required,gte=1"`
}

// CartQuantityRequest carries just a quantity change.
type CartQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// HandleGetCart returns the user's cart.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	items, err := h.cartService.GetCart(userID)
	if err != nil {
		log.Printf("Error getting cart for user %s: %v", userID, err)
		return respondServiceError(c, err, "Could not retrieve cart")
	}
	return c.JSON(items)
}

// HandleAddItem puts a variant in the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add cart item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	item, err := h.cartService.AddItem(userID, req.ProductVariantID, req.Quantity)
	if err != nil {
		log.Printf("Error adding cart item for user %s: %v", userID, err)
		return respondServiceError(c, err, "Could not add item to cart")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Item added to cart",
		"item":    item,
	})
}

// HandleUpdateItem changes the quantity of a cart row.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	variantID := c.Params("variant_id")

	var req CartQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update cart item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	item, err := h.cartService.UpdateItem(userID, variantID, req.Quantity)
	if err != nil {
		log.Printf("Error updating cart item %s for user %s: %v", variantID, userID, err)
		return respondServiceError(c, err, "Could not update cart item")
	}

	return c.JSON(fiber.Map{
		"message": "Cart item updated",
		"item":    item,
	})
}

// HandleRemoveItem takes a variant out of the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	variantID := c.Params("variant_id")

	if err := h.cartService.RemoveItem(userID, variantID); err != nil {
		log.Printf("Error removing cart item %s for user %s: %v", variantID, userID, err)
		return respondServiceError(c, err, "Could not remove cart item")
	}

	return c.JSON(fiber.Map{
		"message": "Item removed from cart",
	})
}
