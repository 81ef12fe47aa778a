package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/services"
)

// WishlistHandler handles HTTP requests for wishlists.
type WishlistHandler struct {
	wishlistService *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// RegisterRoutes registers the wishlist routes with the Fiber app. Every route
// requires authentication.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Get("/wishlist", authRequired, h.HandleGetWishlist)
	router.Post("/products/:product_id/wishlist", authRequired, h.HandleAddProduct)
	router.Delete("/products/:product_id/wishlist", authRequired, h.HandleRemoveProduct)
}

// HandleGetWishlist returns the products on the caller's wishlist.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	products, err := h.wishlistService.GetWishlist(userID)
	if err != nil {
		log.Printf("Error getting wishlist for user %s: %v", userID, err)
		return respondServiceError(c, err, "Could not retrieve wishlist")
	}
	return c.JSON(products)
}

// HandleAddProduct puts a product on the caller's wishlist.
func (h *WishlistHandler) HandleAddProduct(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	productID := c.Params("product_id")

	if err := h.wishlistService.AddProduct(userID, productID); err != nil {
		log.Printf("Error adding product %s to wishlist of user %s: %v", productID, userID, err)
		return respondServiceError(c, err, "Could not add product to wishlist")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product added to wishlist",
	})
}

// HandleRemoveProduct takes a product off the caller's wishlist.
func (h *WishlistHandler) HandleRemoveProduct(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	productID := c.Params("product_id")

	if err := h.wishlistService.RemoveProduct(userID, productID); err != nil {
		log.Printf("Error removing product %s from wishlist of user %s: %v", productID, userID, err)
		return respondServiceError(c, err, "Could not remove product from wishlist")
	}

	return c.JSON(fiber.Map{
		"message": "Product removed from wishlist",
	})
}
