package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/services"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	reviewService *services.ReviewService
	validate      *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the review routes with the Fiber app. Listing is
// public; writing requires authentication.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	reviewRoutes := router.Group("/products/:product_id/reviews")
	reviewRoutes.Get("/", h.HandleListReviews)
	reviewRoutes.Post("/", authRequired, h.HandleCreateReview)
	reviewRoutes.Put("/", authRequired, h.HandleUpdateReview)
	reviewRoutes.Delete("/:user_id", authRequired, h.HandleDeleteReview)
}

// ReviewRequest is the payload for creating or updating a review.
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Content string `json:"content" validate:"omitempty,max=2000"`
}

// HandleListReviews returns the reviews of a product.
func (h *ReviewHandler) HandleListReviews(c *fiber.Ctx) error {
	productID := c.Params("product_id")

	reviews, err := h.reviewService.ListReviews(productID)
	if err != nil {
		log.Printf("Error listing reviews of product %s: %v", productID, err)
		return respondServiceError(c, err, "Could not retrieve reviews")
	}
	return c.JSON(reviews)
}

// HandleCreateReview adds the caller's review of a product.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	productID := c.Params("product_id")

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	review, err := h.reviewService.CreateReview(userID, productID, req.Rating, req.Content)
	if err != nil {
		log.Printf("Error creating review of product %s by user %s: %v", productID, userID, err)
		return respondServiceError(c, err, "Could not create review")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review created successfully",
		"review":  review,
	})
}

// HandleUpdateReview changes the caller's review of a product.
func (h *ReviewHandler) HandleUpdateReview(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	productID := c.Params("product_id")

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	review, err := h.reviewService.UpdateReview(userID, productID, req.Rating, req.Content)
	if err != nil {
		log.Printf("Error updating review of product %s by user %s: %v", productID, userID, err)
		return respondServiceError(c, err, "Could not update review")
	}

	return c.JSON(fiber.Map{
		"message": "Review updated successfully",
		"review":  review,
	})
}

// HandleDeleteReview removes a review. The path names the review's owner;
// non-staff callers may only delete their own.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	userID, isStaff := currentUser(c)
	productID := c.Params("product_id")
	ownerID := c.Params("user_id")

	if err := h.reviewService.DeleteReview(userID, productID, ownerID, isStaff); err != nil {
		log.Printf("Error deleting review of product %s owned by %s: %v", productID, ownerID, err)
		return respondServiceError(c, err, "Could not delete review")
	}

	return c.JSON(fiber.Map{
		"message": "Review deleted successfully",
	})
}
