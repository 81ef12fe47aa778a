package services

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ReviewService handles product reviews.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// ListReviews returns all reviews of a product. The product must exist.
func (s *ReviewService) ListReviews(productID string) ([]models.ReviewDetail, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, mapNotFound(err, "product", productID)
	}
	return s.reviewRepo.GetByProduct(productID)
}

// CreateReview adds a user's review of a product. One review per user and
// product; the rating must be between 1 and 5.
func (s *ReviewService) CreateReview(userID, productID string, rating int, content string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", ErrInvalidInput)
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, mapNotFound(err, "product", productID)
	}
	if existing, err := s.reviewRepo.GetByUserAndProduct(userID, productID); err == nil && existing != nil {
		return nil, fmt.Errorf("product %s is already reviewed by this user: %w", productID, ErrInvalidState)
	}

	review := models.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Content:   content,
	}
	if err := s.reviewRepo.Create(&review); err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateReview changes the caller's own review.
func (s *ReviewService) UpdateReview(userID, productID string, rating int, content string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", ErrInvalidInput)
	}

	review, err := s.reviewRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("review for product %s: %w", productID, ErrNotFound)
		}
		return nil, err
	}

	review.Rating = rating
	review.Content = content
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review. Users may delete their own; staff may delete
// anyone's.
func (s *ReviewService) DeleteReview(userID, productID, ownerID string, isStaff bool) error {
	if ownerID != userID && !isStaff {
		return fmt.Errorf("review belongs to another user: %w", ErrForbidden)
	}

	review, err := s.reviewRepo.GetByUserAndProduct(ownerID, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("review for product %s: %w", productID, ErrNotFound)
		}
		return err
	}
	return s.reviewRepo.Delete(review.ID)
}
