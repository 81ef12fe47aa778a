package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/models"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	GetByProduct(productID string) ([]models.ReviewDetail, error)
	GetByUserAndProduct(userID, productID string) (*models.Review, error)
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(id string) error
}

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{db: db}
}

// GetByProduct retrieves all reviews of a product joined with the reviewer's
// public name.
func (r *GORMReviewRepository) GetByProduct(productID string) ([]models.ReviewDetail, error) {
	var details []models.ReviewDetail
	err := r.db.Table("reviews").
		Select("reviews.*, users.username AS username").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.product_id = ?", productID).
		Scan(&details).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews for product %s: %w", productID, err)
	}
	return details, nil
}

// GetByUserAndProduct retrieves one review by its natural key.
func (r *GORMReviewRepository) GetByUserAndProduct(userID, productID string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("review by user %s for product %s %w", userID, productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review for product %s: %w", productID, err)
	}
	return &review, nil
}

// Create creates a new review.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// Update updates an existing review. Save would insert an unknown id, so
// existence is checked first.
func (r *GORMReviewRepository) Update(review *models.Review) error {
	var existing models.Review
	if err := r.db.Select("id").First(&existing, "id = ?", review.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("review with ID %s %w for update", review.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to look up review %s: %w", review.ID, err)
	}
	if err := r.db.Save(review).Error; err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	return nil
}

// Delete deletes a review by its ID.
func (r *GORMReviewRepository) Delete(id string) error {
	res := r.db.Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review with ID %s %w for deletion", id, ErrNotFound)
	}
	return nil
}
