package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/models"
)

// WishlistRepository defines the interface for wishlist data access.
type WishlistRepository interface {
	GetProductsByUser(userID string) ([]models.Product, error)
	Add(userID, productID string) error
	Remove(userID, productID string) error
}

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{db: db}
}

// GetProductsByUser retrieves the products on a user's wishlist.
func (r *GORMWishlistRepository) GetProductsByUser(userID string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Where("id IN (?)", r.db.Model(&models.WishlistItem{}).
			Select("product_id").
			Where("user_id = ?", userID)).
		Order("updated_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist for user %s: %w", userID, err)
	}
	return products, nil
}

// Add puts a product on the user's wishlist. Adding twice is a no-op.
func (r *GORMWishlistRepository) Add(userID, productID string) error {
	var existing models.WishlistItem
	err := r.db.First(&existing, "user_id = ? AND product_id = ?", userID, productID).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to look up wishlist item: %w", err)
	}
	item := models.WishlistItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
	}
	if err := r.db.Create(&item).Error; err != nil {
		return fmt.Errorf("failed to add product %s to wishlist: %w", productID, err)
	}
	return nil
}

// Remove takes a product off the user's wishlist.
func (r *GORMWishlistRepository) Remove(userID, productID string) error {
	res := r.db.Delete(&models.WishlistItem{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove product %s from wishlist: %w", productID, res.Error)
	}
	return nil
}
