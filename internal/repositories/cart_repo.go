package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/models"
)

// CartRepository defines the interface for cart data access. Rows are keyed by
// user+variant; Save upserts on that key.
type CartRepository interface {
	GetByUser(userID string) ([]models.CartItem, error)
	GetByUserAndVariant(userID, variantID string) (*models.CartItem, error)
	Save(item *models.CartItem) error
	Delete(userID, variantID string) error
}

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

// GetByUser retrieves all cart items of a user.
func (r *GORMCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Find(&items, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return items, nil
}

// GetByUserAndVariant retrieves one cart row by its natural key.
func (r *GORMCartRepository) GetByUserAndVariant(userID, variantID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item, "user_id = ? AND product_variant_id = ?", userID, variantID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("cart item for variant %s %w", variantID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart item for variant %s: %w", variantID, err)
	}
	return &item, nil
}

// Save inserts the row or, when the user already has the variant in their
// cart, overwrites its quantity.
func (r *GORMCartRepository) Save(item *models.CartItem) error {
	var existing models.CartItem
	err := r.db.First(&existing, "user_id = ? AND product_variant_id = ?", item.UserID, item.ProductVariantID).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		if err := r.db.Create(item).Error; err != nil {
			return fmt.Errorf("failed to create cart item: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to look up cart item: %w", err)
	default:
		existing.Quantity = item.Quantity
		if err := r.db.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update cart item: %w", err)
		}
		*item = existing
		return nil
	}
}

// Delete removes a cart row by its natural key. Deleting an absent row is not
// an error.
func (r *GORMCartRepository) Delete(userID, variantID string) error {
	res := r.db.Delete(&models.CartItem{}, "user_id = ? AND product_variant_id = ?", userID, variantID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	return nil
}
