package repositories

import (
	"storefront/internal/models"
)

// VariantWithProduct pairs a resolved variant with its parent product.
// Product is nil when the parent product no longer exists.
type VariantWithProduct struct {
	Variant models.ProductVariant
	Product *models.Product
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(activeOnly bool) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}

// VariantRepository defines the interface for product variant data access.
type VariantRepository interface {
	GetByProduct(productID string) ([]models.ProductVariant, error)
	GetByID(id string) (*models.ProductVariant, error)
	Create(variant *models.ProductVariant) error
	Update(variant *models.ProductVariant) error
	Delete(id string) error

	// ResolveVariants looks up every given variant id with its parent product
	// in one batched query. Ids that do not exist as variants are omitted from
	// the result; variants whose product is gone resolve with a nil Product.
	ResolveVariants(ids []string) (map[string]VariantWithProduct, error)
}

// BrandRepository defines the interface for brand data access.
type BrandRepository interface {
	GetAll() ([]models.Brand, error)
	GetByID(id string) (*models.Brand, error)
	Create(brand *models.Brand) error
	Update(brand *models.Brand) error
	Delete(id string) error
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id string) error
}
