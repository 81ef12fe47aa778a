package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"storefront/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products, optionally only active ones.
func (r *MockProductRepository) GetAll(activeOnly bool) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if activeOnly && !p.IsActive {
			continue
		}
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s %w", id, ErrNotFound)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product with ID %s %w for update", product.ID, ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with ID %s %w for deletion", id, ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

// MockVariantRepository is an in-memory implementation of VariantRepository.
// Parent products are looked up through an associated MockProductRepository so
// price changes there are observed on the next resolution, exactly as with the
// database-backed implementation.
type MockVariantRepository struct {
	variants map[string]models.ProductVariant
	products *MockProductRepository
	mu       sync.RWMutex
}

// NewMockVariantRepository creates a new instance of MockVariantRepository.
func NewMockVariantRepository(products *MockProductRepository) *MockVariantRepository {
	return &MockVariantRepository{
		variants: make(map[string]models.ProductVariant),
		products: products,
	}
}

// GetByProduct returns all variants of a product.
func (r *MockVariantRepository) GetByProduct(productID string) ([]models.ProductVariant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	variantList := make([]models.ProductVariant, 0)
	for _, v := range r.variants {
		if v.ProductID == productID {
			variantList = append(variantList, v)
		}
	}
	return variantList, nil
}

// GetByID returns a variant by its ID.
func (r *MockVariantRepository) GetByID(id string) (*models.ProductVariant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	variant, ok := r.variants[id]
	if !ok {
		return nil, fmt.Errorf("variant with ID %s %w", id, ErrNotFound)
	}
	return &variant, nil
}

// Create adds a new variant.
func (r *MockVariantRepository) Create(variant *models.ProductVariant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if variant.ID == "" {
		variant.ID = uuid.New().String()
	}
	r.variants[variant.ID] = *variant
	return nil
}

// Update modifies an existing variant.
func (r *MockVariantRepository) Update(variant *models.ProductVariant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.variants[variant.ID]; !ok {
		return fmt.Errorf("variant with ID %s %w for update", variant.ID, ErrNotFound)
	}
	r.variants[variant.ID] = *variant
	return nil
}

// Delete removes a variant by its ID.
func (r *MockVariantRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.variants[id]; !ok {
		return fmt.Errorf("variant with ID %s %w for deletion", id, ErrNotFound)
	}
	delete(r.variants, id)
	return nil
}

// ResolveVariants resolves the given ids against the in-memory stores.
func (r *MockVariantRepository) ResolveVariants(ids []string) (map[string]VariantWithProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]VariantWithProduct, len(ids))
	for _, id := range ids {
		variant, ok := r.variants[id]
		if !ok {
			continue
		}
		entry := VariantWithProduct{Variant: variant}
		if product, err := r.products.GetByID(variant.ProductID); err == nil {
			entry.Product = product
		}
		result[id] = entry
	}
	return result, nil
}
