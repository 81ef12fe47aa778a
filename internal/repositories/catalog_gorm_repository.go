package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// GetAll retrieves products, optionally restricted to active ones.
func (r *GORMProductRepository) GetAll(activeOnly bool) ([]models.Product, error) {
	var products []models.Product
	query := r.db
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database. Save would insert an
// unknown id, so existence is checked first.
func (r *GORMProductRepository) Update(product *models.Product) error {
	var existing models.Product
	if err := r.db.Select("id").First(&existing, "id = ?", product.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("product with ID %s %w for update", product.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to look up product %s: %w", product.ID, err)
	}
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete deletes a product by its ID.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s %w for deletion", id, ErrNotFound)
	}
	return nil
}

// GORMVariantRepository is a GORM implementation of VariantRepository.
type GORMVariantRepository struct {
	db *gorm.DB
}

// NewGORMVariantRepository creates a new instance of GORMVariantRepository.
func NewGORMVariantRepository(db *gorm.DB) *GORMVariantRepository {
	return &GORMVariantRepository{db: db}
}

// GetByProduct retrieves all variants of a product.
func (r *GORMVariantRepository) GetByProduct(productID string) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	if err := r.db.Find(&variants, "product_id = ?", productID).Error; err != nil {
		return nil, fmt.Errorf("failed to get variants for product %s: %w", productID, err)
	}
	return variants, nil
}

// GetByID retrieves a single variant by its ID.
func (r *GORMVariantRepository) GetByID(id string) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.db.First(&variant, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("variant with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get variant by ID %s: %w", id, err)
	}
	return &variant, nil
}

// Create creates a new variant in the database.
func (r *GORMVariantRepository) Create(variant *models.ProductVariant) error {
	if variant.ID == "" {
		variant.ID = uuid.New().String()
	}
	if err := r.db.Create(variant).Error; err != nil {
		return fmt.Errorf("failed to create variant: %w", err)
	}
	return nil
}

// Update updates an existing variant in the database.
func (r *GORMVariantRepository) Update(variant *models.ProductVariant) error {
	var existing models.ProductVariant
	if err := r.db.Select("id").First(&existing, "id = ?", variant.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("variant with ID %s %w for update", variant.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to look up variant %s: %w", variant.ID, err)
	}
	if err := r.db.Save(variant).Error; err != nil {
		return fmt.Errorf("failed to update variant: %w", err)
	}
	return nil
}

// Delete deletes a variant by its ID.
func (r *GORMVariantRepository) Delete(id string) error {
	res := r.db.Delete(&models.ProductVariant{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete variant: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("variant with ID %s %w for deletion", id, ErrNotFound)
	}
	return nil
}

// ResolveVariants fetches the given variants and their parent products in two
// batched queries instead of one round trip per item.
func (r *GORMVariantRepository) ResolveVariants(ids []string) (map[string]VariantWithProduct, error) {
	result := make(map[string]VariantWithProduct, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var variants []models.ProductVariant
	if err := r.db.Find(&variants, "id IN ?", ids).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve variants: %w", err)
	}

	productIDs := make([]string, 0, len(variants))
	for _, v := range variants {
		productIDs = append(productIDs, v.ProductID)
	}

	products := make(map[string]models.Product)
	if len(productIDs) > 0 {
		var rows []models.Product
		if err := r.db.Find(&rows, "id IN ?", productIDs).Error; err != nil {
			return nil, fmt.Errorf("failed to resolve parent products: %w", err)
		}
		for _, p := range rows {
			products[p.ID] = p
		}
	}

	for _, v := range variants {
		entry := VariantWithProduct{Variant: v}
		if p, ok := products[v.ProductID]; ok {
			product := p
			entry.Product = &product
		}
		result[v.ID] = entry
	}
	return result, nil
}

// GORMBrandRepository is a GORM implementation of BrandRepository.
type GORMBrandRepository struct {
	db *gorm.DB
}

// NewGORMBrandRepository creates a new instance of GORMBrandRepository.
func NewGORMBrandRepository(db *gorm.DB) *GORMBrandRepository {
	return &GORMBrandRepository{db: db}
}

func (r *GORMBrandRepository) GetAll() ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to get all brands: %w", err)
	}
	return brands, nil
}

func (r *GORMBrandRepository) GetByID(id string) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.First(&brand, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("brand with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get brand by ID %s: %w", id, err)
	}
	return &brand, nil
}

func (r *GORMBrandRepository) Create(brand *models.Brand) error {
	if brand.ID == "" {
		brand.ID = uuid.New().String()
	}
	if err := r.db.Create(brand).Error; err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

func (r *GORMBrandRepository) Update(brand *models.Brand) error {
	var existing models.Brand
	if err := r.db.Select("id").First(&existing, "id = ?", brand.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("brand with ID %s %w for update", brand.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to look up brand %s: %w", brand.ID, err)
	}
	if err := r.db.Save(brand).Error; err != nil {
		return fmt.Errorf("failed to update brand: %w", err)
	}
	return nil
}

func (r *GORMBrandRepository) Delete(id string) error {
	res := r.db.Delete(&models.Brand{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete brand: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("brand with ID %s %w for deletion", id, ErrNotFound)
	}
	return nil
}

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("category with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *GORMCategoryRepository) Update(category *models.Category) error {
	var existing models.Category
	if err := r.db.Select("id").First(&existing, "id = ?", category.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("category with ID %s %w for update", category.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to look up category %s: %w", category.ID, err)
	}
	if err := r.db.Save(category).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (r *GORMCategoryRepository) Delete(id string) error {
	res := r.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %s %w for deletion", id, ErrNotFound)
	}
	return nil
}
