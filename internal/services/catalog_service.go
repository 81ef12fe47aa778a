package services

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CatalogService handles business logic for products, variants, brands, and
// categories.
type CatalogService struct {
	productRepo  repositories.ProductRepository
	variantRepo  repositories.VariantRepository
	brandRepo    repositories.BrandRepository
	categoryRepo repositories.CategoryRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	productRepo repositories.ProductRepository,
	variantRepo repositories.VariantRepository,
	brandRepo repositories.BrandRepository,
	categoryRepo repositories.CategoryRepository,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
	}
}

// GetAllProducts retrieves products. Non-staff callers only see active ones.
func (s *CatalogService) GetAllProducts(isStaff bool) ([]models.Product, error) {
	return s.productRepo.GetAll(!isStaff)
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err, "product", id)
	}
	return product, nil
}

// CreateProduct creates a new product.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	return s.productRepo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	return mapNotFound(s.productRepo.Update(product), "product", product.ID)
}

// DeleteProduct deletes a product by its ID.
func (s *CatalogService) DeleteProduct(id string) error {
	return mapNotFound(s.productRepo.Delete(id), "product", id)
}

// GetVariants retrieves the variants of a product. The product must exist.
func (s *CatalogService) GetVariants(productID string) ([]models.ProductVariant, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, mapNotFound(err, "product", productID)
	}
	return s.variantRepo.GetByProduct(productID)
}

// GetVariantByID retrieves a single variant.
func (s *CatalogService) GetVariantByID(id string) (*models.ProductVariant, error) {
	variant, err := s.variantRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err, "variant", id)
	}
	return variant, nil
}

// CreateVariant creates a variant under an existing product.
func (s *CatalogService) CreateVariant(variant *models.ProductVariant) error {
	if _, err := s.productRepo.GetByID(variant.ProductID); err != nil {
		return mapNotFound(err, "product", variant.ProductID)
	}
	return s.variantRepo.Create(variant)
}

// UpdateVariant updates an existing variant.
func (s *CatalogService) UpdateVariant(variant *models.ProductVariant) error {
	return mapNotFound(s.variantRepo.Update(variant), "variant", variant.ID)
}

// DeleteVariant deletes a variant by its ID.
func (s *CatalogService) DeleteVariant(id string) error {
	return mapNotFound(s.variantRepo.Delete(id), "variant", id)
}

// GetAllBrands retrieves all brands.
func (s *CatalogService) GetAllBrands() ([]models.Brand, error) {
	return s.brandRepo.GetAll()
}

// GetBrandByID retrieves a single brand by its ID.
func (s *CatalogService) GetBrandByID(id string) (*models.Brand, error) {
	brand, err := s.brandRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err, "brand", id)
	}
	return brand, nil
}

// CreateBrand creates a new brand.
func (s *CatalogService) CreateBrand(brand *models.Brand) error {
	return s.brandRepo.Create(brand)
}

// UpdateBrand updates an existing brand.
func (s *CatalogService) UpdateBrand(brand *models.Brand) error {
	return mapNotFound(s.brandRepo.Update(brand), "brand", brand.ID)
}

// DeleteBrand deletes a brand by its ID.
func (s *CatalogService) DeleteBrand(id string) error {
	return mapNotFound(s.brandRepo.Delete(id), "brand", id)
}

// GetAllCategories retrieves all categories.
func (s *CatalogService) GetAllCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CatalogService) GetCategoryByID(id string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err, "category", id)
	}
	return category, nil
}

// CreateCategory creates a new category.
func (s *CatalogService) CreateCategory(category *models.Category) error {
	return s.categoryRepo.Create(category)
}

// UpdateCategory updates an existing category.
func (s *CatalogService) UpdateCategory(category *models.Category) error {
	return mapNotFound(s.categoryRepo.Update(category), "category", category.ID)
}

// DeleteCategory deletes a category by its ID.
func (s *CatalogService) DeleteCategory(id string) error {
	return mapNotFound(s.categoryRepo.Delete(id), "category", id)
}

// mapNotFound converts the repository's missing-row error into the service
// taxonomy and passes every other error through untouched.
func mapNotFound(err error, kind, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return err
}
