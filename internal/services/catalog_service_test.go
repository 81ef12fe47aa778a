package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

func newCatalogFixture() (*CatalogService, *repositories.MockProductRepository, *repositories.MockVariantRepository) {
	productRepo := repositories.NewMockProductRepository()
	variantRepo := repositories.NewMockVariantRepository(productRepo)
	// Brand and category paths are exercised through the database-backed tests.
	return NewCatalogService(productRepo, variantRepo, nil, nil), productRepo, variantRepo
}

func TestGetAllProducts_HidesInactiveFromNonStaff(t *testing.T) {
	catalogService, productRepo, _ := newCatalogFixture()

	active := models.Product{Name: "Visible", Slug: "visible", Price: 10, IsActive: true}
	hidden := models.Product{Name: "Hidden", Slug: "hidden", Price: 10, IsActive: false}
	assert.NoError(t, productRepo.Create(&active))
	assert.NoError(t, productRepo.Create(&hidden))

	customerView, err := catalogService.GetAllProducts(false)
	assert.NoError(t, err)
	assert.Len(t, customerView, 1)
	assert.Equal(t, "Visible", customerView[0].Name)

	staffView, err := catalogService.GetAllProducts(true)
	assert.NoError(t, err)
	assert.Len(t, staffView, 2)
}

func TestGetProductByID_MapsMissingToNotFound(t *testing.T) {
	catalogService, _, _ := newCatalogFixture()

	product, err := catalogService.GetProductByID("no-such-product")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateVariant_RequiresExistingProduct(t *testing.T) {
	catalogService, productRepo, _ := newCatalogFixture()

	orphan := models.ProductVariant{ProductID: "no-such-product", Color: "red", Size: "M", SKU: "X-1"}
	assert.ErrorIs(t, catalogService.CreateVariant(&orphan), ErrNotFound)

	product := models.Product{Name: "Shirt", Slug: "shirt", Price: 25, IsActive: true}
	assert.NoError(t, productRepo.Create(&product))

	variant := models.ProductVariant{ProductID: product.ID, Color: "red", Size: "M", SKU: "X-1"}
	assert.NoError(t, catalogService.CreateVariant(&variant))
	assert.NotEmpty(t, variant.ID)
}

func TestGetVariants_RequiresExistingProduct(t *testing.T) {
	catalogService, productRepo, variantRepo := newCatalogFixture()

	_, err := catalogService.GetVariants("no-such-product")
	assert.ErrorIs(t, err, ErrNotFound)

	product := models.Product{Name: "Shirt", Slug: "shirt", Price: 25, IsActive: true}
	assert.NoError(t, productRepo.Create(&product))
	variant := models.ProductVariant{ProductID: product.ID, Color: "blue", Size: "L", SKU: "X-2"}
	assert.NoError(t, variantRepo.Create(&variant))

	variants, err := catalogService.GetVariants(product.ID)
	assert.NoError(t, err)
	assert.Len(t, variants, 1)
	assert.Equal(t, "X-2", variants[0].SKU)
}

func TestUpdateAndDeleteProduct_MapMissingToNotFound(t *testing.T) {
	catalogService, _, _ := newCatalogFixture()

	ghost := models.Product{ID: "no-such-product", Name: "Ghost", Slug: "ghost", Price: 1}
	assert.ErrorIs(t, catalogService.UpdateProduct(&ghost), ErrNotFound)
	assert.ErrorIs(t, catalogService.DeleteProduct("no-such-product"), ErrNotFound)
}
