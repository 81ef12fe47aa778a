package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/models"
)

func TestGORMVariantRepository_ResolveVariantsBatches(t *testing.T) {
	db := openTestDB(t)
	productRepo := NewGORMProductRepository(db)
	variantRepo := NewGORMVariantRepository(db)

	shoe := models.Product{Name: "Trail Shoe", Slug: "trail-shoe", Price: 89.90, IsActive: true}
	sock := models.Product{Name: "Wool Sock", Slug: "wool-sock", Price: 9.50, IsActive: true}
	assert.NoError(t, productRepo.Create(&shoe))
	assert.NoError(t, productRepo.Create(&sock))

	shoeVariant := models.ProductVariant{ProductID: shoe.ID, Size: "43", SKU: "SHOE-43"}
	sockVariant := models.ProductVariant{ProductID: sock.ID, Size: "L", SKU: "SOCK-L"}
	orphanVariant := models.ProductVariant{ProductID: "gone-product", Size: "M", SKU: "ORPHAN-M"}
	assert.NoError(t, variantRepo.Create(&shoeVariant))
	assert.NoError(t, variantRepo.Create(&sockVariant))
	assert.NoError(t, variantRepo.Create(&orphanVariant))

	resolved, err := variantRepo.ResolveVariants([]string{
		shoeVariant.ID, sockVariant.ID, orphanVariant.ID, "no-such-variant",
	})
	assert.NoError(t, err)
	assert.Len(t, resolved, 3)

	assert.Equal(t, "SHOE-43", resolved[shoeVariant.ID].Variant.SKU)
	assert.NotNil(t, resolved[shoeVariant.ID].Product)
	assert.Equal(t, 89.90, resolved[shoeVariant.ID].Product.Price)
	assert.NotNil(t, resolved[sockVariant.ID].Product)

	// A variant whose product is gone still resolves, with a nil product.
	assert.Nil(t, resolved[orphanVariant.ID].Product)

	_, ok := resolved["no-such-variant"]
	assert.False(t, ok)
}

func TestGORMVariantRepository_ResolveVariantsEmptyInput(t *testing.T) {
	db := openTestDB(t)
	variantRepo := NewGORMVariantRepository(db)

	resolved, err := variantRepo.ResolveVariants(nil)
	assert.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestGORMProductRepository_GetAllActiveFilter(t *testing.T) {
	db := openTestDB(t)
	productRepo := NewGORMProductRepository(db)

	active := models.Product{Name: "Active", Slug: "active", Price: 1, IsActive: true}
	inactive := models.Product{Name: "Retired", Slug: "retired", Price: 1, IsActive: true}
	assert.NoError(t, productRepo.Create(&active))
	assert.NoError(t, productRepo.Create(&inactive))

	// Deactivation happens through an update, as in the API.
	inactive.IsActive = false
	assert.NoError(t, productRepo.Update(&inactive))

	visible, err := productRepo.GetAll(true)
	assert.NoError(t, err)
	assert.Len(t, visible, 1)
	assert.Equal(t, "Active", visible[0].Name)

	all, err := productRepo.GetAll(false)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGORMProductRepository_UpdateAndDeleteMissing(t *testing.T) {
	db := openTestDB(t)
	productRepo := NewGORMProductRepository(db)

	ghost := models.Product{ID: "no-such-product", Name: "Ghost", Slug: "ghost", Price: 1}
	assert.ErrorIs(t, productRepo.Update(&ghost), ErrNotFound)
	assert.ErrorIs(t, productRepo.Delete("no-such-product"), ErrNotFound)

	// The failed update must not have inserted the row.
	var count int64
	assert.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGORMCatalogUpdatesDoNotUpsertMissingRows(t *testing.T) {
	db := openTestDB(t)

	variant := models.ProductVariant{ID: "ghost", ProductID: "p", SKU: "G-1"}
	assert.ErrorIs(t, NewGORMVariantRepository(db).Update(&variant), ErrNotFound)

	brand := models.Brand{ID: "ghost", Name: "Ghost", Slug: "ghost"}
	assert.ErrorIs(t, NewGORMBrandRepository(db).Update(&brand), ErrNotFound)

	category := models.Category{ID: "ghost", Name: "Ghost", Slug: "ghost"}
	assert.ErrorIs(t, NewGORMCategoryRepository(db).Update(&category), ErrNotFound)

	review := models.Review{ID: "ghost", UserID: "u", ProductID: "p", Rating: 3}
	assert.ErrorIs(t, NewGORMReviewRepository(db).Update(&review), ErrNotFound)

	var variants, brands, categories, reviews int64
	assert.NoError(t, db.Model(&models.ProductVariant{}).Count(&variants).Error)
	assert.NoError(t, db.Model(&models.Brand{}).Count(&brands).Error)
	assert.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	assert.NoError(t, db.Model(&models.Review{}).Count(&reviews).Error)
	assert.Zero(t, variants)
	assert.Zero(t, brands)
	assert.Zero(t, categories)
	assert.Zero(t, reviews)
}
