package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

type cartFixture struct {
	service   *CartService
	variantID string
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	db := openTestDB(t)
	productRepo := repositories.NewGORMProductRepository(db)
	variantRepo := repositories.NewGORMVariantRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)

	product := models.Product{Name: "Rain Jacket", Slug: "rain-jacket", Price: 59.00, IsActive: true}
	require.NoError(t, productRepo.Create(&product))
	variant := models.ProductVariant{ProductID: product.ID, Color: "green", Size: "M", Stock: 5, SKU: "RJ-G-M"}
	require.NoError(t, variantRepo.Create(&variant))

	return &cartFixture{
		service:   NewCartService(cartRepo, variantRepo),
		variantID: variant.ID,
	}
}

func TestCartAddItem_RejectsBadInput(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.service.AddItem("user-1", f.variantID, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.service.AddItem("user-1", "no-such-variant", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartAddItem_UpsertsOnUserAndVariant(t *testing.T) {
	f := newCartFixture(t)

	first, err := f.service.AddItem("user-1", f.variantID, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Quantity)
	assert.NotNil(t, first.Product)
	assert.Equal(t, 59.00, first.Product.Price)

	second, err := f.service.AddItem("user-1", f.variantID, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, second.Quantity)
	assert.Equal(t, first.ID, second.ID)

	cart, err := f.service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestCartUpdateItem_RequiresExistingRow(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.service.UpdateItem("user-1", f.variantID, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.service.AddItem("user-1", f.variantID, 1)
	assert.NoError(t, err)

	updated, err := f.service.UpdateItem("user-1", f.variantID, 4)
	assert.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)
}

func TestCartRemoveItem_IsIdempotent(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.service.AddItem("user-1", f.variantID, 1)
	assert.NoError(t, err)

	assert.NoError(t, f.service.RemoveItem("user-1", f.variantID))
	assert.NoError(t, f.service.RemoveItem("user-1", f.variantID))

	cart, err := f.service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCartIsScopedPerUser(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.service.AddItem("alice", f.variantID, 2)
	assert.NoError(t, err)

	bobCart, err := f.service.GetCart("bob")
	assert.NoError(t, err)
	assert.Empty(t, bobCart)
}
