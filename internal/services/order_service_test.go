package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// recordingPublisher captures published order events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []map[string]interface{}
}

func (p *recordingPublisher) PublishOrderCreated(event map[string]interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// trackingVariantRepo counts catalog resolutions so tests can assert that
// input validation happens before any lookup.
type trackingVariantRepo struct {
	*repositories.MockVariantRepository
	resolveCalls int
}

func (r *trackingVariantRepo) ResolveVariants(ids []string) (map[string]repositories.VariantWithProduct, error) {
	r.resolveCalls++
	return r.MockVariantRepository.ResolveVariants(ids)
}

// failingOrderRepo refuses every write.
type failingOrderRepo struct {
	*repositories.MockOrderRepository
}

func (r *failingOrderRepo) Create(order *models.Order) error {
	return errors.New("connection reset by peer")
}

type orderFixture struct {
	service     *OrderService
	orderRepo   *repositories.MockOrderRepository
	productRepo *repositories.MockProductRepository
	variantRepo *trackingVariantRepo
	publisher   *recordingPublisher
	variantID   string
	productID   string
}

// newOrderFixture seeds one active product at 19.99 with a single variant.
func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	productRepo := repositories.NewMockProductRepository()
	variantRepo := &trackingVariantRepo{
		MockVariantRepository: repositories.NewMockVariantRepository(productRepo),
	}
	orderRepo := repositories.NewMockOrderRepository()
	publisher := &recordingPublisher{}

	product := models.Product{Name: "Canvas Sneaker", Slug: "canvas-sneaker", Price: 19.99, IsActive: true}
	require.NoError(t, productRepo.Create(&product))

	variant := models.ProductVariant{ProductID: product.ID, Color: "white", Size: "42", Stock: 10, SKU: "SNK-W-42"}
	require.NoError(t, variantRepo.Create(&variant))

	return &orderFixture{
		service:     NewOrderService(orderRepo, variantRepo, publisher),
		orderRepo:   orderRepo,
		productRepo: productRepo,
		variantRepo: variantRepo,
		publisher:   publisher,
		variantID:   variant.ID,
		productID:   product.ID,
	}
}

func TestCreateOrder_SnapshotsExactAmount(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.service.CreateOrder("user-1", CreateOrderRequest{
		PaymentMethod: models.PaymentMethodStripe,
		Items: []OrderItemRequest{
			{ProductVariantID: f.variantID, Quantity: 2},
		},
	})

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "39.98", order.Amount.String())
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "19.99", order.Items[0].Price.String())
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.NotNil(t, order.Items[0].Product)
	assert.Equal(t, f.productID, order.Items[0].Product.ID)

	// The event carries the committed order.
	assert.Len(t, f.publisher.events, 1)
	assert.Equal(t, order.ID, f.publisher.events[0]["order_id"])
	assert.Equal(t, "39.98", f.publisher.events[0]["amount"])
}

func TestCreateOrder_UnknownVariantIsNotFound(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.service.CreateOrder("user-1", CreateOrderRequest{
		PaymentMethod: models.PaymentMethodCOD,
		Items: []OrderItemRequest{
			{ProductVariantID: f.variantID, Quantity: 1},
			{ProductVariantID: "999", Quantity: 1},
		},
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrNotFound)

	// Nothing was persisted and no event went out.
	orders, listErr := f.orderRepo.GetAll()
	assert.NoError(t, listErr)
	assert.Empty(t, orders)
	assert.Empty(t, f.publisher.events)
}

func TestCreateOrder_VariantWithoutProductIsNotFound(t *testing.T) {
	f := newOrderFixture(t)
	assert.NoError(t, f.productRepo.Delete(f.productID))

	order, err := f.service.CreateOrder("user-1", CreateOrderRequest{
		PaymentMethod: models.PaymentMethodCOD,
		Items:         []OrderItemRequest{{ProductVariantID: f.variantID, Quantity: 1}},
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrder_RejectsBadQuantityBeforeLookup(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.service.CreateOrder("user-1", CreateOrderRequest{
		PaymentMethod: models.PaymentMethodCOD,
		Items:         []OrderItemRequest{{ProductVariantID: f.variantID, Quantity: 0}},
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, f.variantRepo.resolveCalls)
}

func TestCreateOrder_RejectsEmptyItems(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.service.CreateOrder("user-1", CreateOrderRequest{
		PaymentMethod: models.PaymentMethodCOD,
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateOrder_RejectsUnknownPaymentMethod(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.service.CreateOrder("user-1", CreateOrderRequest{
		PaymentMethod: "BARTER",
		Items:         []OrderItemRequest{{ProductVariantID: f.variantID, Quantity: 1}},
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateOrder_PersistenceFailureSurfaces(t *testing.T) {
	f := newOrderFixture(t)
	f.service = NewOrderService(
		&failingOrderRepo{repositories.NewMockOrderRepository()},
		f.variantRepo,
		f.publisher,
	)

	order, err := f.service.CreateOrder("user-1", CreateOrderRequest{
		PaymentMethod: models.PaymentMethodCOD,
		Items:         []OrderItemRequest{{ProductVariantID: f.variantID, Quantity: 1}},
	})

	assert.Nil(t, order)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrNotFound)
	// A failed persist must not emit an event.
	assert.Empty(t, f.publisher.events)
}

func TestOrderPriceSnapshotSurvivesCatalogChange(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.service.CreateOrder("user-1", CreateOrderRequest{
		PaymentMethod: models.PaymentMethodPaystack,
		Items:         []OrderItemRequest{{ProductVariantID: f.variantID, Quantity: 2}},
	})
	assert.NoError(t, err)

	product, err := f.productRepo.GetByID(f.productID)
	assert.NoError(t, err)
	product.Price = 5.00
	assert.NoError(t, f.productRepo.Update(product))

	fetched, err := f.service.GetOrder(created.ID, "user-1", false)
	assert.NoError(t, err)
	assert.Equal(t, "39.98", fetched.Amount.String())
	assert.Equal(t, "19.99", fetched.Items[0].Price.String())
	// The enriched product reflects the current catalog.
	assert.Equal(t, 5.00, fetched.Items[0].Product.Price)
}

func TestListOrders_OwnershipAndStaffVisibility(t *testing.T) {
	f := newOrderFixture(t)

	req := CreateOrderRequest{
		PaymentMethod: models.PaymentMethodCOD,
		Items:         []OrderItemRequest{{ProductVariantID: f.variantID, Quantity: 1}},
	}
	_, err := f.service.CreateOrder("alice", req)
	assert.NoError(t, err)
	_, err = f.service.CreateOrder("bob", req)
	assert.NoError(t, err)

	aliceOrders, err := f.service.ListOrders("alice", false)
	assert.NoError(t, err)
	assert.Len(t, aliceOrders, 1)
	assert.Equal(t, "alice", aliceOrders[0].UserID)

	staffOrders, err := f.service.ListOrders("staffer", true)
	assert.NoError(t, err)
	assert.Len(t, staffOrders, 2)
}

func TestGetOrder_ForbiddenForOtherUsers(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.service.CreateOrder("alice", CreateOrderRequest{
		PaymentMethod: models.PaymentMethodCOD,
		Items:         []OrderItemRequest{{ProductVariantID: f.variantID, Quantity: 1}},
	})
	assert.NoError(t, err)

	_, err = f.service.GetOrder(created.ID, "bob", false)
	assert.ErrorIs(t, err, ErrForbidden)

	// Staff may read any order.
	order, err := f.service.GetOrder(created.ID, "staffer", true)
	assert.NoError(t, err)
	assert.Equal(t, "alice", order.UserID)
}

func TestGetOrder_UnknownIsNotFound(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.service.GetOrder("no-such-order", "alice", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelOrder_PendingSucceeds(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.service.CreateOrder("alice", CreateOrderRequest{
		PaymentMethod: models.PaymentMethodCOD,
		Items:         []OrderItemRequest{{ProductVariantID: f.variantID, Quantity: 1}},
	})
	assert.NoError(t, err)

	assert.NoError(t, f.service.CancelOrder(created.ID, "alice", false))

	fetched, err := f.service.GetOrder(created.ID, "alice", false)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, fetched.Status)
}

func TestCancelOrder_GuardsNonPendingStates(t *testing.T) {
	f := newOrderFixture(t)

	for _, status := range []string{
		models.OrderStatusPaid,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		order := models.Order{UserID: "alice", Status: status, PaymentMethod: models.PaymentMethodCOD}
		assert.NoError(t, f.orderRepo.Create(&order))

		err := f.service.CancelOrder(order.ID, "alice", false)
		assert.ErrorIs(t, err, ErrInvalidState, "status %s must not be cancellable", status)
	}
}

func TestCancelOrder_ForbiddenAndNotFound(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.service.CreateOrder("alice", CreateOrderRequest{
		PaymentMethod: models.PaymentMethodCOD,
		Items:         []OrderItemRequest{{ProductVariantID: f.variantID, Quantity: 1}},
	})
	assert.NoError(t, err)

	assert.ErrorIs(t, f.service.CancelOrder(created.ID, "bob", false), ErrForbidden)
	assert.ErrorIs(t, f.service.CancelOrder("no-such-order", "alice", false), ErrNotFound)
}

func TestCancelOrder_ConcurrentCancelsHaveOneWinner(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.service.CreateOrder("alice", CreateOrderRequest{
		PaymentMethod: models.PaymentMethodCOD,
		Items:         []OrderItemRequest{{ProductVariantID: f.variantID, Quantity: 1}},
	})
	assert.NoError(t, err)

	const attempts = 8
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- f.service.CancelOrder(created.ID, "alice", false)
		}()
	}
	wg.Wait()
	close(results)

	wins, losses := 0, 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrInvalidState):
			losses++
		default:
			t.Fatalf("unexpected cancel error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, losses)

	fetched, err := f.service.GetOrder(created.ID, "alice", false)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, fetched.Status)
}

func TestListOrders_EnrichmentSkipsGoneVariants(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.service.CreateOrder("alice", CreateOrderRequest{
		PaymentMethod: models.PaymentMethodCOD,
		Items:         []OrderItemRequest{{ProductVariantID: f.variantID, Quantity: 1}},
	})
	assert.NoError(t, err)
	assert.NoError(t, f.variantRepo.Delete(f.variantID))

	orders, err := f.service.ListOrders("alice", false)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Empty(t, orders[0].Items)
	// The stored amount is untouched by the missing catalog entry.
	assert.Equal(t, created.Amount.String(), orders[0].Amount.String())
}
