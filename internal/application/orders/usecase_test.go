package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/dto"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/orders"
	"github.com/bhojansetu/bhojan-setu-api/internal/changefeed"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ──────────────────────────────────────────────────────────────────────────────

type memProducts struct {
	m map[string]*entity.Product
}

func newMemProducts(products ...*entity.Product) *memProducts {
	r := &memProducts{m: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.m[p.ID] = &cp
	}
	return r
}

func (r *memProducts) Create(p *entity.Product) error {
	cp := *p
	r.m[p.ID] = &cp
	return nil
}

func (r *memProducts) GetByID(id string) (*entity.Product, error) {
	p, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProducts) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProducts) GetByIDs(ids []string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.m[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProducts) Update(p *entity.Product) error {
	cp := *p
	r.m[p.ID] = &cp
	return nil
}

func (r *memProducts) DecrementQuantity(id string, qty int) (int, error) {
	p, ok := r.m[id]
	if !ok || p.Quantity < qty {
		return 0, domain.ErrInsufficientStock
	}
	p.Quantity -= qty
	p.IsAvailable = p.Quantity > 0
	return p.Quantity, nil
}

func (r *memProducts) ListAvailable() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.m {
		if p.IsAvailable {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProducts) ListBySupplier(supplierID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.m {
		if p.SupplierID == supplierID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProducts) Delete(id string) error {
	delete(r.m, id)
	return nil
}

type memOrders struct {
	list []*entity.Order
}

func (r *memOrders) Create(o *entity.Order) error {
	cp := *o
	r.list = append(r.list, &cp)
	return nil
}

func (r *memOrders) GetByID(id string) (*entity.Order, error) {
	for _, o := range r.list {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memOrders) UpdateStatus(id, status string) error {
	for _, o := range r.list {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memOrders) ListByVendor(vendorID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for i := len(r.list) - 1; i >= 0; i-- {
		if r.list[i].VendorID == vendorID {
			cp := *r.list[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memOrders) ListBySupplier(supplierID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for i := len(r.list) - 1; i >= 0; i-- {
		if r.list[i].SupplierID == supplierID {
			cp := *r.list[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memOrders) StatsBySupplier(supplierID string) (*entity.OrderStats, error) {
	stats := &entity.OrderStats{Revenue: decimal.Zero}
	for _, o := range r.list {
		if o.SupplierID != supplierID {
			continue
		}
		switch o.Status {
		case entity.OrderStatusPending:
			stats.PendingCount++
		case entity.OrderStatusCompleted:
			stats.CompletedCount++
			stats.Revenue = stats.Revenue.Add(o.TotalAmount)
		}
	}
	return stats, nil
}

type memProfiles struct {
	m map[string]*entity.Profile
}

func newMemProfiles(profiles ...*entity.Profile) *memProfiles {
	r := &memProfiles{m: make(map[string]*entity.Profile)}
	for _, p := range profiles {
		cp := *p
		r.m[p.UserID] = &cp
	}
	return r
}

func (r *memProfiles) Create(p *entity.Profile) error {
	cp := *p
	r.m[p.UserID] = &cp
	return nil
}

func (r *memProfiles) GetByUserID(userID string) (*entity.Profile, error) {
	p, ok := r.m[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProfiles) GetByUserIDs(ids []string) ([]*entity.Profile, error) {
	out := make([]*entity.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.m[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProfiles) Update(p *entity.Profile) error {
	cp := *p
	r.m[p.UserID] = &cp
	return nil
}

// fakeTx mimics transactional semantics: it snapshots both stores before the
// callback and restores them when the callback errors.
type fakeTx struct {
	products *memProducts
	orders   *memOrders
}

func (t *fakeTx) Run(ctx context.Context, fn func(repository.ProductRepository, repository.OrderRepository) error) error {
	productSnap := make(map[string]*entity.Product, len(t.products.m))
	for id, p := range t.products.m {
		cp := *p
		productSnap[id] = &cp
	}
	orderSnap := make([]*entity.Order, len(t.orders.list))
	copy(orderSnap, t.orders.list)

	if err := fn(t.products, t.orders); err != nil {
		t.products.m = productSnap
		t.orders.list = orderSnap
		return err
	}
	return nil
}

// recordingFeed captures published change events.
type recordingFeed struct {
	events []changefeed.Event
}

func (f *recordingFeed) Publish(ev changefeed.Event) {
	f.events = append(f.events, ev)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

const (
	vendorID   = "vendor-1"
	supplierID = "supplier-1"
)

func onionProduct(quantity int) *entity.Product {
	return &entity.Product{
		ID:          "prod-onion",
		SupplierID:  supplierID,
		Name:        "Onion",
		Category:    "Vegetables",
		Price:       decimal.NewFromInt(30),
		Unit:        "kg",
		Quantity:    quantity,
		Freshness:   90,
		IsAvailable: quantity > 0,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func newOrderUseCase(products *memProducts, ords *memOrders, profiles *memProfiles, feed changefeed.Publisher) *orders.UseCase {
	if profiles == nil {
		profiles = newMemProfiles()
	}
	if feed == nil {
		feed = changefeed.NopPublisher{}
	}
	return orders.NewUseCase(&fakeTx{products: products, orders: ords}, ords, products, profiles, feed)
}

// ──────────────────────────────────────────────────────────────────────────────
// Placement
// ──────────────────────────────────────────────────────────────────────────────

func TestPlace_DecrementsStockAndFixesTotal(t *testing.T) {
	products := newMemProducts(onionProduct(10))
	ords := &memOrders{}
	feed := &recordingFeed{}
	uc := newOrderUseCase(products, ords, nil, feed)

	out, err := uc.Place(context.Background(), vendorID, dto.PlaceOrderRequest{ProductID: "prod-onion", Quantity: 4})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.Equal(t, supplierID, out.SupplierID, "supplier must come from the product row")
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(120)), "total = price * quantity")

	p, _ := products.GetByID("prod-onion")
	assert.Equal(t, 6, p.Quantity)
	assert.True(t, p.IsAvailable)

	require.Len(t, ords.list, 1)
	require.Len(t, feed.events, 2, "expects an order INSERT and a product UPDATE event")
	assert.Equal(t, changefeed.TableOrders, feed.events[0].Table)
	assert.Equal(t, changefeed.TableProducts, feed.events[1].Table)
}

func TestPlace_ExactQuantityMarksUnavailable(t *testing.T) {
	products := newMemProducts(onionProduct(5))
	ords := &memOrders{}
	uc := newOrderUseCase(products, ords, nil, nil)

	_, err := uc.Place(context.Background(), vendorID, dto.PlaceOrderRequest{ProductID: "prod-onion", Quantity: 5})
	require.NoError(t, err)

	p, _ := products.GetByID("prod-onion")
	assert.Equal(t, 0, p.Quantity)
	assert.False(t, p.IsAvailable)
}

func TestPlace_InsufficientStock_NothingPersists(t *testing.T) {
	products := newMemProducts(onionProduct(3))
	ords := &memOrders{}
	feed := &recordingFeed{}
	uc := newOrderUseCase(products, ords, nil, feed)

	_, err := uc.Place(context.Background(), vendorID, dto.PlaceOrderRequest{ProductID: "prod-onion", Quantity: 5})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := products.GetByID("prod-onion")
	assert.Equal(t, 3, p.Quantity, "stock must be untouched after a rejected order")
	assert.Empty(t, ords.list, "no order row may survive the rollback")
	assert.Empty(t, feed.events, "no events for a rejected order")
}

func TestPlace_SequentialOversell_SecondFails(t *testing.T) {
	products := newMemProducts(onionProduct(10))
	ords := &memOrders{}
	uc := newOrderUseCase(products, ords, nil, nil)

	_, err := uc.Place(context.Background(), vendorID, dto.PlaceOrderRequest{ProductID: "prod-onion", Quantity: 7})
	require.NoError(t, err)

	_, err = uc.Place(context.Background(), "vendor-2", dto.PlaceOrderRequest{ProductID: "prod-onion", Quantity: 7})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := products.GetByID("prod-onion")
	assert.Equal(t, 3, p.Quantity)
	assert.Len(t, ords.list, 1)
}

func TestPlace_UnavailableProduct(t *testing.T) {
	p := onionProduct(4)
	p.IsAvailable = false
	products := newMemProducts(p)
	uc := newOrderUseCase(products, &memOrders{}, nil, nil)

	_, err := uc.Place(context.Background(), vendorID, dto.PlaceOrderRequest{ProductID: "prod-onion", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrProductUnavailable)
}

func TestPlace_UnknownProduct(t *testing.T) {
	uc := newOrderUseCase(newMemProducts(), &memOrders{}, nil, nil)

	_, err := uc.Place(context.Background(), vendorID, dto.PlaceOrderRequest{ProductID: "missing", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlace_NonPositiveQuantity(t *testing.T) {
	uc := newOrderUseCase(newMemProducts(onionProduct(5)), &memOrders{}, nil, nil)

	_, err := uc.Place(context.Background(), vendorID, dto.PlaceOrderRequest{ProductID: "prod-onion", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlace_TotalUnaffectedByLaterPriceChange(t *testing.T) {
	products := newMemProducts(onionProduct(10))
	ords := &memOrders{}
	uc := newOrderUseCase(products, ords, nil, nil)

	out, err := uc.Place(context.Background(), vendorID, dto.PlaceOrderRequest{ProductID: "prod-onion", Quantity: 2})
	require.NoError(t, err)

	p, _ := products.GetByID("prod-onion")
	p.Price = decimal.NewFromInt(500)
	require.NoError(t, products.Update(p))

	stored, _ := ords.GetByID(out.ID)
	assert.True(t, stored.TotalAmount.Equal(decimal.NewFromInt(60)), "total is frozen at placement time")
}

// ──────────────────────────────────────────────────────────────────────────────
// Status transitions
// ──────────────────────────────────────────────────────────────────────────────

func placedOrder(t *testing.T, uc *orders.UseCase) *dto.OrderResponse {
	t.Helper()
	out, err := uc.Place(context.Background(), vendorID, dto.PlaceOrderRequest{ProductID: "prod-onion", Quantity: 2})
	require.NoError(t, err)
	return out
}

func TestUpdateStatus_AcceptThenComplete(t *testing.T) {
	products := newMemProducts(onionProduct(10))
	ords := &memOrders{}
	uc := newOrderUseCase(products, ords, nil, nil)
	placed := placedOrder(t, uc)

	out, err := uc.UpdateStatus(supplierID, placed.ID, entity.OrderStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAccepted, out.Status)

	out, err = uc.UpdateStatus(supplierID, placed.ID, entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, out.Status)
}

func TestUpdateStatus_PendingCannotComplete(t *testing.T) {
	products := newMemProducts(onionProduct(10))
	uc := newOrderUseCase(products, &memOrders{}, nil, nil)
	placed := placedOrder(t, uc)

	_, err := uc.UpdateStatus(supplierID, placed.ID, entity.OrderStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateStatus_RejectedIsTerminal(t *testing.T) {
	products := newMemProducts(onionProduct(10))
	uc := newOrderUseCase(products, &memOrders{}, nil, nil)
	placed := placedOrder(t, uc)

	_, err := uc.UpdateStatus(supplierID, placed.ID, entity.OrderStatusRejected)
	require.NoError(t, err)

	_, err = uc.UpdateStatus(supplierID, placed.ID, entity.OrderStatusAccepted)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateStatus_OnlyOwningSupplier(t *testing.T) {
	products := newMemProducts(onionProduct(10))
	uc := newOrderUseCase(products, &memOrders{}, nil, nil)
	placed := placedOrder(t, uc)

	_, err := uc.UpdateStatus("supplier-other", placed.ID, entity.OrderStatusAccepted)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	products := newMemProducts(onionProduct(10))
	uc := newOrderUseCase(products, &memOrders{}, nil, nil)
	placed := placedOrder(t, uc)

	_, err := uc.UpdateStatus(supplierID, placed.ID, "shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stats
// ──────────────────────────────────────────────────────────────────────────────

func TestStats_CountsAndRevenue(t *testing.T) {
	products := newMemProducts(onionProduct(100))
	ords := &memOrders{}
	uc := newOrderUseCase(products, ords, nil, nil)

	first := placedOrder(t, uc)  // 2 kg -> 60
	second := placedOrder(t, uc) // 2 kg -> 60
	placedOrder(t, uc)           // stays pending

	_, err := uc.UpdateStatus(supplierID, first.ID, entity.OrderStatusAccepted)
	require.NoError(t, err)
	_, err = uc.UpdateStatus(supplierID, first.ID, entity.OrderStatusCompleted)
	require.NoError(t, err)
	_, err = uc.UpdateStatus(supplierID, second.ID, entity.OrderStatusRejected)
	require.NoError(t, err)

	stats, err := uc.Stats(supplierID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 1, stats.CompletedCount)
	assert.True(t, stats.Revenue.Equal(decimal.NewFromInt(60)), "revenue counts completed orders only")
}
