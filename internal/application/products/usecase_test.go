package products_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/dto"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/products"
	"github.com/bhojansetu/bhojan-setu-api/internal/changefeed"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"
)

type memProducts struct {
	m map[string]*entity.Product
}

func newMemProducts() *memProducts {
	return &memProducts{m: make(map[string]*entity.Product)}
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

func (r *memProducts) GetByIDs(ids []string) ([]*entity.Product, error) { return nil, nil }

func (r *memProducts) Update(p *entity.Product) error {
	cp := *p
	r.m[p.ID] = &cp
	return nil
}

func (r *memProducts) DecrementQuantity(id string, qty int) (int, error) {
	return 0, domain.ErrInsufficientStock
}

func (r *memProducts) ListAvailable() ([]*entity.Product, error) { return nil, nil }

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

type recordingFeed struct {
	events []changefeed.Event
}

func (f *recordingFeed) Publish(ev changefeed.Event) {
	f.events = append(f.events, ev)
}

func validCreate() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:      "Tomato",
		Category:  "Vegetables",
		Price:     decimal.NewFromInt(40),
		Unit:      "kg",
		Quantity:  25,
		Freshness: 85,
	}
}

func TestCreate_DerivesAvailability(t *testing.T) {
	repo := newMemProducts()
	feed := &recordingFeed{}
	uc := products.NewUseCase(repo, feed)

	out, err := uc.Create("sup-1", validCreate())
	require.NoError(t, err)
	assert.True(t, out.IsAvailable)
	assert.Equal(t, "sup-1", out.SupplierID)

	require.Len(t, feed.events, 1)
	assert.Equal(t, changefeed.TableProducts, feed.events[0].Table)
	assert.Equal(t, changefeed.TypeInsert, feed.events[0].Type)

	in := validCreate()
	in.Quantity = 0
	out, err = uc.Create("sup-1", in)
	require.NoError(t, err)
	assert.False(t, out.IsAvailable, "zero stock lists as unavailable")
}

func TestCreate_RejectsBadInput(t *testing.T) {
	uc := products.NewUseCase(newMemProducts(), changefeed.NopPublisher{})

	in := validCreate()
	in.Price = decimal.Zero
	_, err := uc.Create("sup-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validCreate()
	in.Freshness = 101
	_, err = uc.Create("sup-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_QuantityRecomputesAvailability(t *testing.T) {
	repo := newMemProducts()
	uc := products.NewUseCase(repo, changefeed.NopPublisher{})
	created, err := uc.Create("sup-1", validCreate())
	require.NoError(t, err)

	zero := 0
	out, err := uc.Update("sup-1", created.ID, dto.UpdateProductRequest{Quantity: &zero})
	require.NoError(t, err)
	assert.False(t, out.IsAvailable)

	restocked := 12
	out, err = uc.Update("sup-1", created.ID, dto.UpdateProductRequest{Quantity: &restocked})
	require.NoError(t, err)
	assert.True(t, out.IsAvailable)
	assert.Equal(t, 12, out.Quantity)
}

func TestUpdate_OnlyOwner(t *testing.T) {
	repo := newMemProducts()
	uc := products.NewUseCase(repo, changefeed.NopPublisher{})
	created, err := uc.Create("sup-1", validCreate())
	require.NoError(t, err)

	name := "Cherry Tomato"
	_, err = uc.Update("sup-2", created.ID, dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDelete_PublishesAndRemoves(t *testing.T) {
	repo := newMemProducts()
	feed := &recordingFeed{}
	uc := products.NewUseCase(repo, feed)
	created, err := uc.Create("sup-1", validCreate())
	require.NoError(t, err)

	require.NoError(t, uc.Delete("sup-1", created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	last := feed.events[len(feed.events)-1]
	assert.Equal(t, changefeed.TypeDelete, last.Type)
	assert.Equal(t, created.ID, last.RowID)
}

func TestDelete_OnlyOwner(t *testing.T) {
	repo := newMemProducts()
	uc := products.NewUseCase(repo, changefeed.NopPublisher{})
	created, err := uc.Create("sup-1", validCreate())
	require.NoError(t, err)

	err = uc.Delete("sup-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestList_OwnProductsOnly(t *testing.T) {
	repo := newMemProducts()
	uc := products.NewUseCase(repo, changefeed.NopPublisher{})
	_, err := uc.Create("sup-1", validCreate())
	require.NoError(t, err)
	_, err = uc.Create("sup-2", validCreate())
	require.NoError(t, err)

	out, err := uc.List("sup-1", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "sup-1", out.Items[0].SupplierID)
	assert.Equal(t, 20, out.Page.Limit, "default page size applies")
}
