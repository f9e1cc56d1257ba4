package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/catalog"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/dto"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"
)

// stubProducts serves a fixed list from ListAvailable; the rest of the port is
// unused by the catalog reader.
type stubProducts struct {
	available []*entity.Product
}

func (s *stubProducts) Create(*entity.Product) error                   { return nil }
func (s *stubProducts) GetByID(string) (*entity.Product, error)        { return nil, nil }
func (s *stubProducts) GetByIDForUpdate(string) (*entity.Product, error) { return nil, nil }
func (s *stubProducts) GetByIDs([]string) ([]*entity.Product, error)   { return nil, nil }
func (s *stubProducts) Update(*entity.Product) error                   { return nil }
func (s *stubProducts) DecrementQuantity(string, int) (int, error)     { return 0, nil }
func (s *stubProducts) ListAvailable() ([]*entity.Product, error)      { return s.available, nil }
func (s *stubProducts) ListBySupplier(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (s *stubProducts) Delete(string) error { return nil }

type stubProfiles struct {
	m map[string]*entity.Profile
}

func (s *stubProfiles) Create(*entity.Profile) error { return nil }
func (s *stubProfiles) GetByUserID(userID string) (*entity.Profile, error) {
	return s.m[userID], nil
}
func (s *stubProfiles) GetByUserIDs(ids []string) ([]*entity.Profile, error) {
	var out []*entity.Profile
	for _, id := range ids {
		if p, ok := s.m[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
func (s *stubProfiles) Update(*entity.Profile) error { return nil }

func product(id, supplierID, name, category string, price int64) *entity.Product {
	return &entity.Product{
		ID:          id,
		SupplierID:  supplierID,
		Name:        name,
		Category:    category,
		Price:       decimal.NewFromInt(price),
		Unit:        "kg",
		Quantity:    10,
		IsAvailable: true,
	}
}

func freshFarmsCatalog() *catalog.UseCase {
	products := &stubProducts{available: []*entity.Product{
		product("p1", "sup-1", "Tomato", "Vegetables", 40),
		product("p2", "sup-1", "Basmati Rice", "Grains", 120),
		product("p3", "sup-2", "Paneer", "Dairy", 320),
	}}
	profiles := &stubProfiles{m: map[string]*entity.Profile{
		"sup-1": {
			UserID:             "sup-1",
			FullName:           "Fresh Farms",
			Location:           "Azadpur Mandi, Delhi",
			ContactNumber:      "+91 98100 00000",
			PreferredLanguages: []string{"Hindi", "English"},
			UserRole:           entity.RoleSupplier,
		},
		// sup-2 has no profile on purpose
	}}
	return catalog.NewUseCase(products, profiles)
}

func TestList_EnrichesWithSupplierSnapshot(t *testing.T) {
	uc := freshFarmsCatalog()

	out, err := uc.List(dto.CatalogFilter{})
	require.NoError(t, err)
	require.Len(t, out.Items, 3)

	byID := make(map[string]dto.CatalogProduct)
	for _, item := range out.Items {
		byID[item.ID] = item
	}

	tomato := byID["p1"]
	assert.Equal(t, "Fresh Farms", tomato.Supplier.FullName)
	assert.Equal(t, "Azadpur Mandi, Delhi", tomato.Supplier.Location)
	assert.Equal(t, []string{"Hindi", "English"}, tomato.Supplier.PreferredLanguages)
}

func TestList_MissingProfileGetsPlaceholder(t *testing.T) {
	uc := freshFarmsCatalog()

	out, err := uc.List(dto.CatalogFilter{})
	require.NoError(t, err)

	for _, item := range out.Items {
		if item.ID != "p3" {
			continue
		}
		assert.Equal(t, "Unknown Supplier", item.Supplier.FullName)
		assert.Equal(t, "Location not available", item.Supplier.Location)
		assert.Equal(t, "N/A", item.Supplier.ContactNumber)
		return
	}
	t.Fatal("product p3 missing from catalog")
}

func TestList_CategoryFilterIsCaseInsensitiveSubstring(t *testing.T) {
	uc := freshFarmsCatalog()

	out, err := uc.List(dto.CatalogFilter{Category: "veg"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Tomato", out.Items[0].Name)
}

func TestList_PriceBuckets(t *testing.T) {
	uc := freshFarmsCatalog()

	low, err := uc.List(dto.CatalogFilter{Price: dto.PriceBucketLow})
	require.NoError(t, err)
	require.Len(t, low.Items, 1)
	assert.Equal(t, "Tomato", low.Items[0].Name)

	medium, err := uc.List(dto.CatalogFilter{Price: dto.PriceBucketMedium})
	require.NoError(t, err)
	require.Len(t, medium.Items, 1)
	assert.Equal(t, "Basmati Rice", medium.Items[0].Name)

	high, err := uc.List(dto.CatalogFilter{Price: dto.PriceBucketHigh})
	require.NoError(t, err)
	require.Len(t, high.Items, 1)
	assert.Equal(t, "Paneer", high.Items[0].Name)
}

func TestList_SearchCoversSupplierName(t *testing.T) {
	uc := freshFarmsCatalog()

	out, err := uc.List(dto.CatalogFilter{Search: "fresh farms"})
	require.NoError(t, err)
	require.Len(t, out.Items, 2, "both Fresh Farms products match on supplier name")
}

func TestList_FiltersCompose(t *testing.T) {
	uc := freshFarmsCatalog()

	out, err := uc.List(dto.CatalogFilter{Category: "Grains", Price: dto.PriceBucketLow})
	require.NoError(t, err)
	assert.Empty(t, out.Items, "filters are ANDed: Grains has no low-priced product")
}

func TestList_EmptyStore(t *testing.T) {
	uc := catalog.NewUseCase(&stubProducts{}, &stubProfiles{m: map[string]*entity.Profile{}})

	out, err := uc.List(dto.CatalogFilter{})
	require.NoError(t, err)
	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
}
