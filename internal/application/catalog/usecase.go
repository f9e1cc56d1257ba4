package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/dto"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/repository"
)

// Placeholder supplier snapshot used when a product references a profile that
// does not exist. Graceful degradation, not an error: the product still shows.
var unknownSupplier = dto.SupplierSnapshot{
	FullName:           "Unknown Supplier",
	Location:           "Location not available",
	ContactNumber:      "N/A",
	PreferredLanguages: []string{"English"},
}

// Price bucket boundaries.
var (
	priceLow  = decimal.NewFromInt(50)
	priceHigh = decimal.NewFromInt(150)
)

// UseCase is the product catalog reader: all available products enriched with a
// denormalized snapshot of their supplier's profile.
type UseCase struct {
	products repository.ProductRepository
	profiles repository.ProfileRepository
}

// NewUseCase builds the reader.
func NewUseCase(products repository.ProductRepository, profiles repository.ProfileRepository) *UseCase {
	return &UseCase{products: products, profiles: profiles}
}

// List fetches available products, joins supplier profiles in memory and
// applies the composable filters (logical AND). Re-running it is idempotent;
// it always reflects current store state.
func (uc *UseCase) List(filter dto.CatalogFilter) (*dto.CatalogResponse, error) {
	products, err := uc.products.ListAvailable()
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return &dto.CatalogResponse{Items: []dto.CatalogProduct{}}, nil
	}

	profileMap, err := uc.supplierProfiles(products)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CatalogProduct, 0, len(products))
	for _, p := range products {
		item := dto.CatalogProduct{
			ID:         p.ID,
			SupplierID: p.SupplierID,
			Name:       p.Name,
			Category:   p.Category,
			Price:      p.Price,
			Unit:       p.Unit,
			Quantity:   p.Quantity,
			Freshness:  p.Freshness,
			ImageURL:   p.ImageURL,
			Supplier:   unknownSupplier,
		}
		if profile, ok := profileMap[p.SupplierID]; ok {
			item.Supplier = dto.SupplierSnapshot{
				FullName:           profile.FullName,
				Location:           profile.Location,
				ContactNumber:      profile.ContactNumber,
				PreferredLanguages: profile.PreferredLanguages,
			}
		}
		if matches(item, filter) {
			items = append(items, item)
		}
	}
	return &dto.CatalogResponse{Items: items}, nil
}

// supplierProfiles loads the profiles for the distinct supplier ids referenced
// by products, keyed by user id. Only supplier-role profiles are attached.
func (uc *UseCase) supplierProfiles(products []*entity.Product) (map[string]*entity.Profile, error) {
	seen := make(map[string]struct{}, len(products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.SupplierID]; ok {
			continue
		}
		seen[p.SupplierID] = struct{}{}
		ids = append(ids, p.SupplierID)
	}
	profiles, err := uc.profiles.GetByUserIDs(ids)
	if err != nil {
		return nil, err
	}
	m := make(map[string]*entity.Profile, len(profiles))
	for _, profile := range profiles {
		if profile.UserRole != entity.RoleSupplier {
			continue
		}
		m[profile.UserID] = profile
	}
	return m, nil
}

// matches applies the category, price-bucket and free-text filters (AND).
func matches(item dto.CatalogProduct, f dto.CatalogFilter) bool {
	if f.Category != "" &&
		!strings.Contains(strings.ToLower(item.Category), strings.ToLower(f.Category)) {
		return false
	}
	if f.Price != "" && !inPriceBucket(item.Price, f.Price) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.Supplier.FullName), q) {
			return false
		}
	}
	return true
}

func inPriceBucket(price decimal.Decimal, bucket string) bool {
	switch bucket {
	case dto.PriceBucketLow:
		return price.LessThan(priceLow)
	case dto.PriceBucketMedium:
		return price.GreaterThanOrEqual(priceLow) && price.LessThanOrEqual(priceHigh)
	case dto.PriceBucketHigh:
		return price.GreaterThan(priceHigh)
	}
	return true
}
