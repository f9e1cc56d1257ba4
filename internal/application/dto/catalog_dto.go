package dto

import "github.com/shopspring/decimal"

// Price buckets for catalog filtering.
const (
	PriceBucketLow    = "low"    // < 50
	PriceBucketMedium = "medium" // 50..150
	PriceBucketHigh   = "high"   // > 150
)

// CatalogFilter composes with logical AND. Empty fields match everything.
type CatalogFilter struct {
	Category string `query:"category"`
	Price    string `query:"price" validate:"omitempty,oneof=low medium high"`
	Search   string `query:"q"`
}

// SupplierSnapshot is the denormalized supplier view attached to each catalog
// product. Placeholder values stand in when the profile is missing.
type SupplierSnapshot struct {
	FullName           string   `json:"full_name"`
	Location           string   `json:"location"`
	ContactNumber      string   `json:"contact_number"`
	PreferredLanguages []string `json:"preferred_languages"`
}

// CatalogProduct is an available product enriched with its supplier snapshot.
type CatalogProduct struct {
	ID         string           `json:"id"`
	SupplierID string           `json:"supplier_id"`
	Name       string           `json:"name"`
	Category   string           `json:"category"`
	Price      decimal.Decimal  `json:"price"`
	Unit       string           `json:"unit"`
	Quantity   int              `json:"quantity"`
	Freshness  int              `json:"freshness"`
	ImageURL   string           `json:"image_url,omitempty"`
	Supplier   SupplierSnapshot `json:"supplier"`
}

// CatalogResponse the filtered catalog.
type CatalogResponse struct {
	Items []CatalogProduct `json:"items"`
}
