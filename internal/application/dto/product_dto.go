package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest supplier listing input. Availability is derived from
// quantity, never supplied by the client.
type CreateProductRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	Category  string          `json:"category" validate:"required,min=1,max=100"`
	Price     decimal.Decimal `json:"price"`
	Unit      string          `json:"unit" validate:"required,min=1,max=50"`
	Quantity  int             `json:"quantity" validate:"min=0"`
	Freshness int             `json:"freshness" validate:"min=0,max=100"`
	ImageURL  string          `json:"image_url"`
}

// UpdateProductRequest partial update of a listing.
type UpdateProductRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category  *string          `json:"category" validate:"omitempty,min=1,max=100"`
	Price     *decimal.Decimal `json:"price"`
	Unit      *string          `json:"unit" validate:"omitempty,min=1,max=50"`
	Quantity  *int             `json:"quantity" validate:"omitempty,min=0"`
	Freshness *int             `json:"freshness" validate:"omitempty,min=0,max=100"`
	ImageURL  *string          `json:"image_url"`
}

// ProductResponse a supplier's own listing.
type ProductResponse struct {
	ID          string          `json:"id"`
	SupplierID  string          `json:"supplier_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Quantity    int             `json:"quantity"`
	Freshness   int             `json:"freshness"`
	IsAvailable bool            `json:"is_available"`
	ImageURL    string          `json:"image_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse paginated listings.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// UploadResponse public URL of a stored product image.
type UploadResponse struct {
	URL string `json:"url"`
}
