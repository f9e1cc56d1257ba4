package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest vendor order input.
type PlaceOrderRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Notes     string `json:"notes" validate:"max=500"`
}

// OrderResponse the raw order row.
type OrderResponse struct {
	ID                string          `json:"id"`
	VendorID          string          `json:"vendor_id"`
	SupplierID        string          `json:"supplier_id"`
	ProductID         string          `json:"product_id"`
	QuantityRequested int             `json:"quantity_requested"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Status            string          `json:"status"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// VendorOrder is a vendor's order enriched with product and supplier names.
type VendorOrder struct {
	ID                string          `json:"id"`
	ProductName       string          `json:"product_name"`
	Category          string          `json:"category"`
	QuantityRequested int             `json:"quantity_requested"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Status            string          `json:"status"`
	SupplierName      string          `json:"supplier_name"`
	CreatedAt         time.Time       `json:"created_at"`
}

// IncomingOrder is the symmetric supplier view with the vendor's name.
type IncomingOrder struct {
	ID                string          `json:"id"`
	ProductName       string          `json:"product_name"`
	Category          string          `json:"category"`
	QuantityRequested int             `json:"quantity_requested"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Status            string          `json:"status"`
	Notes             string          `json:"notes,omitempty"`
	VendorName        string          `json:"vendor_name"`
	CreatedAt         time.Time       `json:"created_at"`
}

// VendorOrderListResponse / IncomingOrderListResponse history listings.
type VendorOrderListResponse struct {
	Items []VendorOrder `json:"items"`
}

type IncomingOrderListResponse struct {
	Items []IncomingOrder `json:"items"`
}

// UpdateOrderStatusRequest supplier-side status transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected completed"`
}

// OrderStatsResponse supplier dashboard aggregates.
type OrderStatsResponse struct {
	PendingCount   int             `json:"pending_count"`
	CompletedCount int             `json:"completed_count"`
	Revenue        decimal.Decimal `json:"revenue"`
}
