package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an ingredient listed by a supplier.
// Quantity never goes below zero; IsAvailable must equal Quantity > 0 after any
// mutation (kept by the order placement and product usecases, not the store).
type Product struct {
	ID          string
	SupplierID  string // profiles.user_id of the owning supplier
	Name        string
	Category    string
	Price       decimal.Decimal // per Unit
	Unit        string          // kg, litre, dozen, ...
	Quantity    int
	Freshness   int // 0..100
	IsAvailable bool
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
