package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. pending -> accepted | rejected; accepted -> completed.
const (
	OrderStatusPending   = "pending"
	OrderStatusAccepted  = "accepted"
	OrderStatusRejected  = "rejected"
	OrderStatusCompleted = "completed"
)

// Order links a vendor, a supplier and a product. TotalAmount is fixed at
// creation time (price * quantity); later price changes do not touch it.
type Order struct {
	ID                string
	VendorID          string
	SupplierID        string
	ProductID         string
	QuantityRequested int
	TotalAmount       decimal.Decimal
	Status            string
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusRejected, OrderStatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusAccepted || to == OrderStatusRejected
	case OrderStatusAccepted:
		return to == OrderStatusCompleted
	}
	return false
}

// OrderStats are the supplier dashboard aggregates.
type OrderStats struct {
	PendingCount   int
	CompletedCount int
	Revenue        decimal.Decimal // sum of completed TotalAmount
}
