package entity

import "time"

// Feedback is a vendor's rating of a product. It is not tied to an order;
// any authenticated vendor may leave one. Read-only after creation.
type Feedback struct {
	ID         string
	ProductID  string
	VendorID   string
	SupplierID string
	Message    string // optional
	Rating     int    // 1..5
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
