package changefeed

import "time"

// Watched tables.
const (
	TableOrders   = "orders"
	TableProducts = "products"
	TableProfiles = "profiles"
)

// Event types.
const (
	TypeInsert = "INSERT"
	TypeUpdate = "UPDATE"
	TypeDelete = "DELETE"
)

// Event is a row-level change notification. It carries identifiers only, never
// full rows: consumers are expected to re-fetch through the readers, which is
// idempotent regardless of how many notifications arrive.
type Event struct {
	ID         string    `json:"event_id"`
	Table      string    `json:"table"`
	Type       string    `json:"type"`
	RowID      string    `json:"row_id"`
	VendorID   string    `json:"vendor_id,omitempty"`   // orders only
	SupplierID string    `json:"supplier_id,omitempty"` // orders and products
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher is the outbound port for emitting change events. Implementations
// must not block the caller; delivery is best-effort.
type Publisher interface {
	Publish(event Event)
}

// NopPublisher discards events. Used when the feed transport is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(Event) {}
