package repository

import "github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"

// OrderRepository is the persistence port for Order (DIP). Orders are never deleted.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	UpdateStatus(id, status string) error
	// ListByVendor / ListBySupplier return orders newest first.
	ListByVendor(vendorID string) ([]*entity.Order, error)
	ListBySupplier(supplierID string) ([]*entity.Order, error)
	StatsBySupplier(supplierID string) (*entity.OrderStats, error)
}
