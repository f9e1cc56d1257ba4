package repository

import "github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"

// ProductRepository is the persistence port for Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate locks the product row (SELECT FOR UPDATE). Only
	// meaningful when the repository is bound to a transaction.
	GetByIDForUpdate(id string) (*entity.Product, error)
	GetByIDs(ids []string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// DecrementQuantity subtracts qty and recomputes is_available in a single
	// conditional UPDATE guarded by quantity >= qty. Returns the remaining
	// quantity, or domain.ErrInsufficientStock without mutating anything.
	DecrementQuantity(id string, qty int) (remaining int, err error)
	ListAvailable() ([]*entity.Product, error)
	ListBySupplier(supplierID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
