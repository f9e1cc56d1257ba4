package orders

import (
	"context"

	"github.com/bhojansetu/bhojan-setu-api/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction, handing it repositories
// bound to that tx. It is what guarantees atomicity for order placement: the
// stock check, the order insert and the quantity decrement commit together or
// not at all.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
