package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/auth"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/orders"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/repository"
)

// Ensure TxRunner implements orders.TxRunner and auth.SignupTxRunner.
var _ orders.TxRunner = (*TxRunner)(nil)
var _ auth.SignupTxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner from the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run starts a transaction, executes fn with repos bound to the tx and commits
// or rolls back. This is what makes order placement atomic: the stock check,
// the order insert and the quantity decrement either all land or none do.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewOrderRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSignup starts a transaction with user and profile repos so sign-up creates
// both rows atomically.
func (r *TxRunner) RunSignup(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx), NewProfileRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
