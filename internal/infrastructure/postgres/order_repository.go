package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/bhojansetu/bhojan-setu-api/internal/domain"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements OrderRepository over PostgreSQL (usable with pool or tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the adapter. Pass a pool or a tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, vendor_id, supplier_id, product_id, quantity_requested, total_amount, status, notes, created_at, updated_at`

// Create persists a new order.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.VendorID, order.SupplierID, order.ProductID,
		order.QuantityRequested, order.TotalAmount, order.Status, order.Notes,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID fetches an order by ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.VendorID, &o.SupplierID, &o.ProductID, &o.QuantityRequested,
		&o.TotalAmount, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// UpdateStatus updates only the status field.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByVendor lists a vendor's orders, newest first.
func (r *OrderRepo) ListByVendor(vendorID string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE vendor_id = $1 ORDER BY created_at DESC`
	return r.list(query, vendorID)
}

// ListBySupplier lists a supplier's incoming orders, newest first.
func (r *OrderRepo) ListBySupplier(supplierID string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE supplier_id = $1 ORDER BY created_at DESC`
	return r.list(query, supplierID)
}

// StatsBySupplier computes the supplier dashboard aggregates in one query.
func (r *OrderRepo) StatsBySupplier(supplierID string) (*entity.OrderStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'completed'), 0)
		FROM orders WHERE supplier_id = $1`
	stats := &entity.OrderStats{Revenue: decimal.Zero}
	err := r.q.QueryRow(context.Background(), query, supplierID).Scan(
		&stats.PendingCount, &stats.CompletedCount, &stats.Revenue,
	)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	return stats, nil
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.VendorID, &o.SupplierID, &o.ProductID, &o.QuantityRequested,
			&o.TotalAmount, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
