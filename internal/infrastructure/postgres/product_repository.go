package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bhojansetu/bhojan-setu-api/internal/domain"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements ProductRepository over PostgreSQL (usable with pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the adapter. Pass a pool or a tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, supplier_id, name, category, price, unit, quantity, freshness, is_available, image_url, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.SupplierID, &p.Name, &p.Category, &p.Price, &p.Unit,
		&p.Quantity, &p.Freshness, &p.IsAvailable, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persists a new product.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SupplierID, product.Name, product.Category, product.Price,
		product.Unit, product.Quantity, product.Freshness, product.IsAvailable,
		product.ImageURL, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate fetches a product and locks its row (SELECT FOR UPDATE).
// Only meaningful inside a transaction; callers outside one get a plain read.
func (r *ProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// GetByIDs fetches all products whose id is in ids.
func (r *ProductRepo) GetByIDs(ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`
	return r.list(query, ids)
}

// Update updates a product's listing fields. Quantity and availability are
// touched here only by the owning supplier; order placement goes through
// DecrementQuantity instead.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category = $3, price = $4, unit = $5, quantity = $6,
			freshness = $7, is_available = $8, image_url = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.Price, product.Unit,
		product.Quantity, product.Freshness, product.IsAvailable, product.ImageURL, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DecrementQuantity subtracts qty and recomputes is_available in one conditional
// UPDATE. The quantity >= qty guard makes the decrement atomic: two concurrent
// placements can never drive quantity below zero, the loser simply matches no
// row and gets ErrInsufficientStock.
func (r *ProductRepo) DecrementQuantity(id string, qty int) (int, error) {
	query := `
		UPDATE products
		SET quantity = quantity - $2, is_available = (quantity - $2) > 0, updated_at = now()
		WHERE id = $1 AND quantity >= $2
		RETURNING quantity`
	var remaining int
	err := r.q.QueryRow(context.Background(), query, id, qty).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInsufficientStock
		}
		return 0, fmt.Errorf("decrement product quantity: %w", err)
	}
	return remaining, nil
}

// ListAvailable returns every product with is_available = true.
func (r *ProductRepo) ListAvailable() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_available = true ORDER BY created_at DESC`
	return r.list(query)
}

// ListBySupplier lists a supplier's products with pagination, newest first.
func (r *ProductRepo) ListBySupplier(supplierID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE supplier_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, supplierID, limit, offset)
}

// Delete removes a product by ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
