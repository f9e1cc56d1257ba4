package postgres

import (
	"context"
	"fmt"

	"github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/repository"
)

var _ repository.FeedbackRepository = (*FeedbackRepo)(nil)

// FeedbackRepo implements FeedbackRepository over PostgreSQL (usable with pool or tx).
type FeedbackRepo struct {
	q Querier
}

// NewFeedbackRepository builds the adapter. Pass a pool or a tx (Querier).
func NewFeedbackRepository(q Querier) *FeedbackRepo {
	return &FeedbackRepo{q: q}
}

const feedbackColumns = `id, product_id, vendor_id, supplier_id, message, rating, created_at, updated_at`

// Create persists feedback. Append-only.
func (r *FeedbackRepo) Create(feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedbacks (` + feedbackColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		feedback.ID, feedback.ProductID, feedback.VendorID, feedback.SupplierID,
		feedback.Message, feedback.Rating, feedback.CreatedAt, feedback.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// ListByProduct lists feedback for a product, newest first.
func (r *FeedbackRepo) ListByProduct(productID string) ([]*entity.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedbacks WHERE product_id = $1 ORDER BY created_at DESC`
	return r.list(query, productID)
}

// ListBySupplier lists feedback left on a supplier's products, newest first.
func (r *FeedbackRepo) ListBySupplier(supplierID string) ([]*entity.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedbacks WHERE supplier_id = $1 ORDER BY created_at DESC`
	return r.list(query, supplierID)
}

func (r *FeedbackRepo) list(query string, args ...any) ([]*entity.Feedback, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list feedbacks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Feedback
	for rows.Next() {
		var f entity.Feedback
		if err := rows.Scan(&f.ID, &f.ProductID, &f.VendorID, &f.SupplierID,
			&f.Message, &f.Rating, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
