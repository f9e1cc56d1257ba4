package repository

import "github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"

// FeedbackRepository is the persistence port for Feedback (DIP).
// Feedback is append-only; there is no update or delete.
type FeedbackRepository interface {
	Create(feedback *entity.Feedback) error
	ListByProduct(productID string) ([]*entity.Feedback, error)
	ListBySupplier(supplierID string) ([]*entity.Feedback, error)
}
