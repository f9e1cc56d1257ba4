package feedback

import (
	"time"

	"github.com/google/uuid"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/dto"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/repository"
)

// UseCase creates and lists vendor feedback. Feedback is append-only and is not
// required to reference a completed purchase.
type UseCase struct {
	repo     repository.FeedbackRepository
	products repository.ProductRepository
}

// NewUseCase builds the usecase.
func NewUseCase(repo repository.FeedbackRepository, products repository.ProductRepository) *UseCase {
	return &UseCase{repo: repo, products: products}
}

// Create stores a vendor's rating of a product. The supplier id is resolved
// from the product, not trusted from the client.
func (uc *UseCase) Create(vendorID string, in dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	fb := &entity.Feedback{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		VendorID:   vendorID,
		SupplierID: product.SupplierID,
		Message:    in.Message,
		Rating:     in.Rating,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(fb); err != nil {
		return nil, err
	}
	return toFeedbackResponse(fb), nil
}

// ListByProduct lists feedback for a product, newest first.
func (uc *UseCase) ListByProduct(productID string) (*dto.FeedbackListResponse, error) {
	items, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toFeedbackList(items), nil
}

// ListBySupplier lists feedback across a supplier's products, newest first.
func (uc *UseCase) ListBySupplier(supplierID string) (*dto.FeedbackListResponse, error) {
	items, err := uc.repo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	return toFeedbackList(items), nil
}

func toFeedbackList(items []*entity.Feedback) *dto.FeedbackListResponse {
	out := &dto.FeedbackListResponse{Items: make([]dto.FeedbackResponse, 0, len(items))}
	for _, f := range items {
		out.Items = append(out.Items, *toFeedbackResponse(f))
	}
	return out
}

func toFeedbackResponse(f *entity.Feedback) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		ID:         f.ID,
		ProductID:  f.ProductID,
		VendorID:   f.VendorID,
		SupplierID: f.SupplierID,
		Rating:     f.Rating,
		Message:    f.Message,
		CreatedAt:  f.CreatedAt,
	}
}
