package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/dto"
	"github.com/bhojansetu/bhojan-setu-api/internal/changefeed"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/repository"
)

// UseCase is the supplier-side listing management: create, update, delete and
// list own products. Availability always tracks quantity here; vendors drain
// stock through order placement instead.
type UseCase struct {
	repo repository.ProductRepository
	feed changefeed.Publisher
}

// NewUseCase builds the usecase.
func NewUseCase(repo repository.ProductRepository, feed changefeed.Publisher) *UseCase {
	return &UseCase{repo: repo, feed: feed}
}

// Create lists a new product for the supplier.
func (uc *UseCase) Create(supplierID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.Freshness < 0 || in.Freshness > 100 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SupplierID:  supplierID,
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Unit:        in.Unit,
		Quantity:    in.Quantity,
		Freshness:   in.Freshness,
		IsAvailable: in.Quantity > 0,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.publish(changefeed.TypeInsert, product)
	return toProductResponse(product), nil
}

// GetByID fetches one product.
func (uc *UseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update mutates a listing. Only the owning supplier may update; quantity edits
// recompute availability.
func (uc *UseCase) Update(supplierID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if product.SupplierID != supplierID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		if !in.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
		product.IsAvailable = *in.Quantity > 0
	}
	if in.Freshness != nil {
		if *in.Freshness < 0 || *in.Freshness > 100 {
			return nil, domain.ErrInvalidInput
		}
		product.Freshness = *in.Freshness
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.publish(changefeed.TypeUpdate, product)
	return toProductResponse(product), nil
}

// Delete removes a listing owned by the supplier.
func (uc *UseCase) Delete(supplierID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.SupplierID != supplierID {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.publish(changefeed.TypeDelete, product)
	return nil
}

// List returns the supplier's own products, newest first, paginated.
func (uc *UseCase) List(supplierID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.ListBySupplier(supplierID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(products)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range products {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

func (uc *UseCase) publish(eventType string, product *entity.Product) {
	uc.feed.Publish(changefeed.Event{
		ID:         uuid.New().String(),
		Table:      changefeed.TableProducts,
		Type:       eventType,
		RowID:      product.ID,
		SupplierID: product.SupplierID,
		OccurredAt: time.Now(),
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		SupplierID:  p.SupplierID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Unit:        p.Unit,
		Quantity:    p.Quantity,
		Freshness:   p.Freshness,
		IsAvailable: p.IsAvailable,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
