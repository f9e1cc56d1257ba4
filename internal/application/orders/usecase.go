package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/dto"
	"github.com/bhojansetu/bhojan-setu-api/internal/changefeed"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/repository"
	"github.com/bhojansetu/bhojan-setu-api/internal/metrics"
)

// UseCase covers the order lifecycle: transactional placement, the vendor and
// supplier history readers, supplier status transitions and dashboard stats.
type UseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
	products  repository.ProductRepository
	profiles  repository.ProfileRepository
	feed      changefeed.Publisher
}

// NewUseCase builds the usecase.
func NewUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	products repository.ProductRepository,
	profiles repository.ProfileRepository,
	feed changefeed.Publisher,
) *UseCase {
	return &UseCase{
		txRunner:  txRunner,
		orderRepo: orderRepo,
		products:  products,
		profiles:  profiles,
		feed:      feed,
	}
}

// Place creates an order and decrements the product's stock in one transaction.
//
// The product row is locked (SELECT FOR UPDATE) so price, supplier and quantity
// are read fresh, then the decrement runs as a conditional UPDATE guarded by
// quantity >= requested. Two concurrent placements whose combined quantity
// exceeds stock can therefore never both succeed, and a failed decrement rolls
// the order insert back with it.
func (uc *UseCase) Place(ctx context.Context, vendorID string, in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	order := &entity.Order{
		ID:                uuid.New().String(),
		VendorID:          vendorID,
		ProductID:         in.ProductID,
		QuantityRequested: in.Quantity,
		Status:            entity.OrderStatusPending,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
		product, err := productRepo.GetByIDForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if !product.IsAvailable {
			return domain.ErrProductUnavailable
		}
		if product.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}

		order.SupplierID = product.SupplierID
		order.TotalAmount = product.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		// Row is locked, so this cannot race; the guard still holds as the
		// single source of truth for the q >= requested invariant.
		if _, err := productRepo.DecrementQuantity(in.ProductID, in.Quantity); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		switch err {
		case domain.ErrInsufficientStock:
			metrics.OrdersRejected.WithLabelValues(metrics.ReasonInsufficientStock).Inc()
		case domain.ErrNotFound:
			metrics.OrdersRejected.WithLabelValues(metrics.ReasonNotFound).Inc()
		case domain.ErrProductUnavailable:
			metrics.OrdersRejected.WithLabelValues(metrics.ReasonUnavailable).Inc()
		}
		return nil, err
	}

	metrics.OrdersPlaced.Inc()
	uc.feed.Publish(changefeed.Event{
		ID:         uuid.New().String(),
		Table:      changefeed.TableOrders,
		Type:       changefeed.TypeInsert,
		RowID:      order.ID,
		VendorID:   order.VendorID,
		SupplierID: order.SupplierID,
		OccurredAt: time.Now(),
	})
	uc.feed.Publish(changefeed.Event{
		ID:         uuid.New().String(),
		Table:      changefeed.TableProducts,
		Type:       changefeed.TypeUpdate,
		RowID:      order.ProductID,
		SupplierID: order.SupplierID,
		OccurredAt: time.Now(),
	})

	return toOrderResponse(order), nil
}

// UpdateStatus applies a supplier-side transition. Only the owning supplier may
// change status, and only along pending->accepted|rejected, accepted->completed.
func (uc *UseCase) UpdateStatus(supplierID, orderID, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.SupplierID != supplierID {
		return nil, domain.ErrForbidden
	}
	if !entity.CanTransition(order.Status, status) {
		return nil, domain.ErrConflict
	}
	if err := uc.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = time.Now()

	uc.feed.Publish(changefeed.Event{
		ID:         uuid.New().String(),
		Table:      changefeed.TableOrders,
		Type:       changefeed.TypeUpdate,
		RowID:      order.ID,
		VendorID:   order.VendorID,
		SupplierID: order.SupplierID,
		OccurredAt: time.Now(),
	})
	return toOrderResponse(order), nil
}

// Stats returns the supplier dashboard aggregates.
func (uc *UseCase) Stats(supplierID string) (*dto.OrderStatsResponse, error) {
	stats, err := uc.orderRepo.StatsBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	return &dto.OrderStatsResponse{
		PendingCount:   stats.PendingCount,
		CompletedCount: stats.CompletedCount,
		Revenue:        stats.Revenue,
	}, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:                o.ID,
		VendorID:          o.VendorID,
		SupplierID:        o.SupplierID,
		ProductID:         o.ProductID,
		QuantityRequested: o.QuantityRequested,
		TotalAmount:       o.TotalAmount,
		Status:            o.Status,
		Notes:             o.Notes,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}
