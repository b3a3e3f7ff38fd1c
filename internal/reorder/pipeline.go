//go:generate mockgen -source ./pipeline.go -destination=./mocks/pipeline.go -package=mock_reorder
package reorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/omsops/reorder-batch/internal/metrics"
	"github.com/omsops/reorder-batch/internal/oms"
	"github.com/omsops/reorder-batch/internal/repository"
	"github.com/omsops/reorder-batch/internal/stock"
)

type OrderService interface {
	GetOrder(ctx context.Context, orderNumber string) (*oms.Order, error)
	CreateReorder(ctx context.Context, payload *oms.ReorderRequest) (*oms.ReorderResponse, error)
}

type StockService interface {
	GetStock(ctx context.Context, skus []string) (*stock.Response, error)
}

type RefundStore interface {
	GetRefund(ctx context.Context, id string) (*repository.Refund, error)
	CancelRefundApproval(ctx context.Context, id string, approvedAt time.Time) error
}

type OrderStore interface {
	SetShippingRefunded(ctx context.Context, orderNumber, status string) error
	AddLineStatus(ctx context.Context, entry *repository.OrderLineStatus) error
	AddLog(ctx context.Context, entry *repository.OrderLog) error
}

// Pipeline runs the ordered validation gates for one job and fires the
// compensating writes and order creation once every gate passes.
type Pipeline struct {
	orders    OrderService
	stocks    StockService
	refunds   RefundStore
	store     OrderStore
	allocator *stock.Allocator
	logger    *zap.Logger
}

func NewPipeline(
	orders OrderService,
	stocks StockService,
	refunds RefundStore,
	store OrderStore,
	allocator *stock.Allocator,
	logger *zap.Logger,
) *Pipeline {
	return &Pipeline{
		orders:    orders,
		stocks:    stocks,
		refunds:   refunds,
		store:     store,
		allocator: allocator,
		logger:    logger,
	}
}

// Process runs one job to its terminal outcome. A returned error is fatal:
// the job reached no outcome and its file must stay in the inbox.
func (p *Pipeline) Process(ctx context.Context, job *Job) (Outcome, error) {
	order, err := p.orders.GetOrder(ctx, job.OrderNumber)
	if err != nil {
		metrics.CollaboratorErrorsTotal.WithLabelValues("get_order").Inc()
		return Outcome{}, fmt.Errorf("fetch order %s: %w", job.OrderNumber, err)
	}
	if order == nil {
		p.logger.Warn("order does not exist", zap.String("order", job.OrderNumber))
		return failure(GateOrderNotFound), nil
	}

	refund, err := p.refunds.GetRefund(ctx, job.RefundID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		p.logger.Warn("refund not found",
			zap.String("order", job.OrderNumber), zap.String("refund", job.RefundID))
		return failure(GateRefundNotFound), nil
	}
	if err != nil {
		metrics.CollaboratorErrorsTotal.WithLabelValues("get_refund").Inc()
		return Outcome{}, fmt.Errorf("fetch refund %s: %w", job.RefundID, err)
	}

	switch refund.IsProcessed {
	case repository.StatusCancelled:
		p.logger.Warn("refund already cancelled",
			zap.String("order", job.OrderNumber), zap.String("refund", job.RefundID))
		return failure(GateRefundAlreadyCancelled), nil
	case repository.StatusCompleted:
		p.logger.Warn("refund already refunded",
			zap.String("order", job.OrderNumber), zap.String("refund", job.RefundID))
		return failure(GateRefundAlreadyCompleted), nil
	}

	if !order.HasSkus(job.Skus) {
		p.logger.Warn("one of the SKUs does not exist in order", zap.String("order", job.OrderNumber))
		return failure(GateSkuNotInOrder), nil
	}

	stocks, err := p.stocks.GetStock(ctx, job.Skus)
	if err != nil {
		metrics.CollaboratorErrorsTotal.WithLabelValues("get_stock").Inc()
		return Outcome{}, fmt.Errorf("fetch stock for %s: %w", job.OrderNumber, err)
	}

	available := stock.Available(p.allocator.Allocate(stocks))
	if len(available) == 0 {
		p.logger.Warn("no stock available", zap.String("order", job.OrderNumber))
		return failure(GateNoStockAvailable), nil
	}
	if len(available) != len(job.Skus) {
		p.logger.Warn("stock not available for all SKUs", zap.String("order", job.OrderNumber))
		return failure(GatePartialStockAvailable), nil
	}

	if err := p.cancelPendingFinanceApproval(ctx, order, refund); err != nil {
		return Outcome{}, err
	}

	skus := make([]string, len(available))
	for i, quote := range available {
		skus[i] = quote.Sku
	}

	payload, err := BuildReorderPayload(order, skus)
	if err != nil {
		return Outcome{}, fmt.Errorf("build reorder payload for %s: %w", job.OrderNumber, err)
	}

	created, err := p.orders.CreateReorder(ctx, payload)
	if err != nil {
		metrics.CollaboratorErrorsTotal.WithLabelValues("create_reorder").Inc()
		return Outcome{}, fmt.Errorf("create reorder for %s: %w", job.OrderNumber, err)
	}
	if created == nil || created.OrderNumber == "" {
		p.logger.Warn("failed to create re-order", zap.String("order", job.OrderNumber))
		return failure(GateCreationFailed), nil
	}

	logEntry := &repository.OrderLog{
		ID:        uuid.NewString(),
		OrderID:   job.OrderNumber,
		CreatedAt: time.Now().UTC(),
		User:      "System",
		Type:      "Shipment",
		Comment:   fmt.Sprintf("COLs from Order to Re-Order, Re-Order Order Number %s", created.OrderNumber),
	}
	if err := p.store.AddLog(ctx, logEntry); err != nil {
		return Outcome{}, err
	}

	metrics.ReordersCreatedTotal.Inc()
	p.logger.Info("re-order created",
		zap.String("order", job.OrderNumber),
		zap.String("new_order", created.OrderNumber),
		zap.Strings("skus", skus))

	return Outcome{
		Folder:         FolderDone,
		NewOrderNumber: created.OrderNumber,
		Skus:           skus,
	}, nil
}
