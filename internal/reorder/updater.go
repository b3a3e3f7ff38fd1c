package reorder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/omsops/reorder-batch/internal/oms"
	"github.com/omsops/reorder-batch/internal/repository"
)

// cancelPendingFinanceApproval performs the compensating writes once a job
// has passed every gate: the refund's pending finance approval is cancelled,
// the order's shipping-refunded flag is adjusted, and one audit status entry
// is appended per refunded line. Any failure here is fatal to the job.
func (p *Pipeline) cancelPendingFinanceApproval(ctx context.Context, order *oms.Order, refund *repository.Refund) error {
	if err := p.refunds.CancelRefundApproval(ctx, refund.ID, time.Now().UTC()); err != nil {
		return fmt.Errorf("cancel pending finance approval for refund %s: %w", refund.ID, err)
	}

	if refund.IsRefundingShipping && order.ShippingRefunded != repository.StatusShippingRefunded {
		if err := p.store.SetShippingRefunded(ctx, order.OrderNumber, repository.StatusFinanceCancelled); err != nil {
			return err
		}
	}

	return p.updateOrderLineStatuses(ctx, order, refund)
}

func (p *Pipeline) updateOrderLineStatuses(ctx context.Context, order *oms.Order, refund *repository.Refund) error {
	now := time.Now().UTC()

	for _, line := range refund.RefundingLines {
		sku := strings.TrimSpace(line.ProductSku)
		if !order.HasSku(sku) {
			continue
		}

		qty, err := line.Quantity.Int64()
		if err != nil {
			return fmt.Errorf("refund %s: bad quantity for sku %s: %w", refund.ID, sku, err)
		}

		// The timestamp plus a short random suffix keeps the key unique
		// under concurrent writes against the same order.
		suffix := uuid.NewString()[:5]
		entry := &repository.OrderLineStatus{
			AttributeID: fmt.Sprintf("OrderLine#Status#%s#%d#%s", sku, now.UnixMilli(), suffix),
			OrderID:     order.OrderNumber,
			CreatedAt:   now,
			Qty:         int(qty),
			Status:      repository.StatusFinanceCancelled,
			Source:      refund.Source,
			Type:        repository.StatusCancelled,
		}
		if err := p.store.AddLineStatus(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
