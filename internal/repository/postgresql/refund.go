package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/omsops/reorder-batch/internal/db"
	"github.com/omsops/reorder-batch/internal/repository"
)

type RefundRepo struct {
	db db.DB
}

func NewRefundRepo(db db.DB) *RefundRepo {
	return &RefundRepo{db: db}
}

type refundRow struct {
	ID                  string          `db:"id"`
	Source              string          `db:"source"`
	IsProcessed         string          `db:"is_processed"`
	RefundApprove       string          `db:"refund_approve"`
	RefundApproveDate   *time.Time      `db:"refund_approve_date"`
	IsException         string          `db:"is_exception"`
	IsRefundingShipping bool            `db:"is_refunding_shipping"`
	RefundingLines      json.RawMessage `db:"refunding_lines"`
}

func (r *RefundRepo) GetByID(ctx context.Context, id string) (*repository.Refund, error) {
	var row refundRow
	err := r.db.Get(ctx, &row, `
        SELECT id, source, is_processed, refund_approve, refund_approve_date,
               is_exception, is_refunding_shipping, refunding_lines
        FROM refunds
        WHERE id = $1
    `, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}

	refund := &repository.Refund{
		ID:                  row.ID,
		Source:              row.Source,
		IsProcessed:         row.IsProcessed,
		RefundApprove:       row.RefundApprove,
		RefundApproveDate:   row.RefundApproveDate,
		IsException:         row.IsException,
		IsRefundingShipping: row.IsRefundingShipping,
	}
	if len(row.RefundingLines) > 0 {
		if err := json.Unmarshal(row.RefundingLines, &refund.RefundingLines); err != nil {
			return nil, fmt.Errorf("decode refunding lines for refund %s: %w", id, err)
		}
	}
	return refund, nil
}

// CancelApproval flips the refund into its finance-cancelled state. The WHERE
// clause is the optimistic guard: once another process has already set
// RefundApprove to Cancelled the update matches no row and is rejected.
func (r *RefundRepo) CancelApproval(ctx context.Context, id string, approvedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE refunds
        SET refund_approve = $2,
            is_processed = $2,
            is_exception = $3,
            refund_approve_date = $4
        WHERE id = $1 AND refund_approve <> $2
    `, id, repository.StatusCancelled, repository.ExceptionCancelledByFinance, approvedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrConditionFailed
	}
	return nil
}
