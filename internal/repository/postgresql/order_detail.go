package postgresql

import (
	"context"

	"github.com/omsops/reorder-batch/internal/db"
	"github.com/omsops/reorder-batch/internal/repository"
)

type OrderDetailRepo struct {
	db db.DB
}

func NewOrderDetailRepo(db db.DB) *OrderDetailRepo {
	return &OrderDetailRepo{db: db}
}

func (r *OrderDetailRepo) SetShippingRefunded(ctx context.Context, orderNumber, status string) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE order_details
        SET shipping_refunded = $2
        WHERE order_number = $1
    `, orderNumber, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *OrderDetailRepo) AddLineStatus(ctx context.Context, entry *repository.OrderLineStatus) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO order_line_statuses (
            attribute_id, order_id, created_at, qty, status, source, type
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, entry.AttributeID, entry.OrderID, entry.CreatedAt, entry.Qty, entry.Status, entry.Source, entry.Type)
	return err
}
