package postgresql

import (
	"context"

	"github.com/omsops/reorder-batch/internal/db"
	"github.com/omsops/reorder-batch/internal/repository"
)

type OrderLogRepo struct {
	db db.DB
}

func NewOrderLogRepo(db db.DB) *OrderLogRepo {
	return &OrderLogRepo{db: db}
}

func (r *OrderLogRepo) Create(ctx context.Context, entry *repository.OrderLog) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO order_logs (
            id, order_id, created_at, log_user, type, comment
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `, entry.ID, entry.OrderID, entry.CreatedAt, entry.User, entry.Type, entry.Comment)
	return err
}
