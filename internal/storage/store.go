package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/omsops/reorder-batch/internal/repository"
)

// Store is the facade over the order/refund key-value records. The pipeline
// talks to it through narrow interfaces; the repositories behind it own the
// SQL.
type Store struct {
	refundRepo RefundRepository
	orderRepo  OrderDetailRepository
	logRepo    OrderLogRepository
}

type RefundRepository interface {
	GetByID(ctx context.Context, id string) (*repository.Refund, error)
	CancelApproval(ctx context.Context, id string, approvedAt time.Time) error
}

type OrderDetailRepository interface {
	SetShippingRefunded(ctx context.Context, orderNumber, status string) error
	AddLineStatus(ctx context.Context, entry *repository.OrderLineStatus) error
}

type OrderLogRepository interface {
	Create(ctx context.Context, entry *repository.OrderLog) error
}

func NewStore(
	refundRepo RefundRepository,
	orderRepo OrderDetailRepository,
	logRepo OrderLogRepository,
) *Store {
	return &Store{
		refundRepo: refundRepo,
		orderRepo:  orderRepo,
		logRepo:    logRepo,
	}
}

func (s *Store) GetRefund(ctx context.Context, id string) (*repository.Refund, error) {
	refund, err := s.refundRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get refund %s: %w", id, err)
	}
	return refund, nil
}

func (s *Store) CancelRefundApproval(ctx context.Context, id string, approvedAt time.Time) error {
	if err := s.refundRepo.CancelApproval(ctx, id, approvedAt); err != nil {
		if errors.Is(err, repository.ErrConditionFailed) {
			return err
		}
		return fmt.Errorf("failed to cancel refund approval %s: %w", id, err)
	}
	return nil
}

func (s *Store) SetShippingRefunded(ctx context.Context, orderNumber, status string) error {
	if err := s.orderRepo.SetShippingRefunded(ctx, orderNumber, status); err != nil {
		return fmt.Errorf("failed to update shipping refunded flag for %s: %w", orderNumber, err)
	}
	return nil
}

func (s *Store) AddLineStatus(ctx context.Context, entry *repository.OrderLineStatus) error {
	if err := s.orderRepo.AddLineStatus(ctx, entry); err != nil {
		return fmt.Errorf("failed to add line status for %s: %w", entry.OrderID, err)
	}
	return nil
}

func (s *Store) AddLog(ctx context.Context, entry *repository.OrderLog) error {
	if err := s.logRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to add order log for %s: %w", entry.OrderID, err)
	}
	return nil
}
