package repository

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrObjectNotFound = errors.New("not found")

	// ErrConditionFailed is returned when a conditional update matched no
	// row, meaning another process already applied the terminal state.
	ErrConditionFailed = errors.New("update condition not met")
)

// Refund processing / approval states as stored by the refunds service.
const (
	StatusCancelled        = "Cancelled"
	StatusCompleted        = "Completed"
	StatusShippingRefunded = "Yes"

	StatusFinanceCancelled      = "Finance Cancelled"
	ExceptionCancelledByFinance = "Cancelled by Finance"
)

type Refund struct {
	ID                  string     `db:"id"`
	Source              string     `db:"source"`
	IsProcessed         string     `db:"is_processed"`
	RefundApprove       string     `db:"refund_approve"`
	RefundApproveDate   *time.Time `db:"refund_approve_date"`
	IsException         string     `db:"is_exception"`
	IsRefundingShipping bool       `db:"is_refunding_shipping"`
	RefundingLines      []RefundLine
}

// RefundLine is one refunding line of a refund. Quantity arrives either as a
// JSON number or a numeric string depending on the writer.
type RefundLine struct {
	ProductSku string      `json:"ProductSku"`
	Quantity   json.Number `json:"Quantity"`
}

// OrderLineStatus is an append-only audit entry recorded against an order
// line when its refund is cancelled by finance.
type OrderLineStatus struct {
	AttributeID string    `db:"attribute_id"`
	OrderID     string    `db:"order_id"`
	CreatedAt   time.Time `db:"created_at"`
	Qty         int       `db:"qty"`
	Status      string    `db:"status"`
	Source      string    `db:"source"`
	Type        string    `db:"type"`
}

// OrderLog is an append-only audit entry linked to the original order.
type OrderLog struct {
	ID        string    `db:"id"`
	OrderID   string    `db:"order_id"`
	CreatedAt time.Time `db:"created_at"`
	User      string    `db:"log_user"`
	Type      string    `db:"type"`
	Comment   string    `db:"comment"`
}
