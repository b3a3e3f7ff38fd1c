package batch

import (
	"context"
	"encoding/json"
	"time"

	"github.com/omsops/reorder-batch/internal/kafka"
	"github.com/omsops/reorder-batch/internal/reorder"
)

// AuditEvent describes the terminal outcome of one job for downstream
// consumers.
type AuditEvent struct {
	JobFile        string    `json:"job_file"`
	OrderNumber    string    `json:"order_number"`
	RefundID       string    `json:"refund_id"`
	Outcome        string    `json:"outcome"`
	Gate           string    `json:"gate,omitempty"`
	NewOrderNumber string    `json:"new_order_number,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// AuditPublisher serialises outcome events onto the audit topic.
type AuditPublisher struct {
	producer kafka.Producer
	topic    string
}

func NewAuditPublisher(producer kafka.Producer, topic string) *AuditPublisher {
	return &AuditPublisher{producer: producer, topic: topic}
}

func (p *AuditPublisher) Publish(ctx context.Context, file string, job *reorder.Job, outcome reorder.Outcome) error {
	event := AuditEvent{
		JobFile:        file,
		OrderNumber:    job.OrderNumber,
		RefundID:       job.RefundID,
		Outcome:        string(outcome.Folder),
		Gate:           string(outcome.Gate),
		NewOrderNumber: outcome.NewOrderNumber,
		Timestamp:      time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.producer.SendMessage(ctx, p.topic, []byte(job.OrderNumber), value)
}
