package kafka

import (
	"context"
	"fmt"
	"log"

	kafkago "github.com/segmentio/kafka-go"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

// WriterProducer publishes messages through a shared kafka-go writer.
type WriterProducer struct {
	writer *kafkago.Writer
}

func NewWriterProducer(brokers []string) *WriterProducer {
	return &WriterProducer{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Balancer:     &kafkago.Hash{},
			RequiredAcks: kafkago.RequireOne,
		},
	}
}

func (p *WriterProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write message to %s: %w", topic, err)
	}
	return nil
}

func (p *WriterProducer) Close() error {
	return p.writer.Close()
}

// ConsoleProducer stands in when no brokers are configured.
type ConsoleProducer struct{}

func NewConsoleProducer() *ConsoleProducer {
	return &ConsoleProducer{}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	log.Printf("AUDIT (console): topic=%s key=%s value=%s", topic, key, value)
	return nil
}

func (p *ConsoleProducer) Close() error {
	return nil
}
