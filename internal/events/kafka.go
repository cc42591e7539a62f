// Package events provides EventPublisher adapters for the auth domain events.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"conversia/backend/internal/auth/domain"
	"conversia/backend/internal/auth/service"
)

var _ service.EventPublisher = (*KafkaPublisher)(nil)

const writeTimeout = 5 * time.Second

// KafkaPublisher publishes domain events to a Kafka topic using
// segmentio/kafka-go. The event name is the message key, so consumers can
// route by event type while per-type ordering stays intact.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher writing to topic on the given
// brokers. Returns nil when brokers or topic are unset (publishing disabled).
// Call Close when shutting down.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

// Publish serializes the event as JSON and writes it to the topic. Uses a
// short timeout so slow Kafka does not block callers indefinitely.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	return p.PublishMany(ctx, []domain.Event{event})
}

// PublishMany writes all events in one batch.
func (p *KafkaPublisher) PublishMany(ctx context.Context, events []domain.Event) error {
	if p == nil || p.writer == nil || len(events) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(event.EventName()),
			Value: payload,
		})
	}
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return p.writer.WriteMessages(writeCtx, msgs...)
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
