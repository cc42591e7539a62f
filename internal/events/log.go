package events

import (
	"context"
	"encoding/json"
	"log"

	"conversia/backend/internal/auth/domain"
	"conversia/backend/internal/auth/service"
)

var _ service.EventPublisher = (*LogPublisher)(nil)

// LogPublisher writes events to the process log. Used in development and as
// a fallback when no Kafka brokers are configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(_ context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	log.Printf("event %s: %s", event.EventName(), payload)
	return nil
}

func (p *LogPublisher) PublishMany(ctx context.Context, events []domain.Event) error {
	for _, event := range events {
		if err := p.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
