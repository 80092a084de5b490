package kafka

import (
	"context"
	"fmt"

	"returnhub/internal/domain/returns"
	"returnhub/internal/messaging"
)

// EventSink publishes return lifecycle events to the events topic.
type EventSink struct {
	publisher messaging.Publisher
}

var _ returns.EventSink = (*EventSink)(nil)

func NewEventSink(publisher messaging.Publisher) *EventSink {
	return &EventSink{publisher: publisher}
}

func (s *EventSink) Publish(ctx context.Context, event returns.ReturnEvent) error {
	env, err := messaging.NewEnvelope(event.RequestID, event.Type, event)
	if err != nil {
		return fmt.Errorf("build envelope: %w", err)
	}
	return s.publisher.Publish(ctx, env)
}
