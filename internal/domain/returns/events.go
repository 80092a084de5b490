package returns

import (
	"context"
	"time"
)

// Event types published on the returns event stream.
const (
	EventRequestCreated      = "return_request.created"
	EventStatusChanged       = "return_request.status_changed"
	EventInspectionSubmitted = "return_request.inspection_submitted"
	EventRefundProcessed     = "return_request.refund_processed"
)

// ReturnEvent is the payload published for lifecycle changes.
type ReturnEvent struct {
	Type          string    `json:"type"`
	RequestID     string    `json:"request_id"`
	RequestNumber string    `json:"request_number"`
	FromStatus    Status    `json:"from_status,omitempty"`
	ToStatus      Status    `json:"to_status"`
	ActorType     string    `json:"actor_type"`
	ActorID       string    `json:"actor_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventSink publishes lifecycle events. Publishing is best effort and
// happens after the owning transaction commits.
type EventSink interface {
	Publish(ctx context.Context, event ReturnEvent) error
}

// NopEventSink discards events. Used when event publishing is disabled.
type NopEventSink struct{}

func (NopEventSink) Publish(context.Context, ReturnEvent) error { return nil }
