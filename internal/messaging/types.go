package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Envelope frames every message crossing a broker boundary: the order feed
// coming in, return lifecycle events and dead letters going out. Type names
// the payload schema (for example "order.updated" or
// "return_request.status_changed").
type Envelope struct {
	EventID   string          `json:"event_id"`
	Key       string          `json:"key"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewEnvelope wraps a payload, stamping a fresh event id and the current
// time. Key becomes the broker partition key.
func NewEnvelope(key, msgType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		EventID:   uuid.New().String(),
		Key:       key,
		Type:      msgType,
		Payload:   data,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Publisher writes envelopes to one broker topic.
type Publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
	Close() error
}

// MessageHandler processes one raw message. A nil return commits the offset.
type MessageHandler func(ctx context.Context, key, value []byte) error

// Worker pulls messages from a broker and feeds them to a handler until the
// context is cancelled.
type Worker interface {
	Start(ctx context.Context, handler MessageHandler) error
	Close() error
}
