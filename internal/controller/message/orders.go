package message

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"returnhub/internal/domain/orders"
	"returnhub/internal/messaging"
)

// OrderFeedController handles order feed messages from Kafka.
type OrderFeedController struct {
	service *orders.FeedService
}

// NewOrderFeedController creates a new order feed controller.
func NewOrderFeedController(s *orders.FeedService) *OrderFeedController {
	return &OrderFeedController{service: s}
}

// HandleMessage processes a single order feed message.
func (c *OrderFeedController) HandleMessage(ctx context.Context, key, value []byte) error {
	var env messaging.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		slog.ErrorContext(ctx, "failed to unmarshal envelope", "key", string(key), "error", err)
		return fmt.Errorf("unmarshal envelope: %w", err)
	}

	slog.DebugContext(ctx, "processing order feed message",
		"event_id", env.EventID, "key", env.Key, "type", env.Type)

	var update orders.FeedUpdate
	if err := json.Unmarshal(env.Payload, &update); err != nil {
		slog.ErrorContext(ctx, "failed to unmarshal feed payload", "event_id", env.EventID, "error", err)
		return fmt.Errorf("unmarshal feed update: %w", err)
	}

	if err := c.service.ProcessUpdate(ctx, update); err != nil {
		slog.ErrorContext(ctx, "failed to process order update",
			"event_id", env.EventID, "order_number", update.OrderNumber, "error", err)
		return err
	}

	slog.InfoContext(ctx, "order update processed",
		"event_id", env.EventID, "order_number", update.OrderNumber, "status", update.Status)

	return nil
}
