package kafka

import (
	"context"
	"errors"
	"log/slog"

	"returnhub/internal/messaging"

	"github.com/segmentio/kafka-go"
)

// Consumer implements messaging.Worker using Kafka.
type Consumer struct {
	reader *kafka.Reader
}

// NewConsumer creates a new Kafka consumer.
func NewConsumer(brokers []string, topic, groupID string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6, // 10MB
	})

	return &Consumer{reader: reader}
}

// Start begins consuming messages and passes them to the handler.
// Blocks until context is cancelled or an unrecoverable error occurs.
func (c *Consumer) Start(ctx context.Context, handler messaging.MessageHandler) error {
	slog.Info("consumer started",
		"topic", c.reader.Config().Topic, "group_id", c.reader.Config().GroupID)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				slog.Info("consumer stopped (context cancelled)")
				return nil
			}
			slog.Error("failed to fetch message", "error", err)
			return err
		}

		slog.Debug("message received",
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "key", string(msg.Key))

		if err := handler(ctx, msg.Key, msg.Value); err != nil {
			slog.Error("handler error, message not committed",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset,
				"key", string(msg.Key), "error", err)
			// Don't commit - message will be redelivered on restart
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			slog.Error("failed to commit message",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "error", err)
			return err
		}

		slog.Debug("message committed",
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
	}
}

// Close closes the Kafka reader.
func (c *Consumer) Close() error {
	slog.Info("closing consumer",
		"topic", c.reader.Config().Topic, "group_id", c.reader.Config().GroupID)
	return c.reader.Close()
}
