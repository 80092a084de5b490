package app

import (
	"context"
	"log/slog"

	"returnhub/config"
	"returnhub/internal/controller/message"
	"returnhub/internal/domain/orders"
	"returnhub/internal/external/kafka"
	"returnhub/internal/messaging"
)

// StartWorkers starts the Kafka consumer for the order feed.
// It runs in a separate goroutine and stops when ctx is cancelled.
func StartWorkers(
	ctx context.Context,
	cfg config.Config,
	feedService *orders.FeedService,
) {
	controller := message.NewOrderFeedController(feedService)

	handler := controller.HandleMessage
	handler = messaging.WithRetry(handler, messaging.DefaultRetryConfig())
	if cfg.KafkaDLQTopic != "" {
		dlq := kafka.NewDLQPublisher(cfg.KafkaBrokers, cfg.KafkaDLQTopic)
		handler = messaging.WithDLQ(handler, dlq)
	}
	handler = messaging.WithMetrics(handler, cfg.KafkaOrdersTopic, cfg.KafkaOrdersConsumerGroup)

	consumer := kafka.NewConsumer(
		cfg.KafkaBrokers,
		cfg.KafkaOrdersTopic,
		cfg.KafkaOrdersConsumerGroup,
	)
	runner := messaging.NewRunner([]messaging.Worker{consumer}, handler)

	go func() {
		slog.Info("Starting order feed consumer",
			"topic", cfg.KafkaOrdersTopic,
			"group", cfg.KafkaOrdersConsumerGroup,
		)
		if err := runner.Start(ctx); err != nil {
			slog.Error("Order feed runner failed", "error", err)
		}
	}()
}
