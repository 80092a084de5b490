package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL" required:"true"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	// Status transition mode: "strict" (forward-only chain) or "permissive"
	TransitionPolicy string `env:"TRANSITION_POLICY" envDefault:"strict"`

	// Lifecycle event publishing mode: "off" (no-op sink) or "kafka"
	EventsMode string `env:"EVENTS_MODE" envDefault:"off"`

	// Kafka configuration
	KafkaBrokers             []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaOrdersTopic         string   `env:"KAFKA_ORDERS_TOPIC" envDefault:"orders.feed"`
	KafkaEventsTopic         string   `env:"KAFKA_EVENTS_TOPIC" envDefault:"returns.events"`
	KafkaDLQTopic            string   `env:"KAFKA_DLQ_TOPIC" envDefault:"orders.feed.dlq"`
	KafkaOrdersConsumerGroup string   `env:"KAFKA_ORDERS_CONSUMER_GROUP" envDefault:"returnhub-orders"`

	// Activity log backend: "postgres" or "opensearch"
	ActivityLogBackend string   `env:"ACTIVITY_LOG_BACKEND" envDefault:"postgres"`
	OpensearchUrls     []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndex    string   `env:"OPENSEARCH_INDEX_ACTIVITY" envDefault:"returnhub-activity"`

	// OpenAI-compatible completion API for monthly analysis reports
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIModel   string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAITimeout time.Duration `env:"OPENAI_TIMEOUT" envDefault:"120s"`

	// S3-compatible object storage for return evidence images
	S3Region          string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Bucket          string `env:"S3_BUCKET"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
	S3Endpoint        string `env:"S3_ENDPOINT"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
