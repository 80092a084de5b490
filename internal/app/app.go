package app

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"returnhub/config"
	router "returnhub/internal/controller/http"
	"returnhub/internal/controller/http/handlers"
	"returnhub/internal/domain/analysis"
	"returnhub/internal/domain/orders"
	"returnhub/internal/domain/returns"
	"returnhub/internal/export"
	"returnhub/internal/external/kafka"
	"returnhub/internal/external/openai"
	"returnhub/internal/external/s3"
	activitylog_repo "returnhub/internal/repo/activitylog"
	orders_repo "returnhub/internal/repo/orders"
	reports_repo "returnhub/internal/repo/reports"
	returns_repo "returnhub/internal/repo/returns"
	"returnhub/pkg/health"
	"returnhub/pkg/logger"
	"returnhub/pkg/metrics"
	"returnhub/pkg/postgres"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

func Run(cfg config.Config) {
	logger.Setup(logger.Options{Level: cfg.LogLevel})

	ctx := context.Background()

	engine := NewGinEngine()

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}

	returnRepo := returns_repo.NewPgReturnRepo(pool)
	orderRepo := orders_repo.NewPgOrderRepo(pool)
	reportRepo := reports_repo.NewPgReportRepo(pool)

	activityLog, err := newActivityLog(ctx, cfg, pool)
	if err != nil {
		fatal(fmt.Errorf("app - Run - newActivityLog: %w", err))
	}

	transitions, err := returns.ParseTransitionPolicy(cfg.TransitionPolicy)
	if err != nil {
		fatal(fmt.Errorf("app - Run - returns.ParseTransitionPolicy: %w", err))
	}

	eventSink := newEventSink(cfg)

	returnService := returns.NewReturnService(returnRepo, orderRepo, activityLog, eventSink, transitions)
	feedService := orders.NewFeedService(orderRepo)

	llm := openai.New(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, &http.Client{
		Timeout: cfg.OpenAITimeout,
	})
	analysisService := analysis.NewAnalysisService(llm, reportRepo, returnRepo)

	imageStore, err := s3.NewImageStore(ctx, s3.Config{
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Endpoint:        cfg.S3Endpoint,
	})
	if err != nil {
		fatal(fmt.Errorf("app - Run - s3.NewImageStore: %w", err))
	}

	exporter := export.NewExcelExporter(returnRepo)

	portalHandler := handlers.NewPortalHandler(returnService)
	returnHandler := handlers.NewReturnHandler(returnService, exporter)
	imageHandler := handlers.NewImageHandler(returnService, imageStore)
	reportHandler := handlers.NewReportHandler(analysisService)

	r := router.NewRouter(portalHandler, returnHandler, imageHandler, reportHandler)
	r.SetUp(engine)

	setUpOps(engine, cfg, pool)

	err = ApplyMigrations(cfg.PgURL, MIGRATION_FS)
	if err != nil {
		fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	if len(cfg.KafkaBrokers) > 0 {
		StartWorkers(ctx, cfg, feedService)
	}

	if err = engine.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		fatal(fmt.Errorf("app - Run - engine.Run: %w", err))
	}
}

// setUpOps registers the health probes and the Prometheus endpoint.
func setUpOps(engine *gin.Engine, cfg config.Config, pool *postgres.Postgres) {
	checkers := []health.Checker{health.NewPostgresChecker(pool.Pool)}
	if len(cfg.KafkaBrokers) > 0 {
		checkers = append(checkers, health.NewKafkaChecker(cfg.KafkaBrokers))
	}
	registry := health.NewRegistry(checkers...)

	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(registry, health.DefaultTimeout))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
}

func newActivityLog(ctx context.Context, cfg config.Config, pool *postgres.Postgres) (returns.ActivityLog, error) {
	switch cfg.ActivityLogBackend {
	case "opensearch":
		return activitylog_repo.NewOpenSearchActivityLog(ctx, cfg.OpensearchUrls, cfg.OpensearchIndex)
	case "postgres":
		return activitylog_repo.NewPgActivityLog(pool), nil
	default:
		return nil, fmt.Errorf("unknown activity log backend %q", cfg.ActivityLogBackend)
	}
}

func newEventSink(cfg config.Config) returns.EventSink {
	if cfg.EventsMode != "kafka" || len(cfg.KafkaBrokers) == 0 {
		return returns.NopEventSink{}
	}
	publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaEventsTopic)
	return kafka.NewEventSink(publisher)
}

func fatal(err error) {
	slog.Error(err.Error())
	os.Exit(1)
}
