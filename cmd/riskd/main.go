package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pkgkafka "github.com/Manaswita10/Finergize-sub000/pkg/kafka"
	"github.com/Manaswita10/Finergize-sub000/pkg/observability"
	pkgpostgres "github.com/Manaswita10/Finergize-sub000/pkg/postgres"

	"github.com/Manaswita10/Finergize-sub000/internal/application/usecase"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/port"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/service"
	"github.com/Manaswita10/Finergize-sub000/internal/infrastructure/adapter"
	"github.com/Manaswita10/Finergize-sub000/internal/infrastructure/cache"
	"github.com/Manaswita10/Finergize-sub000/internal/infrastructure/config"
	"github.com/Manaswita10/Finergize-sub000/internal/infrastructure/kafka"
	pgRepo "github.com/Manaswita10/Finergize-sub000/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/Manaswita10/Finergize-sub000/internal/presentation/grpc"
	"github.com/Manaswita10/Finergize-sub000/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	logger.Info("starting risk-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort meter shutdown

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pgCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	repo := pgRepo.NewScoringRequestRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := kafka.NewEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	var decisionCache port.DecisionCache
	if cfg.Redis.Enabled {
		redisCache := cache.NewRedisDecisionCache(cfg.Redis.Addr, logger)
		defer redisCache.Close()
		decisionCache = redisCache
		logger.Info("decision cache enabled", "addr", cfg.Redis.Addr)
	}

	var predictor port.PredictionClient
	if cfg.Prediction.URL == "" {
		logger.Warn("PREDICTION_URL not set, using stub prediction client")
		predictor = adapter.NewStubPredictionClient()
	} else {
		predictor = adapter.NewPredictionClient(adapter.PredictionConfig{
			URL:            cfg.Prediction.URL,
			APIKey:         os.Getenv("PREDICTION_API_KEY"),
			TimeoutSeconds: cfg.Prediction.TimeoutSeconds,
			MaxRetries:     cfg.Prediction.MaxRetries,
			RetryBackoffMs: cfg.Prediction.RetryBackoffMs,
		}, nil)
	}

	// Domain services.
	registry := service.NewRangeRegistry()
	validator := service.NewValidator(registry)
	standardizer := service.NewStandardizer(registry)

	// Wire use cases.
	cacheTTL := time.Duration(cfg.Redis.TTLSeconds) * time.Second
	scoreUC := usecase.NewScoreApplicationUseCase(
		repo, publisher, predictor, decisionCache, validator, standardizer, logger, cacheTTL,
	)
	getUC := usecase.NewGetScoringRequestUseCase(repo)
	listUC := usecase.NewListApplicantRequestsUseCase(repo)

	// gRPC server.
	handler := grpcPresentation.NewRiskHandler(scoreUC, getUC)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server: scoring API, health checks and metrics.
	meter := meterProvider.Meter(cfg.ServiceName)
	mux := http.NewServeMux()
	rest.NewScoringHandler(scoreUC, getUC, listUC, logger, meter).RegisterRoutes(mux)
	rest.NewHealthHandler(logger, func() error {
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer pingCancel()
		return pool.Ping(pingCtx)
	}).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("risk-service stopped")
}
