package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fundline/pricing-service/internal/application/usecase"
	"github.com/fundline/pricing-service/internal/domain/service"
	"github.com/fundline/pricing-service/internal/infrastructure/config"
	"github.com/fundline/pricing-service/internal/infrastructure/messaging"
	pgRepo "github.com/fundline/pricing-service/internal/infrastructure/persistence/postgres"
	"github.com/fundline/pricing-service/internal/platform/auth"
	pkgkafka "github.com/fundline/pricing-service/internal/platform/kafka"
	"github.com/fundline/pricing-service/internal/platform/observability"
	pkgpostgres "github.com/fundline/pricing-service/internal/platform/postgres"
	grpcPresentation "github.com/fundline/pricing-service/internal/presentation/grpc"
	"github.com/fundline/pricing-service/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   getEnv("LOG_LEVEL", "info"),
		Format:  "json",
		Service: cfg.ServiceName,
	})

	logger.Info("starting pricing-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort shutdown

	pricingMetrics, err := observability.NewPricingMetrics(meterProvider, cfg.ServiceName)
	if err != nil {
		logger.Error("failed to register pricing metrics", "error", err)
		os.Exit(1)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pkgpostgres.NewPool(dbCtx, pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Infrastructure adapters.
	quoteRepo := pgRepo.NewQuoteRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
		TLS:     cfg.Kafka.TLS,
	})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic)

	// Pricing engine and use cases.
	policy := cfg.Policy()
	engine := service.NewPricingEngine(policy)
	generator := service.NewScenarioGenerator(engine, service.DefaultScenarioConfigs())

	priceOfferUC := usecase.NewPriceOfferUseCase(quoteRepo, publisher, engine)
	scenariosUC := usecase.NewGenerateScenariosUseCase(generator, engine)
	getQuoteUC := usecase.NewGetQuoteUseCase(quoteRepo)

	// JWT service (validation-only unless a private key is provided upstream).
	jwtSvc, err := auth.NewJWTService(auth.JWTConfig{
		Secret:       cfg.JWT.Secret,
		PublicKeyPEM: cfg.JWT.PublicKeyPEM,
		Issuer:       getEnv("JWT_ISSUER", "fundline-gateway"),
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewPricingHandler(priceOfferUC, scenariosUC, getQuoteUC, logger, pricingMetrics)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc)

	// HTTP server: health probes and metrics.
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, map[string]rest.ReadyCheck{
		"postgres": func(ctx context.Context) error {
			return pkgpostgres.HealthCheck(ctx, pool)
		},
	})
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

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

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("pricing-service stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
