package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PRADEEP5967/credit-system/internal/application/usecase"
	"github.com/PRADEEP5967/credit-system/internal/domain/service"
	"github.com/PRADEEP5967/credit-system/internal/infrastructure/config"
	"github.com/PRADEEP5967/credit-system/internal/infrastructure/messaging"
	pgRepo "github.com/PRADEEP5967/credit-system/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/PRADEEP5967/credit-system/internal/presentation/grpc"
	"github.com/PRADEEP5967/credit-system/internal/presentation/rest"
	pkgkafka "github.com/PRADEEP5967/credit-system/pkg/kafka"
	"github.com/PRADEEP5967/credit-system/pkg/observability"
	pkgpostgres "github.com/PRADEEP5967/credit-system/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	logger.Info("starting credit-system",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), cfg.MigrationsDir); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	customerRepo := pgRepo.NewCustomerRepo(pool)
	loanRepo := pgRepo.NewLoanRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, messaging.DefaultTopic, logger)

	// Wire the decision engine.
	scorer := service.NewCreditScorer(service.DefaultScoreWeights)
	policy := service.NewPolicyEngine(service.DefaultRateBands, service.DefaultFloorRate)
	evaluator := service.NewEligibilityEvaluator(scorer, policy)

	// Wire use cases.
	registerUC := usecase.NewRegisterCustomerUseCase(customerRepo, publisher, logger)
	eligibilityUC := usecase.NewCheckEligibilityUseCase(customerRepo, loanRepo, evaluator, logger)
	createLoanUC := usecase.NewCreateLoanUseCase(customerRepo, loanRepo, loanRepo, evaluator, publisher, logger)
	getLoanUC := usecase.NewGetLoanUseCase(loanRepo, customerRepo, logger)
	listLoansUC := usecase.NewListCustomerLoansUseCase(loanRepo, customerRepo, logger)

	// gRPC server.
	handler := grpcPresentation.NewCreditHandler(registerUC, eligibilityUC, createLoanUC, getLoanUC, listLoansUC, logger)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// Metrics.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, func() error {
		probeCtx, probeCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer probeCancel()
		return pkgpostgres.HealthCheck(probeCtx, pool)
	})
	healthHandler.RegisterRoutes(mux)
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

	logger.Info("credit-system stopped")
}
