package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/veloria/walletd/internal/adapter/http"
	"github.com/veloria/walletd/internal/adapter/http/handler"
	"github.com/veloria/walletd/internal/adapter/http/middleware"
	postgresRepo "github.com/veloria/walletd/internal/adapter/repository/postgres"
	redisRepo "github.com/veloria/walletd/internal/adapter/repository/redis"
	"github.com/veloria/walletd/internal/infrastructure/config"
	"github.com/veloria/walletd/internal/infrastructure/eventpublisher"
	"github.com/veloria/walletd/internal/infrastructure/logger"
	"github.com/veloria/walletd/internal/infrastructure/metrics"
	"github.com/veloria/walletd/internal/infrastructure/postgres"
	"github.com/veloria/walletd/internal/infrastructure/redis"
	"github.com/veloria/walletd/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	walletRepo := postgresRepo.NewWalletRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	depositRepo := postgresRepo.NewDepositRequestRepository(pool)
	withdrawRepo := postgresRepo.NewWithdrawRequestRepository(pool)
	paymentRepo := postgresRepo.NewPaymentRequestRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	walletUC := usecase.NewWalletUseCase(txManager, walletRepo, outboxRepo, idGen, m)
	ledgerUC := usecase.NewLedgerUseCase(walletRepo, entryRepo, cache)
	depositUC := usecase.NewDepositUseCase(txManager, walletRepo, entryRepo, depositRepo, outboxRepo, idGen, m).WithRetrier(retrier)
	withdrawUC := usecase.NewWithdrawUseCase(txManager, walletRepo, entryRepo, withdrawRepo, outboxRepo, idGen, m).WithRetrier(retrier)
	paymentUC := usecase.NewPaymentUseCase(txManager, walletRepo, entryRepo, paymentRepo, outboxRepo, idGen, m).WithRetrier(retrier)
	reconUC := usecase.NewReconciliationUseCase(walletRepo, entryRepo)

	// Outbox publisher
	publisherCtx, stopPublisher := context.WithCancel(ctx)
	defer stopPublisher()

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  eventpublisher.NewLogPublisher(nil),
		Metrics:    m,
		BatchSize:  cfg.PublishBatch,
		Interval:   cfg.PublishInterval,
	})
	go func() {
		if err := publisher.Start(publisherCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("event publisher stopped")
		}
	}()

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		WalletHandler:    handler.NewWalletHandler(walletUC, ledgerUC),
		DepositHandler:   handler.NewDepositHandler(depositUC),
		WithdrawHandler:  handler.NewWithdrawHandler(withdrawUC),
		PaymentHandler:   handler.NewPaymentHandler(paymentUC),
		LedgerHandler:    handler.NewLedgerHandler(ledgerUC, reconUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: idempotencyStore,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Logger:           middleware.NewLoggingMiddleware(appLogger),
		Metrics:          m,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopPublisher()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
