package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/veloria/walletd/internal/adapter/http/handler"
	"github.com/veloria/walletd/internal/adapter/http/middleware"
	"github.com/veloria/walletd/internal/infrastructure/metrics"
	"github.com/veloria/walletd/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	WalletHandler    *handler.WalletHandler
	DepositHandler   *handler.DepositHandler
	WithdrawHandler  *handler.WithdrawHandler
	PaymentHandler   *handler.PaymentHandler
	LedgerHandler    *handler.LedgerHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	Logger           *middleware.LoggingMiddleware
	Metrics          *metrics.Metrics
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logger != nil {
		r.Use(cfg.Logger.Wrap)
	} else {
		r.Use(chimiddleware.Logger)
	}
	r.Use(middleware.Recovery)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	if cfg.Metrics != nil {
		metricsMiddleware := middleware.NewMetricsMiddleware(cfg.Metrics)
		r.Use(metricsMiddleware.Wrap)
	}

	// Ops endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/ledger/consistency", cfg.LedgerHandler.CheckConsistency)
	r.Get("/transaction/purchases/stats", cfg.LedgerHandler.PurchaseStats)

	r.Route("/wallet", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Post("/create/{userId}", cfg.WalletHandler.Create)
		r.Get("/{walletId}/balance", cfg.WalletHandler.GetBalance)
		r.Get("/{walletId}/transactions", cfg.WalletHandler.ListTransactions)
		r.Get("/transactions/{walletId}/filter", cfg.WalletHandler.FilterTransactions)
		r.Get("/transactions/user/{userId}", cfg.WalletHandler.ListTransactionsByUser)

		r.Post("/deposit/request", cfg.DepositHandler.CreateRequest)
		r.Post("/deposit/approve/{requestId}", cfg.DepositHandler.Approve)
		r.Put("/deposit-requests/reject/{id}", cfg.DepositHandler.Reject)
		r.Get("/deposit-requests", cfg.DepositHandler.List)
		r.Get("/deposit-requests/user/{userId}", cfg.DepositHandler.ListByUser)

		r.Post("/withdraw/request", cfg.WithdrawHandler.CreateRequest)
		r.Post("/withdraw/approve/{id}", cfg.WithdrawHandler.Approve)
		r.Put("/withdraw/reject/{id}", cfg.WithdrawHandler.Reject)
		r.Get("/withdraw-requests", cfg.WithdrawHandler.List)
		r.Get("/withdraw-requests/user/{userId}", cfg.WithdrawHandler.ListByUser)
	})

	r.Route("/payment", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Get("/detailRequest/{id}", cfg.PaymentHandler.Detail)
		r.Post("/pay", cfg.PaymentHandler.Pay)
	})

	return r
}
