package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Wallet metrics
	WalletsCreated prometheus.Counter

	// Deposit metrics
	DepositRequestsCreated prometheus.Counter
	DepositsApproved       prometheus.Counter
	DepositsRejected       prometheus.Counter

	// Withdrawal metrics
	WithdrawRequestsCreated prometheus.Counter
	WithdrawalsApproved     prometheus.Counter
	WithdrawalsRejected     prometheus.Counter
	InsufficientFunds       prometheus.Counter

	// Payment metrics
	PaymentsPaid prometheus.Counter

	// Ledger metrics
	ApprovalDuration prometheus.Histogram
	MutationAmount   prometheus.Histogram

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Outbox metrics
	EventsPublished prometheus.Counter
	PublishErrors   prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Wallet metrics
		WalletsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_wallets_created_total",
			Help: "Total number of wallets created",
		}),

		// Deposit metrics
		DepositRequestsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_deposit_requests_created_total",
			Help: "Total number of deposit requests created",
		}),
		DepositsApproved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_deposits_approved_total",
			Help: "Total number of deposit requests approved",
		}),
		DepositsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_deposits_rejected_total",
			Help: "Total number of deposit requests rejected",
		}),

		// Withdrawal metrics
		WithdrawRequestsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_withdraw_requests_created_total",
			Help: "Total number of withdrawal requests created",
		}),
		WithdrawalsApproved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_withdrawals_approved_total",
			Help: "Total number of withdrawal requests approved",
		}),
		WithdrawalsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_withdrawals_rejected_total",
			Help: "Total number of withdrawal requests rejected",
		}),
		InsufficientFunds: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_insufficient_funds_total",
			Help: "Total number of debits refused for insufficient funds",
		}),

		// Payment metrics
		PaymentsPaid: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_payments_paid_total",
			Help: "Total number of payment requests paid",
		}),

		// Ledger metrics
		ApprovalDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "walletd_approval_duration_seconds",
			Help:    "Duration of request approval transactions",
			Buckets: prometheus.DefBuckets,
		}),
		MutationAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "walletd_mutation_amount",
			Help:    "Balance mutation amounts",
			Buckets: []float64{1000, 5000, 10000, 50000, 100000, 500000, 1000000, 10000000},
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletd_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "walletd_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "walletd_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletd_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Outbox metrics
		EventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_events_published_total",
			Help: "Total number of outbox events published",
		}),
		PublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_publish_errors_total",
			Help: "Total number of outbox publish failures",
		}),
	}
}
