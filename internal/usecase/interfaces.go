package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/domain"
)

// WalletRepository defines data access for wallets.
type WalletRepository interface {
	Create(ctx context.Context, tx Transaction, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id string) (*domain.Wallet, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, tx Transaction, userID string) (*domain.Wallet, error)
	// GetOrCreateForUpdate inserts the candidate wallet unless the user already
	// has one, then returns the user's wallet locked for update. The boolean
	// reports whether the candidate was inserted.
	GetOrCreateForUpdate(ctx context.Context, tx Transaction, candidate *domain.Wallet) (*domain.Wallet, bool, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.Wallet, error)
}

// EntryRepository defines data access for ledger entries. Entries are
// append-only; there is deliberately no update or delete operation.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.Entry) error
	ListByWallet(ctx context.Context, walletID string, filter domain.EntryFilter, limit, offset int) ([]*domain.Entry, error)
	// SumByWallet returns the sum of signed entry amounts for a wallet.
	SumByWallet(ctx context.Context, walletID string) (decimal.Decimal, error)
	// LastByWallet returns the newest entry, or nil when the wallet has none.
	LastByWallet(ctx context.Context, walletID string) (*domain.Entry, error)
	// PurchaseTotals returns total amount and count of purchase entries in the window.
	PurchaseTotals(ctx context.Context, from, to *time.Time) (decimal.Decimal, int64, error)
}

// DepositRequestRepository defines data access for deposit requests.
type DepositRequestRepository interface {
	Create(ctx context.Context, req *domain.DepositRequest) error
	GetByID(ctx context.Context, id string) (*domain.DepositRequest, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.DepositRequest, error)
	// UpdateStatus advances a pending request to a terminal status. It is a
	// compare-and-set: domain.ErrAlreadyProcessed is returned when the request
	// was not pending anymore.
	UpdateStatus(ctx context.Context, tx Transaction, id string, status domain.RequestStatus, approvedBy string, processedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.DepositRequest, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.DepositRequest, error)
}

// WithdrawRequestRepository defines data access for withdraw requests.
type WithdrawRequestRepository interface {
	Create(ctx context.Context, req *domain.WithdrawRequest) error
	GetByID(ctx context.Context, id string) (*domain.WithdrawRequest, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.WithdrawRequest, error)
	// UpdateStatus is the same compare-and-set as for deposits; rejectReason is
	// stored only for rejections.
	UpdateStatus(ctx context.Context, tx Transaction, id string, status domain.RequestStatus, approvedBy, rejectReason string, processedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.WithdrawRequest, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.WithdrawRequest, error)
}

// PaymentRequestRepository defines data access for payment requests.
type PaymentRequestRepository interface {
	Create(ctx context.Context, req *domain.PaymentRequest) error
	GetByID(ctx context.Context, id string) (*domain.PaymentRequest, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.PaymentRequest, error)
	// MarkPaid flips paid to true exactly once; domain.ErrAlreadyPaid is
	// returned when the request was already paid.
	MarkPaid(ctx context.Context, tx Transaction, id string, paidAt time.Time) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.PaymentRequest, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient failures such as deadlocks
// and serialization errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
