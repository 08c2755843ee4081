package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking wallet rows
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultPostingFee is the fee (VND minor units) charged when moderation
	// approves a post and no explicit amount is given
	DefaultPostingFee = "5000"

	// StatsCacheTTL is how long purchase statistics are cached
	StatsCacheTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
