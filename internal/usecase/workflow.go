package usecase

import (
	"context"
	"time"

	"github.com/veloria/walletd/internal/domain"
)

// transitionSteps parameterizes the request workflow for one request kind.
// Deposit approval, withdraw approval, both rejections and payment settlement
// all share the same shape: lock the request row, verify it is still open,
// apply the balance effect, advance the state exactly once.
type transitionSteps struct {
	// lock loads the request under a row lock and reports whether it is still open.
	lock func(ctx context.Context, tx Transaction) (open bool, err error)
	// closedErr is returned when the request is no longer open.
	closedErr error
	// effect applies the balance movement; nil for transitions with no balance effect.
	effect func(ctx context.Context, tx Transaction, now time.Time) error
	// advance performs the compare-and-set to the terminal state and records
	// whatever must be durable together with it (outbox events).
	advance func(ctx context.Context, tx Transaction, now time.Time) error
}

// runTransition drives one state transition as a single atomic unit of work.
// Any failure rolls everything back, so a request can never end up terminal
// without its balance effect or vice versa. A non-nil retrier re-runs the
// whole transaction on transient database errors; each attempt re-locks the
// request, so a retry observes whatever state the previous attempt left.
func runTransition(ctx context.Context, txManager TransactionManager, retrier Retrier, steps transitionSteps) error {
	attempt := func() error {
		txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
		defer cancel()

		tx, err := txManager.Begin(txCtx)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback(txCtx) }()

		open, err := steps.lock(txCtx, tx)
		if err != nil {
			return err
		}

		if !open {
			if steps.closedErr != nil {
				return steps.closedErr
			}
			return domain.ErrAlreadyProcessed
		}

		now := time.Now().UTC()

		if steps.effect != nil {
			if err := steps.effect(txCtx, tx, now); err != nil {
				return err
			}
		}

		if err := steps.advance(txCtx, tx, now); err != nil {
			return err
		}

		return tx.Commit(txCtx)
	}

	if retrier == nil {
		return attempt()
	}

	return retrier.Retry(ctx, attempt)
}
