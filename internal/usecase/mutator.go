package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/domain"
)

// balanceMutator is the only code path that changes a wallet balance. Every
// movement validates preconditions, updates the balance, and appends the
// matching ledger entry in the caller's transaction, so balance and history
// can never diverge. The caller must hold the wallet row lock.
type balanceMutator struct {
	walletRepo WalletRepository
	entryRepo  EntryRepository
	idGen      IDGenerator
}

func newBalanceMutator(walletRepo WalletRepository, entryRepo EntryRepository, idGen IDGenerator) *balanceMutator {
	return &balanceMutator{
		walletRepo: walletRepo,
		entryRepo:  entryRepo,
		idGen:      idGen,
	}
}

// mutate applies one signed movement to the locked wallet. Debit kinds fail
// with domain.ErrInsufficientFunds when the balance does not cover the amount.
// On success the wallet struct reflects the new balance.
func (m *balanceMutator) mutate(
	ctx context.Context,
	tx Transaction,
	wallet *domain.Wallet,
	kind domain.EntryKind,
	amount decimal.Decimal,
	description string,
	now time.Time,
) (*domain.Entry, error) {
	if !kind.IsValid() {
		return nil, domain.ErrInvalidEntryKind
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	var newBalance decimal.Decimal
	if kind.IsCredit() {
		newBalance = wallet.ApplyCredit(amount)
	} else {
		if err := wallet.ValidateDebit(amount); err != nil {
			return nil, err
		}

		newBalance = wallet.ApplyDebit(amount)
	}

	entry := &domain.Entry{
		ID:           m.idGen.Generate(),
		WalletID:     wallet.ID,
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: newBalance,
		Description:  description,
		CreatedAt:    now,
	}

	if err := m.entryRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := m.walletRepo.UpdateBalance(ctx, tx, wallet.ID, newBalance, now); err != nil {
		return nil, err
	}

	wallet.Balance = newBalance
	wallet.UpdatedAt = now

	return entry, nil
}
