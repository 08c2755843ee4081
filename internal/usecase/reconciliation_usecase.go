package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/domain"
)

// ReconciliationUseCase verifies that every wallet balance equals the sum of
// its signed ledger entries.
type ReconciliationUseCase struct {
	walletRepo WalletRepository
	entryRepo  EntryRepository
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(walletRepo WalletRepository, entryRepo EntryRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		walletRepo: walletRepo,
		entryRepo:  entryRepo,
	}
}

// ReconciliationResult represents the result of a single wallet check.
type ReconciliationResult struct {
	WalletID          string
	RecordedBalance   decimal.Decimal
	CalculatedBalance decimal.Decimal
	Difference        decimal.Decimal
	IsReconciled      bool
	CheckedAt         time.Time
}

// ReconcileWallet checks one wallet against its ledger: the balance must
// equal the signed entry sum, and the newest entry's balance-after must equal
// the balance.
func (uc *ReconciliationUseCase) ReconcileWallet(ctx context.Context, walletID string) (*ReconciliationResult, error) {
	wallet, err := uc.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, err
	}

	sum, err := uc.entryRepo.SumByWallet(ctx, walletID)
	if err != nil {
		return nil, err
	}

	result := &ReconciliationResult{
		WalletID:          walletID,
		RecordedBalance:   wallet.Balance,
		CalculatedBalance: sum,
		Difference:        wallet.Balance.Sub(sum),
		IsReconciled:      wallet.Balance.Equal(sum),
		CheckedAt:         time.Now().UTC(),
	}

	if result.IsReconciled {
		last, err := uc.entryRepo.LastByWallet(ctx, walletID)
		if err != nil {
			return nil, err
		}
		if last != nil && !last.BalanceAfter.Equal(wallet.Balance) {
			result.IsReconciled = false
			result.Difference = wallet.Balance.Sub(last.BalanceAfter)
		}
	}

	return result, nil
}

// ReconciliationReport represents a system-wide reconciliation pass.
type ReconciliationReport struct {
	TotalWallets      int
	ReconciledWallets int
	Discrepancies     []*ReconciliationResult
	CheckedAt         time.Time
}

// ReconcileAll checks every wallet and reports any discrepancy.
func (uc *ReconciliationUseCase) ReconcileAll(ctx context.Context) (*ReconciliationReport, error) {
	limit, offset := domain.ValidatePagination(1000, 0)

	report := &ReconciliationReport{
		Discrepancies: make([]*ReconciliationResult, 0),
		CheckedAt:     time.Now().UTC(),
	}

	for {
		wallets, err := uc.walletRepo.List(ctx, limit, offset)
		if err != nil {
			return nil, err
		}

		if len(wallets) == 0 {
			break
		}

		for _, wallet := range wallets {
			result, err := uc.ReconcileWallet(ctx, wallet.ID)
			if err != nil {
				return nil, err
			}

			report.TotalWallets++
			if result.IsReconciled {
				report.ReconciledWallets++
			} else {
				report.Discrepancies = append(report.Discrepancies, result)
			}
		}

		offset += limit
	}

	return report, nil
}
