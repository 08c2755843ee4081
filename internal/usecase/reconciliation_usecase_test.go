package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/domain"
	"github.com/veloria/walletd/internal/usecase"
	"github.com/veloria/walletd/internal/usecase/mocks"
)

func TestReconciliationUseCase_ReconcileWallet(t *testing.T) {
	ctx := context.Background()

	walletRepo := mocks.NewMockWalletRepository()
	walletRepo.Put(&domain.Wallet{ID: "w1", UserID: "user-1", Balance: decimal.NewFromInt(70000), Currency: "VND"})

	entryRepo := mocks.NewMockEntryRepository()
	seed := []*domain.Entry{
		{ID: "e1", WalletID: "w1", Kind: domain.EntryKindDeposit, Amount: decimal.NewFromInt(100000), BalanceAfter: decimal.NewFromInt(100000)},
		{ID: "e2", WalletID: "w1", Kind: domain.EntryKindPurchase, Amount: decimal.NewFromInt(30000), BalanceAfter: decimal.NewFromInt(70000)},
	}
	for _, e := range seed {
		if err := entryRepo.Create(ctx, nil, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	uc := usecase.NewReconciliationUseCase(walletRepo, entryRepo)

	result, err := uc.ReconcileWallet(ctx, "w1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.IsReconciled {
		t.Errorf("expected wallet to reconcile, difference %s", result.Difference)
	}
	if !result.CalculatedBalance.Equal(decimal.NewFromInt(70000)) {
		t.Errorf("expected calculated balance 70000, got %s", result.CalculatedBalance)
	}
}

func TestReconciliationUseCase_ReconcileWallet_Drift(t *testing.T) {
	ctx := context.Background()

	walletRepo := mocks.NewMockWalletRepository()
	walletRepo.Put(&domain.Wallet{ID: "w1", UserID: "user-1", Balance: decimal.NewFromInt(99999), Currency: "VND"})

	entryRepo := mocks.NewMockEntryRepository()
	if err := entryRepo.Create(ctx, nil, &domain.Entry{
		ID: "e1", WalletID: "w1", Kind: domain.EntryKindDeposit,
		Amount: decimal.NewFromInt(100000), BalanceAfter: decimal.NewFromInt(100000),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := usecase.NewReconciliationUseCase(walletRepo, entryRepo)

	result, err := uc.ReconcileWallet(ctx, "w1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.IsReconciled {
		t.Error("expected a discrepancy")
	}
	if !result.Difference.Equal(decimal.NewFromInt(-1)) {
		t.Errorf("expected difference -1, got %s", result.Difference)
	}
}

func TestReconciliationUseCase_ReconcileWallet_StaleBalanceAfter(t *testing.T) {
	ctx := context.Background()

	// Sum matches but the newest entry snapshot disagrees with the balance.
	walletRepo := mocks.NewMockWalletRepository()
	walletRepo.Put(&domain.Wallet{ID: "w1", UserID: "user-1", Balance: decimal.NewFromInt(100000), Currency: "VND"})

	entryRepo := mocks.NewMockEntryRepository()
	if err := entryRepo.Create(ctx, nil, &domain.Entry{
		ID: "e1", WalletID: "w1", Kind: domain.EntryKindDeposit,
		Amount: decimal.NewFromInt(100000), BalanceAfter: decimal.NewFromInt(90000),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := usecase.NewReconciliationUseCase(walletRepo, entryRepo)

	result, err := uc.ReconcileWallet(ctx, "w1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.IsReconciled {
		t.Error("expected stale balance snapshot to fail reconciliation")
	}
}

func TestReconciliationUseCase_ReconcileWallet_NotFound(t *testing.T) {
	uc := usecase.NewReconciliationUseCase(mocks.NewMockWalletRepository(), mocks.NewMockEntryRepository())

	_, err := uc.ReconcileWallet(context.Background(), "missing")
	if !errors.Is(err, domain.ErrWalletNotFound) {
		t.Errorf("expected ErrWalletNotFound, got %v", err)
	}
}

func TestReconciliationUseCase_ReconcileAll(t *testing.T) {
	ctx := context.Background()

	walletRepo := mocks.NewMockWalletRepository()
	walletRepo.Put(&domain.Wallet{ID: "w1", UserID: "user-1", Balance: decimal.NewFromInt(50000), Currency: "VND"})
	walletRepo.Put(&domain.Wallet{ID: "w2", UserID: "user-2", Balance: decimal.NewFromInt(12345), Currency: "VND"})

	entryRepo := mocks.NewMockEntryRepository()
	if err := entryRepo.Create(ctx, nil, &domain.Entry{
		ID: "e1", WalletID: "w1", Kind: domain.EntryKindDeposit,
		Amount: decimal.NewFromInt(50000), BalanceAfter: decimal.NewFromInt(50000),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// w2 has a balance but no entries at all.

	uc := usecase.NewReconciliationUseCase(walletRepo, entryRepo)

	report, err := uc.ReconcileAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalWallets != 2 {
		t.Errorf("expected 2 wallets checked, got %d", report.TotalWallets)
	}
	if report.ReconciledWallets != 1 {
		t.Errorf("expected 1 reconciled wallet, got %d", report.ReconciledWallets)
	}
	if len(report.Discrepancies) != 1 || report.Discrepancies[0].WalletID != "w2" {
		t.Errorf("expected w2 to be flagged, got %+v", report.Discrepancies)
	}
}
