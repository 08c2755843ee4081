package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/adapter/repository/postgres"
	"github.com/veloria/walletd/internal/domain"
	"github.com/veloria/walletd/internal/usecase"
	"github.com/veloria/walletd/tests/testutil"
)

func newReconciliationUseCase(testDB *testutil.TestDB) *usecase.ReconciliationUseCase {
	pool := testDB.Pool
	return usecase.NewReconciliationUseCase(
		postgres.NewWalletRepository(pool),
		postgres.NewEntryRepository(pool),
	)
}

func TestReconcileWalletAfterFullFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	depositUC, walletRepo, _ := newDepositUseCase(testDB)
	withdrawUC, _, _ := newWithdrawUseCase(testDB)
	reconUC := newReconciliationUseCase(testDB)

	// Deposit 100000, withdraw 30000 through the real workflows.
	dep, err := depositUC.CreateDepositRequest(ctx, usecase.CreateDepositRequestInput{
		UserID:     "user-1",
		Amount:     decimal.NewFromInt(100000),
		ProofImage: "proof",
	})
	if err != nil {
		t.Fatalf("failed to create deposit request: %v", err)
	}

	if _, err := depositUC.ApproveDeposit(ctx, dep.ID, "admin-1"); err != nil {
		t.Fatalf("failed to approve deposit: %v", err)
	}

	wd, err := withdrawUC.CreateWithdrawRequest(ctx, withdrawInput("user-1", 30000))
	if err != nil {
		t.Fatalf("failed to create withdraw request: %v", err)
	}

	if _, err := withdrawUC.ApproveWithdraw(ctx, wd.ID, "admin-1"); err != nil {
		t.Fatalf("failed to approve withdraw: %v", err)
	}

	wallet, err := walletRepo.GetByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("failed to get wallet: %v", err)
	}

	result, err := reconUC.ReconcileWallet(ctx, wallet.ID)
	if err != nil {
		t.Fatalf("failed to reconcile wallet: %v", err)
	}

	if !result.IsReconciled {
		t.Errorf("expected wallet to reconcile: recorded %s, calculated %s", result.RecordedBalance, result.CalculatedBalance)
	}

	if !result.RecordedBalance.Equal(decimal.NewFromInt(70000)) {
		t.Errorf("expected recorded balance 70000, got %s", result.RecordedBalance)
	}
}

func TestReconcileAllFlagsDrift(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	reconUC := newReconciliationUseCase(testDB)

	// Consistent wallet: balance matches its single entry.
	ok := testDB.CreateTestWalletWithBalance(ctx, "user-ok", decimal.NewFromInt(40000))
	testDB.SeedEntry(ctx, ok.ID, domain.EntryKindDeposit, decimal.NewFromInt(40000), decimal.NewFromInt(40000))

	// Drifted wallet: a balance with no ledger trail behind it.
	drifted := testDB.CreateTestWalletWithBalance(ctx, "user-drift", decimal.NewFromInt(99999))

	report, err := reconUC.ReconcileAll(ctx)
	if err != nil {
		t.Fatalf("failed to reconcile all: %v", err)
	}

	if report.TotalWallets != 2 {
		t.Errorf("expected 2 wallets checked, got %d", report.TotalWallets)
	}

	if report.ReconciledWallets != 1 {
		t.Errorf("expected 1 reconciled wallet, got %d", report.ReconciledWallets)
	}

	if len(report.Discrepancies) != 1 {
		t.Fatalf("expected 1 discrepancy, got %d", len(report.Discrepancies))
	}

	if report.Discrepancies[0].WalletID != drifted.ID {
		t.Errorf("expected discrepancy for %s, got %s", drifted.ID, report.Discrepancies[0].WalletID)
	}

	if !report.Discrepancies[0].Difference.Equal(decimal.NewFromInt(-99999)) {
		t.Errorf("expected difference -99999, got %s", report.Discrepancies[0].Difference)
	}
}
