package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/domain"
	"github.com/veloria/walletd/internal/usecase"
	"github.com/veloria/walletd/internal/usecase/mocks"
)

type ledgerHandlerDeps struct {
	walletRepo *mocks.MockWalletRepository
	entryRepo  *mocks.MockEntryRepository
}

func newTestLedgerHandler() (*LedgerHandler, ledgerHandlerDeps) {
	deps := ledgerHandlerDeps{
		walletRepo: mocks.NewMockWalletRepository(),
		entryRepo:  mocks.NewMockEntryRepository(),
	}
	ledgerUC := usecase.NewLedgerUseCase(deps.walletRepo, deps.entryRepo, nil)
	reconUC := usecase.NewReconciliationUseCase(deps.walletRepo, deps.entryRepo)
	return NewLedgerHandler(ledgerUC, reconUC), deps
}

func seedLedgerWallet(t *testing.T, deps ledgerHandlerDeps, id, userID string, balance int64) {
	t.Helper()
	deps.walletRepo.Put(&domain.Wallet{ID: id, UserID: userID, Balance: decimal.NewFromInt(balance), Currency: "VND"})
	if balance != 0 {
		err := deps.entryRepo.Create(context.Background(), nil, &domain.Entry{
			ID:           "e-" + id,
			WalletID:     id,
			Kind:         domain.EntryKindDeposit,
			Amount:       decimal.NewFromInt(balance),
			BalanceAfter: decimal.NewFromInt(balance),
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("failed to seed entry: %v", err)
		}
	}
}

func TestLedgerHandler_CheckConsistency(t *testing.T) {
	h, deps := newTestLedgerHandler()
	seedLedgerWallet(t, deps, "w1", "user-1", 70000)

	rec := httptest.NewRecorder()
	h.CheckConsistency(rec, httptest.NewRequest(http.MethodGet, "/ledger/consistency", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp["consistent"] != true {
		t.Errorf("expected consistent=true, got %v", resp["consistent"])
	}

	if resp["total_wallets"] != float64(1) {
		t.Errorf("expected total_wallets=1, got %v", resp["total_wallets"])
	}
}

func TestLedgerHandler_CheckConsistency_Drift(t *testing.T) {
	h, deps := newTestLedgerHandler()

	// A balance with no ledger trail behind it.
	deps.walletRepo.Put(&domain.Wallet{ID: "w1", UserID: "user-1", Balance: decimal.NewFromInt(99999), Currency: "VND"})

	rec := httptest.NewRecorder()
	h.CheckConsistency(rec, httptest.NewRequest(http.MethodGet, "/ledger/consistency", nil))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp["consistent"] != false {
		t.Errorf("expected consistent=false, got %v", resp["consistent"])
	}
}

func TestLedgerHandler_PurchaseStats(t *testing.T) {
	h, deps := newTestLedgerHandler()
	seedLedgerWallet(t, deps, "w1", "user-1", 100000)

	for i, amount := range []int64{5000, 15000} {
		err := deps.entryRepo.Create(context.Background(), nil, &domain.Entry{
			ID:           "p-" + string(rune('a'+i)),
			WalletID:     "w1",
			Kind:         domain.EntryKindPurchase,
			Amount:       decimal.NewFromInt(amount),
			BalanceAfter: decimal.NewFromInt(100000),
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("failed to seed purchase entry: %v", err)
		}
	}

	rec := httptest.NewRecorder()
	h.PurchaseStats(rec, httptest.NewRequest(http.MethodGet, "/transaction/purchases/stats?period=all", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var stats usecase.PurchaseStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !stats.TotalRevenue.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("expected total revenue 20000, got %s", stats.TotalRevenue)
	}

	if stats.TotalTransactions != 2 {
		t.Errorf("expected 2 transactions, got %d", stats.TotalTransactions)
	}
}

func TestLedgerHandler_PurchaseStats_InvalidPeriod(t *testing.T) {
	h, _ := newTestLedgerHandler()

	rec := httptest.NewRecorder()
	h.PurchaseStats(rec, httptest.NewRequest(http.MethodGet, "/transaction/purchases/stats?period=decade", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
