package integration

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/adapter/repository/postgres"
	"github.com/veloria/walletd/internal/domain"
	"github.com/veloria/walletd/internal/usecase"
	"github.com/veloria/walletd/tests/testutil"
)

func newPaymentUseCase(testDB *testutil.TestDB) (*usecase.PaymentUseCase, *postgres.WalletRepository) {
	pool := testDB.Pool
	walletRepo := postgres.NewWalletRepository(pool)

	uc := usecase.NewPaymentUseCase(
		postgres.NewTxManager(pool),
		walletRepo,
		postgres.NewEntryRepository(pool),
		postgres.NewPaymentRequestRepository(pool),
		postgres.NewNullOutboxRepository(),
		postgres.NewULIDGenerator(),
		nil,
	).WithRetrier(postgres.NewRetrier())

	return uc, walletRepo
}

func TestPaymentSettlement(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	paymentUC, walletRepo := newPaymentUseCase(testDB)

	wallet := testDB.CreateTestWalletWithBalance(ctx, "user-1", decimal.NewFromInt(20000))

	req, err := paymentUC.CreatePaymentRequest(ctx, usecase.CreatePaymentRequestInput{
		UserID:  "user-1",
		PostID:  "post-42",
		FeeKind: domain.FeeKindBoost,
		Amount:  decimal.NewFromInt(15000),
	})
	if err != nil {
		t.Fatalf("failed to create payment request: %v", err)
	}

	paid, err := paymentUC.Pay(ctx, usecase.PayInput{PaymentRequestID: req.ID, UserID: "user-1"})
	if err != nil {
		t.Fatalf("failed to pay: %v", err)
	}

	if !paid.Paid {
		t.Error("expected request to be marked paid")
	}

	if paid.PaidAt == nil {
		t.Error("expected paid_at to be set")
	}

	got, err := walletRepo.GetByID(ctx, wallet.ID)
	if err != nil {
		t.Fatalf("failed to get wallet: %v", err)
	}

	if !got.Balance.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected balance 5000, got %s", got.Balance)
	}

	entryRepo := postgres.NewEntryRepository(testDB.Pool)

	last, err := entryRepo.LastByWallet(ctx, wallet.ID)
	if err != nil {
		t.Fatalf("failed to get last entry: %v", err)
	}

	if last.Kind != domain.EntryKindPurchase {
		t.Errorf("expected purchase entry, got %s", last.Kind)
	}
}

func TestPaymentConcurrentDoubleSpend(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	paymentUC, walletRepo := newPaymentUseCase(testDB)

	wallet := testDB.CreateTestWalletWithBalance(ctx, "user-1", decimal.NewFromInt(50000))

	req, err := paymentUC.CreatePaymentRequest(ctx, usecase.CreatePaymentRequestInput{
		UserID:  "user-1",
		PostID:  "post-1",
		FeeKind: domain.FeeKindPosting,
	})
	if err != nil {
		t.Fatalf("failed to create payment request: %v", err)
	}

	numPayers := 10

	var (
		wg           sync.WaitGroup
		successCount atomic.Int32
	)

	wg.Add(numPayers)

	for range numPayers {
		go func() {
			defer wg.Done()

			_, err := paymentUC.Pay(ctx, usecase.PayInput{PaymentRequestID: req.ID, UserID: "user-1"})
			if err == nil {
				successCount.Add(1)
			} else if !errors.Is(err, domain.ErrAlreadyPaid) {
				t.Errorf("unexpected pay error: %v", err)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("expected exactly 1 successful payment, got %d", successCount.Load())
	}

	// The default posting fee is debited exactly once.
	got, err := walletRepo.GetByID(ctx, wallet.ID)
	if err != nil {
		t.Fatalf("failed to get wallet: %v", err)
	}

	if !got.Balance.Equal(decimal.NewFromInt(45000)) {
		t.Errorf("expected balance 45000, got %s", got.Balance)
	}
}

func TestPaymentWrongOwner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	paymentUC, _ := newPaymentUseCase(testDB)

	testDB.CreateTestWalletWithBalance(ctx, "user-1", decimal.NewFromInt(50000))
	testDB.CreateTestWalletWithBalance(ctx, "user-2", decimal.NewFromInt(50000))

	req, err := paymentUC.CreatePaymentRequest(ctx, usecase.CreatePaymentRequestInput{
		UserID:  "user-1",
		PostID:  "post-1",
		FeeKind: domain.FeeKindRenew,
		Amount:  decimal.NewFromInt(3000),
	})
	if err != nil {
		t.Fatalf("failed to create payment request: %v", err)
	}

	// Another user must not be able to settle someone else's fee.
	if _, err := paymentUC.Pay(ctx, usecase.PayInput{PaymentRequestID: req.ID, UserID: "user-2"}); !errors.Is(err, domain.ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}
