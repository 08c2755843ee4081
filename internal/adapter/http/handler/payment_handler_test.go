package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/adapter/http/dto"
	"github.com/veloria/walletd/internal/domain"
	"github.com/veloria/walletd/internal/usecase"
	"github.com/veloria/walletd/internal/usecase/mocks"
)

type paymentHandlerDeps struct {
	walletRepo  *mocks.MockWalletRepository
	paymentRepo *mocks.MockPaymentRequestRepository
	uc          *usecase.PaymentUseCase
}

func newTestPaymentHandler(balance int64) (*PaymentHandler, paymentHandlerDeps) {
	deps := paymentHandlerDeps{
		walletRepo:  mocks.NewMockWalletRepository(),
		paymentRepo: mocks.NewMockPaymentRequestRepository(),
	}
	deps.walletRepo.Put(&domain.Wallet{ID: "w1", UserID: "user-1", Balance: decimal.NewFromInt(balance), Currency: "VND"})
	deps.uc = usecase.NewPaymentUseCase(
		mocks.NewMockTransactionManager(),
		deps.walletRepo,
		mocks.NewMockEntryRepository(),
		deps.paymentRepo,
		mocks.NewMockOutboxRepository(),
		mocks.NewMockIDGenerator(),
		nil,
	)
	return NewPaymentHandler(deps.uc), deps
}

func seedPaymentRequest(t *testing.T, uc *usecase.PaymentUseCase, amount int64) *domain.PaymentRequest {
	t.Helper()
	req, err := uc.CreatePaymentRequest(context.Background(), usecase.CreatePaymentRequestInput{
		UserID:  "user-1",
		PostID:  "post-1",
		FeeKind: domain.FeeKindPosting,
		Amount:  decimal.NewFromInt(amount),
	})
	if err != nil {
		t.Fatalf("failed to seed payment request: %v", err)
	}
	return req
}

func TestPaymentHandler_Detail(t *testing.T) {
	handler, deps := newTestPaymentHandler(50000)
	seeded := seedPaymentRequest(t, deps.uc, 5000)

	req := httptest.NewRequest(http.MethodGet, "/payment/detailRequest/"+seeded.ID, nil)
	req = setChiURLParam(req, "id", seeded.ID)
	rec := httptest.NewRecorder()

	handler.Detail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.PaymentRequestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Paid {
		t.Error("expected unpaid request")
	}
	if !resp.Amount.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected amount 5000, got %s", resp.Amount)
	}
}

func TestPaymentHandler_Detail_NotFound(t *testing.T) {
	handler, _ := newTestPaymentHandler(50000)

	req := httptest.NewRequest(http.MethodGet, "/payment/detailRequest/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.Detail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestPaymentHandler_Pay(t *testing.T) {
	handler, deps := newTestPaymentHandler(50000)
	seeded := seedPaymentRequest(t, deps.uc, 5000)

	body, _ := json.Marshal(dto.PayRequest{PaymentRequestID: seeded.ID, UserID: "user-1"})

	req := httptest.NewRequest(http.MethodPost, "/payment/pay", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Pay(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.PaymentRequestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Paid {
		t.Error("expected request to be paid")
	}

	wallet, _ := deps.walletRepo.GetByUserID(context.Background(), "user-1")
	if !wallet.Balance.Equal(decimal.NewFromInt(45000)) {
		t.Errorf("expected balance 45000, got %s", wallet.Balance)
	}
}

func TestPaymentHandler_Pay_Twice(t *testing.T) {
	handler, deps := newTestPaymentHandler(50000)
	seeded := seedPaymentRequest(t, deps.uc, 5000)

	if _, err := deps.uc.Pay(context.Background(), usecase.PayInput{PaymentRequestID: seeded.ID, UserID: "user-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body, _ := json.Marshal(dto.PayRequest{PaymentRequestID: seeded.ID, UserID: "user-1"})

	req := httptest.NewRequest(http.MethodPost, "/payment/pay", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Pay(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestPaymentHandler_Pay_WrongOwner(t *testing.T) {
	handler, deps := newTestPaymentHandler(50000)
	seeded := seedPaymentRequest(t, deps.uc, 5000)

	body, _ := json.Marshal(dto.PayRequest{PaymentRequestID: seeded.ID, UserID: "user-2"})

	req := httptest.NewRequest(http.MethodPost, "/payment/pay", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Pay(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestPaymentHandler_Pay_InsufficientFunds(t *testing.T) {
	handler, deps := newTestPaymentHandler(1000)
	seeded := seedPaymentRequest(t, deps.uc, 5000)

	body, _ := json.Marshal(dto.PayRequest{PaymentRequestID: seeded.ID, UserID: "user-1"})

	req := httptest.NewRequest(http.MethodPost, "/payment/pay", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Pay(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
}
