package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/adapter/http/dto"
	"github.com/veloria/walletd/internal/domain"
	"github.com/veloria/walletd/internal/usecase"
)

type walletServiceStub struct {
	createFn func(ctx context.Context, userID string) (*domain.Wallet, error)
	getFn    func(ctx context.Context, id string) (*domain.Wallet, error)
}

func (s *walletServiceStub) CreateWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	return s.createFn(ctx, userID)
}

func (s *walletServiceStub) GetWallet(ctx context.Context, id string) (*domain.Wallet, error) {
	return s.getFn(ctx, id)
}

type ledgerServiceStub struct {
	listFn       func(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.Entry, error)
	listByUserFn func(ctx context.Context, userID string, limit, offset int) ([]*domain.Entry, error)
}

func (s *ledgerServiceStub) ListEntries(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.Entry, error) {
	return s.listFn(ctx, input)
}

func (s *ledgerServiceStub) ListEntriesByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Entry, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}

func TestWalletHandler_Create_Success(t *testing.T) {
	wallet := &domain.Wallet{
		ID:       "wal-1",
		UserID:   "user-1",
		Balance:  decimal.Zero,
		Currency: "VND",
	}

	handler := NewWalletHandler(&walletServiceStub{
		createFn: func(ctx context.Context, userID string) (*domain.Wallet, error) {
			if userID != "user-1" {
				t.Fatalf("expected user-1, got %s", userID)
			}
			return wallet, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/wallet/create/user-1", nil)
	req = setChiURLParam(req, "userId", "user-1")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.WalletResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "wal-1" || resp.Currency != "VND" {
		t.Fatalf("unexpected wallet response: %+v", resp)
	}
}

func TestWalletHandler_Create_Conflict(t *testing.T) {
	handler := NewWalletHandler(&walletServiceStub{
		createFn: func(ctx context.Context, userID string) (*domain.Wallet, error) {
			return nil, domain.ErrWalletExists
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/wallet/create/user-1", nil)
	req = setChiURLParam(req, "userId", "user-1")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestWalletHandler_GetBalance(t *testing.T) {
	handler := NewWalletHandler(&walletServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Wallet, error) {
			return &domain.Wallet{
				ID:       id,
				Balance:  decimal.RequireFromString("15000"),
				Currency: "VND",
			}, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/wallet/wal-1/balance", nil)
	req = setChiURLParam(req, "walletId", "wal-1")
	rec := httptest.NewRecorder()

	handler.GetBalance(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.BalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Balance.Equal(decimal.RequireFromString("15000")) {
		t.Fatalf("unexpected balance: %s", resp.Balance)
	}
}

func TestWalletHandler_GetBalance_NotFound(t *testing.T) {
	handler := NewWalletHandler(&walletServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Wallet, error) {
			return nil, domain.ErrWalletNotFound
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/wallet/missing/balance", nil)
	req = setChiURLParam(req, "walletId", "missing")
	rec := httptest.NewRecorder()

	handler.GetBalance(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestWalletHandler_FilterTransactions(t *testing.T) {
	var captured usecase.ListEntriesInput
	handler := NewWalletHandler(nil, &ledgerServiceStub{
		listFn: func(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.Entry, error) {
			captured = input
			return []*domain.Entry{{ID: "entry-1", Kind: domain.EntryKindDeposit}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet,
		"/wallet/transactions/wal-1/filter?type=deposit&from=2026-01-01T00:00:00Z&limit=5", nil)
	req = setChiURLParam(req, "walletId", "wal-1")
	rec := httptest.NewRecorder()

	handler.FilterTransactions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.WalletID != "wal-1" || captured.Limit != 5 {
		t.Fatalf("unexpected input: %+v", captured)
	}
	if captured.Filter.Kind == nil || *captured.Filter.Kind != domain.EntryKindDeposit {
		t.Fatalf("expected deposit kind filter, got %+v", captured.Filter)
	}
	if captured.Filter.From == nil || captured.Filter.From.Year() != 2026 {
		t.Fatalf("expected from filter, got %+v", captured.Filter)
	}
}

func TestWalletHandler_FilterTransactions_BadKind(t *testing.T) {
	handler := NewWalletHandler(nil, &ledgerServiceStub{
		listFn: func(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.Entry, error) {
			t.Fatal("ListEntries should not be called for an invalid kind")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/wallet/transactions/wal-1/filter?type=bogus", nil)
	req = setChiURLParam(req, "walletId", "wal-1")
	rec := httptest.NewRecorder()

	handler.FilterTransactions(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestWalletHandler_ListTransactionsByUser(t *testing.T) {
	handler := NewWalletHandler(nil, &ledgerServiceStub{
		listByUserFn: func(ctx context.Context, userID string, limit, offset int) ([]*domain.Entry, error) {
			if userID != "user-1" {
				t.Fatalf("expected user-1, got %s", userID)
			}
			return []*domain.Entry{{ID: "entry-1"}, {ID: "entry-2"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/wallet/transactions/user/user-1", nil)
	req = setChiURLParam(req, "userId", "user-1")
	rec := httptest.NewRecorder()

	handler.ListTransactionsByUser(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.EntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp))
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
