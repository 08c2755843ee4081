package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/veloria/walletd/internal/adapter/http/dto"
	"github.com/veloria/walletd/internal/domain"
	"github.com/veloria/walletd/internal/usecase"
)

// WalletService defines the behavior needed by WalletHandler.
type WalletService interface {
	CreateWallet(ctx context.Context, userID string) (*domain.Wallet, error)
	GetWallet(ctx context.Context, id string) (*domain.Wallet, error)
}

// LedgerService defines the ledger queries needed by WalletHandler.
type LedgerService interface {
	ListEntries(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.Entry, error)
	ListEntriesByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Entry, error)
}

// WalletHandler handles wallet-related HTTP requests.
type WalletHandler struct {
	walletUC WalletService
	ledgerUC LedgerService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletUC WalletService, ledgerUC LedgerService) *WalletHandler {
	return &WalletHandler{walletUC: walletUC, ledgerUC: ledgerUC}
}

// Create creates a zero-balance wallet for a user.
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	wallet, err := h.walletUC.CreateWallet(r.Context(), userID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create wallet", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.WalletFromDomain(wallet))
}

// GetBalance returns a wallet's balance and currency.
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	walletID := chi.URLParam(r, "walletId")
	if walletID == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	wallet, err := h.walletUC.GetWallet(r.Context(), walletID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get wallet", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(wallet))
}

// ListTransactions lists a wallet's ledger history, newest first.
func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	walletID := chi.URLParam(r, "walletId")
	if walletID == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	entries, err := h.ledgerUC.ListEntries(r.Context(), usecase.ListEntriesInput{
		WalletID: walletID,
		Limit:    parseIntQuery(r, "limit", 50),
		Offset:   parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list transactions", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}

// FilterTransactions lists a wallet's ledger history narrowed by entry kind
// and creation time window.
func (h *WalletHandler) FilterTransactions(w http.ResponseWriter, r *http.Request) {
	walletID := chi.URLParam(r, "walletId")
	if walletID == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	filter, err := parseEntryFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	entries, err := h.ledgerUC.ListEntries(r.Context(), usecase.ListEntriesInput{
		WalletID: walletID,
		Filter:   filter,
		Limit:    parseIntQuery(r, "limit", 50),
		Offset:   parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to filter transactions", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}

// ListTransactionsByUser lists ledger history through the owning user.
func (h *WalletHandler) ListTransactionsByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	entries, err := h.ledgerUC.ListEntriesByUser(r.Context(), userID, limit, offset)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list transactions", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}

// parseEntryFilter builds a domain.EntryFilter from query parameters:
// type (deposit|purchase|withdraw), from and to (RFC3339).
func parseEntryFilter(r *http.Request) (domain.EntryFilter, error) {
	var filter domain.EntryFilter

	if v := r.URL.Query().Get("type"); v != "" {
		kind := domain.EntryKind(v)
		if !kind.IsValid() {
			return filter, domain.ErrInvalidEntryKind
		}
		filter.Kind = &kind
	}

	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.From = &t
	}

	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.To = &t
	}

	return filter, nil
}
