package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/veloria/walletd/internal/adapter/http/dto"
	"github.com/veloria/walletd/internal/usecase"
)

// DepositHandler handles deposit-request HTTP requests.
type DepositHandler struct {
	depositUC *usecase.DepositUseCase
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(depositUC *usecase.DepositUseCase) *DepositHandler {
	return &DepositHandler{depositUC: depositUC}
}

// CreateRequest creates a pending deposit request.
func (h *DepositHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	created, err := h.depositUC.CreateDepositRequest(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create deposit request", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.DepositRequestFromDomain(created))
}

// Approve approves a pending deposit request and credits the wallet.
func (h *DepositHandler) Approve(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestId")
	if requestID == "" {
		writeError(w, http.StatusBadRequest, "missing request ID", "")
		return
	}

	wallet, err := h.depositUC.ApproveDeposit(r.Context(), requestID, approverID(r))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to approve deposit", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.WalletFromDomain(wallet))
}

// Reject rejects a pending deposit request. No reason is required.
func (h *DepositHandler) Reject(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		writeError(w, http.StatusBadRequest, "missing request ID", "")
		return
	}

	if err := h.depositUC.RejectDeposit(r.Context(), requestID, approverID(r)); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to reject deposit", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}

// List lists all deposit requests.
func (h *DepositHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.depositUC.ListDepositRequests(r.Context(), usecase.ListDepositRequestsInput{
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list deposit requests", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DepositRequestsFromDomain(requests))
}

// ListByUser lists a user's deposit requests.
func (h *DepositHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	requests, err := h.depositUC.ListDepositRequests(r.Context(), usecase.ListDepositRequestsInput{
		UserID: userID,
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list deposit requests", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DepositRequestsFromDomain(requests))
}
