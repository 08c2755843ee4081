package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/veloria/walletd/internal/adapter/http/dto"
	"github.com/veloria/walletd/internal/usecase"
)

// WithdrawHandler handles withdraw-request HTTP requests.
type WithdrawHandler struct {
	withdrawUC *usecase.WithdrawUseCase
}

// NewWithdrawHandler creates a new WithdrawHandler.
func NewWithdrawHandler(withdrawUC *usecase.WithdrawUseCase) *WithdrawHandler {
	return &WithdrawHandler{withdrawUC: withdrawUC}
}

// CreateRequest creates a pending withdraw request.
func (h *WithdrawHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	created, err := h.withdrawUC.CreateWithdrawRequest(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create withdraw request", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.WithdrawRequestFromDomain(created))
}

// Approve approves a pending withdraw request and debits the wallet.
func (h *WithdrawHandler) Approve(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		writeError(w, http.StatusBadRequest, "missing request ID", "")
		return
	}

	wallet, err := h.withdrawUC.ApproveWithdraw(r.Context(), requestID, approverID(r))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to approve withdrawal", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.WalletFromDomain(wallet))
}

// Reject rejects a pending withdraw request. A reason is required.
func (h *WithdrawHandler) Reject(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		writeError(w, http.StatusBadRequest, "missing request ID", "")
		return
	}

	var req dto.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.withdrawUC.RejectWithdraw(r.Context(), requestID, approverID(r), req.Reason); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to reject withdrawal", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}

// List lists all withdraw requests.
func (h *WithdrawHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.withdrawUC.ListWithdrawRequests(r.Context(), usecase.ListWithdrawRequestsInput{
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list withdraw requests", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.WithdrawRequestsFromDomain(requests))
}

// ListByUser lists a user's withdraw requests.
func (h *WithdrawHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	requests, err := h.withdrawUC.ListWithdrawRequests(r.Context(), usecase.ListWithdrawRequestsInput{
		UserID: userID,
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list withdraw requests", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.WithdrawRequestsFromDomain(requests))
}
