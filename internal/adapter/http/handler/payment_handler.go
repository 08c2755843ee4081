package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/veloria/walletd/internal/adapter/http/dto"
	"github.com/veloria/walletd/internal/usecase"
)

// PaymentHandler handles payment-request HTTP requests.
type PaymentHandler struct {
	paymentUC *usecase.PaymentUseCase
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentUC *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// Detail retrieves a payment request by ID.
func (h *PaymentHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing payment request ID", "")
		return
	}

	req, err := h.paymentUC.GetPaymentRequest(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get payment request", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentRequestFromDomain(req))
}

// Pay settles a pending payment request from the payer's wallet.
func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req dto.PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	paid, err := h.paymentUC.Pay(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to pay", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentRequestFromDomain(paid))
}
