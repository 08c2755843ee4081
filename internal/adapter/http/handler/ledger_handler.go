package handler

import (
	"net/http"

	"github.com/veloria/walletd/internal/usecase"
)

// LedgerHandler handles ledger-wide operations.
type LedgerHandler struct {
	ledgerUC *usecase.LedgerUseCase
	reconUC  *usecase.ReconciliationUseCase
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC *usecase.LedgerUseCase, reconUC *usecase.ReconciliationUseCase) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC, reconUC: reconUC}
}

// CheckConsistency verifies every wallet balance against its ledger.
func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconUC.ReconcileAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to check consistency", err.Error())
		return
	}

	consistent := len(report.Discrepancies) == 0

	status := http.StatusOK
	if !consistent {
		status = http.StatusConflict
	}

	writeJSON(w, status, map[string]any{
		"consistent":         consistent,
		"total_wallets":      report.TotalWallets,
		"reconciled_wallets": report.ReconciledWallets,
		"discrepancies":      report.Discrepancies,
		"checked_at":         report.CheckedAt,
	})
}

// PurchaseStats reports purchase revenue for a period. Defaults to the
// current month.
func (h *LedgerHandler) PurchaseStats(w http.ResponseWriter, r *http.Request) {
	period := usecase.StatsPeriod(r.URL.Query().Get("period"))
	if period == "" {
		period = usecase.StatsPeriodMonth
	}

	stats, err := h.ledgerUC.GetPurchaseStats(r.Context(), period)
	if err != nil {
		if !period.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid period", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to compute stats", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, stats)
}
