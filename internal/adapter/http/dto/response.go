package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/domain"
)

// WalletResponse represents a wallet in API responses.
type WalletResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WalletFromDomain converts a domain wallet to a response.
func WalletFromDomain(w *domain.Wallet) *WalletResponse {
	return &WalletResponse{
		ID:        w.ID,
		UserID:    w.UserID,
		Balance:   w.Balance,
		Currency:  w.Currency,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// BalanceResponse represents a wallet balance in API responses.
type BalanceResponse struct {
	WalletID string          `json:"wallet_id"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// BalanceFromDomain converts a domain wallet to a balance response.
func BalanceFromDomain(w *domain.Wallet) *BalanceResponse {
	return &BalanceResponse{
		WalletID: w.ID,
		Balance:  w.Balance,
		Currency: w.Currency,
	}
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID           string          `json:"id"`
	WalletID     string          `json:"wallet_id"`
	Kind         string          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:           e.ID,
		WalletID:     e.WalletID,
		Kind:         string(e.Kind),
		Amount:       e.Amount,
		BalanceAfter: e.BalanceAfter,
		Description:  e.Description,
		CreatedAt:    e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// DepositRequestResponse represents a deposit request in API responses.
type DepositRequestResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	ProofImage  string          `json:"proof_image"`
	Status      string          `json:"status"`
	ApprovedBy  string          `json:"approved_by,omitempty"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DepositRequestFromDomain converts a domain deposit request to a response.
func DepositRequestFromDomain(r *domain.DepositRequest) *DepositRequestResponse {
	return &DepositRequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Amount:      r.Amount,
		ProofImage:  r.ProofImage,
		Status:      string(r.Status),
		ApprovedBy:  r.ApprovedBy,
		ProcessedAt: r.ProcessedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// DepositRequestsFromDomain converts domain deposit requests to responses.
func DepositRequestsFromDomain(requests []*domain.DepositRequest) []*DepositRequestResponse {
	result := make([]*DepositRequestResponse, len(requests))
	for i, r := range requests {
		result[i] = DepositRequestFromDomain(r)
	}
	return result
}

// WithdrawRequestResponse represents a withdraw request in API responses.
type WithdrawRequestResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	BankName      string          `json:"bank_name"`
	AccountName   string          `json:"account_name"`
	AccountNumber string          `json:"account_number"`
	QRImage       string          `json:"qr_image,omitempty"`
	Status        string          `json:"status"`
	RejectReason  string          `json:"reject_reason,omitempty"`
	ApprovedBy    string          `json:"approved_by,omitempty"`
	ProcessedAt   *time.Time      `json:"processed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// WithdrawRequestFromDomain converts a domain withdraw request to a response.
func WithdrawRequestFromDomain(r *domain.WithdrawRequest) *WithdrawRequestResponse {
	return &WithdrawRequestResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		Amount:        r.Amount,
		BankName:      r.BankName,
		AccountName:   r.AccountName,
		AccountNumber: r.AccountNumber,
		QRImage:       r.QRImage,
		Status:        string(r.Status),
		RejectReason:  r.RejectReason,
		ApprovedBy:    r.ApprovedBy,
		ProcessedAt:   r.ProcessedAt,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// WithdrawRequestsFromDomain converts domain withdraw requests to responses.
func WithdrawRequestsFromDomain(requests []*domain.WithdrawRequest) []*WithdrawRequestResponse {
	result := make([]*WithdrawRequestResponse, len(requests))
	for i, r := range requests {
		result[i] = WithdrawRequestFromDomain(r)
	}
	return result
}

// PaymentRequestResponse represents a payment request in API responses.
type PaymentRequestResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	PostID    string          `json:"post_id"`
	FeeKind   string          `json:"fee_kind"`
	Amount    decimal.Decimal `json:"amount"`
	Paid      bool            `json:"paid"`
	PaidAt    *time.Time      `json:"paid_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// PaymentRequestFromDomain converts a domain payment request to a response.
func PaymentRequestFromDomain(r *domain.PaymentRequest) *PaymentRequestResponse {
	return &PaymentRequestResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		PostID:    r.PostID,
		FeeKind:   string(r.FeeKind),
		Amount:    r.Amount,
		Paid:      r.Paid,
		PaidAt:    r.PaidAt,
		CreatedAt: r.CreatedAt,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
