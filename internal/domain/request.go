package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus is the state of a deposit or withdraw request.
// pending is the only non-terminal state.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// DepositRequest is a user's claim to have transferred money in, backed by a
// proof-of-transfer image. Approving it credits the wallet.
type DepositRequest struct {
	ID          string
	UserID      string
	Amount      decimal.Decimal
	ProofImage  string
	Status      RequestStatus
	ApprovedBy  string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks a deposit request before it is persisted.
func (r *DepositRequest) Validate() error {
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if !strings.HasPrefix(r.ProofImage, "data:image") {
		return ErrInvalidProofImage
	}
	return nil
}

// WithdrawRequest asks to move balance out to a bank account. Approving it
// debits the wallet; rejecting it requires a reason.
type WithdrawRequest struct {
	ID            string
	UserID        string
	Amount        decimal.Decimal
	BankName      string
	AccountName   string
	AccountNumber string
	QRImage       string
	Status        RequestStatus
	RejectReason  string
	ApprovedBy    string
	ProcessedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks a withdraw request before it is persisted.
func (r *WithdrawRequest) Validate() error {
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if r.BankName == "" || r.AccountName == "" || r.AccountNumber == "" {
		return ErrMissingBankDetails
	}
	return nil
}
