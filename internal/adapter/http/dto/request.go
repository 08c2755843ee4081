package dto

import (
	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/usecase"
)

// CreateDepositRequest represents a request to create a deposit request.
type CreateDepositRequest struct {
	UserID     string          `json:"user_id"`
	Amount     decimal.Decimal `json:"amount"`
	ProofImage string          `json:"proof_image"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDepositRequest) ToUseCaseInput() usecase.CreateDepositRequestInput {
	return usecase.CreateDepositRequestInput{
		UserID:     r.UserID,
		Amount:     r.Amount,
		ProofImage: r.ProofImage,
	}
}

// CreateWithdrawRequest represents a request to create a withdraw request.
type CreateWithdrawRequest struct {
	UserID        string          `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	BankName      string          `json:"bank_name"`
	AccountName   string          `json:"account_name"`
	AccountNumber string          `json:"account_number"`
	QRImage       string          `json:"qr_image,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateWithdrawRequest) ToUseCaseInput() usecase.CreateWithdrawRequestInput {
	return usecase.CreateWithdrawRequestInput{
		UserID:        r.UserID,
		Amount:        r.Amount,
		BankName:      r.BankName,
		AccountName:   r.AccountName,
		AccountNumber: r.AccountNumber,
		QRImage:       r.QRImage,
	}
}

// RejectRequest carries the rejection reason for withdraw rejections. The
// body is optional for deposit rejections.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// PayRequest represents a request to pay a payment request.
type PayRequest struct {
	PaymentRequestID string `json:"payment_request_id"`
	UserID           string `json:"user_id"`
}

// ToUseCaseInput converts to use case input.
func (r *PayRequest) ToUseCaseInput() usecase.PayInput {
	return usecase.PayInput{
		PaymentRequestID: r.PaymentRequestID,
		UserID:           r.UserID,
	}
}
