package domain

import "errors"

var (
	// Wallet errors
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrWalletExists      = errors.New("user already has a wallet")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Request errors
	ErrRequestNotFound    = errors.New("request not found")
	ErrAlreadyProcessed   = errors.New("request already processed")
	ErrMissingRejectReason = errors.New("reject reason is required")

	// Payment errors
	ErrPaymentNotFound = errors.New("payment request not found")
	ErrAlreadyPaid     = errors.New("payment already completed")
	ErrInvalidFeeKind  = errors.New("unknown fee kind")

	// Input errors
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidProofImage  = errors.New("proof image must be a data:image payload")
	ErrMissingBankDetails = errors.New("bank name, account name and account number are required")
	ErrInvalidEntryKind   = errors.New("unknown ledger entry kind")
)
