package domain

import "time"

// Event types
const (
	EventTypeWalletCreated    = "wallet.created"
	EventTypeDepositApproved  = "deposit.approved"
	EventTypeDepositRejected  = "deposit.rejected"
	EventTypeWithdrawApproved = "withdraw.approved"
	EventTypeWithdrawRejected = "withdraw.rejected"
	EventTypePaymentPaid      = "payment.paid"
)

// Aggregate types
const (
	AggregateTypeWallet          = "wallet"
	AggregateTypeDepositRequest  = "deposit_request"
	AggregateTypeWithdrawRequest = "withdraw_request"
	AggregateTypePaymentRequest  = "payment_request"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}
