package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeKind names the moderation fee a payment request charges for.
type FeeKind string

const (
	FeeKindPosting FeeKind = "posting_fee"
	FeeKindBoost   FeeKind = "boost_fee"
	FeeKindRenew   FeeKind = "renew_fee"
)

// IsValid reports whether k is a known fee kind.
func (k FeeKind) IsValid() bool {
	switch k {
	case FeeKindPosting, FeeKindBoost, FeeKindRenew:
		return true
	}
	return false
}

// PaymentRequest is a fee owed after content moderation approved a post or
// advertisement. The owner pays it themselves; paying debits the wallet as a
// purchase and flips Paid exactly once.
type PaymentRequest struct {
	ID        string
	UserID    string
	PostID    string
	FeeKind   FeeKind
	Amount    decimal.Decimal
	Paid      bool
	PaidAt    *time.Time
	CreatedAt time.Time
}

// Validate checks a payment request before it is persisted.
func (p *PaymentRequest) Validate() error {
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if !p.FeeKind.IsValid() {
		return ErrInvalidFeeKind
	}
	return nil
}
