package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind classifies a ledger entry.
type EntryKind string

const (
	EntryKindDeposit  EntryKind = "deposit"
	EntryKindPurchase EntryKind = "purchase"
	EntryKindWithdraw EntryKind = "withdraw"
)

// IsValid reports whether k is a known entry kind.
func (k EntryKind) IsValid() bool {
	switch k {
	case EntryKindDeposit, EntryKindPurchase, EntryKindWithdraw:
		return true
	}
	return false
}

// IsCredit reports whether the kind increases the wallet balance.
func (k EntryKind) IsCredit() bool {
	return k == EntryKindDeposit
}

// Entry is one immutable ledger record. Amount is always a positive
// magnitude; BalanceAfter snapshots the wallet balance immediately after the
// movement was applied. Entries are never updated or deleted.
type Entry struct {
	ID           string
	WalletID     string
	Kind         EntryKind
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Description  string
	CreatedAt    time.Time
}

// SignedAmount returns the entry amount with its balance-effect sign:
// positive for deposits, negative for purchases and withdrawals.
func (e *Entry) SignedAmount() decimal.Decimal {
	if e.Kind.IsCredit() {
		return e.Amount
	}
	return e.Amount.Neg()
}

// EntryFilter narrows ledger history queries.
type EntryFilter struct {
	Kind *EntryKind
	From *time.Time
	To   *time.Time
}
