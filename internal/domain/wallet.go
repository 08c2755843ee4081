package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assigned to lazily created wallets.
const DefaultCurrency = "VND"

// Wallet holds the spendable balance of a single user. There is exactly one
// wallet per user; the balance is authoritative only insofar as it equals the
// running sum of the wallet's ledger entries.
type Wallet struct {
	ID        string
	UserID    string
	Balance   decimal.Decimal
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateDebit checks if the wallet can be debited by amount.
func (w *Wallet) ValidateDebit(amount decimal.Decimal) error {
	if w.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDebit returns the balance after a debit.
func (w *Wallet) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return w.Balance.Sub(amount)
}

// ApplyCredit returns the balance after a credit.
func (w *Wallet) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return w.Balance.Add(amount)
}
