package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/domain"
)

func TestWalletValidateDebit(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		amount  int64
		wantErr error
	}{
		{"sufficient balance", 10000, 5000, nil},
		{"exact balance", 10000, 10000, nil},
		{"insufficient balance", 10000, 15000, domain.ErrInsufficientFunds},
		{"zero balance", 0, 1, domain.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &domain.Wallet{Balance: decimal.NewFromInt(tt.balance)}
			err := w.ValidateDebit(decimal.NewFromInt(tt.amount))
			if err != tt.wantErr {
				t.Errorf("ValidateDebit() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWalletApplyDebitCredit(t *testing.T) {
	w := &domain.Wallet{Balance: decimal.NewFromInt(10000)}

	if got := w.ApplyDebit(decimal.NewFromInt(3000)); !got.Equal(decimal.NewFromInt(7000)) {
		t.Errorf("ApplyDebit() = %s, want 7000", got)
	}

	if got := w.ApplyCredit(decimal.NewFromInt(2500)); !got.Equal(decimal.NewFromInt(12500)) {
		t.Errorf("ApplyCredit() = %s, want 12500", got)
	}

	// Apply helpers must not mutate the wallet itself.
	if !w.Balance.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("balance changed to %s, want 10000", w.Balance)
	}
}

func TestEntrySignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(5000)

	tests := []struct {
		kind domain.EntryKind
		want decimal.Decimal
	}{
		{domain.EntryKindDeposit, amount},
		{domain.EntryKindPurchase, amount.Neg()},
		{domain.EntryKindWithdraw, amount.Neg()},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			e := &domain.Entry{Kind: tt.kind, Amount: amount}
			if got := e.SignedAmount(); !got.Equal(tt.want) {
				t.Errorf("SignedAmount() = %s, want %s", got, tt.want)
			}
		})
	}
}
