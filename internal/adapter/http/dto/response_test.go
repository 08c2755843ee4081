package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/domain"
)

func TestWalletFromDomain(t *testing.T) {
	now := time.Now()
	wallet := &domain.Wallet{
		ID:        "wal-1",
		UserID:    "user-1",
		Balance:   decimal.RequireFromString("123.45"),
		Currency:  "VND",
		CreatedAt: now,
		UpdatedAt: now,
	}

	resp := WalletFromDomain(wallet)
	if resp.ID != wallet.ID || !resp.Balance.Equal(wallet.Balance) || resp.Currency != "VND" {
		t.Fatalf("unexpected wallet response: %+v", resp)
	}

	balance := BalanceFromDomain(wallet)
	if balance.WalletID != wallet.ID || !balance.Balance.Equal(wallet.Balance) {
		t.Fatalf("unexpected balance response: %+v", balance)
	}
}

func TestEntryFromDomain(t *testing.T) {
	entry := &domain.Entry{
		ID:           "entry-1",
		WalletID:     "wal-1",
		Kind:         domain.EntryKindDeposit,
		Amount:       decimal.RequireFromString("5000"),
		BalanceAfter: decimal.RequireFromString("15000"),
		Description:  "Deposit request approved",
		CreatedAt:    time.Now(),
	}

	resp := EntryFromDomain(entry)
	if resp.WalletID != entry.WalletID || resp.Kind != "deposit" || !resp.BalanceAfter.Equal(entry.BalanceAfter) {
		t.Fatalf("unexpected entry response: %+v", resp)
	}

	list := EntriesFromDomain([]*domain.Entry{entry})
	if len(list) != 1 || list[0].ID != entry.ID {
		t.Fatalf("EntriesFromDomain returned %+v", list)
	}
}

func TestDepositRequestFromDomain(t *testing.T) {
	now := time.Now()
	req := &domain.DepositRequest{
		ID:          "dep-1",
		UserID:      "user-1",
		Amount:      decimal.RequireFromString("10000"),
		ProofImage:  "data:image/png;base64,xyz",
		Status:      domain.RequestStatusApproved,
		ApprovedBy:  "admin-1",
		ProcessedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	resp := DepositRequestFromDomain(req)
	if resp.Status != "approved" || resp.ApprovedBy != "admin-1" || resp.ProcessedAt == nil {
		t.Fatalf("unexpected deposit response: %+v", resp)
	}

	list := DepositRequestsFromDomain([]*domain.DepositRequest{req})
	if len(list) != 1 || list[0].ID != req.ID {
		t.Fatalf("DepositRequestsFromDomain returned %+v", list)
	}
}

func TestWithdrawRequestFromDomain(t *testing.T) {
	now := time.Now()
	req := &domain.WithdrawRequest{
		ID:            "wd-1",
		UserID:        "user-1",
		Amount:        decimal.RequireFromString("20000"),
		BankName:      "VCB",
		AccountName:   "Nguyen Van A",
		AccountNumber: "00123",
		Status:        domain.RequestStatusRejected,
		RejectReason:  "account number mismatch",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	resp := WithdrawRequestFromDomain(req)
	if resp.Status != "rejected" || resp.RejectReason != "account number mismatch" {
		t.Fatalf("unexpected withdraw response: %+v", resp)
	}

	list := WithdrawRequestsFromDomain([]*domain.WithdrawRequest{req})
	if len(list) != 1 || list[0].BankName != "VCB" {
		t.Fatalf("WithdrawRequestsFromDomain returned %+v", list)
	}
}

func TestPaymentRequestFromDomain(t *testing.T) {
	now := time.Now()
	req := &domain.PaymentRequest{
		ID:        "pay-1",
		UserID:    "user-1",
		PostID:    "post-1",
		FeeKind:   domain.FeeKindPosting,
		Amount:    decimal.RequireFromString("5000"),
		Paid:      true,
		PaidAt:    &now,
		CreatedAt: now,
	}

	resp := PaymentRequestFromDomain(req)
	if resp.FeeKind != "posting_fee" || !resp.Paid || resp.PaidAt == nil {
		t.Fatalf("unexpected payment response: %+v", resp)
	}
}
