package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/domain"
)

// LedgerUseCase serves ledger history and purchase statistics. It is
// read-only: entries are only ever written by the balance mutator.
type LedgerUseCase struct {
	walletRepo WalletRepository
	entryRepo  EntryRepository
	cache      Cache
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(walletRepo WalletRepository, entryRepo EntryRepository, cache Cache) *LedgerUseCase {
	return &LedgerUseCase{
		walletRepo: walletRepo,
		entryRepo:  entryRepo,
		cache:      cache,
	}
}

// ListEntriesInput represents input for listing ledger entries.
type ListEntriesInput struct {
	WalletID string
	Filter   domain.EntryFilter
	Limit    int
	Offset   int
}

// ListEntries lists a wallet's ledger entries, newest first.
func (uc *LedgerUseCase) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.Entry, error) {
	if _, err := uc.walletRepo.GetByID(ctx, input.WalletID); err != nil {
		return nil, err
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.entryRepo.ListByWallet(ctx, input.WalletID, input.Filter, limit, offset)
}

// ListEntriesByUser lists ledger entries via the owning user's wallet.
func (uc *LedgerUseCase) ListEntriesByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Entry, error) {
	wallet, err := uc.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.entryRepo.ListByWallet(ctx, wallet.ID, domain.EntryFilter{}, limit, offset)
}

// StatsPeriod is the reporting window for purchase statistics.
type StatsPeriod string

const (
	StatsPeriodAll   StatsPeriod = "all"
	StatsPeriodDay   StatsPeriod = "day"
	StatsPeriodWeek  StatsPeriod = "week"
	StatsPeriodMonth StatsPeriod = "month"
	StatsPeriodYear  StatsPeriod = "year"
)

// IsValid reports whether p is a known stats period.
func (p StatsPeriod) IsValid() bool {
	switch p {
	case StatsPeriodAll, StatsPeriodDay, StatsPeriodWeek, StatsPeriodMonth, StatsPeriodYear:
		return true
	}
	return false
}

// PurchaseStats summarizes purchase revenue for a period.
type PurchaseStats struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalTransactions int64           `json:"total_transactions"`
	Period            StatsPeriod     `json:"period"`
	From              *time.Time      `json:"from,omitempty"`
	To                *time.Time      `json:"to,omitempty"`
}

// GetPurchaseStats computes purchase revenue for the period, served from
// cache when a fresh result is available.
func (uc *LedgerUseCase) GetPurchaseStats(ctx context.Context, period StatsPeriod) (*PurchaseStats, error) {
	if !period.IsValid() {
		return nil, fmt.Errorf("invalid stats period %q", period)
	}

	cacheKey := "purchase_stats:" + string(period)
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, cacheKey); err == nil && raw != nil {
			var cached PurchaseStats
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	from, to := statsWindow(period, time.Now().UTC())

	total, count, err := uc.entryRepo.PurchaseTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	stats := &PurchaseStats{
		TotalRevenue:      total,
		TotalTransactions: count,
		Period:            period,
		From:              from,
		To:                to,
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			_ = uc.cache.Set(ctx, cacheKey, raw, StatsCacheTTL)
		}
	}

	return stats, nil
}

// statsWindow returns the UTC bounds for a stats period; nil bounds mean unbounded.
func statsWindow(period StatsPeriod, now time.Time) (*time.Time, *time.Time) {
	var from, to time.Time

	switch period {
	case StatsPeriodDay:
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 0, 1)
	case StatsPeriodWeek:
		weekday := int(now.Weekday())
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -weekday)
		to = from.AddDate(0, 0, 7)
	case StatsPeriodMonth:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, 0)
	case StatsPeriodYear:
		from = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(1, 0, 0)
	default:
		return nil, nil
	}

	return &from, &to
}
