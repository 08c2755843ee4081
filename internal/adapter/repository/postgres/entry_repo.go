package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/domain"
	"github.com/veloria/walletd/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository. Ledger entries are
// append-only; this repository exposes no update or delete.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

const entryColumns = `id, wallet_id, kind, amount, balance_after, description, created_at`

// Create inserts a new ledger entry within a transaction.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO entries (id, wallet_id, kind, amount, balance_after, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := pgxTx.Exec(ctx, query,
		entry.ID,
		entry.WalletID,
		string(entry.Kind),
		decimalToNumeric(entry.Amount),
		decimalToNumeric(entry.BalanceAfter),
		entry.Description,
		timeToPgTimestamptz(entry.CreatedAt),
	)

	return err
}

// ListByWallet retrieves entries for a wallet, newest first, honoring the
// optional kind and time-window filter.
func (r *EntryRepository) ListByWallet(ctx context.Context, walletID string, filter domain.EntryFilter, limit, offset int) ([]*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE wallet_id = $1`
	args := []any{walletID}

	if filter.Kind != nil {
		args = append(args, string(*filter.Kind))
		query += fmt.Sprintf(` AND kind = $%d`, len(args))
	}

	if filter.From != nil {
		args = append(args, timeToPgTimestamptz(*filter.From))
		query += fmt.Sprintf(` AND created_at >= $%d`, len(args))
	}

	if filter.To != nil {
		args = append(args, timeToPgTimestamptz(*filter.To))
		query += fmt.Sprintf(` AND created_at <= $%d`, len(args))
	}

	query += ` ORDER BY created_at DESC`

	args = append(args, limit)
	query += fmt.Sprintf(` LIMIT $%d`, len(args))

	args = append(args, offset)
	query += fmt.Sprintf(` OFFSET $%d`, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// SumByWallet returns the sum of signed entry amounts for a wallet. Deposits
// count positive, purchases and withdrawals negative.
func (r *EntryRepository) SumByWallet(ctx context.Context, walletID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN kind = 'deposit' THEN amount ELSE -amount END), 0)
		FROM entries
		WHERE wallet_id = $1
	`

	var sum pgtype.Numeric
	if err := r.pool.QueryRow(ctx, query, walletID).Scan(&sum); err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

// LastByWallet returns the newest entry for a wallet, or nil when the wallet
// has no entries.
func (r *EntryRepository) LastByWallet(ctx context.Context, walletID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE wallet_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, walletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return entry, nil
}

// PurchaseTotals returns the total amount and count of purchase entries
// inside the optional time window.
func (r *EntryRepository) PurchaseTotals(ctx context.Context, from, to *time.Time) (decimal.Decimal, int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM entries WHERE kind = 'purchase'`
	args := []any{}

	if from != nil {
		args = append(args, timeToPgTimestamptz(*from))
		query += fmt.Sprintf(` AND created_at >= $%d`, len(args))
	}

	if to != nil {
		args = append(args, timeToPgTimestamptz(*to))
		query += fmt.Sprintf(` AND created_at <= $%d`, len(args))
	}

	var total pgtype.Numeric
	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total, &count); err != nil {
		return decimal.Zero, 0, err
	}

	return numericToDecimal(total), count, nil
}

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var entry domain.Entry
	var kind string
	var amount, balanceAfter pgtype.Numeric
	var createdAt pgtype.Timestamptz

	err := row.Scan(
		&entry.ID,
		&entry.WalletID,
		&kind,
		&amount,
		&balanceAfter,
		&entry.Description,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Kind = domain.EntryKind(kind)
	entry.Amount = numericToDecimal(amount)
	entry.BalanceAfter = numericToDecimal(balanceAfter)
	entry.CreatedAt = createdAt.Time

	return &entry, nil
}
