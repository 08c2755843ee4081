package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veloria/walletd/internal/domain"
	"github.com/veloria/walletd/internal/usecase"
)

// PaymentRequestRepository implements usecase.PaymentRequestRepository.
type PaymentRequestRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRequestRepository creates a new PaymentRequestRepository.
func NewPaymentRequestRepository(pool *pgxpool.Pool) *PaymentRequestRepository {
	return &PaymentRequestRepository{pool: pool}
}

const paymentColumns = `id, user_id, post_id, fee_kind, amount, paid, paid_at, created_at`

// Create inserts a new payment request.
func (r *PaymentRequestRepository) Create(ctx context.Context, req *domain.PaymentRequest) error {
	query := `
		INSERT INTO payment_requests (id, user_id, post_id, fee_kind, amount, paid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		req.ID,
		req.UserID,
		req.PostID,
		string(req.FeeKind),
		decimalToNumeric(req.Amount),
		req.Paid,
		timeToPgTimestamptz(req.CreatedAt),
	)

	return err
}

// GetByID retrieves a payment request by ID.
func (r *PaymentRequestRepository) GetByID(ctx context.Context, id string) (*domain.PaymentRequest, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_requests WHERE id = $1`

	return scanPaymentRequest(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves a payment request with a FOR UPDATE lock.
func (r *PaymentRequestRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.PaymentRequest, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + paymentColumns + ` FROM payment_requests WHERE id = $1 FOR UPDATE`

	return scanPaymentRequest(pgxTx.QueryRow(ctx, query, id))
}

// MarkPaid flips paid to true exactly once. Zero rows affected means the
// request was already paid.
func (r *PaymentRequestRepository) MarkPaid(ctx context.Context, tx usecase.Transaction, id string, paidAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE payment_requests
		SET paid = TRUE, paid_at = $2
		WHERE id = $1 AND paid = FALSE
	`

	tag, err := pgxTx.Exec(ctx, query, id, timeToPgTimestamptz(paidAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyPaid
	}

	return nil
}

// ListByUser lists a user's payment requests, newest first.
func (r *PaymentRequestRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.PaymentRequest, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_requests WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*domain.PaymentRequest
	for rows.Next() {
		req, err := scanPaymentRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func scanPaymentRequest(row pgx.Row) (*domain.PaymentRequest, error) {
	var req domain.PaymentRequest
	var feeKind string
	var amount pgtype.Numeric
	var paidAt, createdAt pgtype.Timestamptz

	err := row.Scan(
		&req.ID,
		&req.UserID,
		&req.PostID,
		&feeKind,
		&amount,
		&req.Paid,
		&paidAt,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}

	req.FeeKind = domain.FeeKind(feeKind)
	req.Amount = numericToDecimal(amount)
	req.PaidAt = pgTimestamptzToTimePtr(paidAt)
	req.CreatedAt = createdAt.Time

	return &req, nil
}
