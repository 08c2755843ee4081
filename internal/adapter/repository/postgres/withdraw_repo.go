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

// WithdrawRequestRepository implements usecase.WithdrawRequestRepository.
type WithdrawRequestRepository struct {
	pool *pgxpool.Pool
}

// NewWithdrawRequestRepository creates a new WithdrawRequestRepository.
func NewWithdrawRequestRepository(pool *pgxpool.Pool) *WithdrawRequestRepository {
	return &WithdrawRequestRepository{pool: pool}
}

const withdrawColumns = `id, user_id, amount, bank_name, account_name, account_number, qr_image,
	status, reject_reason, approved_by, processed_at, created_at, updated_at`

// Create inserts a new withdraw request.
func (r *WithdrawRequestRepository) Create(ctx context.Context, req *domain.WithdrawRequest) error {
	query := `
		INSERT INTO withdraw_requests (id, user_id, amount, bank_name, account_name, account_number,
			qr_image, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		req.ID,
		req.UserID,
		decimalToNumeric(req.Amount),
		req.BankName,
		req.AccountName,
		req.AccountNumber,
		req.QRImage,
		string(req.Status),
		timeToPgTimestamptz(req.CreatedAt),
		timeToPgTimestamptz(req.UpdatedAt),
	)

	return err
}

// GetByID retrieves a withdraw request by ID.
func (r *WithdrawRequestRepository) GetByID(ctx context.Context, id string) (*domain.WithdrawRequest, error) {
	query := `SELECT ` + withdrawColumns + ` FROM withdraw_requests WHERE id = $1`

	return scanWithdrawRequest(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves a withdraw request with a FOR UPDATE lock.
func (r *WithdrawRequestRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.WithdrawRequest, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + withdrawColumns + ` FROM withdraw_requests WHERE id = $1 FOR UPDATE`

	return scanWithdrawRequest(pgxTx.QueryRow(ctx, query, id))
}

// UpdateStatus advances a pending request to a terminal status. Zero rows
// affected means the request was already processed.
func (r *WithdrawRequestRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.RequestStatus, approvedBy, rejectReason string, processedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE withdraw_requests
		SET status = $2, approved_by = $3, reject_reason = $4, processed_at = $5, updated_at = $5
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := pgxTx.Exec(ctx, query, id, string(status), approvedBy, rejectReason, timeToPgTimestamptz(processedAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyProcessed
	}

	return nil
}

// List lists withdraw requests, newest first.
func (r *WithdrawRequestRepository) List(ctx context.Context, limit, offset int) ([]*domain.WithdrawRequest, error) {
	query := `SELECT ` + withdrawColumns + ` FROM withdraw_requests ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	return r.queryWithdrawRequests(ctx, query, limit, offset)
}

// ListByUser lists a user's withdraw requests, newest first.
func (r *WithdrawRequestRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.WithdrawRequest, error) {
	query := `SELECT ` + withdrawColumns + ` FROM withdraw_requests WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	return r.queryWithdrawRequests(ctx, query, userID, limit, offset)
}

func (r *WithdrawRequestRepository) queryWithdrawRequests(ctx context.Context, query string, args ...any) ([]*domain.WithdrawRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*domain.WithdrawRequest
	for rows.Next() {
		req, err := scanWithdrawRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func scanWithdrawRequest(row pgx.Row) (*domain.WithdrawRequest, error) {
	var req domain.WithdrawRequest
	var status string
	var amount pgtype.Numeric
	var qrImage, rejectReason, approvedBy pgtype.Text
	var processedAt, createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(
		&req.ID,
		&req.UserID,
		&amount,
		&req.BankName,
		&req.AccountName,
		&req.AccountNumber,
		&qrImage,
		&status,
		&rejectReason,
		&approvedBy,
		&processedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	req.Amount = numericToDecimal(amount)
	req.QRImage = qrImage.String
	req.Status = domain.RequestStatus(status)
	req.RejectReason = rejectReason.String
	req.ApprovedBy = approvedBy.String
	req.ProcessedAt = pgTimestamptzToTimePtr(processedAt)
	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return &req, nil
}
