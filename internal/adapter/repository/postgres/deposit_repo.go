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

// DepositRequestRepository implements usecase.DepositRequestRepository.
type DepositRequestRepository struct {
	pool *pgxpool.Pool
}

// NewDepositRequestRepository creates a new DepositRequestRepository.
func NewDepositRequestRepository(pool *pgxpool.Pool) *DepositRequestRepository {
	return &DepositRequestRepository{pool: pool}
}

const depositColumns = `id, user_id, amount, proof_image, status, approved_by, processed_at, created_at, updated_at`

// Create inserts a new deposit request.
func (r *DepositRequestRepository) Create(ctx context.Context, req *domain.DepositRequest) error {
	query := `
		INSERT INTO deposit_requests (id, user_id, amount, proof_image, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		req.ID,
		req.UserID,
		decimalToNumeric(req.Amount),
		req.ProofImage,
		string(req.Status),
		timeToPgTimestamptz(req.CreatedAt),
		timeToPgTimestamptz(req.UpdatedAt),
	)

	return err
}

// GetByID retrieves a deposit request by ID.
func (r *DepositRequestRepository) GetByID(ctx context.Context, id string) (*domain.DepositRequest, error) {
	query := `SELECT ` + depositColumns + ` FROM deposit_requests WHERE id = $1`

	return scanDepositRequest(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves a deposit request with a FOR UPDATE lock.
func (r *DepositRequestRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.DepositRequest, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + depositColumns + ` FROM deposit_requests WHERE id = $1 FOR UPDATE`

	return scanDepositRequest(pgxTx.QueryRow(ctx, query, id))
}

// UpdateStatus advances a pending request to a terminal status. The WHERE
// clause makes it a compare-and-set: zero rows affected means the request was
// already processed.
func (r *DepositRequestRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.RequestStatus, approvedBy string, processedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE deposit_requests
		SET status = $2, approved_by = $3, processed_at = $4, updated_at = $4
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := pgxTx.Exec(ctx, query, id, string(status), approvedBy, timeToPgTimestamptz(processedAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyProcessed
	}

	return nil
}

// List lists deposit requests, newest first.
func (r *DepositRequestRepository) List(ctx context.Context, limit, offset int) ([]*domain.DepositRequest, error) {
	query := `SELECT ` + depositColumns + ` FROM deposit_requests ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	return r.queryDepositRequests(ctx, query, limit, offset)
}

// ListByUser lists a user's deposit requests, newest first.
func (r *DepositRequestRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.DepositRequest, error) {
	query := `SELECT ` + depositColumns + ` FROM deposit_requests WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	return r.queryDepositRequests(ctx, query, userID, limit, offset)
}

func (r *DepositRequestRepository) queryDepositRequests(ctx context.Context, query string, args ...any) ([]*domain.DepositRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*domain.DepositRequest
	for rows.Next() {
		req, err := scanDepositRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func scanDepositRequest(row pgx.Row) (*domain.DepositRequest, error) {
	var req domain.DepositRequest
	var status string
	var amount pgtype.Numeric
	var approvedBy pgtype.Text
	var processedAt, createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(
		&req.ID,
		&req.UserID,
		&amount,
		&req.ProofImage,
		&status,
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
	req.Status = domain.RequestStatus(status)
	req.ApprovedBy = approvedBy.String
	req.ProcessedAt = pgTimestamptzToTimePtr(processedAt)
	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return &req, nil
}
