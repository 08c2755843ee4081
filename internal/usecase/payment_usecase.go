package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/domain"
	"github.com/veloria/walletd/internal/infrastructure/metrics"
)

// PaymentUseCase handles moderation fee payment requests. Requests are
// produced by the content moderation service when it approves a post or an
// advertisement; paying is initiated by the owning user, not an approver.
type PaymentUseCase struct {
	txManager   TransactionManager
	walletRepo  WalletRepository
	paymentRepo PaymentRequestRepository
	outboxRepo  OutboxRepository
	mutator     *balanceMutator
	idGen       IDGenerator
	metrics     *metrics.Metrics
	retrier     Retrier
}

// NewPaymentUseCase creates a new PaymentUseCase.
func NewPaymentUseCase(
	txManager TransactionManager,
	walletRepo WalletRepository,
	entryRepo EntryRepository,
	paymentRepo PaymentRequestRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *PaymentUseCase {
	return &PaymentUseCase{
		txManager:   txManager,
		walletRepo:  walletRepo,
		paymentRepo: paymentRepo,
		outboxRepo:  outboxRepo,
		mutator:     newBalanceMutator(walletRepo, entryRepo, idGen),
		idGen:       idGen,
		metrics:     metrics,
	}
}

// WithRetrier configures retry behavior for the settlement transaction.
func (uc *PaymentUseCase) WithRetrier(retrier Retrier) *PaymentUseCase {
	uc.retrier = retrier
	return uc
}

// CreatePaymentRequestInput represents input for creating a payment request.
type CreatePaymentRequestInput struct {
	UserID  string
	PostID  string
	FeeKind domain.FeeKind
	Amount  decimal.Decimal // zero falls back to the default posting fee
}

// CreatePaymentRequest records a fee owed for a moderated content item. This
// is the moderation service's integration point; it has no public HTTP route.
func (uc *PaymentUseCase) CreatePaymentRequest(ctx context.Context, input CreatePaymentRequestInput) (*domain.PaymentRequest, error) {
	amount := input.Amount
	if amount.IsZero() {
		amount, _ = decimal.NewFromString(DefaultPostingFee)
	}

	req := &domain.PaymentRequest{
		ID:        uc.idGen.Generate(),
		UserID:    input.UserID,
		PostID:    input.PostID,
		FeeKind:   input.FeeKind,
		Amount:    amount,
		Paid:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := uc.paymentRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

// GetPaymentRequest retrieves a payment request by ID.
func (uc *PaymentUseCase) GetPaymentRequest(ctx context.Context, id string) (*domain.PaymentRequest, error) {
	return uc.paymentRepo.GetByID(ctx, id)
}

// ListPaymentRequestsByUser lists a user's payment requests, newest first.
func (uc *PaymentUseCase) ListPaymentRequestsByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.PaymentRequest, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.paymentRepo.ListByUser(ctx, userID, limit, offset)
}

// PayInput represents input for paying a payment request.
type PayInput struct {
	PaymentRequestID string
	UserID           string
}

// Pay settles a payment request with the payer's wallet balance. The debit
// and the paid flag flip are one atomic unit; paying twice fails with
// domain.ErrAlreadyPaid and leaves the balance untouched. A request owned by
// a different user is reported as not found.
func (uc *PaymentUseCase) Pay(ctx context.Context, input PayInput) (*domain.PaymentRequest, error) {
	start := time.Now()

	var (
		req    *domain.PaymentRequest
		wallet *domain.Wallet
	)

	err := runTransition(ctx, uc.txManager, uc.retrier, transitionSteps{
		lock: func(ctx context.Context, tx Transaction) (bool, error) {
			var err error
			req, err = uc.paymentRepo.GetByIDForUpdate(ctx, tx, input.PaymentRequestID)
			if err != nil {
				return false, err
			}

			// Do not leak other users' requests.
			if req.UserID != input.UserID {
				return false, domain.ErrPaymentNotFound
			}

			return !req.Paid, nil
		},
		closedErr: domain.ErrAlreadyPaid,
		effect: func(ctx context.Context, tx Transaction, now time.Time) error {
			var err error
			wallet, err = uc.walletRepo.GetByUserIDForUpdate(ctx, tx, req.UserID)
			if err != nil {
				return err
			}

			_, err = uc.mutator.mutate(ctx, tx, wallet, domain.EntryKindPurchase, req.Amount, feeDescription(req.FeeKind), now)
			return err
		},
		advance: func(ctx context.Context, tx Transaction, now time.Time) error {
			if err := uc.paymentRepo.MarkPaid(ctx, tx, req.ID, now); err != nil {
				return err
			}

			req.Paid = true
			req.PaidAt = &now

			return uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
				ID:            uc.idGen.Generate(),
				AggregateID:   req.ID,
				AggregateType: domain.AggregateTypePaymentRequest,
				EventType:     domain.EventTypePaymentPaid,
				Payload: map[string]any{
					"request_id": req.ID,
					"user_id":    req.UserID,
					"post_id":    req.PostID,
					"fee_kind":   string(req.FeeKind),
					"amount":     req.Amount.String(),
				},
				CreatedAt: now,
				Published: false,
			})
		},
	})
	if err != nil {
		if uc.metrics != nil && errors.Is(err, domain.ErrInsufficientFunds) {
			uc.metrics.InsufficientFunds.Inc()
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PaymentsPaid.Inc()
		uc.metrics.ApprovalDuration.Observe(time.Since(start).Seconds())
	}

	return req, nil
}

func feeDescription(kind domain.FeeKind) string {
	switch kind {
	case domain.FeeKindBoost:
		return "Boost fee"
	case domain.FeeKindRenew:
		return "Renewal fee"
	default:
		return "Posting fee"
	}
}
