package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/domain"
	"github.com/veloria/walletd/internal/infrastructure/metrics"
)

// DepositUseCase handles the deposit request workflow.
type DepositUseCase struct {
	txManager   TransactionManager
	walletRepo  WalletRepository
	depositRepo DepositRequestRepository
	outboxRepo  OutboxRepository
	mutator     *balanceMutator
	idGen       IDGenerator
	metrics     *metrics.Metrics
	retrier     Retrier
}

// NewDepositUseCase creates a new DepositUseCase.
func NewDepositUseCase(
	txManager TransactionManager,
	walletRepo WalletRepository,
	entryRepo EntryRepository,
	depositRepo DepositRequestRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *DepositUseCase {
	return &DepositUseCase{
		txManager:   txManager,
		walletRepo:  walletRepo,
		depositRepo: depositRepo,
		outboxRepo:  outboxRepo,
		mutator:     newBalanceMutator(walletRepo, entryRepo, idGen),
		idGen:       idGen,
		metrics:     metrics,
	}
}

// WithRetrier configures retry behavior for approval transactions.
func (uc *DepositUseCase) WithRetrier(retrier Retrier) *DepositUseCase {
	uc.retrier = retrier
	return uc
}

// CreateDepositRequestInput represents input for creating a deposit request.
type CreateDepositRequestInput struct {
	UserID     string
	Amount     decimal.Decimal
	ProofImage string
}

// CreateDepositRequest records a pending deposit claim. No balance effect
// until an approver accepts it.
func (uc *DepositUseCase) CreateDepositRequest(ctx context.Context, input CreateDepositRequestInput) (*domain.DepositRequest, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	req := &domain.DepositRequest{
		ID:         uc.idGen.Generate(),
		UserID:     input.UserID,
		Amount:     input.Amount,
		ProofImage: input.ProofImage,
		Status:     domain.RequestStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := uc.depositRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DepositRequestsCreated.Inc()
	}

	return req, nil
}

// ApproveDeposit credits the requester's wallet and marks the request
// approved as one atomic unit. The wallet is created on first deposit.
// A request that is not pending anymore fails with domain.ErrAlreadyProcessed
// and has no effect.
func (uc *DepositUseCase) ApproveDeposit(ctx context.Context, requestID, approverID string) (*domain.Wallet, error) {
	start := time.Now()

	var (
		req    *domain.DepositRequest
		wallet *domain.Wallet
	)

	err := runTransition(ctx, uc.txManager, uc.retrier, transitionSteps{
		lock: func(ctx context.Context, tx Transaction) (bool, error) {
			var err error
			req, err = uc.depositRepo.GetByIDForUpdate(ctx, tx, requestID)
			if err != nil {
				return false, err
			}
			return req.Status == domain.RequestStatusPending, nil
		},
		effect: func(ctx context.Context, tx Transaction, now time.Time) error {
			candidate := &domain.Wallet{
				ID:        uc.idGen.Generate(),
				UserID:    req.UserID,
				Balance:   decimal.Zero,
				Currency:  domain.DefaultCurrency,
				CreatedAt: now,
				UpdatedAt: now,
			}

			var created bool
			var err error
			wallet, created, err = uc.walletRepo.GetOrCreateForUpdate(ctx, tx, candidate)
			if err != nil {
				return err
			}

			if created {
				if err := uc.outboxRepo.Create(ctx, tx, walletCreatedEvent(uc.idGen.Generate(), wallet, now)); err != nil {
					return err
				}
			}

			_, err = uc.mutator.mutate(ctx, tx, wallet, domain.EntryKindDeposit, req.Amount, "Deposit request approved", now)
			return err
		},
		advance: func(ctx context.Context, tx Transaction, now time.Time) error {
			if err := uc.depositRepo.UpdateStatus(ctx, tx, req.ID, domain.RequestStatusApproved, approverID, now); err != nil {
				return err
			}

			return uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
				ID:            uc.idGen.Generate(),
				AggregateID:   req.ID,
				AggregateType: domain.AggregateTypeDepositRequest,
				EventType:     domain.EventTypeDepositApproved,
				Payload: map[string]any{
					"request_id":  req.ID,
					"user_id":     req.UserID,
					"wallet_id":   wallet.ID,
					"amount":      req.Amount.String(),
					"approved_by": approverID,
				},
				CreatedAt: now,
				Published: false,
			})
		},
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DepositsApproved.Inc()
		uc.metrics.ApprovalDuration.Observe(time.Since(start).Seconds())
	}

	return wallet, nil
}

// RejectDeposit marks a pending deposit request rejected. No balance effect.
func (uc *DepositUseCase) RejectDeposit(ctx context.Context, requestID, approverID string) error {
	var req *domain.DepositRequest

	err := runTransition(ctx, uc.txManager, uc.retrier, transitionSteps{
		lock: func(ctx context.Context, tx Transaction) (bool, error) {
			var err error
			req, err = uc.depositRepo.GetByIDForUpdate(ctx, tx, requestID)
			if err != nil {
				return false, err
			}
			return req.Status == domain.RequestStatusPending, nil
		},
		advance: func(ctx context.Context, tx Transaction, now time.Time) error {
			if err := uc.depositRepo.UpdateStatus(ctx, tx, req.ID, domain.RequestStatusRejected, approverID, now); err != nil {
				return err
			}

			return uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
				ID:            uc.idGen.Generate(),
				AggregateID:   req.ID,
				AggregateType: domain.AggregateTypeDepositRequest,
				EventType:     domain.EventTypeDepositRejected,
				Payload: map[string]any{
					"request_id": req.ID,
					"user_id":    req.UserID,
					"amount":     req.Amount.String(),
				},
				CreatedAt: now,
				Published: false,
			})
		},
	})
	if err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.DepositsRejected.Inc()
	}

	return nil
}

// ListDepositRequestsInput represents input for listing deposit requests.
type ListDepositRequestsInput struct {
	UserID string // empty lists all users
	Limit  int
	Offset int
}

// ListDepositRequests lists deposit requests, newest first.
func (uc *DepositUseCase) ListDepositRequests(ctx context.Context, input ListDepositRequestsInput) ([]*domain.DepositRequest, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	if input.UserID != "" {
		return uc.depositRepo.ListByUser(ctx, input.UserID, limit, offset)
	}

	return uc.depositRepo.List(ctx, limit, offset)
}
