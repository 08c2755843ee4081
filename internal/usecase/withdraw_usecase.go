package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/domain"
	"github.com/veloria/walletd/internal/infrastructure/metrics"
)

// WithdrawUseCase handles the withdraw request workflow.
type WithdrawUseCase struct {
	txManager    TransactionManager
	walletRepo   WalletRepository
	withdrawRepo WithdrawRequestRepository
	outboxRepo   OutboxRepository
	mutator      *balanceMutator
	idGen        IDGenerator
	metrics      *metrics.Metrics
	retrier      Retrier
}

// NewWithdrawUseCase creates a new WithdrawUseCase.
func NewWithdrawUseCase(
	txManager TransactionManager,
	walletRepo WalletRepository,
	entryRepo EntryRepository,
	withdrawRepo WithdrawRequestRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *WithdrawUseCase {
	return &WithdrawUseCase{
		txManager:    txManager,
		walletRepo:   walletRepo,
		withdrawRepo: withdrawRepo,
		outboxRepo:   outboxRepo,
		mutator:      newBalanceMutator(walletRepo, entryRepo, idGen),
		idGen:        idGen,
		metrics:      metrics,
	}
}

// WithRetrier configures retry behavior for approval transactions.
func (uc *WithdrawUseCase) WithRetrier(retrier Retrier) *WithdrawUseCase {
	uc.retrier = retrier
	return uc
}

// CreateWithdrawRequestInput represents input for creating a withdraw request.
type CreateWithdrawRequestInput struct {
	UserID        string
	Amount        decimal.Decimal
	BankName      string
	AccountName   string
	AccountNumber string
	QRImage       string
}

// CreateWithdrawRequest records a pending withdrawal. The balance check here
// is advisory only: nothing is reserved, so approval re-validates it under
// the wallet row lock.
func (uc *WithdrawUseCase) CreateWithdrawRequest(ctx context.Context, input CreateWithdrawRequestInput) (*domain.WithdrawRequest, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	wallet, err := uc.walletRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := wallet.ValidateDebit(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	req := &domain.WithdrawRequest{
		ID:            uc.idGen.Generate(),
		UserID:        input.UserID,
		Amount:        input.Amount,
		BankName:      input.BankName,
		AccountName:   input.AccountName,
		AccountNumber: input.AccountNumber,
		QRImage:       input.QRImage,
		Status:        domain.RequestStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := uc.withdrawRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.WithdrawRequestsCreated.Inc()
	}

	return req, nil
}

// ApproveWithdraw debits the requester's wallet and marks the request
// approved as one atomic unit. Insufficient balance at approval time fails
// with domain.ErrInsufficientFunds and leaves the request pending.
func (uc *WithdrawUseCase) ApproveWithdraw(ctx context.Context, requestID, approverID string) (*domain.Wallet, error) {
	start := time.Now()

	var (
		req    *domain.WithdrawRequest
		wallet *domain.Wallet
	)

	err := runTransition(ctx, uc.txManager, uc.retrier, transitionSteps{
		lock: func(ctx context.Context, tx Transaction) (bool, error) {
			var err error
			req, err = uc.withdrawRepo.GetByIDForUpdate(ctx, tx, requestID)
			if err != nil {
				return false, err
			}
			return req.Status == domain.RequestStatusPending, nil
		},
		effect: func(ctx context.Context, tx Transaction, now time.Time) error {
			var err error
			wallet, err = uc.walletRepo.GetByUserIDForUpdate(ctx, tx, req.UserID)
			if err != nil {
				return err
			}

			description := fmt.Sprintf("Withdrawal to account %s (%s)", req.AccountNumber, req.BankName)
			_, err = uc.mutator.mutate(ctx, tx, wallet, domain.EntryKindWithdraw, req.Amount, description, now)
			return err
		},
		advance: func(ctx context.Context, tx Transaction, now time.Time) error {
			if err := uc.withdrawRepo.UpdateStatus(ctx, tx, req.ID, domain.RequestStatusApproved, approverID, "", now); err != nil {
				return err
			}

			return uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
				ID:            uc.idGen.Generate(),
				AggregateID:   req.ID,
				AggregateType: domain.AggregateTypeWithdrawRequest,
				EventType:     domain.EventTypeWithdrawApproved,
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
		if uc.metrics != nil && errors.Is(err, domain.ErrInsufficientFunds) {
			uc.metrics.InsufficientFunds.Inc()
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.WithdrawalsApproved.Inc()
		uc.metrics.ApprovalDuration.Observe(time.Since(start).Seconds())
	}

	return wallet, nil
}

// RejectWithdraw marks a pending withdraw request rejected. A non-empty
// reason is mandatory. No balance effect.
func (uc *WithdrawUseCase) RejectWithdraw(ctx context.Context, requestID, approverID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return domain.ErrMissingRejectReason
	}

	var req *domain.WithdrawRequest

	err := runTransition(ctx, uc.txManager, uc.retrier, transitionSteps{
		lock: func(ctx context.Context, tx Transaction) (bool, error) {
			var err error
			req, err = uc.withdrawRepo.GetByIDForUpdate(ctx, tx, requestID)
			if err != nil {
				return false, err
			}
			return req.Status == domain.RequestStatusPending, nil
		},
		advance: func(ctx context.Context, tx Transaction, now time.Time) error {
			if err := uc.withdrawRepo.UpdateStatus(ctx, tx, req.ID, domain.RequestStatusRejected, approverID, reason, now); err != nil {
				return err
			}

			return uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
				ID:            uc.idGen.Generate(),
				AggregateID:   req.ID,
				AggregateType: domain.AggregateTypeWithdrawRequest,
				EventType:     domain.EventTypeWithdrawRejected,
				Payload: map[string]any{
					"request_id": req.ID,
					"user_id":    req.UserID,
					"amount":     req.Amount.String(),
					"reason":     reason,
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
		uc.metrics.WithdrawalsRejected.Inc()
	}

	return nil
}

// ListWithdrawRequestsInput represents input for listing withdraw requests.
type ListWithdrawRequestsInput struct {
	UserID string // empty lists all users
	Limit  int
	Offset int
}

// ListWithdrawRequests lists withdraw requests, newest first.
func (uc *WithdrawUseCase) ListWithdrawRequests(ctx context.Context, input ListWithdrawRequestsInput) ([]*domain.WithdrawRequest, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	if input.UserID != "" {
		return uc.withdrawRepo.ListByUser(ctx, input.UserID, limit, offset)
	}

	return uc.withdrawRepo.List(ctx, limit, offset)
}
