package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloria/walletd/internal/domain"
	"github.com/veloria/walletd/internal/usecase"
)

// MockWalletRepository is an in-memory WalletRepository. Behavior can be
// overridden per method through the Func fields.
type MockWalletRepository struct {
	mu      sync.RWMutex
	wallets map[string]*domain.Wallet

	CreateFunc               func(ctx context.Context, tx usecase.Transaction, wallet *domain.Wallet) error
	GetByIDFunc              func(ctx context.Context, id string) (*domain.Wallet, error)
	GetByUserIDFunc          func(ctx context.Context, userID string) (*domain.Wallet, error)
	GetByUserIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, userID string) (*domain.Wallet, error)
	GetOrCreateForUpdateFunc func(ctx context.Context, tx usecase.Transaction, candidate *domain.Wallet) (*domain.Wallet, bool, error)
	UpdateBalanceFunc        func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	ListFunc                 func(ctx context.Context, limit, offset int) ([]*domain.Wallet, error)
}

func NewMockWalletRepository() *MockWalletRepository {
	return &MockWalletRepository{
		wallets: make(map[string]*domain.Wallet),
	}
}

// Put seeds a wallet directly, bypassing uniqueness checks.
func (m *MockWalletRepository) Put(wallet *domain.Wallet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wallets[wallet.ID] = wallet
}

func (m *MockWalletRepository) Create(ctx context.Context, tx usecase.Transaction, wallet *domain.Wallet) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, wallet)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.wallets {
		if w.UserID == wallet.UserID {
			return domain.ErrWalletExists
		}
	}
	m.wallets[wallet.ID] = wallet
	return nil
}

func (m *MockWalletRepository) GetByID(ctx context.Context, id string) (*domain.Wallet, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if w, ok := m.wallets[id]; ok {
		return w, nil
	}
	return nil, domain.ErrWalletNotFound
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, w := range m.wallets {
		if w.UserID == userID {
			return w, nil
		}
	}
	return nil, domain.ErrWalletNotFound
}

func (m *MockWalletRepository) GetByUserIDForUpdate(ctx context.Context, tx usecase.Transaction, userID string) (*domain.Wallet, error) {
	if m.GetByUserIDForUpdateFunc != nil {
		return m.GetByUserIDForUpdateFunc(ctx, tx, userID)
	}
	return m.GetByUserID(ctx, userID)
}

func (m *MockWalletRepository) GetOrCreateForUpdate(ctx context.Context, tx usecase.Transaction, candidate *domain.Wallet) (*domain.Wallet, bool, error) {
	if m.GetOrCreateForUpdateFunc != nil {
		return m.GetOrCreateForUpdateFunc(ctx, tx, candidate)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.wallets {
		if w.UserID == candidate.UserID {
			return w, false, nil
		}
	}
	m.wallets[candidate.ID] = candidate
	return candidate, true, nil
}

func (m *MockWalletRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.wallets[id]; ok {
		w.Balance = balance
		w.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockWalletRepository) List(ctx context.Context, limit, offset int) ([]*domain.Wallet, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	wallets := make([]*domain.Wallet, 0, len(m.wallets))
	for _, w := range m.wallets {
		wallets = append(wallets, w)
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].ID < wallets[j].ID })
	if offset >= len(wallets) {
		return nil, nil
	}
	wallets = wallets[offset:]
	if limit < len(wallets) {
		wallets = wallets[:limit]
	}
	return wallets, nil
}

// MockEntryRepository is an in-memory EntryRepository.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries []*domain.Entry

	CreateFunc         func(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error
	ListByWalletFunc   func(ctx context.Context, walletID string, filter domain.EntryFilter, limit, offset int) ([]*domain.Entry, error)
	SumByWalletFunc    func(ctx context.Context, walletID string) (decimal.Decimal, error)
	LastByWalletFunc   func(ctx context.Context, walletID string) (*domain.Entry, error)
	PurchaseTotalsFunc func(ctx context.Context, from, to *time.Time) (decimal.Decimal, int64, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{}
}

// Entries returns a snapshot of everything appended so far.
func (m *MockEntryRepository) Entries() []*domain.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *MockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MockEntryRepository) ListByWallet(ctx context.Context, walletID string, filter domain.EntryFilter, limit, offset int) ([]*domain.Entry, error) {
	if m.ListByWalletFunc != nil {
		return m.ListByWalletFunc(ctx, walletID, filter, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Entry
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]
		if e.WalletID != walletID {
			continue
		}
		if filter.Kind != nil && e.Kind != *filter.Kind {
			continue
		}
		if filter.From != nil && e.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !e.CreatedAt.Before(*filter.To) {
			continue
		}
		out = append(out, e)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockEntryRepository) SumByWallet(ctx context.Context, walletID string) (decimal.Decimal, error) {
	if m.SumByWalletFunc != nil {
		return m.SumByWalletFunc(ctx, walletID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, e := range m.entries {
		if e.WalletID == walletID {
			sum = sum.Add(e.SignedAmount())
		}
	}
	return sum, nil
}

func (m *MockEntryRepository) LastByWallet(ctx context.Context, walletID string) (*domain.Entry, error) {
	if m.LastByWalletFunc != nil {
		return m.LastByWalletFunc(ctx, walletID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].WalletID == walletID {
			return m.entries[i], nil
		}
	}
	return nil, nil
}

func (m *MockEntryRepository) PurchaseTotals(ctx context.Context, from, to *time.Time) (decimal.Decimal, int64, error) {
	if m.PurchaseTotalsFunc != nil {
		return m.PurchaseTotalsFunc(ctx, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	var count int64
	for _, e := range m.entries {
		if e.Kind != domain.EntryKindPurchase {
			continue
		}
		if from != nil && e.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && !e.CreatedAt.Before(*to) {
			continue
		}
		total = total.Add(e.Amount)
		count++
	}
	return total, count, nil
}

// MockDepositRequestRepository is an in-memory DepositRequestRepository.
type MockDepositRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]*domain.DepositRequest

	CreateFunc           func(ctx context.Context, req *domain.DepositRequest) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.DepositRequest, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.DepositRequest, error)
	UpdateStatusFunc     func(ctx context.Context, tx usecase.Transaction, id string, status domain.RequestStatus, approvedBy string, processedAt time.Time) error
	ListFunc             func(ctx context.Context, limit, offset int) ([]*domain.DepositRequest, error)
	ListByUserFunc       func(ctx context.Context, userID string, limit, offset int) ([]*domain.DepositRequest, error)
}

func NewMockDepositRequestRepository() *MockDepositRequestRepository {
	return &MockDepositRequestRepository{
		requests: make(map[string]*domain.DepositRequest),
	}
}

func (m *MockDepositRequestRepository) Create(ctx context.Context, req *domain.DepositRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[req.ID] = req
	return nil
}

func (m *MockDepositRequestRepository) GetByID(ctx context.Context, id string) (*domain.DepositRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, domain.ErrRequestNotFound
}

func (m *MockDepositRequestRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.DepositRequest, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockDepositRequestRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.RequestStatus, approvedBy string, processedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, id, status, approvedBy, processedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.requests[id]
	if !ok {
		return domain.ErrRequestNotFound
	}
	if r.Status != domain.RequestStatusPending {
		return domain.ErrAlreadyProcessed
	}
	r.Status = status
	r.ApprovedBy = approvedBy
	r.ProcessedAt = &processedAt
	r.UpdatedAt = processedAt
	return nil
}

func (m *MockDepositRequestRepository) List(ctx context.Context, limit, offset int) ([]*domain.DepositRequest, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.DepositRequest
	for _, r := range m.requests {
		out = append(out, r)
	}
	return out, nil
}

func (m *MockDepositRequestRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.DepositRequest, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.DepositRequest
	for _, r := range m.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// MockWithdrawRequestRepository is an in-memory WithdrawRequestRepository.
type MockWithdrawRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]*domain.WithdrawRequest

	CreateFunc           func(ctx context.Context, req *domain.WithdrawRequest) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.WithdrawRequest, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.WithdrawRequest, error)
	UpdateStatusFunc     func(ctx context.Context, tx usecase.Transaction, id string, status domain.RequestStatus, approvedBy, rejectReason string, processedAt time.Time) error
	ListFunc             func(ctx context.Context, limit, offset int) ([]*domain.WithdrawRequest, error)
	ListByUserFunc       func(ctx context.Context, userID string, limit, offset int) ([]*domain.WithdrawRequest, error)
}

func NewMockWithdrawRequestRepository() *MockWithdrawRequestRepository {
	return &MockWithdrawRequestRepository{
		requests: make(map[string]*domain.WithdrawRequest),
	}
}

func (m *MockWithdrawRequestRepository) Create(ctx context.Context, req *domain.WithdrawRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[req.ID] = req
	return nil
}

func (m *MockWithdrawRequestRepository) GetByID(ctx context.Context, id string) (*domain.WithdrawRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, domain.ErrRequestNotFound
}

func (m *MockWithdrawRequestRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.WithdrawRequest, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockWithdrawRequestRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.RequestStatus, approvedBy, rejectReason string, processedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, id, status, approvedBy, rejectReason, processedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.requests[id]
	if !ok {
		return domain.ErrRequestNotFound
	}
	if r.Status != domain.RequestStatusPending {
		return domain.ErrAlreadyProcessed
	}
	r.Status = status
	r.ApprovedBy = approvedBy
	r.RejectReason = rejectReason
	r.ProcessedAt = &processedAt
	r.UpdatedAt = processedAt
	return nil
}

func (m *MockWithdrawRequestRepository) List(ctx context.Context, limit, offset int) ([]*domain.WithdrawRequest, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.WithdrawRequest
	for _, r := range m.requests {
		out = append(out, r)
	}
	return out, nil
}

func (m *MockWithdrawRequestRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.WithdrawRequest, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.WithdrawRequest
	for _, r := range m.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// MockPaymentRequestRepository is an in-memory PaymentRequestRepository.
type MockPaymentRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]*domain.PaymentRequest

	CreateFunc           func(ctx context.Context, req *domain.PaymentRequest) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.PaymentRequest, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.PaymentRequest, error)
	MarkPaidFunc         func(ctx context.Context, tx usecase.Transaction, id string, paidAt time.Time) error
	ListByUserFunc       func(ctx context.Context, userID string, limit, offset int) ([]*domain.PaymentRequest, error)
}

func NewMockPaymentRequestRepository() *MockPaymentRequestRepository {
	return &MockPaymentRequestRepository{
		requests: make(map[string]*domain.PaymentRequest),
	}
}

func (m *MockPaymentRequestRepository) Create(ctx context.Context, req *domain.PaymentRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[req.ID] = req
	return nil
}

func (m *MockPaymentRequestRepository) GetByID(ctx context.Context, id string) (*domain.PaymentRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *MockPaymentRequestRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.PaymentRequest, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockPaymentRequestRepository) MarkPaid(ctx context.Context, tx usecase.Transaction, id string, paidAt time.Time) error {
	if m.MarkPaidFunc != nil {
		return m.MarkPaidFunc(ctx, tx, id, paidAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.requests[id]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	if r.Paid {
		return domain.ErrAlreadyPaid
	}
	r.Paid = true
	r.PaidAt = &paidAt
	return nil
}

func (m *MockPaymentRequestRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.PaymentRequest, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.PaymentRequest
	for _, r := range m.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// MockOutboxRepository is an in-memory OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events []*domain.OutboxEvent

	CreateFunc          func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
	GetUnpublishedFunc  func(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublishedFunc   func(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublishedFunc func(ctx context.Context, before time.Time) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

// Events returns a snapshot of everything recorded so far.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.OutboxEvent, len(m.events))
	copy(out, m.events)
	return out
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if m.GetUnpublishedFunc != nil {
		return m.GetUnpublishedFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	if m.MarkPublishedFunc != nil {
		return m.MarkPublishedFunc(ctx, id, publishedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.ID == id {
			e.Published = true
			e.PublishedAt = &publishedAt
		}
	}
	return nil
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	if m.DeletePublishedFunc != nil {
		return m.DeletePublishedFunc(ctx, before)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []*domain.OutboxEvent
	for _, e := range m.events {
		if e.Published && e.PublishedAt != nil && e.PublishedAt.Before(before) {
			continue
		}
		kept = append(kept, e)
	}
	m.events = kept
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "mock-id-" + string(rune('0'+m.counter))
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}
