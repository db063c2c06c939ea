package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studiofin/studiofin/internal/domain"
	"github.com/studiofin/studiofin/internal/usecase"
)

// MockTx is a mock implementation of usecase.Tx.
type MockTx struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTx) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTx) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTxManager is a mock implementation of usecase.TxManager.
type MockTxManager struct {
	mu    sync.Mutex
	Txs   []*MockTx
	Fails bool

	BeginFunc func(ctx context.Context) (usecase.Tx, error)
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

func (m *MockTxManager) Begin(ctx context.Context) (usecase.Tx, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	if m.Fails {
		return nil, fmt.Errorf("begin failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTx{}
	m.Txs = append(m.Txs, tx)
	return tx, nil
}

// MockIDGenerator is a mock implementation of usecase.IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
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
	return fmt.Sprintf("id-%d", m.counter)
}

// MockSettingsRepository is a mock implementation of
// usecase.SettingsRepository.
type MockSettingsRepository struct {
	mu       sync.RWMutex
	Settings *domain.Settings

	GetFunc    func(ctx context.Context) (*domain.Settings, error)
	UpdateFunc func(ctx context.Context, settings *domain.Settings) error
}

func NewMockSettingsRepository(settings *domain.Settings) *MockSettingsRepository {
	return &MockSettingsRepository{Settings: settings}
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Settings == nil {
		return nil, domain.ErrSettingsNotFound
	}
	copied := *m.Settings
	return &copied, nil
}

func (m *MockSettingsRepository) Update(ctx context.Context, settings *domain.Settings) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, settings)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *settings
	m.Settings = &copied
	return nil
}

// MockFundRepository is a mock implementation of usecase.FundRepository.
type MockFundRepository struct {
	mu   sync.RWMutex
	Fund *domain.Fund

	GetFunc       func(ctx context.Context) (*domain.Fund, error)
	IncrementFunc func(ctx context.Context, tx usecase.Tx, delta decimal.Decimal, updatedAt time.Time) error
}

func NewMockFundRepository(fund *domain.Fund) *MockFundRepository {
	return &MockFundRepository{Fund: fund}
}

func (m *MockFundRepository) Get(ctx context.Context) (*domain.Fund, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Fund == nil {
		return nil, domain.ErrFundNotFound
	}
	copied := *m.Fund
	return &copied, nil
}

func (m *MockFundRepository) GetForUpdate(ctx context.Context, tx usecase.Tx) (*domain.Fund, error) {
	return m.Get(ctx)
}

func (m *MockFundRepository) Increment(ctx context.Context, tx usecase.Tx, delta decimal.Decimal, updatedAt time.Time) error {
	if m.IncrementFunc != nil {
		return m.IncrementFunc(ctx, tx, delta, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Fund.CurrentBalance = domain.RoundMoney(m.Fund.CurrentBalance.Add(delta))
	m.Fund.UpdatedAt = updatedAt
	return nil
}

// MockParticipantRepository is a mock implementation of
// usecase.ParticipantRepository. Roster order is preserved.
type MockParticipantRepository struct {
	mu           sync.RWMutex
	Participants []domain.Participant

	GetEligibleFunc func(ctx context.Context) ([]domain.Participant, error)
}

func NewMockParticipantRepository(participants ...domain.Participant) *MockParticipantRepository {
	return &MockParticipantRepository{Participants: participants}
}

func (m *MockParticipantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.Participants {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, domain.ErrParticipantNotFound
}

func (m *MockParticipantRepository) GetEligible(ctx context.Context) ([]domain.Participant, error) {
	if m.GetEligibleFunc != nil {
		return m.GetEligibleFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var eligible []domain.Participant
	for _, p := range m.Participants {
		if p.Active {
			eligible = append(eligible, p)
		}
	}
	return eligible, nil
}

func (m *MockParticipantRepository) List(ctx context.Context) ([]domain.Participant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Participant(nil), m.Participants...), nil
}

// MockBalanceRepository is a mock implementation of
// usecase.BalanceRepository with real increment arithmetic.
type MockBalanceRepository struct {
	mu       sync.RWMutex
	Balances map[string]*domain.Balance

	AddEarningFunc func(ctx context.Context, tx usecase.Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error
}

func NewMockBalanceRepository() *MockBalanceRepository {
	return &MockBalanceRepository{Balances: make(map[string]*domain.Balance)}
}

func (m *MockBalanceRepository) Seed(participantID string, available string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	amount, _ := decimal.NewFromString(available)
	m.Balances[participantID] = &domain.Balance{
		ParticipantID: participantID,
		Available:     amount,
		TotalEarned:   amount,
	}
}

func (m *MockBalanceRepository) Get(ctx context.Context, participantID string) (*domain.Balance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.Balances[participantID]
	if !ok {
		return nil, domain.ErrBalanceNotFound
	}
	copied := *b
	return &copied, nil
}

func (m *MockBalanceRepository) GetForUpdate(ctx context.Context, tx usecase.Tx, participantID string) (*domain.Balance, error) {
	return m.Get(ctx, participantID)
}

func (m *MockBalanceRepository) List(ctx context.Context) ([]*domain.Balance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var balances []*domain.Balance
	for _, b := range m.Balances {
		copied := *b
		balances = append(balances, &copied)
	}
	return balances, nil
}

func (m *MockBalanceRepository) ensure(participantID string) *domain.Balance {
	b, ok := m.Balances[participantID]
	if !ok {
		b = &domain.Balance{ParticipantID: participantID}
		m.Balances[participantID] = b
	}
	return b
}

func (m *MockBalanceRepository) AddEarning(ctx context.Context, tx usecase.Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error {
	if m.AddEarningFunc != nil {
		return m.AddEarningFunc(ctx, tx, participantID, amount, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.ensure(participantID)
	b.Available = domain.RoundMoney(b.Available.Add(amount))
	b.TotalEarned = domain.RoundMoney(b.TotalEarned.Add(amount))
	b.UpdatedAt = updatedAt
	return nil
}

func (m *MockBalanceRepository) Withdraw(ctx context.Context, tx usecase.Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.ensure(participantID)
	b.Available = domain.RoundMoney(b.Available.Sub(amount))
	b.TotalWithdrawn = domain.RoundMoney(b.TotalWithdrawn.Add(amount))
	b.UpdatedAt = updatedAt
	return nil
}

func (m *MockBalanceRepository) RefundWithdrawal(ctx context.Context, tx usecase.Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.ensure(participantID)
	b.Available = domain.RoundMoney(b.Available.Add(amount))
	b.TotalWithdrawn = domain.RoundMoney(b.TotalWithdrawn.Sub(amount))
	b.UpdatedAt = updatedAt
	return nil
}

func (m *MockBalanceRepository) Credit(ctx context.Context, tx usecase.Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.ensure(participantID)
	b.Available = domain.RoundMoney(b.Available.Add(amount))
	b.UpdatedAt = updatedAt
	return nil
}

func (m *MockBalanceRepository) Debit(ctx context.Context, tx usecase.Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.ensure(participantID)
	b.Available = domain.RoundMoney(b.Available.Sub(amount))
	b.UpdatedAt = updatedAt
	return nil
}

// MockJobRepository is a mock implementation of usecase.JobRepository.
type MockJobRepository struct {
	mu    sync.RWMutex
	Jobs  map[string]*domain.Job
	order []string
}

func NewMockJobRepository() *MockJobRepository {
	return &MockJobRepository{Jobs: make(map[string]*domain.Job)}
}

func (m *MockJobRepository) Create(ctx context.Context, job *domain.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *job
	m.Jobs[job.ID] = &copied
	m.order = append(m.order, job.ID)
	return nil
}

func (m *MockJobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.Jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (m *MockJobRepository) GetAvailableByIDs(ctx context.Context, tx usecase.Tx, ids []string) ([]*domain.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var jobs []*domain.Job
	for _, id := range ids {
		job, ok := m.Jobs[id]
		if !ok || job.Status != domain.JobAvailable {
			continue
		}
		copied := *job
		jobs = append(jobs, &copied)
	}
	return jobs, nil
}

func (m *MockJobRepository) List(ctx context.Context, limit, offset int) ([]*domain.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var jobs []*domain.Job
	for _, id := range m.order {
		copied := *m.Jobs[id]
		jobs = append(jobs, &copied)
	}
	return jobs, nil
}

func (m *MockJobRepository) SetStatus(ctx context.Context, tx usecase.Tx, ids []string, status domain.JobStatus, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		if job, ok := m.Jobs[id]; ok {
			job.Status = status
			job.UpdatedAt = updatedAt
		}
	}
	return nil
}

func (m *MockJobRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Jobs, id)
	return nil
}

// MockInvoiceRepository is a mock implementation of
// usecase.InvoiceRepository.
type MockInvoiceRepository struct {
	mu           sync.RWMutex
	Invoices     map[string]*domain.Invoice
	Participants map[string][]string
	counter      int

	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Tx, id string) (*domain.Invoice, error)
	SetStatusFunc        func(ctx context.Context, tx usecase.Tx, id string, status domain.InvoiceStatus, paidAt *time.Time, updatedAt time.Time) error
}

func NewMockInvoiceRepository() *MockInvoiceRepository {
	return &MockInvoiceRepository{
		Invoices:     make(map[string]*domain.Invoice),
		Participants: make(map[string][]string),
	}
}

func (m *MockInvoiceRepository) Create(ctx context.Context, tx usecase.Tx, invoice *domain.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *invoice
	m.Invoices[invoice.ID] = &copied
	return nil
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	invoice, ok := m.Invoices[id]
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	copied := *invoice
	return &copied, nil
}

func (m *MockInvoiceRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Tx, id string) (*domain.Invoice, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockInvoiceRepository) List(ctx context.Context, limit, offset int) ([]*domain.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var invoices []*domain.Invoice
	for _, invoice := range m.Invoices {
		copied := *invoice
		invoices = append(invoices, &copied)
	}
	return invoices, nil
}

func (m *MockInvoiceRepository) SetStatus(ctx context.Context, tx usecase.Tx, id string, status domain.InvoiceStatus, paidAt *time.Time, updatedAt time.Time) error {
	if m.SetStatusFunc != nil {
		return m.SetStatusFunc(ctx, tx, id, status, paidAt, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	invoice, ok := m.Invoices[id]
	if !ok {
		return domain.ErrInvoiceNotFound
	}
	invoice.Status = status
	invoice.PaidAt = paidAt
	invoice.UpdatedAt = updatedAt
	return nil
}

func (m *MockInvoiceRepository) LinkJobs(ctx context.Context, tx usecase.Tx, invoiceID string, jobIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if invoice, ok := m.Invoices[invoiceID]; ok {
		invoice.JobIDs = append([]string(nil), jobIDs...)
	}
	return nil
}

func (m *MockInvoiceRepository) UnlinkJobs(ctx context.Context, tx usecase.Tx, invoiceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if invoice, ok := m.Invoices[invoiceID]; ok {
		invoice.JobIDs = nil
	}
	return nil
}

func (m *MockInvoiceRepository) RecordParticipants(ctx context.Context, tx usecase.Tx, invoiceID string, participantIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Participants[invoiceID] = append([]string(nil), participantIDs...)
	return nil
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, tx usecase.Tx, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Invoices, id)
	return nil
}

func (m *MockInvoiceRepository) NextNumber(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("INV-%04d", m.counter), nil
}

func (m *MockInvoiceRepository) SumByStatus(ctx context.Context, status domain.InvoiceStatus) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, invoice := range m.Invoices {
		if invoice.Status == status {
			total = total.Add(invoice.TotalAmount)
		}
	}
	return total, nil
}

// MockTransactionRepository is a mock implementation of
// usecase.TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	Transactions []*domain.Transaction

	CreateFunc    func(ctx context.Context, tx usecase.Tx, transaction *domain.Transaction) error
	TotalCashFunc func(ctx context.Context) (decimal.Decimal, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Tx, transaction *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, transaction)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *transaction
	m.Transactions = append(m.Transactions, &copied)
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.Transactions {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) List(ctx context.Context, filter usecase.TransactionFilter) ([]*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Transaction
	for _, t := range m.Transactions {
		if filter.Year != 0 {
			if t.Date.Year() != filter.Year || t.Date.Month() != filter.Month {
				continue
			}
		}
		copied := *t
		out = append(out, &copied)
	}
	return out, nil
}

func (m *MockTransactionRepository) Recent(ctx context.Context, limit int) ([]*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Transaction
	for i := len(m.Transactions) - 1; i >= 0 && len(out) < limit; i-- {
		copied := *m.Transactions[i]
		out = append(out, &copied)
	}
	return out, nil
}

func (m *MockTransactionRepository) TotalCash(ctx context.Context) (decimal.Decimal, error) {
	if m.TotalCashFunc != nil {
		return m.TotalCashFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.TotalCash(m.Transactions), nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, tx usecase.Tx, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.Transactions {
		if t.ID == id {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

// MockClientRepository is a mock implementation of
// usecase.ClientRepository.
type MockClientRepository struct {
	mu      sync.RWMutex
	Clients map[string]*domain.Client
}

func NewMockClientRepository(clients ...*domain.Client) *MockClientRepository {
	m := &MockClientRepository{Clients: make(map[string]*domain.Client)}
	for _, c := range clients {
		m.Clients[c.ID] = c
	}
	return m
}

func (m *MockClientRepository) Create(ctx context.Context, client *domain.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *client
	m.Clients[client.ID] = &copied
	return nil
}

func (m *MockClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	client, ok := m.Clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	copied := *client
	return &copied, nil
}

func (m *MockClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var clients []*domain.Client
	for _, c := range m.Clients {
		copied := *c
		clients = append(clients, &copied)
	}
	return clients, nil
}

func (m *MockClientRepository) Update(ctx context.Context, client *domain.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Clients[client.ID]; !ok {
		return domain.ErrClientNotFound
	}
	copied := *client
	m.Clients[client.ID] = &copied
	return nil
}

// MockCategoryRepository is a mock implementation of
// usecase.CategoryRepository.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	Categories map[string]*domain.Category
}

func NewMockCategoryRepository(categories ...*domain.Category) *MockCategoryRepository {
	m := &MockCategoryRepository{Categories: make(map[string]*domain.Category)}
	for _, c := range categories {
		m.Categories[c.ID] = c
	}
	return m
}

// NewMockCategoryRepositoryWithSystem seeds the two system categories
// the settlement flow depends on.
func NewMockCategoryRepositoryWithSystem() *MockCategoryRepository {
	return NewMockCategoryRepository(
		&domain.Category{ID: "cat-tax", Name: "Tax", Slug: "tax", System: true},
		&domain.Category{ID: "cat-fund", Name: "Fund contribution", Slug: "fund_contribution", System: true},
	)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *category
	m.Categories[category.ID] = &copied
	return nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	category, ok := m.Categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.Categories {
		if c.Slug == slug {
			copied := *c
			return &copied, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var categories []*domain.Category
	for _, c := range m.Categories {
		copied := *c
		categories = append(categories, &copied)
	}
	return categories, nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Categories, id)
	return nil
}

// MockWorkTypeRepository is a mock implementation of
// usecase.WorkTypeRepository.
type MockWorkTypeRepository struct {
	mu        sync.RWMutex
	WorkTypes map[string]*domain.WorkType
}

func NewMockWorkTypeRepository() *MockWorkTypeRepository {
	return &MockWorkTypeRepository{WorkTypes: make(map[string]*domain.WorkType)}
}

func (m *MockWorkTypeRepository) Create(ctx context.Context, workType *domain.WorkType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *workType
	m.WorkTypes[workType.ID] = &copied
	return nil
}

func (m *MockWorkTypeRepository) List(ctx context.Context) ([]*domain.WorkType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var workTypes []*domain.WorkType
	for _, wt := range m.WorkTypes {
		copied := *wt
		workTypes = append(workTypes, &copied)
	}
	return workTypes, nil
}

func (m *MockWorkTypeRepository) Update(ctx context.Context, workType *domain.WorkType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.WorkTypes[workType.ID]; !ok {
		return domain.ErrWorkTypeNotFound
	}
	copied := *workType
	m.WorkTypes[workType.ID] = &copied
	return nil
}

// MockCache is a mock implementation of usecase.Cache.
type MockCache struct {
	mu    sync.RWMutex
	Items map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Items: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.Items[key]
	if !ok {
		return nil, fmt.Errorf("cache miss")
	}
	return value, nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Items, key)
	return nil
}
