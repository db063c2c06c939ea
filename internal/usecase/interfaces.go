package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studiofin/studiofin/internal/domain"
)

// SettingsRepository defines data access for the settings singleton.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, settings *domain.Settings) error
}

// FundRepository defines data access for the reserve fund singleton.
// Increment applies `current_balance += delta` as a single atomic
// statement at the storage layer; delta may be negative.
type FundRepository interface {
	Get(ctx context.Context) (*domain.Fund, error)
	GetForUpdate(ctx context.Context, tx Tx) (*domain.Fund, error)
	Increment(ctx context.Context, tx Tx, delta decimal.Decimal, updatedAt time.Time) error
}

// ParticipantRepository defines data access for distribution-eligible
// participants.
type ParticipantRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Participant, error)
	GetEligible(ctx context.Context) ([]domain.Participant, error)
	List(ctx context.Context) ([]domain.Participant, error)
}

// BalanceRepository defines data access for participant balances.
// Every mutation is an atomic SQL increment, never a read-then-write
// round trip from application code.
type BalanceRepository interface {
	Get(ctx context.Context, participantID string) (*domain.Balance, error)
	GetForUpdate(ctx context.Context, tx Tx, participantID string) (*domain.Balance, error)
	List(ctx context.Context) ([]*domain.Balance, error)
	// AddEarning applies available += amount, total_earned += amount.
	AddEarning(ctx context.Context, tx Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error
	// Withdraw applies available -= amount, total_withdrawn += amount.
	Withdraw(ctx context.Context, tx Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error
	// RefundWithdrawal reverses Withdraw when a payout entry is deleted.
	RefundWithdrawal(ctx context.Context, tx Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error
	// Credit applies available += amount without touching totals
	// (bonus issuance).
	Credit(ctx context.Context, tx Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error
	// Debit applies available -= amount without touching totals
	// (return to fund).
	Debit(ctx context.Context, tx Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error
}

// JobRepository defines data access for jobs.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	GetAvailableByIDs(ctx context.Context, tx Tx, ids []string) ([]*domain.Job, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Job, error)
	SetStatus(ctx context.Context, tx Tx, ids []string, status domain.JobStatus, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// InvoiceRepository defines data access for invoices and their
// job links.
type InvoiceRepository interface {
	Create(ctx context.Context, tx Tx, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	GetByIDForUpdate(ctx context.Context, tx Tx, id string) (*domain.Invoice, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Invoice, error)
	SetStatus(ctx context.Context, tx Tx, id string, status domain.InvoiceStatus, paidAt *time.Time, updatedAt time.Time) error
	LinkJobs(ctx context.Context, tx Tx, invoiceID string, jobIDs []string) error
	UnlinkJobs(ctx context.Context, tx Tx, invoiceID string) error
	RecordParticipants(ctx context.Context, tx Tx, invoiceID string, participantIDs []string) error
	Delete(ctx context.Context, tx Tx, id string) error
	NextNumber(ctx context.Context) (string, error)
	SumByStatus(ctx context.Context, status domain.InvoiceStatus) (decimal.Decimal, error)
}

// TransactionFilter restricts a ledger listing.
type TransactionFilter struct {
	Year   int
	Month  time.Month
	Limit  int
	Offset int
}

// TransactionRepository defines data access for ledger entries.
type TransactionRepository interface {
	Create(ctx context.Context, tx Tx, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]*domain.Transaction, error)
	Recent(ctx context.Context, limit int) ([]*domain.Transaction, error)
	// TotalCash returns the signed sum over the whole ledger.
	TotalCash(ctx context.Context) (decimal.Decimal, error)
	Delete(ctx context.Context, tx Tx, id string) error
}

// ClientRepository defines data access for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
}

// CategoryRepository defines data access for expense categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// WorkTypeRepository defines data access for work types.
type WorkTypeRepository interface {
	Create(ctx context.Context, workType *domain.WorkType) error
	List(ctx context.Context) ([]*domain.WorkType, error)
	Update(ctx context.Context, workType *domain.WorkType) error
}

// Tx represents a database transaction.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxManager handles transaction lifecycle.
type TxManager interface {
	Begin(ctx context.Context) (Tx, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient storage conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
