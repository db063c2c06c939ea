package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/studiofin/studiofin/internal/domain"
	"github.com/studiofin/studiofin/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository over
// the append-mostly ledger table.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `id, date, type, category_id, description, amount, invoice_id, participant_id, created_by, created_at`

const createTransactionQuery = `
INSERT INTO transactions (` + transactionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// Create appends a ledger entry.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Tx, transaction *domain.Transaction) error {
	_, err := txConn(tx).Exec(ctx, createTransactionQuery,
		transaction.ID,
		timeToPgTimestamptz(transaction.Date),
		string(transaction.Type),
		transaction.CategoryID,
		transaction.Description,
		decimalToNumeric(transaction.Amount),
		transaction.InvoiceID,
		transaction.ParticipantID,
		transaction.CreatedBy,
		timeToPgTimestamptz(transaction.CreatedAt),
	)

	return err
}

const getTransactionQuery = `
SELECT ` + transactionColumns + `
FROM transactions
WHERE id = $1`

// GetByID retrieves a ledger entry by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	transaction, err := scanTransaction(r.pool.QueryRow(ctx, getTransactionQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return transaction, nil
}

const listTransactionsQuery = `
SELECT ` + transactionColumns + `
FROM transactions
WHERE ($1 = 0 OR (EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2))
ORDER BY date DESC, created_at DESC
LIMIT $3 OFFSET $4`

// List lists ledger entries newest first, optionally restricted to one
// calendar month.
func (r *TransactionRepository) List(ctx context.Context, filter usecase.TransactionFilter) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, listTransactionsQuery,
		filter.Year,
		int(filter.Month),
		int32(filter.Limit),
		int32(filter.Offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

const recentTransactionsQuery = `
SELECT ` + transactionColumns + `
FROM transactions
ORDER BY date DESC, created_at DESC
LIMIT $1`

// Recent lists the newest entries.
func (r *TransactionRepository) Recent(ctx context.Context, limit int) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, recentTransactionsQuery, int32(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

const totalCashQuery = `
SELECT COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0)
FROM transactions`

// TotalCash returns the signed sum over the whole ledger.
func (r *TransactionRepository) TotalCash(ctx context.Context) (decimal.Decimal, error) {
	var total pgtype.Numeric
	if err := r.pool.QueryRow(ctx, totalCashQuery).Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

const deleteTransactionQuery = `
DELETE FROM transactions
WHERE id = $1`

// Delete removes a ledger entry.
func (r *TransactionRepository) Delete(ctx context.Context, tx usecase.Tx, id string) error {
	tag, err := txConn(tx).Exec(ctx, deleteTransactionQuery, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

func collectTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	return transactions, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		transaction domain.Transaction
		tType       string
		date        pgtype.Timestamptz
		amount      pgtype.Numeric
		createdAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&transaction.ID,
		&date,
		&tType,
		&transaction.CategoryID,
		&transaction.Description,
		&amount,
		&transaction.InvoiceID,
		&transaction.ParticipantID,
		&transaction.CreatedBy,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	transaction.Date = date.Time
	transaction.Type = domain.TransactionType(tType)
	transaction.Amount = numericToDecimal(amount)
	transaction.CreatedAt = createdAt.Time

	return &transaction, nil
}
