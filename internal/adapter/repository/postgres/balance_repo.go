package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/studiofin/studiofin/internal/domain"
	"github.com/studiofin/studiofin/internal/usecase"
)

// BalanceRepository implements usecase.BalanceRepository. All
// mutations are single atomic increment statements; a missing row is
// created lazily by the first earning.
type BalanceRepository struct {
	pool *pgxpool.Pool
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{pool: pool}
}

const balanceColumns = `participant_id, available, total_earned, total_withdrawn, updated_at`

const getBalanceQuery = `
SELECT ` + balanceColumns + `
FROM balances
WHERE participant_id = $1`

// Get retrieves a participant's balance.
func (r *BalanceRepository) Get(ctx context.Context, participantID string) (*domain.Balance, error) {
	return scanBalance(r.pool.QueryRow(ctx, getBalanceQuery, participantID))
}

const getBalanceForUpdateQuery = getBalanceQuery + `
FOR UPDATE`

// GetForUpdate retrieves a participant's balance with a FOR UPDATE
// lock so the withdrawal check and the decrement see the same state.
func (r *BalanceRepository) GetForUpdate(ctx context.Context, tx usecase.Tx, participantID string) (*domain.Balance, error) {
	return scanBalance(txConn(tx).QueryRow(ctx, getBalanceForUpdateQuery, participantID))
}

const listBalancesQuery = `
SELECT ` + balanceColumns + `
FROM balances
ORDER BY participant_id`

// List lists all balances.
func (r *BalanceRepository) List(ctx context.Context) ([]*domain.Balance, error) {
	rows, err := r.pool.Query(ctx, listBalancesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []*domain.Balance
	for rows.Next() {
		b, err := scanBalance(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}

const addEarningQuery = `
INSERT INTO balances (participant_id, available, total_earned, total_withdrawn, updated_at)
VALUES ($1, $2, $2, 0, $3)
ON CONFLICT (participant_id) DO UPDATE
SET available = balances.available + $2,
    total_earned = balances.total_earned + $2,
    updated_at = $3`

// AddEarning credits a settlement share: available and total_earned
// both grow by amount.
func (r *BalanceRepository) AddEarning(ctx context.Context, tx usecase.Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error {
	_, err := txConn(tx).Exec(ctx, addEarningQuery,
		participantID,
		decimalToNumeric(amount),
		timeToPgTimestamptz(updatedAt),
	)

	return err
}

const withdrawQuery = `
UPDATE balances
SET available = available - $2,
    total_withdrawn = total_withdrawn + $2,
    updated_at = $3
WHERE participant_id = $1`

// Withdraw debits a payout: available shrinks, total_withdrawn grows.
func (r *BalanceRepository) Withdraw(ctx context.Context, tx usecase.Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error {
	return r.exec(ctx, tx, withdrawQuery, participantID, amount, updatedAt)
}

const refundWithdrawalQuery = `
UPDATE balances
SET available = available + $2,
    total_withdrawn = total_withdrawn - $2,
    updated_at = $3
WHERE participant_id = $1`

// RefundWithdrawal reverses Withdraw when a payout entry is deleted.
func (r *BalanceRepository) RefundWithdrawal(ctx context.Context, tx usecase.Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error {
	return r.exec(ctx, tx, refundWithdrawalQuery, participantID, amount, updatedAt)
}

const creditQuery = `
UPDATE balances
SET available = available + $2, updated_at = $3
WHERE participant_id = $1`

// Credit grows available without touching totals (bonus issuance).
func (r *BalanceRepository) Credit(ctx context.Context, tx usecase.Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error {
	return r.exec(ctx, tx, creditQuery, participantID, amount, updatedAt)
}

const debitQuery = `
UPDATE balances
SET available = available - $2, updated_at = $3
WHERE participant_id = $1`

// Debit shrinks available without touching totals (return to fund).
func (r *BalanceRepository) Debit(ctx context.Context, tx usecase.Tx, participantID string, amount decimal.Decimal, updatedAt time.Time) error {
	return r.exec(ctx, tx, debitQuery, participantID, amount, updatedAt)
}

func (r *BalanceRepository) exec(ctx context.Context, tx usecase.Tx, query, participantID string, amount decimal.Decimal, updatedAt time.Time) error {
	tag, err := txConn(tx).Exec(ctx, query,
		participantID,
		decimalToNumeric(amount),
		timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrBalanceNotFound
	}

	return nil
}

func scanBalance(row pgx.Row) (*domain.Balance, error) {
	var (
		b              domain.Balance
		available      pgtype.Numeric
		totalEarned    pgtype.Numeric
		totalWithdrawn pgtype.Numeric
		updatedAt      pgtype.Timestamptz
	)

	if err := row.Scan(&b.ParticipantID, &available, &totalEarned, &totalWithdrawn, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBalanceNotFound
		}

		return nil, err
	}

	b.Available = numericToDecimal(available)
	b.TotalEarned = numericToDecimal(totalEarned)
	b.TotalWithdrawn = numericToDecimal(totalWithdrawn)
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
