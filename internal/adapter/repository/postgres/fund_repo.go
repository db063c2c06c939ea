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

// FundRepository implements usecase.FundRepository over the single-row
// fund table.
type FundRepository struct {
	pool *pgxpool.Pool
}

// NewFundRepository creates a new FundRepository.
func NewFundRepository(pool *pgxpool.Pool) *FundRepository {
	return &FundRepository{pool: pool}
}

const getFundQuery = `
SELECT current_balance, updated_at
FROM fund
WHERE id = 1`

// Get retrieves the current fund state.
func (r *FundRepository) Get(ctx context.Context) (*domain.Fund, error) {
	return scanFund(r.pool.QueryRow(ctx, getFundQuery))
}

const getFundForUpdateQuery = `
SELECT current_balance, updated_at
FROM fund
WHERE id = 1
FOR UPDATE`

// GetForUpdate retrieves the fund state with a FOR UPDATE lock, so the
// contribution clamp sees a balance no concurrent settlement can move.
func (r *FundRepository) GetForUpdate(ctx context.Context, tx usecase.Tx) (*domain.Fund, error) {
	return scanFund(txConn(tx).QueryRow(ctx, getFundForUpdateQuery))
}

const incrementFundQuery = `
UPDATE fund
SET current_balance = current_balance + $1, updated_at = $2
WHERE id = 1`

// Increment applies a signed delta to the fund balance as a single
// atomic statement.
func (r *FundRepository) Increment(ctx context.Context, tx usecase.Tx, delta decimal.Decimal, updatedAt time.Time) error {
	tag, err := txConn(tx).Exec(ctx, incrementFundQuery,
		decimalToNumeric(delta),
		timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrFundNotFound
	}

	return nil
}

func scanFund(row pgx.Row) (*domain.Fund, error) {
	var (
		balance   pgtype.Numeric
		updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(&balance, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFundNotFound
		}

		return nil, err
	}

	return &domain.Fund{
		CurrentBalance: numericToDecimal(balance),
		UpdatedAt:      updatedAt.Time,
	}, nil
}
