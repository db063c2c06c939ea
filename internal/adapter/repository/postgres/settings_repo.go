package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studiofin/studiofin/internal/domain"
)

// SettingsRepository implements usecase.SettingsRepository over the
// single-row settings table.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

const getSettingsQuery = `
SELECT tax_rate, fund_contribution_rate, fund_limit, updated_at
FROM settings
WHERE id = 1`

// Get retrieves the distribution configuration.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	var (
		taxRate   pgtype.Numeric
		fundRate  pgtype.Numeric
		fundLimit pgtype.Numeric
		updatedAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, getSettingsQuery).Scan(&taxRate, &fundRate, &fundLimit, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}

		return nil, err
	}

	return &domain.Settings{
		TaxRate:              numericToDecimal(taxRate),
		FundContributionRate: numericToDecimal(fundRate),
		FundLimit:            numericToDecimal(fundLimit),
		UpdatedAt:            updatedAt.Time,
	}, nil
}

const updateSettingsQuery = `
UPDATE settings
SET tax_rate = $1, fund_contribution_rate = $2, fund_limit = $3, updated_at = $4
WHERE id = 1`

// Update stores new distribution configuration.
func (r *SettingsRepository) Update(ctx context.Context, settings *domain.Settings) error {
	tag, err := r.pool.Exec(ctx, updateSettingsQuery,
		decimalToNumeric(settings.TaxRate),
		decimalToNumeric(settings.FundContributionRate),
		decimalToNumeric(settings.FundLimit),
		timeToPgTimestamptz(settings.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrSettingsNotFound
	}

	return nil
}
