package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studiofin/studiofin/internal/domain"
)

// WorkTypeRepository implements usecase.WorkTypeRepository.
type WorkTypeRepository struct {
	pool *pgxpool.Pool
}

// NewWorkTypeRepository creates a new WorkTypeRepository.
func NewWorkTypeRepository(pool *pgxpool.Pool) *WorkTypeRepository {
	return &WorkTypeRepository{pool: pool}
}

const workTypeColumns = `id, name, default_price, archived, created_at`

const createWorkTypeQuery = `
INSERT INTO work_types (` + workTypeColumns + `)
VALUES ($1, $2, $3, $4, $5)`

// Create creates a new work type.
func (r *WorkTypeRepository) Create(ctx context.Context, workType *domain.WorkType) error {
	var price *pgtype.Numeric
	if workType.DefaultPrice != nil {
		n := decimalToNumeric(*workType.DefaultPrice)
		price = &n
	}

	_, err := r.pool.Exec(ctx, createWorkTypeQuery,
		workType.ID,
		workType.Name,
		price,
		workType.Archived,
		timeToPgTimestamptz(workType.CreatedAt),
	)

	return err
}

const listWorkTypesQuery = `
SELECT ` + workTypeColumns + `
FROM work_types
ORDER BY name, id`

// List lists all work types.
func (r *WorkTypeRepository) List(ctx context.Context) ([]*domain.WorkType, error) {
	rows, err := r.pool.Query(ctx, listWorkTypesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workTypes []*domain.WorkType
	for rows.Next() {
		workType, err := scanWorkType(rows)
		if err != nil {
			return nil, err
		}
		workTypes = append(workTypes, workType)
	}

	return workTypes, rows.Err()
}

const updateWorkTypeQuery = `
UPDATE work_types
SET name = $2, default_price = $3, archived = $4
WHERE id = $1`

// Update updates a work type.
func (r *WorkTypeRepository) Update(ctx context.Context, workType *domain.WorkType) error {
	var price *pgtype.Numeric
	if workType.DefaultPrice != nil {
		n := decimalToNumeric(*workType.DefaultPrice)
		price = &n
	}

	tag, err := r.pool.Exec(ctx, updateWorkTypeQuery,
		workType.ID,
		workType.Name,
		price,
		workType.Archived,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrWorkTypeNotFound
	}

	return nil
}

func scanWorkType(row pgx.Row) (*domain.WorkType, error) {
	var (
		workType  domain.WorkType
		price     pgtype.Numeric
		createdAt pgtype.Timestamptz
	)

	if err := row.Scan(&workType.ID, &workType.Name, &price, &workType.Archived, &createdAt); err != nil {
		return nil, err
	}

	if price.Valid {
		d := numericToDecimal(price)
		workType.DefaultPrice = &d
	}
	workType.CreatedAt = createdAt.Time

	return &workType, nil
}
