package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studiofin/studiofin/internal/domain"
)

// CategoryRepository implements usecase.CategoryRepository.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

const categoryColumns = `id, name, slug, system, created_at`

const createCategoryQuery = `
INSERT INTO categories (` + categoryColumns + `)
VALUES ($1, $2, $3, $4, $5)`

// Create creates a new category.
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	_, err := r.pool.Exec(ctx, createCategoryQuery,
		category.ID,
		category.Name,
		category.Slug,
		category.System,
		timeToPgTimestamptz(category.CreatedAt),
	)

	return err
}

const getCategoryQuery = `
SELECT ` + categoryColumns + `
FROM categories
WHERE id = $1`

// GetByID retrieves a category by ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.get(ctx, getCategoryQuery, id)
}

const getCategoryBySlugQuery = `
SELECT ` + categoryColumns + `
FROM categories
WHERE slug = $1`

// GetBySlug retrieves a category by its stable slug. The settlement
// flow resolves its system categories this way.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.get(ctx, getCategoryBySlugQuery, slug)
}

const listCategoriesQuery = `
SELECT ` + categoryColumns + `
FROM categories
ORDER BY system DESC, name`

// List lists all categories, system ones first.
func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.pool.Query(ctx, listCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

const deleteCategoryQuery = `
DELETE FROM categories
WHERE id = $1`

// Delete removes a category.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, deleteCategoryQuery, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

func (r *CategoryRepository) get(ctx context.Context, query, arg string) (*domain.Category, error) {
	category, err := scanCategory(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}

		return nil, err
	}

	return category, nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var (
		category  domain.Category
		createdAt pgtype.Timestamptz
	)

	if err := row.Scan(&category.ID, &category.Name, &category.Slug, &category.System, &createdAt); err != nil {
		return nil, err
	}

	category.CreatedAt = createdAt.Time

	return &category, nil
}
