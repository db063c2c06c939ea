package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studiofin/studiofin/internal/domain"
	"github.com/studiofin/studiofin/internal/usecase"
)

// JobRepository implements usecase.JobRepository.
type JobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository creates a new JobRepository.
func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

const jobColumns = `id, client_id, work_type_id, custom_work_name, description, amount, status, created_by, created_at, updated_at`

const createJobQuery = `
INSERT INTO jobs (` + jobColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// Create creates a new job.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	_, err := r.pool.Exec(ctx, createJobQuery,
		job.ID,
		job.ClientID,
		job.WorkTypeID,
		job.CustomWorkName,
		job.Description,
		decimalToNumeric(job.Amount),
		string(job.Status),
		job.CreatedBy,
		timeToPgTimestamptz(job.CreatedAt),
		timeToPgTimestamptz(job.UpdatedAt),
	)

	return err
}

const getJobQuery = `
SELECT ` + jobColumns + `
FROM jobs
WHERE id = $1`

// GetByID retrieves a job by ID.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	job, err := scanJob(r.pool.QueryRow(ctx, getJobQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}

		return nil, err
	}

	return job, nil
}

// Locked so a concurrent invoice creation cannot grab the same jobs.
const getAvailableJobsQuery = `
SELECT ` + jobColumns + `
FROM jobs
WHERE id = ANY($1) AND status = 'available'
FOR UPDATE`

// GetAvailableByIDs retrieves the subset of the given jobs that is
// still available, locked for the transaction.
func (r *JobRepository) GetAvailableByIDs(ctx context.Context, tx usecase.Tx, ids []string) ([]*domain.Job, error) {
	rows, err := txConn(tx).Query(ctx, getAvailableJobsQuery, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

const listJobsQuery = `
SELECT ` + jobColumns + `
FROM jobs
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`

// List lists jobs newest first.
func (r *JobRepository) List(ctx context.Context, limit, offset int) ([]*domain.Job, error) {
	rows, err := r.pool.Query(ctx, listJobsQuery, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

const setJobStatusQuery = `
UPDATE jobs
SET status = $2, updated_at = $3
WHERE id = ANY($1)`

// SetStatus moves a batch of jobs to the given status.
func (r *JobRepository) SetStatus(ctx context.Context, tx usecase.Tx, ids []string, status domain.JobStatus, updatedAt time.Time) error {
	_, err := txConn(tx).Exec(ctx, setJobStatusQuery,
		ids,
		string(status),
		timeToPgTimestamptz(updatedAt),
	)

	return err
}

const deleteJobQuery = `
DELETE FROM jobs
WHERE id = $1`

// Delete removes a job.
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, deleteJobQuery, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrJobNotFound
	}

	return nil
}

func collectJobs(rows pgx.Rows) ([]*domain.Job, error) {
	var jobs []*domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var (
		job       domain.Job
		status    string
		amount    pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&job.ID,
		&job.ClientID,
		&job.WorkTypeID,
		&job.CustomWorkName,
		&job.Description,
		&amount,
		&status,
		&job.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	job.Amount = numericToDecimal(amount)
	job.Status = domain.JobStatus(status)
	job.CreatedAt = createdAt.Time
	job.UpdatedAt = updatedAt.Time

	return &job, nil
}
