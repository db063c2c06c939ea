package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studiofin/studiofin/internal/domain"
)

// JobUseCase handles billable-work bookkeeping outside invoices.
type JobUseCase struct {
	jobRepo JobRepository
	idGen   IDGenerator
}

// NewJobUseCase creates a new JobUseCase.
func NewJobUseCase(jobRepo JobRepository, idGen IDGenerator) *JobUseCase {
	return &JobUseCase{jobRepo: jobRepo, idGen: idGen}
}

// CreateJobInput represents input for creating a job.
type CreateJobInput struct {
	ClientID       string
	WorkTypeID     *string
	CustomWorkName *string
	Description    string
	Amount         decimal.Decimal
	ActorID        string
}

// CreateJob records a new unit of billable work in available status.
func (uc *JobUseCase) CreateJob(ctx context.Context, input CreateJobInput) (*domain.Job, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	job := &domain.Job{
		ID:             uc.idGen.Generate(),
		ClientID:       input.ClientID,
		WorkTypeID:     input.WorkTypeID,
		CustomWorkName: input.CustomWorkName,
		Description:    input.Description,
		Amount:         domain.RoundMoney(input.Amount),
		Status:         domain.JobAvailable,
		CreatedBy:      input.ActorID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// DeleteJob removes a job that is not attached to any invoice.
func (uc *JobUseCase) DeleteJob(ctx context.Context, id string) error {
	job, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !job.Deletable() {
		return domain.ErrJobNotAvailable
	}

	return uc.jobRepo.Delete(ctx, id)
}

// ListJobsInput represents input for listing jobs.
type ListJobsInput struct {
	Limit  int
	Offset int
}

// ListJobs lists jobs newest first.
func (uc *JobUseCase) ListJobs(ctx context.Context, input ListJobsInput) ([]*domain.Job, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.jobRepo.List(ctx, limit, offset)
}
