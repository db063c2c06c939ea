package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiofin/studiofin/internal/domain"
	"github.com/studiofin/studiofin/internal/usecase"
	"github.com/studiofin/studiofin/internal/usecase/mocks"
)

func newJobFixture(t *testing.T) (*usecase.JobUseCase, *mocks.MockJobRepository) {
	t.Helper()

	jobs := mocks.NewMockJobRepository()
	uc := usecase.NewJobUseCase(jobs, mocks.NewMockIDGenerator())

	return uc, jobs
}

func TestCreateJob(t *testing.T) {
	uc, jobs := newJobFixture(t)

	workTypeID := "wt-1"
	job, err := uc.CreateJob(context.Background(), usecase.CreateJobInput{
		ClientID:    "client-1",
		WorkTypeID:  &workTypeID,
		Description: "logo pass",
		Amount:      dec("1500.005"),
		ActorID:     "u-1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, domain.JobAvailable, job.Status)
	// amounts are normalized to cents on the way in
	assert.True(t, job.Amount.Equal(dec("1500.01")), "got %s", job.Amount)
	assert.Equal(t, "u-1", job.CreatedBy)

	stored, err := jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, stored.ID)
}

func TestCreateJob_Invalid(t *testing.T) {
	uc, _ := newJobFixture(t)

	tests := []struct {
		name  string
		input usecase.CreateJobInput
	}{
		{"zero amount", usecase.CreateJobInput{ClientID: "client-1", Amount: dec("0")}},
		{"negative amount", usecase.CreateJobInput{ClientID: "client-1", Amount: dec("-5")}},
		{"missing client", usecase.CreateJobInput{Amount: dec("100")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateJob(context.Background(), tt.input)
			assert.Error(t, err)
		})
	}
}

func TestDeleteJob(t *testing.T) {
	uc, jobs := newJobFixture(t)

	job, err := uc.CreateJob(context.Background(), usecase.CreateJobInput{
		ClientID: "client-1",
		Amount:   dec("100"),
		ActorID:  "u-1",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteJob(context.Background(), job.ID))

	_, err = jobs.GetByID(context.Background(), job.ID)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestDeleteJob_NotAvailable(t *testing.T) {
	uc, jobs := newJobFixture(t)

	job, err := uc.CreateJob(context.Background(), usecase.CreateJobInput{
		ClientID: "client-1",
		Amount:   dec("100"),
		ActorID:  "u-1",
	})
	require.NoError(t, err)

	jobs.Jobs[job.ID].Status = domain.JobInvoiced

	err = uc.DeleteJob(context.Background(), job.ID)
	assert.ErrorIs(t, err, domain.ErrJobNotAvailable)
}

func TestDeleteJob_NotFound(t *testing.T) {
	uc, _ := newJobFixture(t)

	err := uc.DeleteJob(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestListJobs_PaginationDefaults(t *testing.T) {
	uc, _ := newJobFixture(t)

	for i := 0; i < 3; i++ {
		_, err := uc.CreateJob(context.Background(), usecase.CreateJobInput{
			ClientID: "client-1",
			Amount:   dec("100"),
			ActorID:  "u-1",
		})
		require.NoError(t, err)
	}

	jobs, err := uc.ListJobs(context.Background(), usecase.ListJobsInput{Limit: -1, Offset: -1})
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
}
