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

type invoiceFixture struct {
	txManager *mocks.MockTxManager
	invoices  *mocks.MockInvoiceRepository
	jobs      *mocks.MockJobRepository
	uc        *usecase.InvoiceUseCase
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()

	f := &invoiceFixture{
		txManager: mocks.NewMockTxManager(),
		invoices:  mocks.NewMockInvoiceRepository(),
		jobs:      mocks.NewMockJobRepository(),
	}

	for id, amount := range map[string]string{
		"job-1": "30000.50",
		"job-2": "69999.50",
	} {
		f.jobs.Jobs[id] = &domain.Job{
			ID:       id,
			ClientID: "client-1",
			Amount:   dec(amount),
			Status:   domain.JobAvailable,
		}
	}

	f.uc = usecase.NewInvoiceUseCase(f.txManager, f.invoices, f.jobs, mocks.NewMockIDGenerator())

	return f
}

func TestCreateInvoice(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice, err := f.uc.CreateInvoice(context.Background(), usecase.CreateInvoiceInput{
		ClientID: "client-1",
		JobIDs:   []string{"job-1", "job-2"},
		ActorID:  "user-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-0001", invoice.Number)
	assert.Equal(t, domain.InvoiceDraft, invoice.Status)
	assert.True(t, invoice.TotalAmount.Equal(dec("100000")), "total: %s", invoice.TotalAmount)

	stored, err := f.invoices.GetByID(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"job-1", "job-2"}, stored.JobIDs)

	for _, id := range []string{"job-1", "job-2"} {
		job, err := f.jobs.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.JobInvoiced, job.Status)
	}
}

func TestCreateInvoice_NoJobs(t *testing.T) {
	f := newInvoiceFixture(t)

	_, err := f.uc.CreateInvoice(context.Background(), usecase.CreateInvoiceInput{ClientID: "client-1"})
	assert.ErrorIs(t, err, domain.ErrNoJobsSelected)
}

func TestCreateInvoice_JobAlreadyInvoiced(t *testing.T) {
	f := newInvoiceFixture(t)
	f.jobs.Jobs["job-1"].Status = domain.JobInvoiced

	_, err := f.uc.CreateInvoice(context.Background(), usecase.CreateInvoiceInput{
		ClientID: "client-1",
		JobIDs:   []string{"job-1", "job-2"},
	})
	assert.ErrorIs(t, err, domain.ErrJobNotAvailable)

	// job-2 stays available, nothing committed
	job, _ := f.jobs.GetByID(context.Background(), "job-2")
	assert.Equal(t, domain.JobAvailable, job.Status)
	require.Len(t, f.txManager.Txs, 1)
	assert.False(t, f.txManager.Txs[0].Committed)
}

func TestCreateInvoice_ClientMismatch(t *testing.T) {
	f := newInvoiceFixture(t)
	f.jobs.Jobs["job-2"].ClientID = "client-2"

	_, err := f.uc.CreateInvoice(context.Background(), usecase.CreateInvoiceInput{
		ClientID: "client-1",
		JobIDs:   []string{"job-1", "job-2"},
	})
	assert.ErrorIs(t, err, domain.ErrJobNotAvailable)
}

func TestSendInvoice(t *testing.T) {
	f := newInvoiceFixture(t)
	f.invoices.Invoices["inv-1"] = &domain.Invoice{ID: "inv-1", Status: domain.InvoiceDraft}

	require.NoError(t, f.uc.SendInvoice(context.Background(), "inv-1"))

	invoice, _ := f.invoices.GetByID(context.Background(), "inv-1")
	assert.Equal(t, domain.InvoiceSent, invoice.Status)
}

func TestSendInvoice_InvalidTransition(t *testing.T) {
	f := newInvoiceFixture(t)
	f.invoices.Invoices["inv-1"] = &domain.Invoice{ID: "inv-1", Status: domain.InvoicePaid}

	err := f.uc.SendInvoice(context.Background(), "inv-1")
	assert.ErrorIs(t, err, domain.ErrInvalidStatusChange)
}

func TestCancelInvoice_RevertsJobs(t *testing.T) {
	f := newInvoiceFixture(t)
	f.jobs.Jobs["job-1"].Status = domain.JobInvoiced
	f.jobs.Jobs["job-2"].Status = domain.JobInvoiced
	f.invoices.Invoices["inv-1"] = &domain.Invoice{
		ID:     "inv-1",
		Status: domain.InvoiceSent,
		JobIDs: []string{"job-1", "job-2"},
	}

	require.NoError(t, f.uc.CancelInvoice(context.Background(), "inv-1"))

	invoice, _ := f.invoices.GetByID(context.Background(), "inv-1")
	assert.Equal(t, domain.InvoiceCancelled, invoice.Status)
	// links survive for audit, jobs become billable again
	assert.Equal(t, []string{"job-1", "job-2"}, invoice.JobIDs)
	for _, id := range []string{"job-1", "job-2"} {
		job, _ := f.jobs.GetByID(context.Background(), id)
		assert.Equal(t, domain.JobAvailable, job.Status)
	}
}

func TestCancelInvoice_DraftNotCancellable(t *testing.T) {
	f := newInvoiceFixture(t)
	f.invoices.Invoices["inv-1"] = &domain.Invoice{ID: "inv-1", Status: domain.InvoiceDraft}

	err := f.uc.CancelInvoice(context.Background(), "inv-1")
	assert.ErrorIs(t, err, domain.ErrInvalidStatusChange)
}

func TestDeleteInvoice(t *testing.T) {
	f := newInvoiceFixture(t)
	f.jobs.Jobs["job-1"].Status = domain.JobInvoiced
	f.invoices.Invoices["inv-1"] = &domain.Invoice{
		ID:     "inv-1",
		Status: domain.InvoiceDraft,
		JobIDs: []string{"job-1"},
	}

	require.NoError(t, f.uc.DeleteInvoice(context.Background(), "inv-1"))

	_, err := f.invoices.GetByID(context.Background(), "inv-1")
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
	job, _ := f.jobs.GetByID(context.Background(), "job-1")
	assert.Equal(t, domain.JobAvailable, job.Status)
}

func TestDeleteInvoice_PaidProtected(t *testing.T) {
	f := newInvoiceFixture(t)
	f.invoices.Invoices["inv-1"] = &domain.Invoice{ID: "inv-1", Status: domain.InvoicePaid}

	err := f.uc.DeleteInvoice(context.Background(), "inv-1")
	assert.ErrorIs(t, err, domain.ErrInvoiceNotDeletable)

	_, err = f.invoices.GetByID(context.Background(), "inv-1")
	assert.NoError(t, err)
}
