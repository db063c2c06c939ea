package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studiofin/studiofin/internal/domain"
)

// InvoiceUseCase handles the non-settlement part of the invoice
// lifecycle: creation from available jobs, draft -> sent, cancellation
// with job reversion, and deletion of non-paid invoices.
type InvoiceUseCase struct {
	txManager   TxManager
	invoiceRepo InvoiceRepository
	jobRepo     JobRepository
	idGen       IDGenerator
}

// NewInvoiceUseCase creates a new InvoiceUseCase.
func NewInvoiceUseCase(txManager TxManager, invoiceRepo InvoiceRepository, jobRepo JobRepository, idGen IDGenerator) *InvoiceUseCase {
	return &InvoiceUseCase{
		txManager:   txManager,
		invoiceRepo: invoiceRepo,
		jobRepo:     jobRepo,
		idGen:       idGen,
	}
}

// CreateInvoiceInput represents input for creating an invoice.
type CreateInvoiceInput struct {
	ClientID string
	JobIDs   []string
	ActorID  string
}

// CreateInvoice groups available jobs into a draft invoice. The total
// is the sum of job amounts at this moment and frozen thereafter.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	if len(input.JobIDs) == 0 {
		return nil, domain.ErrNoJobsSelected
	}

	number, err := uc.invoiceRepo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	jobs, err := uc.jobRepo.GetAvailableByIDs(ctx, tx, input.JobIDs)
	if err != nil {
		return nil, err
	}

	if len(jobs) != len(input.JobIDs) {
		return nil, fmt.Errorf("%w: some jobs are missing or already invoiced", domain.ErrJobNotAvailable)
	}

	total := decimal.Zero
	for _, job := range jobs {
		if job.ClientID != input.ClientID {
			return nil, fmt.Errorf("%w: job %s belongs to a different client", domain.ErrJobNotAvailable, job.ID)
		}
		total = total.Add(job.Amount)
	}

	now := time.Now().UTC()

	invoice := &domain.Invoice{
		ID:          uc.idGen.Generate(),
		Number:      number,
		ClientID:    input.ClientID,
		TotalAmount: domain.RoundMoney(total),
		Status:      domain.InvoiceDraft,
		CreatedBy:   input.ActorID,
		CreatedAt:   now,
		UpdatedAt:   now,
		JobIDs:      input.JobIDs,
	}

	if err := uc.invoiceRepo.Create(ctx, tx, invoice); err != nil {
		return nil, err
	}

	if err := uc.invoiceRepo.LinkJobs(ctx, tx, invoice.ID, input.JobIDs); err != nil {
		return nil, err
	}

	if err := uc.jobRepo.SetStatus(ctx, tx, input.JobIDs, domain.JobInvoiced, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return invoice, nil
}

// SendInvoice transitions draft -> sent. No balance effects.
func (uc *InvoiceUseCase) SendInvoice(ctx context.Context, id string) error {
	return uc.transition(ctx, id, domain.InvoiceSent)
}

// CancelInvoice transitions sent -> cancelled. Every linked job
// reverts to available; the invoice and its links remain for audit
// and carry no financial effect.
func (uc *InvoiceUseCase) CancelInvoice(ctx context.Context, id string) error {
	return uc.transition(ctx, id, domain.InvoiceCancelled)
}

func (uc *InvoiceUseCase) transition(ctx context.Context, id string, target domain.InvoiceStatus) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	invoice, err := uc.invoiceRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return err
	}

	if !invoice.CanTransition(target) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusChange, invoice.Status, target)
	}

	now := time.Now().UTC()

	if err := uc.invoiceRepo.SetStatus(ctx, tx, id, target, nil, now); err != nil {
		return err
	}

	if target == domain.InvoiceCancelled && len(invoice.JobIDs) > 0 {
		if err := uc.jobRepo.SetStatus(ctx, tx, invoice.JobIDs, domain.JobAvailable, now); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// DeleteInvoice removes a non-paid invoice, reverting its jobs to
// available and removing the job links.
func (uc *InvoiceUseCase) DeleteInvoice(ctx context.Context, id string) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	invoice, err := uc.invoiceRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return err
	}

	if !invoice.Deletable() {
		return domain.ErrInvoiceNotDeletable
	}

	now := time.Now().UTC()

	if len(invoice.JobIDs) > 0 {
		if err := uc.jobRepo.SetStatus(ctx, tx, invoice.JobIDs, domain.JobAvailable, now); err != nil {
			return err
		}
	}

	if err := uc.invoiceRepo.UnlinkJobs(ctx, tx, id); err != nil {
		return err
	}

	if err := uc.invoiceRepo.Delete(ctx, tx, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetInvoice retrieves an invoice by ID.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	return uc.invoiceRepo.GetByID(ctx, id)
}

// ListInvoicesInput represents input for listing invoices.
type ListInvoicesInput struct {
	Limit  int
	Offset int
}

// ListInvoices lists invoices newest first.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, input ListInvoicesInput) ([]*domain.Invoice, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.invoiceRepo.List(ctx, limit, offset)
}
