package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/studiofin/studiofin/internal/domain"
)

// SettlementUseCase drives the sent -> paid transition: it validates
// the invoice, runs the distribution calculator, and applies ledger
// entries, fund and balance updates, and status flips as one database
// transaction.
type SettlementUseCase struct {
	txManager       TxManager
	invoiceRepo     InvoiceRepository
	jobRepo         JobRepository
	settingsRepo    SettingsRepository
	fundRepo        FundRepository
	participantRepo ParticipantRepository
	balanceRepo     BalanceRepository
	transactionRepo TransactionRepository
	clientRepo      ClientRepository
	categoryRepo    CategoryRepository
	idGen           IDGenerator
	retrier         Retrier
}

// NewSettlementUseCase creates a new SettlementUseCase.
func NewSettlementUseCase(
	txManager TxManager,
	invoiceRepo InvoiceRepository,
	jobRepo JobRepository,
	settingsRepo SettingsRepository,
	fundRepo FundRepository,
	participantRepo ParticipantRepository,
	balanceRepo BalanceRepository,
	transactionRepo TransactionRepository,
	clientRepo ClientRepository,
	categoryRepo CategoryRepository,
	idGen IDGenerator,
	retrier Retrier,
) *SettlementUseCase {
	return &SettlementUseCase{
		txManager:       txManager,
		invoiceRepo:     invoiceRepo,
		jobRepo:         jobRepo,
		settingsRepo:    settingsRepo,
		fundRepo:        fundRepo,
		participantRepo: participantRepo,
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
		clientRepo:      clientRepo,
		categoryRepo:    categoryRepo,
		idGen:           idGen,
		retrier:         retrier,
	}
}

// SettleInvoiceInput represents input for settling an invoice.
type SettleInvoiceInput struct {
	InvoiceID      string
	ParticipantIDs []string
	ActorID        string
}

// SettleInvoice marks an invoice paid and propagates its financial
// split. The whole write sequence commits or rolls back together; the
// invoice can never end up paid with only part of the writes landed.
func (uc *SettlementUseCase) SettleInvoice(ctx context.Context, input SettleInvoiceInput) (*domain.Breakdown, error) {
	if len(input.ParticipantIDs) == 0 {
		return nil, domain.ErrNoParticipantsChosen
	}

	settings, participants, err := uc.resolveInputs(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}

	taxCategory, err := uc.categoryRepo.GetBySlug(ctx, CategorySlugTax)
	if err != nil {
		return nil, fmt.Errorf("resolve tax category: %w", err)
	}

	fundCategory, err := uc.categoryRepo.GetBySlug(ctx, CategorySlugFundContribution)
	if err != nil {
		return nil, fmt.Errorf("resolve fund category: %w", err)
	}

	var breakdown *domain.Breakdown
	operation := func() error {
		b, err := uc.settle(ctx, input, *settings, participants, taxCategory.ID, fundCategory.ID)
		if err != nil {
			return err
		}
		breakdown = b
		return nil
	}

	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, operation)
	} else {
		err = operation()
	}
	if err != nil {
		return nil, err
	}

	return breakdown, nil
}

// PreviewSettlement computes the breakdown a settlement would produce
// without writing anything.
func (uc *SettlementUseCase) PreviewSettlement(ctx context.Context, invoiceID string, participantIDs []string) (*domain.Breakdown, error) {
	if len(participantIDs) == 0 {
		return nil, domain.ErrNoParticipantsChosen
	}

	invoice, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := invoice.ValidateSettle(); err != nil {
		return nil, err
	}

	settings, participants, err := uc.resolveInputs(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	fund, err := uc.fundRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	result := domain.Distribute(invoice.TotalAmount, *settings, fund.CurrentBalance, participants, participantIDs)

	return &result.Breakdown, nil
}

// resolveInputs loads settings with the client tax-rate override
// applied, plus the eligible roster.
func (uc *SettlementUseCase) resolveInputs(ctx context.Context, invoiceID string) (*domain.Settings, []domain.Participant, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, nil, err
	}

	client, err := uc.clientRepo.GetByID(ctx, invoice.ClientID)
	if err != nil {
		return nil, nil, err
	}

	resolved := *settings
	if client.TaxRate != nil {
		resolved.TaxRate = *client.TaxRate
	}

	participants, err := uc.participantRepo.GetEligible(ctx)
	if err != nil {
		return nil, nil, err
	}

	return &resolved, participants, nil
}

func (uc *SettlementUseCase) settle(
	ctx context.Context,
	input SettleInvoiceInput,
	settings domain.Settings,
	participants []domain.Participant,
	taxCategoryID, fundCategoryID string,
) (*domain.Breakdown, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	invoice, err := uc.invoiceRepo.GetByIDForUpdate(ctx, tx, input.InvoiceID)
	if err != nil {
		return nil, err
	}

	if err := invoice.ValidateSettle(); err != nil {
		return nil, err
	}

	// fund balance is re-read under lock so the clamp sees current state
	fund, err := uc.fundRepo.GetForUpdate(ctx, tx)
	if err != nil {
		return nil, err
	}

	result := domain.Distribute(invoice.TotalAmount, settings, fund.CurrentBalance, participants, input.ParticipantIDs)
	breakdown := result.Breakdown

	now := time.Now().UTC()

	income := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		Date:        now,
		Type:        domain.TransactionIncome,
		Description: fmt.Sprintf("Invoice %s payment", invoice.Number),
		Amount:      invoice.TotalAmount,
		InvoiceID:   &invoice.ID,
		CreatedBy:   input.ActorID,
		CreatedAt:   now,
	}
	if err := uc.transactionRepo.Create(ctx, tx, income); err != nil {
		return nil, err
	}

	if breakdown.TaxAmount.IsPositive() {
		taxEntry := &domain.Transaction{
			ID:          uc.idGen.Generate(),
			Date:        now,
			Type:        domain.TransactionExpense,
			CategoryID:  &taxCategoryID,
			Description: fmt.Sprintf("Invoice %s tax", invoice.Number),
			Amount:      breakdown.TaxAmount,
			InvoiceID:   &invoice.ID,
			CreatedBy:   input.ActorID,
			CreatedAt:   now,
		}
		if err := uc.transactionRepo.Create(ctx, tx, taxEntry); err != nil {
			return nil, err
		}
	}

	if breakdown.FundContribution.IsPositive() {
		fundEntry := &domain.Transaction{
			ID:          uc.idGen.Generate(),
			Date:        now,
			Type:        domain.TransactionExpense,
			CategoryID:  &fundCategoryID,
			Description: fmt.Sprintf("Invoice %s fund contribution", invoice.Number),
			Amount:      breakdown.FundContribution,
			InvoiceID:   &invoice.ID,
			CreatedBy:   input.ActorID,
			CreatedAt:   now,
		}
		if err := uc.transactionRepo.Create(ctx, tx, fundEntry); err != nil {
			return nil, err
		}

		if err := uc.fundRepo.Increment(ctx, tx, breakdown.FundContribution, now); err != nil {
			return nil, err
		}
	}

	for _, delta := range result.BalanceDeltas {
		if err := uc.balanceRepo.AddEarning(ctx, tx, delta.ParticipantID, delta.Amount, now); err != nil {
			return nil, err
		}
	}

	if err := uc.invoiceRepo.RecordParticipants(ctx, tx, invoice.ID, input.ParticipantIDs); err != nil {
		return nil, err
	}

	if err := uc.invoiceRepo.SetStatus(ctx, tx, invoice.ID, domain.InvoicePaid, &now, now); err != nil {
		return nil, err
	}

	if len(invoice.JobIDs) > 0 {
		if err := uc.jobRepo.SetStatus(ctx, tx, invoice.JobIDs, domain.JobPaid, now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &breakdown, nil
}
