package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studiofin/studiofin/internal/domain"
)

// CashflowUseCase handles the ledger: listings with a derived running
// balance, manual expenses, participant payouts, and compensated
// deletions.
type CashflowUseCase struct {
	txManager       TxManager
	transactionRepo TransactionRepository
	fundRepo        FundRepository
	balanceRepo     BalanceRepository
	participantRepo ParticipantRepository
	idGen           IDGenerator
}

// NewCashflowUseCase creates a new CashflowUseCase.
func NewCashflowUseCase(
	txManager TxManager,
	transactionRepo TransactionRepository,
	fundRepo FundRepository,
	balanceRepo BalanceRepository,
	participantRepo ParticipantRepository,
	idGen IDGenerator,
) *CashflowUseCase {
	return &CashflowUseCase{
		txManager:       txManager,
		transactionRepo: transactionRepo,
		fundRepo:        fundRepo,
		balanceRepo:     balanceRepo,
		participantRepo: participantRepo,
		idGen:           idGen,
	}
}

// ListTransactions returns ledger entries with the running balance
// recomputed over the visible set, newest first.
func (uc *CashflowUseCase) ListTransactions(ctx context.Context, filter TransactionFilter) ([]*domain.Transaction, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)

	transactions, err := uc.transactionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return domain.WithRunningBalance(transactions), nil
}

// CreateExpenseInput represents input for recording a manual expense.
type CreateExpenseInput struct {
	Date        time.Time
	CategoryID  string
	Description string
	Amount      decimal.Decimal
	ActorID     string
}

// CreateExpense appends an expense entry and debits the fund by the
// same amount. The fund is validated under lock immediately before
// the debit.
func (uc *CashflowUseCase) CreateExpense(ctx context.Context, input CreateExpenseInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	fund, err := uc.fundRepo.GetForUpdate(ctx, tx)
	if err != nil {
		return nil, err
	}

	if err := fund.ValidateDebit(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	entry := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		Date:        input.Date,
		Type:        domain.TransactionExpense,
		CategoryID:  &input.CategoryID,
		Description: input.Description,
		Amount:      domain.RoundMoney(input.Amount),
		CreatedBy:   input.ActorID,
		CreatedAt:   now,
	}

	if err := uc.transactionRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := uc.fundRepo.Increment(ctx, tx, entry.Amount.Neg(), now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

// CreatePayoutInput represents input for a cash withdrawal by a
// participant.
type CreatePayoutInput struct {
	ParticipantID string
	Amount        decimal.Decimal
	Description   string
	ActorID       string
}

// CreatePayout records a cash withdrawal. Two covers are required:
// the ledger-wide cash total protects the shared pool, the
// participant's available balance protects per-participant fairness.
func (uc *CashflowUseCase) CreatePayout(ctx context.Context, input CreatePayoutInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	totalCash, err := uc.transactionRepo.TotalCash(ctx)
	if err != nil {
		return nil, err
	}

	if totalCash.LessThan(input.Amount) {
		return nil, fmt.Errorf("%w: available %s", domain.ErrInsufficientCash, totalCash)
	}

	participant, err := uc.participantRepo.GetByID(ctx, input.ParticipantID)
	if err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	balance, err := uc.balanceRepo.GetForUpdate(ctx, tx, input.ParticipantID)
	if err != nil {
		return nil, err
	}

	if err := balance.ValidateWithdrawal(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	description := input.Description
	if description == "" {
		description = fmt.Sprintf("Payout: %s", participant.Name)
	}

	entry := &domain.Transaction{
		ID:            uc.idGen.Generate(),
		Date:          now,
		Type:          domain.TransactionPayout,
		Description:   description,
		Amount:        domain.RoundMoney(input.Amount),
		ParticipantID: &input.ParticipantID,
		CreatedBy:     input.ActorID,
		CreatedAt:     now,
	}

	if err := uc.transactionRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := uc.balanceRepo.Withdraw(ctx, tx, input.ParticipantID, entry.Amount, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteTransaction removes a ledger entry with a compensating balance
// adjustment: a deleted payout credits the participant back, a deleted
// expense credits the fund back. Settlement income entries are
// protected, and the compensation does not reverse total_earned or
// status side effects from a settlement.
func (uc *CashflowUseCase) DeleteTransaction(ctx context.Context, id string) error {
	entry, err := uc.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := entry.DeletionCompensated(); err != nil {
		return err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()

	switch entry.Type {
	case domain.TransactionPayout:
		if entry.ParticipantID != nil {
			if err := uc.balanceRepo.RefundWithdrawal(ctx, tx, *entry.ParticipantID, entry.Amount, now); err != nil {
				return err
			}
		}
	case domain.TransactionExpense:
		if err := uc.fundRepo.Increment(ctx, tx, entry.Amount, now); err != nil {
			return err
		}
	}

	if err := uc.transactionRepo.Delete(ctx, tx, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
