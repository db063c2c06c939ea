package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studiofin/studiofin/internal/domain"
)

// AdjustmentUseCase handles direct fund <-> participant transfers
// outside invoice settlement. Both sides of a transfer are validated
// against the source's current balance under lock immediately before
// applying, so neither side can be driven negative.
type AdjustmentUseCase struct {
	txManager       TxManager
	fundRepo        FundRepository
	balanceRepo     BalanceRepository
	participantRepo ParticipantRepository
	settingsRepo    SettingsRepository
}

// NewAdjustmentUseCase creates a new AdjustmentUseCase.
func NewAdjustmentUseCase(
	txManager TxManager,
	fundRepo FundRepository,
	balanceRepo BalanceRepository,
	participantRepo ParticipantRepository,
	settingsRepo SettingsRepository,
) *AdjustmentUseCase {
	return &AdjustmentUseCase{
		txManager:       txManager,
		fundRepo:        fundRepo,
		balanceRepo:     balanceRepo,
		participantRepo: participantRepo,
		settingsRepo:    settingsRepo,
	}
}

// IssueBonus debits the fund and credits the participant.
func (uc *AdjustmentUseCase) IssueBonus(ctx context.Context, participantID string, amount decimal.Decimal) error {
	if err := domain.ValidateAmount(amount); err != nil {
		return err
	}

	if _, err := uc.participantRepo.GetByID(ctx, participantID); err != nil {
		return err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	fund, err := uc.fundRepo.GetForUpdate(ctx, tx)
	if err != nil {
		return err
	}

	if err := fund.ValidateDebit(amount); err != nil {
		return err
	}

	now := time.Now().UTC()

	if err := uc.fundRepo.Increment(ctx, tx, amount.Neg(), now); err != nil {
		return err
	}

	if err := uc.balanceRepo.Credit(ctx, tx, participantID, amount, now); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ReturnToFund debits the participant's balance and credits the fund.
func (uc *AdjustmentUseCase) ReturnToFund(ctx context.Context, participantID string, amount decimal.Decimal) error {
	if err := domain.ValidateAmount(amount); err != nil {
		return err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	balance, err := uc.balanceRepo.GetForUpdate(ctx, tx, participantID)
	if err != nil {
		return err
	}

	if err := balance.ValidateWithdrawal(amount); err != nil {
		return err
	}

	now := time.Now().UTC()

	if err := uc.balanceRepo.Debit(ctx, tx, participantID, amount, now); err != nil {
		return err
	}

	if err := uc.fundRepo.Increment(ctx, tx, amount, now); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// FreeCash returns the amount the fund limit leaves uncommitted after
// obligations to participants, floored at zero.
func (uc *AdjustmentUseCase) FreeCash(ctx context.Context) (decimal.Decimal, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	balances, err := uc.balanceRepo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	obligations := decimal.Zero
	for _, b := range balances {
		obligations = obligations.Add(b.Available)
	}

	free := settings.FundLimit.Sub(obligations)
	if free.IsNegative() {
		return decimal.Zero, nil
	}

	return domain.RoundMoney(free), nil
}
