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

type adjustmentFixture struct {
	fund     *mocks.MockFundRepository
	balances *mocks.MockBalanceRepository
	uc       *usecase.AdjustmentUseCase
}

func newAdjustmentFixture(t *testing.T) *adjustmentFixture {
	t.Helper()

	f := &adjustmentFixture{
		fund:     mocks.NewMockFundRepository(&domain.Fund{CurrentBalance: dec("2000")}),
		balances: mocks.NewMockBalanceRepository(),
	}
	f.balances.Seed("p-1", "800")

	participants := mocks.NewMockParticipantRepository(
		domain.Participant{ID: "p-1", Name: "Alex", Type: domain.ParticipantPartner, Active: true},
	)
	settings := mocks.NewMockSettingsRepository(&domain.Settings{
		TaxRate:              dec("6"),
		FundContributionRate: dec("10"),
		FundLimit:            dec("3000"),
	})

	f.uc = usecase.NewAdjustmentUseCase(
		mocks.NewMockTxManager(),
		f.fund,
		f.balances,
		participants,
		settings,
	)

	return f
}

func TestIssueBonus(t *testing.T) {
	f := newAdjustmentFixture(t)

	require.NoError(t, f.uc.IssueBonus(context.Background(), "p-1", dec("500")))

	fund, _ := f.fund.Get(context.Background())
	assert.True(t, fund.CurrentBalance.Equal(dec("1500")))

	b, _ := f.balances.Get(context.Background(), "p-1")
	assert.True(t, b.Available.Equal(dec("1300")))
	// bonus is not an earning
	assert.True(t, b.TotalEarned.Equal(dec("800")))
}

func TestIssueBonus_InsufficientFund(t *testing.T) {
	f := newAdjustmentFixture(t)

	err := f.uc.IssueBonus(context.Background(), "p-1", dec("2000.01"))
	assert.ErrorIs(t, err, domain.ErrInsufficientFund)

	b, _ := f.balances.Get(context.Background(), "p-1")
	assert.True(t, b.Available.Equal(dec("800")))
}

func TestIssueBonus_UnknownParticipant(t *testing.T) {
	f := newAdjustmentFixture(t)

	err := f.uc.IssueBonus(context.Background(), "ghost", dec("100"))
	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
}

func TestReturnToFund(t *testing.T) {
	f := newAdjustmentFixture(t)

	require.NoError(t, f.uc.ReturnToFund(context.Background(), "p-1", dec("300")))

	fund, _ := f.fund.Get(context.Background())
	assert.True(t, fund.CurrentBalance.Equal(dec("2300")))

	b, _ := f.balances.Get(context.Background(), "p-1")
	assert.True(t, b.Available.Equal(dec("500")))
	// return is not a withdrawal
	assert.True(t, b.TotalWithdrawn.IsZero())
}

func TestReturnToFund_InsufficientBalance(t *testing.T) {
	f := newAdjustmentFixture(t)

	err := f.uc.ReturnToFund(context.Background(), "p-1", dec("800.01"))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	fund, _ := f.fund.Get(context.Background())
	assert.True(t, fund.CurrentBalance.Equal(dec("2000")))
}

func TestFreeCash(t *testing.T) {
	f := newAdjustmentFixture(t)

	// limit 3000 minus the 800 owed to p-1
	free, err := f.uc.FreeCash(context.Background())
	require.NoError(t, err)
	assert.True(t, free.Equal(dec("2200")))
}

func TestFreeCash_FlooredAtZero(t *testing.T) {
	f := newAdjustmentFixture(t)
	f.balances.Seed("p-2", "4000")

	free, err := f.uc.FreeCash(context.Background())
	require.NoError(t, err)
	assert.True(t, free.IsZero())
}
