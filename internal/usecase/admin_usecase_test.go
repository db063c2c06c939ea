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

func newAdminFixture(t *testing.T) (*usecase.AdminUseCase, *mocks.MockSettingsRepository) {
	t.Helper()

	settings := mocks.NewMockSettingsRepository(&domain.Settings{
		TaxRate:              dec("6"),
		FundContributionRate: dec("10"),
		FundLimit:            dec("500000"),
	})
	participants := mocks.NewMockParticipantRepository(
		domain.Participant{ID: "p-1", Name: "Alex", Type: domain.ParticipantPartner, Active: true},
		domain.Participant{ID: "p-2", Name: "Kim", Type: domain.ParticipantPartner, Active: false},
	)
	balances := mocks.NewMockBalanceRepository()
	balances.Seed("p-1", "35955")

	uc := usecase.NewAdminUseCase(
		settings,
		mocks.NewMockFundRepository(&domain.Fund{CurrentBalance: dec("490000")}),
		participants,
		balances,
	)

	return uc, settings
}

func TestUpdateSettings(t *testing.T) {
	uc, settings := newAdminFixture(t)

	err := uc.UpdateSettings(context.Background(), domain.Settings{
		TaxRate:              dec("8"),
		FundContributionRate: dec("12"),
		FundLimit:            dec("600000"),
	})
	require.NoError(t, err)

	stored, err := settings.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, stored.TaxRate.Equal(dec("8")))
	assert.False(t, stored.UpdatedAt.IsZero())
}

func TestUpdateSettings_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		settings domain.Settings
	}{
		{"tax rate over 100", domain.Settings{TaxRate: dec("101"), FundContributionRate: dec("10"), FundLimit: dec("1")}},
		{"negative fund rate", domain.Settings{TaxRate: dec("6"), FundContributionRate: dec("-1"), FundLimit: dec("1")}},
		{"negative fund limit", domain.Settings{TaxRate: dec("6"), FundContributionRate: dec("10"), FundLimit: dec("-1")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newAdminFixture(t)
			err := uc.UpdateSettings(context.Background(), tt.settings)
			assert.Error(t, err)
		})
	}
}

func TestTeamWithBalances(t *testing.T) {
	uc, _ := newAdminFixture(t)

	members, err := uc.TeamWithBalances(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)

	byID := make(map[string]usecase.TeamMember, len(members))
	for _, m := range members {
		byID[m.Participant.ID] = m
	}

	require.NotNil(t, byID["p-1"].Balance)
	assert.True(t, byID["p-1"].Balance.Available.Equal(dec("35955")))
	// participants without a balance row still appear
	assert.Nil(t, byID["p-2"].Balance)
}
