package usecase

import (
	"context"
	"time"

	"github.com/studiofin/studiofin/internal/domain"
)

// AdminUseCase handles settings and team administration.
type AdminUseCase struct {
	settingsRepo    SettingsRepository
	fundRepo        FundRepository
	participantRepo ParticipantRepository
	balanceRepo     BalanceRepository
}

// NewAdminUseCase creates a new AdminUseCase.
func NewAdminUseCase(
	settingsRepo SettingsRepository,
	fundRepo FundRepository,
	participantRepo ParticipantRepository,
	balanceRepo BalanceRepository,
) *AdminUseCase {
	return &AdminUseCase{
		settingsRepo:    settingsRepo,
		fundRepo:        fundRepo,
		participantRepo: participantRepo,
		balanceRepo:     balanceRepo,
	}
}

// GetSettings returns the distribution configuration.
func (uc *AdminUseCase) GetSettings(ctx context.Context) (*domain.Settings, error) {
	return uc.settingsRepo.Get(ctx)
}

// UpdateSettings validates and stores new distribution configuration.
func (uc *AdminUseCase) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	settings.UpdatedAt = time.Now().UTC()

	return uc.settingsRepo.Update(ctx, &settings)
}

// GetFund returns the current reserve-fund state.
func (uc *AdminUseCase) GetFund(ctx context.Context) (*domain.Fund, error) {
	return uc.fundRepo.Get(ctx)
}

// TeamMember pairs a participant with their balance.
type TeamMember struct {
	Participant domain.Participant
	Balance     *domain.Balance
}

// TeamWithBalances lists every participant with their money position.
func (uc *AdminUseCase) TeamWithBalances(ctx context.Context) ([]TeamMember, error) {
	participants, err := uc.participantRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	balances, err := uc.balanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byParticipant := make(map[string]*domain.Balance, len(balances))
	for _, b := range balances {
		byParticipant[b.ParticipantID] = b
	}

	members := make([]TeamMember, 0, len(participants))
	for _, p := range participants {
		members = append(members, TeamMember{
			Participant: p,
			Balance:     byParticipant[p.ID],
		})
	}

	return members, nil
}
