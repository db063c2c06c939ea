package usecase

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/studiofin/studiofin/internal/domain"
)

// Overview is the aggregated finance snapshot for the dashboard.
type Overview struct {
	TotalCash          decimal.Decimal       `json:"total_cash"`
	Receivables        decimal.Decimal       `json:"receivables"`
	FundBalance        decimal.Decimal       `json:"fund_balance"`
	FundLimit          decimal.Decimal       `json:"fund_limit"`
	Balances           []*domain.Balance     `json:"balances"`
	RecentTransactions []*domain.Transaction `json:"recent_transactions"`
}

// DashboardUseCase aggregates the overview, cached briefly to keep the
// landing view cheap. The cache is read-through; any miss or cache
// error falls back to the live snapshot.
type DashboardUseCase struct {
	transactionRepo TransactionRepository
	invoiceRepo     InvoiceRepository
	fundRepo        FundRepository
	settingsRepo    SettingsRepository
	balanceRepo     BalanceRepository
	cache           Cache
}

// NewDashboardUseCase creates a new DashboardUseCase.
func NewDashboardUseCase(
	transactionRepo TransactionRepository,
	invoiceRepo InvoiceRepository,
	fundRepo FundRepository,
	settingsRepo SettingsRepository,
	balanceRepo BalanceRepository,
	cache Cache,
) *DashboardUseCase {
	return &DashboardUseCase{
		transactionRepo: transactionRepo,
		invoiceRepo:     invoiceRepo,
		fundRepo:        fundRepo,
		settingsRepo:    settingsRepo,
		balanceRepo:     balanceRepo,
		cache:           cache,
	}
}

const overviewCacheKey = "dashboard:overview"

// GetOverview returns the aggregated finance snapshot.
func (uc *DashboardUseCase) GetOverview(ctx context.Context) (*Overview, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, overviewCacheKey); err == nil && raw != nil {
			var cached Overview
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	overview, err := uc.buildOverview(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(overview); err == nil {
			_ = uc.cache.Set(ctx, overviewCacheKey, raw, DashboardCacheTTL)
		}
	}

	return overview, nil
}

// Invalidate drops the cached overview; mutating flows call it after
// commit.
func (uc *DashboardUseCase) Invalidate(ctx context.Context) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, overviewCacheKey)
	}
}

func (uc *DashboardUseCase) buildOverview(ctx context.Context) (*Overview, error) {
	totalCash, err := uc.transactionRepo.TotalCash(ctx)
	if err != nil {
		return nil, err
	}

	receivables, err := uc.invoiceRepo.SumByStatus(ctx, domain.InvoiceSent)
	if err != nil {
		return nil, err
	}

	fund, err := uc.fundRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	balances, err := uc.balanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := uc.transactionRepo.Recent(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalCash:          totalCash,
		Receivables:        receivables,
		FundBalance:        fund.CurrentBalance,
		FundLimit:          settings.FundLimit,
		Balances:           balances,
		RecentTransactions: recent,
	}, nil
}
