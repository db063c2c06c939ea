package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiofin/studiofin/internal/domain"
	"github.com/studiofin/studiofin/internal/usecase"
	"github.com/studiofin/studiofin/internal/usecase/mocks"
)

type dashboardFixture struct {
	transactions *mocks.MockTransactionRepository
	invoices     *mocks.MockInvoiceRepository
	fund         *mocks.MockFundRepository
	cache        *mocks.MockCache
	uc           *usecase.DashboardUseCase
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()

	f := &dashboardFixture{
		transactions: mocks.NewMockTransactionRepository(),
		invoices:     mocks.NewMockInvoiceRepository(),
		fund:         mocks.NewMockFundRepository(&domain.Fund{CurrentBalance: dec("490000")}),
		cache:        mocks.NewMockCache(),
	}

	require.NoError(t, f.transactions.Create(context.Background(), nil, &domain.Transaction{
		ID:     "t-1",
		Date:   time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		Type:   domain.TransactionIncome,
		Amount: dec("100000"),
	}))

	f.invoices.Invoices["inv-1"] = &domain.Invoice{
		ID:          "inv-1",
		TotalAmount: dec("25000"),
		Status:      domain.InvoiceSent,
	}
	f.invoices.Invoices["inv-2"] = &domain.Invoice{
		ID:          "inv-2",
		TotalAmount: dec("90000"),
		Status:      domain.InvoiceDraft,
	}

	balances := mocks.NewMockBalanceRepository()
	balances.Seed("p-1", "12690")

	settings := mocks.NewMockSettingsRepository(&domain.Settings{
		TaxRate:              dec("6"),
		FundContributionRate: dec("10"),
		FundLimit:            dec("500000"),
	})

	f.uc = usecase.NewDashboardUseCase(f.transactions, f.invoices, f.fund, settings, balances, f.cache)

	return f
}

func TestGetOverview(t *testing.T) {
	f := newDashboardFixture(t)

	overview, err := f.uc.GetOverview(context.Background())
	require.NoError(t, err)

	assert.True(t, overview.TotalCash.Equal(dec("100000")))
	// only sent invoices count as receivables
	assert.True(t, overview.Receivables.Equal(dec("25000")))
	assert.True(t, overview.FundBalance.Equal(dec("490000")))
	assert.True(t, overview.FundLimit.Equal(dec("500000")))
	require.Len(t, overview.Balances, 1)
	require.Len(t, overview.RecentTransactions, 1)
}

func TestGetOverview_ServedFromCache(t *testing.T) {
	f := newDashboardFixture(t)

	first, err := f.uc.GetOverview(context.Background())
	require.NoError(t, err)

	// a later write is invisible until the cache is invalidated
	f.fund.Fund.CurrentBalance = dec("499400")

	cached, err := f.uc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.True(t, cached.FundBalance.Equal(first.FundBalance))

	f.uc.Invalidate(context.Background())

	fresh, err := f.uc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.True(t, fresh.FundBalance.Equal(dec("499400")))
}
