package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Metrics holds all Prometheus business metrics. All recording methods
// are safe on a nil receiver, so callers that run without metrics can
// simply pass nil.
type Metrics struct {
	// Settlement metrics
	SettlementsCompleted prometheus.Counter
	SettlementAmount     prometheus.Histogram

	// Invoice metrics
	InvoicesCreated   prometheus.Counter
	InvoicesCancelled prometheus.Counter

	// Ledger metrics
	PayoutsCreated  prometheus.Counter
	PayoutAmount    prometheus.Histogram
	ExpensesCreated prometheus.Counter

	// Fund metrics
	FundBalance prometheus.Gauge
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		SettlementsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "studiofin_settlements_completed_total",
			Help: "Total number of invoice settlements completed",
		}),
		SettlementAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "studiofin_settlement_amount",
			Help:    "Gross amounts of settled invoices",
			Buckets: []float64{1000, 10000, 50000, 100000, 500000, 1000000, 5000000},
		}),

		InvoicesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "studiofin_invoices_created_total",
			Help: "Total number of invoices created",
		}),
		InvoicesCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "studiofin_invoices_cancelled_total",
			Help: "Total number of invoices cancelled",
		}),

		PayoutsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "studiofin_payouts_created_total",
			Help: "Total number of participant payouts",
		}),
		PayoutAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "studiofin_payout_amount",
			Help:    "Payout amounts",
			Buckets: []float64{1000, 5000, 10000, 50000, 100000, 500000},
		}),
		ExpensesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "studiofin_expenses_created_total",
			Help: "Total number of manual expenses recorded",
		}),

		FundBalance: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "studiofin_fund_balance",
			Help: "Current reserve fund balance",
		}),
	}
}

// RecordSettlement records a completed settlement.
func (m *Metrics) RecordSettlement(gross, newFundBalance decimal.Decimal) {
	if m == nil {
		return
	}

	m.SettlementsCompleted.Inc()
	m.SettlementAmount.Observe(gross.InexactFloat64())
	m.FundBalance.Set(newFundBalance.InexactFloat64())
}

// RecordInvoiceCreated records an invoice creation.
func (m *Metrics) RecordInvoiceCreated() {
	if m == nil {
		return
	}

	m.InvoicesCreated.Inc()
}

// RecordInvoiceCancelled records an invoice cancellation.
func (m *Metrics) RecordInvoiceCancelled() {
	if m == nil {
		return
	}

	m.InvoicesCancelled.Inc()
}

// RecordPayout records a participant payout.
func (m *Metrics) RecordPayout(amount decimal.Decimal) {
	if m == nil {
		return
	}

	m.PayoutsCreated.Inc()
	m.PayoutAmount.Observe(amount.InexactFloat64())
}

// RecordExpense records a manual expense.
func (m *Metrics) RecordExpense() {
	if m == nil {
		return
	}

	m.ExpensesCreated.Inc()
}
