package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	// Replace global default registry to allow test inspection.
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := New()

	if m.SettlementsCompleted == nil || m.PayoutsCreated == nil || m.FundBalance == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestRecordSettlement(t *testing.T) {
	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := New()
	m.RecordSettlement(decimal.NewFromInt(100000), decimal.NewFromInt(499400))

	if got := testutil.ToFloat64(m.SettlementsCompleted); got != 1 {
		t.Fatalf("expected 1 completed settlement, got %v", got)
	}

	if got := testutil.ToFloat64(m.FundBalance); got != 499400 {
		t.Fatalf("expected fund balance gauge 499400, got %v", got)
	}
}

func TestNilReceiverIsSafe(t *testing.T) {
	var m *Metrics

	m.RecordSettlement(decimal.NewFromInt(1), decimal.Zero)
	m.RecordInvoiceCreated()
	m.RecordInvoiceCancelled()
	m.RecordPayout(decimal.NewFromInt(1))
	m.RecordExpense()
}
