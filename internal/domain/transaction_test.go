package domain_test

import (
	"testing"
	"time"

	"github.com/studiofin/studiofin/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func ledgerFixture() []*domain.Transaction {
	return []*domain.Transaction{
		{ID: "t1", Date: day(1), CreatedAt: day(1).Add(time.Hour), Type: domain.TransactionIncome, Amount: dec("1000")},
		{ID: "t2", Date: day(1), CreatedAt: day(1).Add(2 * time.Hour), Type: domain.TransactionExpense, Amount: dec("60")},
		{ID: "t3", Date: day(2), CreatedAt: day(2).Add(time.Hour), Type: domain.TransactionPayout, Amount: dec("400")},
		{ID: "t4", Date: day(3), CreatedAt: day(3).Add(time.Hour), Type: domain.TransactionIncome, Amount: dec("250")},
	}
}

func TestWithRunningBalance(t *testing.T) {
	view := domain.WithRunningBalance(ledgerFixture())

	// newest first
	wantOrder := []string{"t4", "t3", "t2", "t1"}
	wantBalance := map[string]string{
		"t1": "1000",
		"t2": "940",
		"t3": "540",
		"t4": "790",
	}

	for i, tx := range view {
		if tx.ID != wantOrder[i] {
			t.Errorf("position %d: got %s, want %s", i, tx.ID, wantOrder[i])
		}
		if !tx.RunningBalance.Equal(dec(wantBalance[tx.ID])) {
			t.Errorf("%s running balance = %s, want %s", tx.ID, tx.RunningBalance, wantBalance[tx.ID])
		}
	}
}

func TestWithRunningBalanceReorderInvariant(t *testing.T) {
	shuffled := ledgerFixture()
	shuffled[0], shuffled[3] = shuffled[3], shuffled[0]
	shuffled[1], shuffled[2] = shuffled[2], shuffled[1]

	original := domain.WithRunningBalance(ledgerFixture())
	reordered := domain.WithRunningBalance(shuffled)

	if len(original) != len(reordered) {
		t.Fatalf("length mismatch: %d vs %d", len(original), len(reordered))
	}
	for i := range original {
		if original[i].ID != reordered[i].ID {
			t.Errorf("position %d: %s vs %s", i, original[i].ID, reordered[i].ID)
		}
		if !original[i].RunningBalance.Equal(reordered[i].RunningBalance) {
			t.Errorf("%s: balance %s vs %s", original[i].ID, original[i].RunningBalance, reordered[i].RunningBalance)
		}
	}
}

func TestTotalCash(t *testing.T) {
	total := domain.TotalCash(ledgerFixture())
	if !total.Equal(dec("790")) {
		t.Errorf("total cash = %s, want 790", total)
	}
}

func TestDeletionCompensated(t *testing.T) {
	invoiceID := "inv-1"

	tests := []struct {
		name    string
		tx      domain.Transaction
		wantErr bool
	}{
		{"settlement income protected", domain.Transaction{Type: domain.TransactionIncome, InvoiceID: &invoiceID}, true},
		{"manual income deletable", domain.Transaction{Type: domain.TransactionIncome}, false},
		{"settlement expense deletable", domain.Transaction{Type: domain.TransactionExpense, InvoiceID: &invoiceID}, false},
		{"payout deletable", domain.Transaction{Type: domain.TransactionPayout}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.DeletionCompensated()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
