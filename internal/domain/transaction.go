package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry. Amount always carries a
// non-negative magnitude; the sign in cash-flow terms is implied by
// the type.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
	TransactionPayout  TransactionType = "payout"
)

// Transaction is an immutable dated entry in the cash-flow ledger.
// InvoiceID links entries produced by a settlement; ParticipantID
// links payouts and bonuses to the person involved.
type Transaction struct {
	ID             string
	Date           time.Time
	Type           TransactionType
	CategoryID     *string
	Description    string
	Amount         decimal.Decimal
	InvoiceID      *string
	ParticipantID  *string
	CreatedBy      string
	CreatedAt      time.Time
	RunningBalance decimal.Decimal
}

// Signed returns the amount with the cash-flow sign applied.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// DeletionCompensated reports whether deleting this entry requires a
// compensating balance adjustment, and protects entries that cannot be
// reversed. Settlement income entries are never deletable: the
// invoice status flip they accompany has no compensation.
func (t *Transaction) DeletionCompensated() error {
	if t.Type == TransactionIncome && t.InvoiceID != nil {
		return ErrTransactionProtected
	}
	return nil
}

// WithRunningBalance recomputes the running cash total over the given
// entries. Entries are accumulated in ascending (date, creation order)
// regardless of input order and returned newest first. The view is
// derived on read, never persisted.
func WithRunningBalance(transactions []*Transaction) []*Transaction {
	sorted := make([]*Transaction, len(transactions))
	copy(sorted, transactions)

	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	balance := decimal.Zero
	for _, tx := range sorted {
		balance = RoundMoney(balance.Add(tx.Signed()))
		tx.RunningBalance = balance
	}

	// newest first for presentation
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}

	return sorted
}

// TotalCash sums the signed amounts of all entries. It is the shared
// cash pool a payout must not overdraw.
func TotalCash(transactions []*Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(tx.Signed())
	}
	return RoundMoney(total)
}
