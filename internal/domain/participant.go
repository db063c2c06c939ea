package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParticipantType determines how a participant shares in invoice
// revenue.
type ParticipantType string

const (
	// ParticipantPartner takes an equal share of the residual left
	// after percentage participants are paid.
	ParticipantPartner ParticipantType = "partner"

	// ParticipantPercentage takes a fixed percentage of post-tax,
	// post-fund revenue.
	ParticipantPercentage ParticipantType = "percentage"
)

// Participant is a person eligible for invoice-revenue distribution.
// Rate is meaningful only for percentage participants.
type Participant struct {
	ID        string
	Name      string
	Type      ParticipantType
	Rate      decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Balance is the running money position of one participant. Available
// is maintained incrementally by signed deltas applied together with
// the ledger entry that references the participant.
type Balance struct {
	ParticipantID  string
	Available      decimal.Decimal
	TotalEarned    decimal.Decimal
	TotalWithdrawn decimal.Decimal
	UpdatedAt      time.Time
}

// ValidateWithdrawal checks that the balance covers a debit of amount.
func (b *Balance) ValidateWithdrawal(amount decimal.Decimal) error {
	if b.Available.LessThan(amount) {
		return ErrInsufficientBalance
	}
	return nil
}
