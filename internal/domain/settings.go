package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the singleton distribution configuration. Rates are
// percentages in [0, 100]; FundLimit is the hard ceiling for the
// reserve fund.
type Settings struct {
	TaxRate              decimal.Decimal
	FundContributionRate decimal.Decimal
	FundLimit            decimal.Decimal
	UpdatedAt            time.Time
}

// Validate checks rates and limit before an admin update is applied.
func (s *Settings) Validate() error {
	if err := ValidateRate(s.TaxRate); err != nil {
		return fmt.Errorf("tax rate: %w", err)
	}
	if err := ValidateRate(s.FundContributionRate); err != nil {
		return fmt.Errorf("fund contribution rate: %w", err)
	}
	if s.FundLimit.IsNegative() {
		return fmt.Errorf("fund limit: %w", ErrInvalidAmount)
	}
	return nil
}

// Fund is the studio's shared reserve pool. Its balance never goes
// negative and settlement never pushes it above Settings.FundLimit.
type Fund struct {
	CurrentBalance decimal.Decimal
	UpdatedAt      time.Time
}

// ValidateDebit checks that the fund covers a debit of amount.
func (f *Fund) ValidateDebit(amount decimal.Decimal) error {
	if f.CurrentBalance.LessThan(amount) {
		return ErrInsufficientFund
	}
	return nil
}
