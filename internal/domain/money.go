package domain

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of fractional digits kept after every
// arithmetic step. All amounts in the system are rounded to it to
// avoid drift across repeated calculations.
const MoneyPrecision = 2

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds an amount to the system's money precision
// (half-up).
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPrecision)
}

// CalculateTax returns the tax portion of amount at taxRate percent.
func CalculateTax(amount, taxRate decimal.Decimal) decimal.Decimal {
	return RoundMoney(amount.Mul(taxRate).Div(hundred))
}

// CalculateFundContribution returns the reserve-fund contribution for
// an after-tax amount. The contribution is clamped so the fund balance
// never exceeds fundLimit; a full fund yields zero regardless of rate.
func CalculateFundContribution(afterTax, fundRate, currentFundBalance, fundLimit decimal.Decimal) decimal.Decimal {
	if currentFundBalance.GreaterThanOrEqual(fundLimit) {
		return decimal.Zero
	}

	headroom := fundLimit.Sub(currentFundBalance)

	desired := RoundMoney(afterTax.Mul(fundRate).Div(hundred))
	if desired.GreaterThan(headroom) {
		return headroom
	}

	return desired
}
