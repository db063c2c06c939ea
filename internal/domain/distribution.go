package domain

import (
	"github.com/shopspring/decimal"
)

// Payment is one participant's payout within a distribution.
type Payment struct {
	ParticipantID string
	Name          string
	Amount        decimal.Decimal
}

// BalanceDelta is a positive increment to apply to a participant's
// balance as part of applying a distribution.
type BalanceDelta struct {
	ParticipantID string
	Amount        decimal.Decimal
}

// Breakdown is the full gross-to-payouts split for one invoice.
type Breakdown struct {
	GrossAmount        decimal.Decimal
	TaxAmount          decimal.Decimal
	AfterTax           decimal.Decimal
	FundContribution   decimal.Decimal
	AfterFund          decimal.Decimal
	PercentagePayments []Payment
	PartnerPayments    []Payment
	TotalDistributed   decimal.Decimal
	// Undistributed is the residual left when no partners take part in
	// the settlement. It stays in company cash: no ledger entry, no
	// fund credit.
	Undistributed  decimal.Decimal
	NewFundBalance decimal.Decimal
}

// DistributionResult carries the breakdown and the flat delta list the
// settlement applies to participant balances.
type DistributionResult struct {
	Breakdown     Breakdown
	BalanceDeltas []BalanceDelta
}

// Distribute computes the gross -> tax -> fund -> payouts split for a
// single invoice. It is a pure function: callers pre-validate inputs
// (non-negative gross, rates in [0, 100]) and no error is raised here.
//
// When activeIDs is non-nil, participants are restricted to that
// subset, which lets a settlement exclude people from one invoice
// without deactivating them. Partners split the residual equally, with
// the rounding remainder added entirely to the first partner in roster
// order so the partner payouts sum exactly to the residual.
func Distribute(
	grossAmount decimal.Decimal,
	settings Settings,
	currentFundBalance decimal.Decimal,
	participants []Participant,
	activeIDs []string,
) DistributionResult {
	active := participants
	if activeIDs != nil {
		allowed := make(map[string]bool, len(activeIDs))
		for _, id := range activeIDs {
			allowed[id] = true
		}
		active = make([]Participant, 0, len(participants))
		for _, p := range participants {
			if allowed[p.ID] {
				active = append(active, p)
			}
		}
	}

	taxAmount := CalculateTax(grossAmount, settings.TaxRate)
	afterTax := RoundMoney(grossAmount.Sub(taxAmount))

	fundContribution := CalculateFundContribution(
		afterTax,
		settings.FundContributionRate,
		currentFundBalance,
		settings.FundLimit,
	)
	afterFund := RoundMoney(afterTax.Sub(fundContribution))
	newFundBalance := RoundMoney(currentFundBalance.Add(fundContribution))

	var percentagePayments []Payment
	totalPercentage := decimal.Zero
	for _, p := range active {
		if p.Type != ParticipantPercentage {
			continue
		}
		amount := RoundMoney(afterFund.Mul(p.Rate).Div(hundred))
		percentagePayments = append(percentagePayments, Payment{
			ParticipantID: p.ID,
			Name:          p.Name,
			Amount:        amount,
		})
		totalPercentage = totalPercentage.Add(amount)
	}
	afterPercentage := RoundMoney(afterFund.Sub(totalPercentage))

	var partnerPayments []Payment
	for _, p := range active {
		if p.Type != ParticipantPartner {
			continue
		}
		partnerPayments = append(partnerPayments, Payment{
			ParticipantID: p.ID,
			Name:          p.Name,
		})
	}

	undistributed := decimal.Zero
	if n := len(partnerPayments); n > 0 {
		baseShare := RoundMoney(afterPercentage.Div(decimal.NewFromInt(int64(n))))

		distributed := decimal.Zero
		for i := range partnerPayments {
			partnerPayments[i].Amount = baseShare
			distributed = distributed.Add(baseShare)
		}

		// rounding remainder goes to the first partner in roster order
		remainder := RoundMoney(afterPercentage.Sub(distributed))
		if !remainder.IsZero() {
			partnerPayments[0].Amount = RoundMoney(partnerPayments[0].Amount.Add(remainder))
		}
	} else {
		undistributed = afterPercentage
	}

	totalDistributed := decimal.Zero
	deltas := make([]BalanceDelta, 0, len(percentagePayments)+len(partnerPayments))
	for _, pay := range percentagePayments {
		totalDistributed = totalDistributed.Add(pay.Amount)
		deltas = append(deltas, BalanceDelta{ParticipantID: pay.ParticipantID, Amount: pay.Amount})
	}
	for _, pay := range partnerPayments {
		totalDistributed = totalDistributed.Add(pay.Amount)
		deltas = append(deltas, BalanceDelta{ParticipantID: pay.ParticipantID, Amount: pay.Amount})
	}

	return DistributionResult{
		Breakdown: Breakdown{
			GrossAmount:        grossAmount,
			TaxAmount:          taxAmount,
			AfterTax:           afterTax,
			FundContribution:   fundContribution,
			AfterFund:          afterFund,
			PercentagePayments: percentagePayments,
			PartnerPayments:    partnerPayments,
			TotalDistributed:   RoundMoney(totalDistributed),
			Undistributed:      undistributed,
			NewFundBalance:     newFundBalance,
		},
		BalanceDeltas: deltas,
	}
}
