package usecase

import "time"

const (
	// CategorySlugTax is the system category for settlement tax entries.
	CategorySlugTax = "tax"

	// CategorySlugFundContribution is the system category for settlement
	// fund-contribution entries.
	CategorySlugFundContribution = "fund_contribution"

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour

	// DashboardCacheTTL bounds the staleness of the cached overview.
	DashboardCacheTTL = 30 * time.Second
)
