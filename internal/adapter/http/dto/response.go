package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/studiofin/studiofin/internal/domain"
	"github.com/studiofin/studiofin/internal/usecase"
)

// JobResponse represents a job in API responses.
type JobResponse struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	WorkTypeID     *string         `json:"work_type_id,omitempty"`
	CustomWorkName *string         `json:"custom_work_name,omitempty"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// JobFromDomain converts a domain job to a response.
func JobFromDomain(j *domain.Job) *JobResponse {
	return &JobResponse{
		ID:             j.ID,
		ClientID:       j.ClientID,
		WorkTypeID:     j.WorkTypeID,
		CustomWorkName: j.CustomWorkName,
		Description:    j.Description,
		Amount:         j.Amount,
		Status:         string(j.Status),
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

// JobsFromDomain converts domain jobs to responses.
func JobsFromDomain(jobs []*domain.Job) []*JobResponse {
	result := make([]*JobResponse, len(jobs))
	for i, j := range jobs {
		result[i] = JobFromDomain(j)
	}
	return result
}

// InvoiceResponse represents an invoice in API responses.
type InvoiceResponse struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	ClientID    string          `json:"client_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	JobIDs      []string        `json:"job_ids,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// InvoiceFromDomain converts a domain invoice to a response.
func InvoiceFromDomain(inv *domain.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		ClientID:    inv.ClientID,
		TotalAmount: inv.TotalAmount,
		Status:      string(inv.Status),
		PaidAt:      inv.PaidAt,
		JobIDs:      inv.JobIDs,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

// InvoicesFromDomain converts domain invoices to responses.
func InvoicesFromDomain(invoices []*domain.Invoice) []*InvoiceResponse {
	result := make([]*InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		result[i] = InvoiceFromDomain(inv)
	}
	return result
}

// PaymentResponse is one participant's payout in a breakdown.
type PaymentResponse struct {
	ParticipantID string          `json:"participant_id"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
}

// BreakdownResponse represents a settlement split in API responses.
type BreakdownResponse struct {
	GrossAmount        decimal.Decimal   `json:"gross_amount"`
	TaxAmount          decimal.Decimal   `json:"tax_amount"`
	AfterTax           decimal.Decimal   `json:"after_tax"`
	FundContribution   decimal.Decimal   `json:"fund_contribution"`
	AfterFund          decimal.Decimal   `json:"after_fund"`
	PercentagePayments []PaymentResponse `json:"percentage_payments"`
	PartnerPayments    []PaymentResponse `json:"partner_payments"`
	TotalDistributed   decimal.Decimal   `json:"total_distributed"`
	Undistributed      decimal.Decimal   `json:"undistributed"`
	NewFundBalance     decimal.Decimal   `json:"new_fund_balance"`
}

// BreakdownFromDomain converts a domain breakdown to a response.
func BreakdownFromDomain(b *domain.Breakdown) *BreakdownResponse {
	return &BreakdownResponse{
		GrossAmount:        b.GrossAmount,
		TaxAmount:          b.TaxAmount,
		AfterTax:           b.AfterTax,
		FundContribution:   b.FundContribution,
		AfterFund:          b.AfterFund,
		PercentagePayments: paymentsFromDomain(b.PercentagePayments),
		PartnerPayments:    paymentsFromDomain(b.PartnerPayments),
		TotalDistributed:   b.TotalDistributed,
		Undistributed:      b.Undistributed,
		NewFundBalance:     b.NewFundBalance,
	}
}

func paymentsFromDomain(payments []domain.Payment) []PaymentResponse {
	result := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		result[i] = PaymentResponse{
			ParticipantID: p.ParticipantID,
			Name:          p.Name,
			Amount:        p.Amount,
		}
	}
	return result
}

// TransactionResponse represents a ledger entry in API responses.
type TransactionResponse struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	Type           string          `json:"type"`
	CategoryID     *string         `json:"category_id,omitempty"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	InvoiceID      *string         `json:"invoice_id,omitempty"`
	ParticipantID  *string         `json:"participant_id,omitempty"`
	RunningBalance decimal.Decimal `json:"running_balance"`
	CreatedAt      time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:             t.ID,
		Date:           t.Date,
		Type:           string(t.Type),
		CategoryID:     t.CategoryID,
		Description:    t.Description,
		Amount:         t.Amount,
		InvoiceID:      t.InvoiceID,
		ParticipantID:  t.ParticipantID,
		RunningBalance: t.RunningBalance,
		CreatedAt:      t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// BalanceResponse represents a participant balance in API responses.
type BalanceResponse struct {
	ParticipantID  string          `json:"participant_id"`
	Available      decimal.Decimal `json:"available"`
	TotalEarned    decimal.Decimal `json:"total_earned"`
	TotalWithdrawn decimal.Decimal `json:"total_withdrawn"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// BalanceFromDomain converts a domain balance to a response.
func BalanceFromDomain(b *domain.Balance) *BalanceResponse {
	return &BalanceResponse{
		ParticipantID:  b.ParticipantID,
		Available:      b.Available,
		TotalEarned:    b.TotalEarned,
		TotalWithdrawn: b.TotalWithdrawn,
		UpdatedAt:      b.UpdatedAt,
	}
}

// SettingsResponse represents the distribution configuration.
type SettingsResponse struct {
	TaxRate              decimal.Decimal `json:"tax_rate"`
	FundContributionRate decimal.Decimal `json:"fund_contribution_rate"`
	FundLimit            decimal.Decimal `json:"fund_limit"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// SettingsFromDomain converts domain settings to a response.
func SettingsFromDomain(s *domain.Settings) *SettingsResponse {
	return &SettingsResponse{
		TaxRate:              s.TaxRate,
		FundContributionRate: s.FundContributionRate,
		FundLimit:            s.FundLimit,
		UpdatedAt:            s.UpdatedAt,
	}
}

// FundResponse represents the reserve fund state.
type FundResponse struct {
	CurrentBalance decimal.Decimal `json:"current_balance"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// FundFromDomain converts a domain fund to a response.
func FundFromDomain(f *domain.Fund) *FundResponse {
	return &FundResponse{
		CurrentBalance: f.CurrentBalance,
		UpdatedAt:      f.UpdatedAt,
	}
}

// TeamMemberResponse pairs a participant with their balance.
type TeamMemberResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Type    string           `json:"type"`
	Rate    decimal.Decimal  `json:"rate"`
	Active  bool             `json:"active"`
	Balance *BalanceResponse `json:"balance,omitempty"`
}

// TeamFromUseCase converts team members to responses.
func TeamFromUseCase(members []usecase.TeamMember) []*TeamMemberResponse {
	result := make([]*TeamMemberResponse, len(members))
	for i, m := range members {
		resp := &TeamMemberResponse{
			ID:     m.Participant.ID,
			Name:   m.Participant.Name,
			Type:   string(m.Participant.Type),
			Rate:   m.Participant.Rate,
			Active: m.Participant.Active,
		}
		if m.Balance != nil {
			resp.Balance = BalanceFromDomain(m.Balance)
		}
		result[i] = resp
	}
	return result
}

// ClientResponse represents a client in API responses.
type ClientResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	TaxRate   *decimal.Decimal `json:"tax_rate,omitempty"`
	Archived  bool             `json:"archived"`
	CreatedAt time.Time        `json:"created_at"`
}

// ClientFromDomain converts a domain client to a response.
func ClientFromDomain(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxRate:   c.TaxRate,
		Archived:  c.Archived,
		CreatedAt: c.CreatedAt,
	}
}

// ClientsFromDomain converts domain clients to responses.
func ClientsFromDomain(clients []*domain.Client) []*ClientResponse {
	result := make([]*ClientResponse, len(clients))
	for i, c := range clients {
		result[i] = ClientFromDomain(c)
	}
	return result
}

// CategoryResponse represents an expense category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	System    bool      `json:"system"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryFromDomain converts a domain category to a response.
func CategoryFromDomain(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		System:    c.System,
		CreatedAt: c.CreatedAt,
	}
}

// CategoriesFromDomain converts domain categories to responses.
func CategoriesFromDomain(categories []*domain.Category) []*CategoryResponse {
	result := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = CategoryFromDomain(c)
	}
	return result
}

// WorkTypeResponse represents a work type in API responses.
type WorkTypeResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	DefaultPrice *decimal.Decimal `json:"default_price,omitempty"`
	Archived     bool             `json:"archived"`
	CreatedAt    time.Time        `json:"created_at"`
}

// WorkTypeFromDomain converts a domain work type to a response.
func WorkTypeFromDomain(wt *domain.WorkType) *WorkTypeResponse {
	return &WorkTypeResponse{
		ID:           wt.ID,
		Name:         wt.Name,
		DefaultPrice: wt.DefaultPrice,
		Archived:     wt.Archived,
		CreatedAt:    wt.CreatedAt,
	}
}

// WorkTypesFromDomain converts domain work types to responses.
func WorkTypesFromDomain(workTypes []*domain.WorkType) []*WorkTypeResponse {
	result := make([]*WorkTypeResponse, len(workTypes))
	for i, wt := range workTypes {
		result[i] = WorkTypeFromDomain(wt)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
