package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/studiofin/studiofin/internal/usecase"
)

// CreateJobRequest represents a request to record billable work.
type CreateJobRequest struct {
	ClientID       string          `json:"client_id"`
	WorkTypeID     *string         `json:"work_type_id,omitempty"`
	CustomWorkName *string         `json:"custom_work_name,omitempty"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateJobRequest) ToUseCaseInput(actorID string) usecase.CreateJobInput {
	return usecase.CreateJobInput{
		ClientID:       r.ClientID,
		WorkTypeID:     r.WorkTypeID,
		CustomWorkName: r.CustomWorkName,
		Description:    r.Description,
		Amount:         r.Amount,
		ActorID:        actorID,
	}
}

// CreateInvoiceRequest represents a request to group jobs into an
// invoice.
type CreateInvoiceRequest struct {
	ClientID string   `json:"client_id"`
	JobIDs   []string `json:"job_ids"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateInvoiceRequest) ToUseCaseInput(actorID string) usecase.CreateInvoiceInput {
	return usecase.CreateInvoiceInput{
		ClientID: r.ClientID,
		JobIDs:   r.JobIDs,
		ActorID:  actorID,
	}
}

// SettleInvoiceRequest represents a request to settle an invoice with
// the chosen participants.
type SettleInvoiceRequest struct {
	ParticipantIDs []string `json:"participant_ids"`
}

// ToUseCaseInput converts to use case input.
func (r *SettleInvoiceRequest) ToUseCaseInput(invoiceID, actorID string) usecase.SettleInvoiceInput {
	return usecase.SettleInvoiceInput{
		InvoiceID:      invoiceID,
		ParticipantIDs: r.ParticipantIDs,
		ActorID:        actorID,
	}
}

// CreateExpenseRequest represents a request to record a manual
// expense.
type CreateExpenseRequest struct {
	Date        time.Time       `json:"date"`
	CategoryID  string          `json:"category_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateExpenseRequest) ToUseCaseInput(actorID string) usecase.CreateExpenseInput {
	date := r.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	return usecase.CreateExpenseInput{
		Date:        date,
		CategoryID:  r.CategoryID,
		Description: r.Description,
		Amount:      r.Amount,
		ActorID:     actorID,
	}
}

// CreatePayoutRequest represents a request for a participant cash
// withdrawal.
type CreatePayoutRequest struct {
	ParticipantID string          `json:"participant_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePayoutRequest) ToUseCaseInput(actorID string) usecase.CreatePayoutInput {
	return usecase.CreatePayoutInput{
		ParticipantID: r.ParticipantID,
		Amount:        r.Amount,
		Description:   r.Description,
		ActorID:       actorID,
	}
}

// AdjustmentRequest represents a fund <-> participant transfer
// (bonus issuance or return to fund).
type AdjustmentRequest struct {
	ParticipantID string          `json:"participant_id"`
	Amount        decimal.Decimal `json:"amount"`
}

// UpdateSettingsRequest represents a request to change the
// distribution configuration.
type UpdateSettingsRequest struct {
	TaxRate              decimal.Decimal `json:"tax_rate"`
	FundContributionRate decimal.Decimal `json:"fund_contribution_rate"`
	FundLimit            decimal.Decimal `json:"fund_limit"`
}

// ClientRequest represents a request to create or update a client.
type ClientRequest struct {
	Name     string           `json:"name"`
	TaxRate  *decimal.Decimal `json:"tax_rate,omitempty"`
	Archived bool             `json:"archived"`
}

// CategoryRequest represents a request to create an expense category.
type CategoryRequest struct {
	Name string `json:"name"`
}

// WorkTypeRequest represents a request to create or update a work
// type.
type WorkTypeRequest struct {
	Name         string           `json:"name"`
	DefaultPrice *decimal.Decimal `json:"default_price,omitempty"`
	Archived     bool             `json:"archived"`
}
