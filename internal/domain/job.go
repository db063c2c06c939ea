package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobStatus is the lifecycle state of a unit of billable work.
type JobStatus string

const (
	// JobAvailable means the job can be attached to a new invoice.
	JobAvailable JobStatus = "available"

	// JobInvoiced means the job belongs to a draft or sent invoice.
	JobInvoiced JobStatus = "invoiced"

	// JobPaid means the job's invoice has been settled.
	JobPaid JobStatus = "paid"
)

// Job is a unit of billable work performed for a client. Amount and
// client are frozen once the job is invoiced.
type Job struct {
	ID             string
	ClientID       string
	WorkTypeID     *string
	CustomWorkName *string
	Description    string
	Amount         decimal.Decimal
	Status         JobStatus
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks a job before creation.
func (j *Job) Validate() error {
	if j.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if j.ClientID == "" {
		return ErrClientNotFound
	}
	return nil
}

// Deletable reports whether the job may be removed. Invoiced and paid
// jobs are immutable.
func (j *Job) Deletable() bool {
	return j.Status == JobAvailable
}
