package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the state-machine state of an invoice.
//
//	draft -> sent -> paid       (terminal)
//	         sent -> cancelled  (terminal)
//
// Draft invoices are deleted rather than cancelled.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice groups jobs for a single client. TotalAmount is the sum of
// constituent job amounts at creation time and frozen thereafter.
type Invoice struct {
	ID          string
	Number      string
	ClientID    string
	TotalAmount decimal.Decimal
	Status      InvoiceStatus
	PaidAt      *time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	JobIDs      []string
}

// CanTransition reports whether the invoice may move to target.
func (i *Invoice) CanTransition(target InvoiceStatus) bool {
	switch i.Status {
	case InvoiceDraft:
		return target == InvoiceSent
	case InvoiceSent:
		return target == InvoicePaid || target == InvoiceCancelled
	default:
		// paid and cancelled are terminal
		return false
	}
}

// ValidateSettle checks preconditions for marking the invoice paid.
func (i *Invoice) ValidateSettle() error {
	switch i.Status {
	case InvoicePaid:
		return ErrInvoiceAlreadyPaid
	case InvoiceCancelled:
		return ErrInvoiceCancelled
	case InvoiceSent:
		return nil
	default:
		return ErrInvoiceNotSent
	}
}

// Deletable reports whether the invoice may be removed. A paid invoice
// can never be deleted.
func (i *Invoice) Deletable() bool {
	return i.Status != InvoicePaid
}
