package domain

import "errors"

var (
	// Invoice errors
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvoiceAlreadyPaid   = errors.New("invoice already paid")
	ErrInvoiceCancelled     = errors.New("invoice is cancelled")
	ErrInvoiceNotSent       = errors.New("invoice is not in sent status")
	ErrInvoiceNotDeletable  = errors.New("paid invoice cannot be deleted")
	ErrInvalidStatusChange  = errors.New("invalid invoice status transition")
	ErrNoJobsSelected       = errors.New("no available jobs selected")
	ErrNoParticipantsChosen = errors.New("at least one participant must be selected")
	ErrJobNotFound          = errors.New("job not found")
	ErrJobNotAvailable      = errors.New("job is attached to an invoice")

	// Balance and fund errors
	ErrParticipantNotFound = errors.New("participant not found")
	ErrBalanceNotFound     = errors.New("balance not found")
	ErrInsufficientFund    = errors.New("insufficient fund balance")
	ErrInsufficientBalance = errors.New("insufficient participant balance")
	ErrInsufficientCash    = errors.New("insufficient cash in the ledger")
	ErrFundNotFound        = errors.New("fund not found")
	ErrSettingsNotFound    = errors.New("settings not found")

	// Ledger errors
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrTransactionProtected = errors.New("settlement income transaction cannot be deleted")
	ErrInvalidAmount        = errors.New("amount must be positive")

	// Reference data errors
	ErrClientNotFound   = errors.New("client not found")
	ErrCategoryNotFound = errors.New("expense category not found")
	ErrSystemCategory   = errors.New("system category cannot be deleted")
	ErrWorkTypeNotFound = errors.New("work type not found")
)
