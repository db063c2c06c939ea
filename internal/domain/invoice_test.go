package domain_test

import (
	"errors"
	"testing"

	"github.com/studiofin/studiofin/internal/domain"
)

func TestInvoiceCanTransition(t *testing.T) {
	tests := []struct {
		from   domain.InvoiceStatus
		to     domain.InvoiceStatus
		want   bool
	}{
		{domain.InvoiceDraft, domain.InvoiceSent, true},
		{domain.InvoiceDraft, domain.InvoicePaid, false},
		{domain.InvoiceDraft, domain.InvoiceCancelled, false},
		{domain.InvoiceSent, domain.InvoicePaid, true},
		{domain.InvoiceSent, domain.InvoiceCancelled, true},
		{domain.InvoiceSent, domain.InvoiceDraft, false},
		{domain.InvoicePaid, domain.InvoiceCancelled, false},
		{domain.InvoiceCancelled, domain.InvoiceSent, false},
	}

	for _, tt := range tests {
		inv := domain.Invoice{Status: tt.from}
		if got := inv.CanTransition(tt.to); got != tt.want {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestInvoiceValidateSettle(t *testing.T) {
	tests := []struct {
		status  domain.InvoiceStatus
		wantErr error
	}{
		{domain.InvoiceSent, nil},
		{domain.InvoicePaid, domain.ErrInvoiceAlreadyPaid},
		{domain.InvoiceCancelled, domain.ErrInvoiceCancelled},
		{domain.InvoiceDraft, domain.ErrInvoiceNotSent},
	}

	for _, tt := range tests {
		inv := domain.Invoice{Status: tt.status}
		err := inv.ValidateSettle()
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("status %s: got %v, want %v", tt.status, err, tt.wantErr)
		}
	}
}

func TestInvoiceDeletable(t *testing.T) {
	for _, status := range []domain.InvoiceStatus{domain.InvoiceDraft, domain.InvoiceSent, domain.InvoiceCancelled} {
		inv := domain.Invoice{Status: status}
		if !inv.Deletable() {
			t.Errorf("status %s should be deletable", status)
		}
	}

	paid := domain.Invoice{Status: domain.InvoicePaid}
	if paid.Deletable() {
		t.Error("paid invoice must never be deletable")
	}
}
