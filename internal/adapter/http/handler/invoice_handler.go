package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studiofin/studiofin/internal/adapter/http/dto"
	"github.com/studiofin/studiofin/internal/infrastructure/metrics"
	"github.com/studiofin/studiofin/internal/usecase"
)

// InvoiceHandler handles invoice lifecycle and settlement requests.
type InvoiceHandler struct {
	invoiceUC    *usecase.InvoiceUseCase
	settlementUC *usecase.SettlementUseCase
	dashboardUC  *usecase.DashboardUseCase
	metrics      *metrics.Metrics
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceUC *usecase.InvoiceUseCase, settlementUC *usecase.SettlementUseCase, dashboardUC *usecase.DashboardUseCase, m *metrics.Metrics) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUC:    invoiceUC,
		settlementUC: settlementUC,
		dashboardUC:  dashboardUC,
		metrics:      m,
	}
}

// Create groups available jobs into a draft invoice.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	invoice, err := h.invoiceUC.CreateInvoice(r.Context(), req.ToUseCaseInput(actorID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create invoice", err.Error())
		return
	}

	h.metrics.RecordInvoiceCreated()
	writeJSON(w, http.StatusCreated, dto.InvoiceFromDomain(invoice))
}

// Get retrieves an invoice by ID.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.invoiceUC.GetInvoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceFromDomain(invoice))
}

// List lists invoices newest first.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceUC.ListInvoices(r.Context(), usecase.ListInvoicesInput{
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list invoices", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoicesFromDomain(invoices))
}

// Send transitions an invoice from draft to sent.
func (h *InvoiceHandler) Send(w http.ResponseWriter, r *http.Request) {
	if err := h.invoiceUC.SendInvoice(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to send invoice", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Cancel transitions a sent invoice to cancelled and frees its jobs.
func (h *InvoiceHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.invoiceUC.CancelInvoice(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to cancel invoice", err.Error())
		return
	}

	h.metrics.RecordInvoiceCancelled()
	h.dashboardUC.Invalidate(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a non-paid invoice.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.invoiceUC.DeleteInvoice(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete invoice", err.Error())
		return
	}

	h.dashboardUC.Invalidate(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Settle marks the invoice paid and applies the distribution.
func (h *InvoiceHandler) Settle(w http.ResponseWriter, r *http.Request) {
	var req dto.SettleInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	breakdown, err := h.settlementUC.SettleInvoice(r.Context(), req.ToUseCaseInput(chi.URLParam(r, "id"), actorID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to settle invoice", err.Error())
		return
	}

	h.metrics.RecordSettlement(breakdown.GrossAmount, breakdown.NewFundBalance)
	h.dashboardUC.Invalidate(r.Context())
	writeJSON(w, http.StatusOK, dto.BreakdownFromDomain(breakdown))
}

// Preview computes the settlement breakdown without writing anything.
func (h *InvoiceHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req dto.SettleInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	breakdown, err := h.settlementUC.PreviewSettlement(r.Context(), chi.URLParam(r, "id"), req.ParticipantIDs)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to preview settlement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BreakdownFromDomain(breakdown))
}
