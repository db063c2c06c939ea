package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/studiofin/studiofin/internal/adapter/http/dto"
	"github.com/studiofin/studiofin/internal/infrastructure/metrics"
	"github.com/studiofin/studiofin/internal/usecase"
)

// CashflowHandler handles ledger HTTP requests.
type CashflowHandler struct {
	cashflowUC  *usecase.CashflowUseCase
	dashboardUC *usecase.DashboardUseCase
	metrics     *metrics.Metrics
}

// NewCashflowHandler creates a new CashflowHandler.
func NewCashflowHandler(cashflowUC *usecase.CashflowUseCase, dashboardUC *usecase.DashboardUseCase, m *metrics.Metrics) *CashflowHandler {
	return &CashflowHandler{cashflowUC: cashflowUC, dashboardUC: dashboardUC, metrics: m}
}

// List lists ledger entries with running balance, optionally filtered
// to one calendar month via ?year=&month=.
func (h *CashflowHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := usecase.TransactionFilter{
		Year:   parseIntQuery(r, "year", 0),
		Month:  time.Month(parseIntQuery(r, "month", 0)),
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	}

	transactions, err := h.cashflowUC.ListTransactions(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(transactions))
}

// CreateExpense records a manual expense against the fund.
func (h *CashflowHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.cashflowUC.CreateExpense(r.Context(), req.ToUseCaseInput(actorID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create expense", err.Error())
		return
	}

	h.metrics.RecordExpense()
	h.dashboardUC.Invalidate(r.Context())
	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(entry))
}

// CreatePayout records a participant cash withdrawal.
func (h *CashflowHandler) CreatePayout(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.cashflowUC.CreatePayout(r.Context(), req.ToUseCaseInput(actorID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create payout", err.Error())
		return
	}

	h.metrics.RecordPayout(entry.Amount)
	h.dashboardUC.Invalidate(r.Context())
	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(entry))
}

// Delete removes a ledger entry with its compensating adjustment.
func (h *CashflowHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.cashflowUC.DeleteTransaction(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete transaction", err.Error())
		return
	}

	h.dashboardUC.Invalidate(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
