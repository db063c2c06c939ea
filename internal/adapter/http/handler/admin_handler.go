package handler

import (
	"encoding/json"
	"net/http"

	"github.com/studiofin/studiofin/internal/adapter/http/dto"
	"github.com/studiofin/studiofin/internal/domain"
	"github.com/studiofin/studiofin/internal/usecase"
)

// AdminHandler handles settings, fund, team, and adjustment requests.
type AdminHandler struct {
	adminUC      *usecase.AdminUseCase
	adjustmentUC *usecase.AdjustmentUseCase
	dashboardUC  *usecase.DashboardUseCase
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminUC *usecase.AdminUseCase, adjustmentUC *usecase.AdjustmentUseCase, dashboardUC *usecase.DashboardUseCase) *AdminHandler {
	return &AdminHandler{
		adminUC:      adminUC,
		adjustmentUC: adjustmentUC,
		dashboardUC:  dashboardUC,
	}
}

// GetSettings returns the distribution configuration.
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.adminUC.GetSettings(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get settings", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SettingsFromDomain(settings))
}

// UpdateSettings stores new distribution configuration.
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	err := h.adminUC.UpdateSettings(r.Context(), domain.Settings{
		TaxRate:              req.TaxRate,
		FundContributionRate: req.FundContributionRate,
		FundLimit:            req.FundLimit,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to update settings", err.Error())
		return
	}

	h.dashboardUC.Invalidate(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// GetFund returns the current reserve-fund state.
func (h *AdminHandler) GetFund(w http.ResponseWriter, r *http.Request) {
	fund, err := h.adminUC.GetFund(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get fund", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FundFromDomain(fund))
}

// GetTeam lists every participant with their balance.
func (h *AdminHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.adminUC.TeamWithBalances(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get team", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TeamFromUseCase(members))
}

// IssueBonus debits the fund and credits a participant.
func (h *AdminHandler) IssueBonus(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.adjustmentUC.IssueBonus(r.Context(), req.ParticipantID, req.Amount); err != nil {
		writeError(w, mapDomainError(err), "failed to issue bonus", err.Error())
		return
	}

	h.dashboardUC.Invalidate(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// ReturnToFund debits a participant and credits the fund.
func (h *AdminHandler) ReturnToFund(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.adjustmentUC.ReturnToFund(r.Context(), req.ParticipantID, req.Amount); err != nil {
		writeError(w, mapDomainError(err), "failed to return to fund", err.Error())
		return
	}

	h.dashboardUC.Invalidate(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// FreeCash returns the uncommitted cash under the fund limit.
func (h *AdminHandler) FreeCash(w http.ResponseWriter, r *http.Request) {
	free, err := h.adjustmentUC.FreeCash(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute free cash", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"free_cash": free})
}
