package handler

import (
	"net/http"

	"github.com/studiofin/studiofin/internal/usecase"
)

// DashboardHandler serves the aggregated finance snapshot.
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// Overview returns the dashboard snapshot.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboardUC.GetOverview(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build overview", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, overview)
}
