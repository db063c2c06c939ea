package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studiofin/studiofin/internal/adapter/http/dto"
	"github.com/studiofin/studiofin/internal/domain"
	"github.com/studiofin/studiofin/internal/usecase"
)

// ReferenceHandler handles clients, categories, and work types.
type ReferenceHandler struct {
	referenceUC *usecase.ReferenceUseCase
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(referenceUC *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{referenceUC: referenceUC}
}

// CreateClient registers a new client.
func (h *ReferenceHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req dto.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	client, err := h.referenceUC.CreateClient(r.Context(), domain.Client{
		Name:    req.Name,
		TaxRate: req.TaxRate,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create client", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ClientFromDomain(client))
}

// UpdateClient updates a client.
func (h *ReferenceHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var req dto.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	err := h.referenceUC.UpdateClient(r.Context(), domain.Client{
		ID:       chi.URLParam(r, "id"),
		Name:     req.Name,
		TaxRate:  req.TaxRate,
		Archived: req.Archived,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update client", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListClients lists all clients.
func (h *ReferenceHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.referenceUC.ListClients(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list clients", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ClientsFromDomain(clients))
}

// CreateCategory registers an expense category.
func (h *ReferenceHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category, err := h.referenceUC.CreateCategory(r.Context(), req.Name)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create category", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CategoryFromDomain(category))
}

// DeleteCategory removes a non-system category.
func (h *ReferenceHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.referenceUC.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete category", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCategories lists all expense categories.
func (h *ReferenceHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.referenceUC.ListCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list categories", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoriesFromDomain(categories))
}

// CreateWorkType registers a work type.
func (h *ReferenceHandler) CreateWorkType(w http.ResponseWriter, r *http.Request) {
	var req dto.WorkTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	workType, err := h.referenceUC.CreateWorkType(r.Context(), domain.WorkType{
		Name:         req.Name,
		DefaultPrice: req.DefaultPrice,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create work type", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.WorkTypeFromDomain(workType))
}

// UpdateWorkType updates a work type.
func (h *ReferenceHandler) UpdateWorkType(w http.ResponseWriter, r *http.Request) {
	var req dto.WorkTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	err := h.referenceUC.UpdateWorkType(r.Context(), domain.WorkType{
		ID:           chi.URLParam(r, "id"),
		Name:         req.Name,
		DefaultPrice: req.DefaultPrice,
		Archived:     req.Archived,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update work type", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListWorkTypes lists all work types.
func (h *ReferenceHandler) ListWorkTypes(w http.ResponseWriter, r *http.Request) {
	workTypes, err := h.referenceUC.ListWorkTypes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list work types", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.WorkTypesFromDomain(workTypes))
}
