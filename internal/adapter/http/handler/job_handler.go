package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studiofin/studiofin/internal/adapter/http/dto"
	"github.com/studiofin/studiofin/internal/usecase"
)

// JobHandler handles job-related HTTP requests.
type JobHandler struct {
	jobUC *usecase.JobUseCase
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobUC *usecase.JobUseCase) *JobHandler {
	return &JobHandler{jobUC: jobUC}
}

// Create records a new unit of billable work.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	job, err := h.jobUC.CreateJob(r.Context(), req.ToUseCaseInput(actorID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create job", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.JobFromDomain(job))
}

// List lists jobs newest first.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobUC.ListJobs(r.Context(), usecase.ListJobsInput{
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list jobs", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.JobsFromDomain(jobs))
}

// Delete removes a job that is not attached to any invoice.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.jobUC.DeleteJob(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete job", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
