package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/studiofin/studiofin/internal/adapter/http/dto"
	"github.com/studiofin/studiofin/internal/adapter/http/middleware"
	"github.com/studiofin/studiofin/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvoiceNotFound),
		errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrParticipantNotFound),
		errors.Is(err, domain.ErrBalanceNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrWorkTypeNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvoiceAlreadyPaid),
		errors.Is(err, domain.ErrInvoiceCancelled),
		errors.Is(err, domain.ErrInvoiceNotSent),
		errors.Is(err, domain.ErrInvalidStatusChange),
		errors.Is(err, domain.ErrInvoiceNotDeletable),
		errors.Is(err, domain.ErrTransactionProtected),
		errors.Is(err, domain.ErrSystemCategory):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFund),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInsufficientCash):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNoJobsSelected),
		errors.Is(err, domain.ErrNoParticipantsChosen),
		errors.Is(err, domain.ErrJobNotAvailable),
		errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// actorID returns the authenticated user's ID, empty when auth is
// disabled.
func actorID(r *http.Request) string {
	if user, ok := middleware.GetUserFromContext(r.Context()); ok {
		return user.ID
	}
	return ""
}
