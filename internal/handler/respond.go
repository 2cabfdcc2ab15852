package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tripflow/backend/internal/domain"
)

// messageResponse is the body of every failure response and of delete
// confirmations: a single descriptive message, no structured error codes.
type messageResponse struct {
	Message string `json:"message"`
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// respondMessage writes a single-field message body with the given status.
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, messageResponse{Message: message})
}

// respondServiceError maps a service-layer error onto the response:
// domain.ErrNotFound → 404 with notFoundMessage, domain.ErrValidation → 422
// with the rule that failed, anything else → 500 without leaking internals.
// Handlers perform no other recovery.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondMessage(w, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, domain.ErrValidation):
		respondMessage(w, http.StatusUnprocessableEntity, validationMessage(err))
	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		respondMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation, e.g.
// "service.TripService.Create: validation error: title is required" → "title is required".
func validationMessage(err error) string {
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// decodeBody decodes the request body into v, returning false after writing
// a 422 response when the body is missing or malformed.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondMessage(w, http.StatusUnprocessableEntity, "invalid request body")
		return false
	}
	return true
}
