package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripflow/backend/internal/domain"
)

// dayCreateRequest is the body of POST /api/trips/{tripID}/days.
// Index is a pointer so a missing field can be told apart from an explicit 0.
type dayCreateRequest struct {
	Date  domain.Date `json:"date"`
	Index *int        `json:"index"`
	Notes string      `json:"notes"`
}

// CreateDay handles POST /api/trips/{tripID}/days.
// The owning trip ID comes from the path; its existence is not verified.
func (s *Server) CreateDay(w http.ResponseWriter, r *http.Request) {
	var req dayCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Index == nil {
		respondMessage(w, http.StatusUnprocessableEntity, "index is required")
		return
	}

	day := domain.Day{
		TripID: chi.URLParam(r, "tripID"),
		Date:   req.Date,
		Index:  *req.Index,
		Notes:  req.Notes,
	}

	created, err := s.days.Create(r.Context(), day)
	if err != nil {
		respondServiceError(w, r, err, "Day not found")
		return
	}
	respondJSON(w, http.StatusOK, created)
}
