package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripflow/backend/internal/domain"
)

// tripCreateRequest is the body of POST /api/trips.
// ID and timestamps are server-assigned and not accepted from clients.
type tripCreateRequest struct {
	Title     string      `json:"title"`
	DateStart domain.Date `json:"date_start"`
	DateEnd   domain.Date `json:"date_end"`
	Currency  string      `json:"currency"`
	Theme     string      `json:"theme"`
}

// CreateTrip handles POST /api/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	trip := domain.Trip{
		Title:     req.Title,
		DateStart: req.DateStart,
		DateEnd:   req.DateEnd,
		Currency:  req.Currency,
		Theme:     req.Theme,
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		respondServiceError(w, r, err, "Trip not found")
		return
	}
	respondJSON(w, http.StatusOK, created)
}

// ListTrips handles GET /api/trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "Trip not found")
		return
	}
	respondJSON(w, http.StatusOK, trips)
}

// GetTripDetail handles GET /api/trips/{tripID}: the trip plus its days
// (ascending by index) and activities (ascending by order_index).
func (s *Server) GetTripDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := s.trips.GetDetail(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondServiceError(w, r, err, "Trip not found")
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// DeleteTrip handles DELETE /api/trips/{tripID}, cascading to the trip's
// days and activities.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Delete(r.Context(), chi.URLParam(r, "tripID")); err != nil {
		respondServiceError(w, r, err, "Trip not found")
		return
	}
	respondMessage(w, http.StatusOK, "Trip deleted successfully")
}
