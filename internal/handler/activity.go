package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripflow/backend/internal/domain"
)

// activityCreateRequest is the body of
// POST /api/trips/{tripID}/days/{dayID}/activities.
// ID, order_index, and timestamps are server-assigned.
type activityCreateRequest struct {
	Title        string           `json:"title"`
	StartTime    domain.TimeOfDay `json:"start_time"`
	EndTime      domain.TimeOfDay `json:"end_time"`
	LocationText string           `json:"location_text"`
	Category     string           `json:"category"`
	Notes        string           `json:"notes"`
	Cost         float64          `json:"cost"`
	Priority     string           `json:"priority"`
	Color        string           `json:"color"`
}

// activityUpdateRequest is the body of PUT /api/activities/{activityID}.
// Every field is optional; absent or null means "leave unchanged", never
// "clear to empty".
type activityUpdateRequest struct {
	Title        *string           `json:"title"`
	StartTime    *domain.TimeOfDay `json:"start_time"`
	EndTime      *domain.TimeOfDay `json:"end_time"`
	LocationText *string           `json:"location_text"`
	Category     *string           `json:"category"`
	Notes        *string           `json:"notes"`
	Cost         *float64          `json:"cost"`
	Priority     *string           `json:"priority"`
	Color        *string           `json:"color"`
	DayID        *string           `json:"day_id"`
	OrderIndex   *int              `json:"order_index"`
}

// CreateActivity handles POST /api/trips/{tripID}/days/{dayID}/activities.
// The service assigns the next order_index within the day.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req activityCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	activity := domain.Activity{
		TripID:       chi.URLParam(r, "tripID"),
		DayID:        chi.URLParam(r, "dayID"),
		Title:        req.Title,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		LocationText: req.LocationText,
		Category:     req.Category,
		Notes:        req.Notes,
		Cost:         req.Cost,
		Priority:     req.Priority,
		Color:        req.Color,
	}

	created, err := s.activities.Create(r.Context(), activity)
	if err != nil {
		respondServiceError(w, r, err, "Activity not found")
		return
	}
	respondJSON(w, http.StatusOK, created)
}

// UpdateActivity handles PUT /api/activities/{activityID} as a partial
// update: only supplied fields are applied, and updated_at is refreshed.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var req activityUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	patch := domain.ActivityPatch{
		Title:        req.Title,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		LocationText: req.LocationText,
		Category:     req.Category,
		Notes:        req.Notes,
		Cost:         req.Cost,
		Priority:     req.Priority,
		Color:        req.Color,
		DayID:        req.DayID,
		OrderIndex:   req.OrderIndex,
	}

	updated, err := s.activities.Update(r.Context(), chi.URLParam(r, "activityID"), patch)
	if err != nil {
		respondServiceError(w, r, err, "Activity not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteActivity handles DELETE /api/activities/{activityID}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := s.activities.Delete(r.Context(), chi.URLParam(r, "activityID")); err != nil {
		respondServiceError(w, r, err, "Activity not found")
		return
	}
	respondMessage(w, http.StatusOK, "Activity deleted successfully")
}

// reorderResponse is the body of POST /api/activities/reorder. Results report
// the outcome per entry so a caller can tell a no-op (unknown ID) from a
// successful update.
type reorderResponse struct {
	Message string                 `json:"message"`
	Results []domain.ReorderResult `json:"results"`
}

// ReorderActivities handles POST /api/activities/reorder. The batch is
// applied best-effort, one entry at a time; it is not atomic.
func (s *Server) ReorderActivities(w http.ResponseWriter, r *http.Request) {
	var items []domain.ReorderItem
	if !decodeBody(w, r, &items) {
		return
	}

	results, err := s.activities.Reorder(r.Context(), items)
	if err != nil {
		respondServiceError(w, r, err, "Activity not found")
		return
	}
	respondJSON(w, http.StatusOK, reorderResponse{
		Message: "Activities reordered successfully",
		Results: results,
	})
}
