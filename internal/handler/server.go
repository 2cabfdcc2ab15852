// Package handler implements the HTTP handlers for the Tripflow API.
// All handlers are methods on Server. Methods are split into entity-specific
// files (health.go, trip.go, day.go, activity.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/tripflow/backend/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	GetDetail(ctx context.Context, id string) (domain.TripDetail, error)
	Delete(ctx context.Context, id string) error
}

// DayServicer defines the business operations the day handlers depend on.
type DayServicer interface {
	Create(ctx context.Context, day domain.Day) (domain.Day, error)
}

// ActivityServicer defines the business operations the activity handlers
// depend on.
type ActivityServicer interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Update(ctx context.Context, id string, patch domain.ActivityPatch) (domain.Activity, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, items []domain.ReorderItem) ([]domain.ReorderResult, error)
}

// Server holds the dependencies shared by every handler method.
// Wire it in main.go via Routes().
type Server struct {
	trips      TripServicer
	days       DayServicer
	activities ActivityServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, days DayServicer, activities ActivityServicer) *Server {
	return &Server{trips: trips, days: days, activities: activities}
}

// Routes returns the full router for the service. API endpoints live under
// the /api prefix; the bare root and the OpenAPI document sit outside it.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.Root)
	r.Get("/openapi.yaml", s.OpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.APIRoot)
		r.Get("/health", s.Health)

		r.Post("/trips", s.CreateTrip)
		r.Get("/trips", s.ListTrips)
		r.Get("/trips/{tripID}", s.GetTripDetail)
		r.Delete("/trips/{tripID}", s.DeleteTrip)

		r.Post("/trips/{tripID}/days", s.CreateDay)
		r.Post("/trips/{tripID}/days/{dayID}/activities", s.CreateActivity)

		r.Put("/activities/{activityID}", s.UpdateActivity)
		r.Delete("/activities/{activityID}", s.DeleteActivity)
		r.Post("/activities/reorder", s.ReorderActivities)
	})

	return r
}
