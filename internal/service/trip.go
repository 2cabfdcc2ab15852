// Package service contains the business logic for the Tripflow API.
// Services validate inputs, generate IDs and timestamps, and orchestrate repo
// calls. No queries live here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripflow/backend/internal/domain"
	"github.com/tripflow/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
// It holds all three repos because the trip detail view aggregates days and
// activities, and deleting a trip cascades to both.
type TripService struct {
	trips      repo.TripRepo
	days       repo.DayRepo
	activities repo.ActivityRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, days repo.DayRepo, activities repo.ActivityRepo) *TripService {
	return &TripService{trips: trips, days: days, activities: activities}
}

// Create validates and persists a new trip, assigning its ID and timestamps.
// Returns domain.ErrValidation if required fields are missing.
//
// DateStart and DateEnd ordering is deliberately not checked — callers may
// create a trip that ends before it starts.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	if trip.Currency == "" {
		trip.Currency = "USD"
	}
	if trip.Theme == "" {
		trip.Theme = "blue"
	}

	now := time.Now().UTC()
	trip.ID = uuid.NewString()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	if err := s.trips.Create(ctx, trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return trip, nil
}

// List returns all trips.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// GetDetail assembles the consolidated trip view: the trip record, its days
// ascending by index, and its activities ascending by order_index.
// Returns domain.ErrNotFound if the trip does not exist; empty day and
// activity lists are legitimate.
func (s *TripService) GetDetail(ctx context.Context, id string) (domain.TripDetail, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.TripDetail{}, fmt.Errorf("service.TripService.GetDetail: %w", err)
	}

	days, err := s.days.ListByTripID(ctx, id)
	if err != nil {
		return domain.TripDetail{}, fmt.Errorf("service.TripService.GetDetail: %w", err)
	}
	activities, err := s.activities.ListByTripID(ctx, id)
	if err != nil {
		return domain.TripDetail{}, fmt.Errorf("service.TripService.GetDetail: %w", err)
	}

	if days == nil {
		days = []domain.Day{}
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return domain.TripDetail{Trip: trip, Days: days, Activities: activities}, nil
}

// Delete removes a trip together with everything that references it:
// activities first, then days, then the trip document itself, so a failure
// partway through never leaves orphaned children behind a still-present trip.
//
// Children are cleaned up before the trip's own existence is known; NotFound
// is decided by the final delete. Removing children of a nonexistent trip is
// a harmless no-op.
func (s *TripService) Delete(ctx context.Context, id string) error {
	if _, err := s.activities.DeleteByTripID(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if _, err := s.days.DeleteByTripID(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces the required fields for trip creation.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if trip.DateStart.IsZero() {
		return fmt.Errorf("%w: date_start is required", domain.ErrValidation)
	}
	if trip.DateEnd.IsZero() {
		return fmt.Errorf("%w: date_end is required", domain.ErrValidation)
	}
	return nil
}
