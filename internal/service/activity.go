package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripflow/backend/internal/domain"
	"github.com/tripflow/backend/internal/repo"
)

// ActivityService implements business logic for Activity operations,
// including the per-day ordering of activities.
type ActivityService struct {
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided
// ActivityRepo.
func NewActivityService(activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{activities: activities}
}

// Create validates and persists a new activity under a day, assigning its ID,
// timestamps, defaults, and order index.
//
// The order index is one greater than the current maximum among the day's
// activities (0 for an empty day). It is recomputed from the day's current
// contents on every append rather than kept as separate counter state, which
// trades a small scan for immunity to counter drift.
func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if err := validateActivity(activity); err != nil {
		return domain.Activity{}, err
	}
	if activity.Category == "" {
		activity.Category = domain.DefaultCategory
	}
	if activity.Priority == "" {
		activity.Priority = domain.DefaultPriority
	}
	if activity.Color == "" {
		activity.Color = domain.DefaultColor
	}

	siblings, err := s.activities.ListByDayID(ctx, activity.DayID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	maxOrder := -1
	for _, sib := range siblings {
		if sib.OrderIndex > maxOrder {
			maxOrder = sib.OrderIndex
		}
	}
	activity.OrderIndex = maxOrder + 1

	now := time.Now().UTC()
	activity.ID = uuid.NewString()
	activity.CreatedAt = now
	activity.UpdatedAt = now

	if err := s.activities.Create(ctx, activity); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return activity, nil
}

// Update applies the non-nil fields of patch to an activity and returns the
// updated record. Absent fields are left unchanged; updated_at is refreshed
// even when the patch is otherwise empty.
// Returns domain.ErrNotFound if the activity does not exist.
func (s *ActivityService) Update(ctx context.Context, id string, patch domain.ActivityPatch) (domain.Activity, error) {
	if err := s.activities.ApplyPatch(ctx, id, patch); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}

	updated, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes an activity by ID.
// Returns domain.ErrNotFound if the activity does not exist.
func (s *ActivityService) Delete(ctx context.Context, id string) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

// Reorder applies a bulk reorder batch one item at a time: each entry sets
// the activity's order index, optionally moves it to another day, and
// refreshes updated_at.
//
// The batch is not atomic. An unknown activity ID yields Updated=false for
// that entry and processing continues; a store failure aborts the remainder
// and returns the error, leaving earlier updates committed. Applying the same
// batch twice produces the same final state as applying it once.
func (s *ActivityService) Reorder(ctx context.Context, items []domain.ReorderItem) ([]domain.ReorderResult, error) {
	results := make([]domain.ReorderResult, 0, len(items))
	for _, item := range items {
		patch := domain.ActivityPatch{OrderIndex: &item.OrderIndex}
		if item.DayID != nil && *item.DayID != "" {
			patch.DayID = item.DayID
		}

		err := s.activities.ApplyPatch(ctx, item.ID, patch)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			results = append(results, domain.ReorderResult{ID: item.ID, Updated: false})
		case err != nil:
			return results, fmt.Errorf("service.ActivityService.Reorder: %w", err)
		default:
			results = append(results, domain.ReorderResult{ID: item.ID, Updated: true})
		}
	}
	return results, nil
}

// validateActivity enforces the required fields for activity creation.
// Start/end ordering and time overlap are deliberately not checked.
func validateActivity(activity domain.Activity) error {
	if strings.TrimSpace(activity.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if activity.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", domain.ErrValidation)
	}
	if activity.EndTime.IsZero() {
		return fmt.Errorf("%w: end_time is required", domain.ErrValidation)
	}
	return nil
}
