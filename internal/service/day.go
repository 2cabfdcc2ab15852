package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tripflow/backend/internal/domain"
	"github.com/tripflow/backend/internal/repo"
)

// DayService implements business logic for Day operations.
type DayService struct {
	days repo.DayRepo
}

// NewDayService constructs a DayService backed by the provided DayRepo.
func NewDayService(days repo.DayRepo) *DayService {
	return &DayService{days: days}
}

// Create validates and persists a new day, assigning its ID and creation
// timestamp. Returns domain.ErrValidation if required fields are missing.
//
// The parent trip's existence is not verified, and Index is stored exactly
// as supplied — duplicates and gaps are the caller's to manage.
func (s *DayService) Create(ctx context.Context, day domain.Day) (domain.Day, error) {
	if day.Date.IsZero() {
		return domain.Day{}, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}

	day.ID = uuid.NewString()
	day.CreatedAt = time.Now().UTC()

	if err := s.days.Create(ctx, day); err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Create: %w", err)
	}
	return day, nil
}
