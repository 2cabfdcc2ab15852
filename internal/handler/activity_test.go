package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripflow/backend/internal/domain"
	"github.com/tripflow/backend/internal/handler"
)

// mockActivityServicer is a test double for handler.ActivityServicer.
type mockActivityServicer struct {
	create  func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	update  func(ctx context.Context, id string, patch domain.ActivityPatch) (domain.Activity, error)
	delete  func(ctx context.Context, id string) error
	reorder func(ctx context.Context, items []domain.ReorderItem) ([]domain.ReorderResult, error)
}

func (m *mockActivityServicer) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	return m.create(ctx, activity)
}
func (m *mockActivityServicer) Update(ctx context.Context, id string, patch domain.ActivityPatch) (domain.Activity, error) {
	return m.update(ctx, id, patch)
}
func (m *mockActivityServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}
func (m *mockActivityServicer) Reorder(ctx context.Context, items []domain.ReorderItem) ([]domain.ReorderResult, error) {
	return m.reorder(ctx, items)
}

var _ handler.ActivityServicer = (*mockActivityServicer)(nil)

func activityFixture() domain.Activity {
	return domain.Activity{
		ID:        "act-1",
		TripID:    "trip-1",
		DayID:     "day-1",
		Title:     "Senso-ji Temple",
		StartTime: domain.ParseTimeOfDay("09:00"),
		EndTime:   domain.ParseTimeOfDay("11:30"),
		Category:  domain.DefaultCategory,
		Priority:  domain.DefaultPriority,
		Color:     domain.DefaultColor,
	}
}

// ---- POST /api/trips/{trip_id}/days/{day_id}/activities --------------------

func TestCreateActivity_200_IDsFromPath(t *testing.T) {
	svc := &mockActivityServicer{
		create: func(_ context.Context, activity domain.Activity) (domain.Activity, error) {
			assert.Equal(t, "trip-1", activity.TripID)
			assert.Equal(t, "day-1", activity.DayID)
			assert.Equal(t, "09:00", activity.StartTime.String())
			activity.ID = "act-1"
			activity.OrderIndex = 0
			return activity, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"title":      "Senso-ji Temple",
		"start_time": "09:00",
		"end_time":   "11:30",
	})
	rec := doJSON(t, newHandler(nil, nil, svc),
		http.MethodPost, "/api/trips/trip-1/days/day-1/activities", body)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "act-1", resp.ID)
	assert.Equal(t, 0, resp.OrderIndex)
	// The "HH:MM" form a client submits is what it reads back.
	assert.Equal(t, "09:00", resp.StartTime.String())
}

func TestCreateActivity_422_ValidationError(t *testing.T) {
	svc := &mockActivityServicer{
		create: func(_ context.Context, _ domain.Activity) (domain.Activity, error) {
			return domain.Activity{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{"start_time": "09:00", "end_time": "11:30"})
	rec := doJSON(t, newHandler(nil, nil, svc),
		http.MethodPost, "/api/trips/trip-1/days/day-1/activities", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- PUT /api/activities/{activity_id} -------------------------------------

func TestUpdateActivity_200_OnlySuppliedFieldsInPatch(t *testing.T) {
	var gotPatch domain.ActivityPatch
	svc := &mockActivityServicer{
		update: func(_ context.Context, id string, patch domain.ActivityPatch) (domain.Activity, error) {
			assert.Equal(t, "act-1", id)
			gotPatch = patch
			updated := activityFixture()
			updated.Cost = 50.0
			return updated, nil
		},
	}

	body := jsonBody(t, map[string]any{"cost": 50.0})
	rec := doJSON(t, newHandler(nil, nil, svc), http.MethodPut, "/api/activities/act-1", body)

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, gotPatch.Cost)
	assert.Equal(t, 50.0, *gotPatch.Cost)
	// Absent fields mean "leave unchanged" and must not travel.
	assert.Nil(t, gotPatch.Title)
	assert.Nil(t, gotPatch.StartTime)
	assert.Nil(t, gotPatch.DayID)
	assert.Nil(t, gotPatch.OrderIndex)

	var resp domain.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 50.0, resp.Cost)
}

func TestUpdateActivity_404(t *testing.T) {
	svc := &mockActivityServicer{
		update: func(_ context.Context, _ string, _ domain.ActivityPatch) (domain.Activity, error) {
			return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", domain.ErrNotFound)
		},
	}

	body := jsonBody(t, map[string]any{"cost": 50.0})
	rec := doJSON(t, newHandler(nil, nil, svc), http.MethodPut, "/api/activities/nope", body)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Activity not found", resp["message"])
}

// ---- DELETE /api/activities/{activity_id} ----------------------------------

func TestDeleteActivity_200(t *testing.T) {
	svc := &mockActivityServicer{
		delete: func(_ context.Context, id string) error {
			assert.Equal(t, "act-1", id)
			return nil
		},
	}

	rec := doJSON(t, newHandler(nil, nil, svc), http.MethodDelete, "/api/activities/act-1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Activity deleted successfully", resp["message"])
}

func TestDeleteActivity_404(t *testing.T) {
	svc := &mockActivityServicer{
		delete: func(_ context.Context, _ string) error {
			return fmt.Errorf("service.ActivityService.Delete: %w", domain.ErrNotFound)
		},
	}

	rec := doJSON(t, newHandler(nil, nil, svc), http.MethodDelete, "/api/activities/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- POST /api/activities/reorder ------------------------------------------

func TestReorderActivities_200_PerItemResults(t *testing.T) {
	day2 := "day-2"
	svc := &mockActivityServicer{
		reorder: func(_ context.Context, items []domain.ReorderItem) ([]domain.ReorderResult, error) {
			require.Len(t, items, 2)
			assert.Equal(t, "act-1", items[0].ID)
			assert.Equal(t, 0, items[0].OrderIndex)
			require.NotNil(t, items[0].DayID)
			assert.Equal(t, day2, *items[0].DayID)
			assert.Nil(t, items[1].DayID)
			return []domain.ReorderResult{
				{ID: "act-1", Updated: true},
				{ID: "ghost", Updated: false},
			}, nil
		},
	}

	body := jsonBody(t, []map[string]any{
		{"id": "act-1", "order_index": 0, "day_id": "day-2"},
		{"id": "ghost", "order_index": 1},
	})
	rec := doJSON(t, newHandler(nil, nil, svc), http.MethodPost, "/api/activities/reorder", body)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string                 `json:"message"`
		Results []domain.ReorderResult `json:"results"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Activities reordered successfully", resp.Message)
	require.Len(t, resp.Results, 2)
	assert.True(t, resp.Results[0].Updated)
	assert.False(t, resp.Results[1].Updated)
}

func TestReorderActivities_500_StoreError(t *testing.T) {
	svc := &mockActivityServicer{
		reorder: func(_ context.Context, _ []domain.ReorderItem) ([]domain.ReorderResult, error) {
			return nil, fmt.Errorf("service.ActivityService.Reorder: connection reset")
		},
	}

	body := jsonBody(t, []map[string]any{{"id": "act-1", "order_index": 0}})
	rec := doJSON(t, newHandler(nil, nil, svc), http.MethodPost, "/api/activities/reorder", body)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
