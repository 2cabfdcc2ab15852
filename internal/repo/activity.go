package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tripflow/backend/internal/domain"
)

// ActivityRepo defines the persistence operations for Activities.
type ActivityRepo interface {
	// Create inserts a new activity document. The caller supplies the
	// complete record, including the generated ID, order index, and
	// timestamps.
	Create(ctx context.Context, activity domain.Activity) error

	// GetByID retrieves a single activity by its generated ID.
	// Returns domain.ErrNotFound if no activity with that ID exists.
	GetByID(ctx context.Context, id string) (domain.Activity, error)

	// ListByTripID returns all activities of a trip ordered ascending by
	// order_index, capped at listLimit documents.
	ListByTripID(ctx context.Context, tripID string) ([]domain.Activity, error)

	// ListByDayID returns all activities assigned to a day, in no
	// particular order, capped at listLimit documents.
	ListByDayID(ctx context.Context, dayID string) ([]domain.Activity, error)

	// ApplyPatch sets the non-nil fields of patch on the activity and
	// refreshes updated_at. Returns domain.ErrNotFound if no activity with
	// that ID exists; earlier writes are unaffected.
	ApplyPatch(ctx context.Context, id string, patch domain.ActivityPatch) error

	// Delete removes an activity by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error

	// DeleteByTripID removes every activity belonging to the trip and
	// returns the number of documents removed. Zero removals is not an error.
	DeleteByTripID(ctx context.Context, tripID string) (int64, error)
}

// mongoActivityRepo is the MongoDB implementation of ActivityRepo.
type mongoActivityRepo struct {
	col *mongo.Collection
}

// NewActivityRepo constructs an ActivityRepo backed by the activities
// collection of db.
func NewActivityRepo(db *mongo.Database) ActivityRepo {
	return &mongoActivityRepo{col: db.Collection(activitiesCollection)}
}

// Create inserts a new activity document.
func (r *mongoActivityRepo) Create(ctx context.Context, activity domain.Activity) error {
	if _, err := r.col.InsertOne(ctx, activity); err != nil {
		return fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return nil
}

// GetByID retrieves an activity by its generated ID.
func (r *mongoActivityRepo) GetByID(ctx context.Context, id string) (domain.Activity, error) {
	var activity domain.Activity
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&activity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", domain.ErrNotFound)
		}
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return activity, nil
}

// ListByTripID returns a trip's activities ordered ascending by order_index.
// MongoDB's sort is stable for equal keys, so duplicate order_index values
// resolve by insertion order.
func (r *mongoActivityRepo) ListByTripID(ctx context.Context, tripID string) ([]domain.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "order_index", Value: 1}}).
		SetLimit(listLimit)
	cur, err := r.col.Find(ctx, bson.M{"trip_id": tripID}, opts)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: %w", err)
	}

	var activities []domain.Activity
	if err := cur.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: decode: %w", err)
	}
	return activities, nil
}

// ListByDayID returns all activities currently assigned to a day.
func (r *mongoActivityRepo) ListByDayID(ctx context.Context, dayID string) ([]domain.Activity, error) {
	cur, err := r.col.Find(ctx, bson.M{"day_id": dayID}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByDayID: %w", err)
	}

	var activities []domain.Activity
	if err := cur.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByDayID: decode: %w", err)
	}
	return activities, nil
}

// ApplyPatch applies the non-nil fields of patch via a single $set update.
func (r *mongoActivityRepo) ApplyPatch(ctx context.Context, id string, patch domain.ActivityPatch) error {
	set := patchToSet(patch)
	set["updated_at"] = time.Now().UTC()

	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.ApplyPatch: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("repo.ActivityRepo.ApplyPatch: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes an activity by its generated ID.
func (r *mongoActivityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// DeleteByTripID removes all activities of a trip.
func (r *mongoActivityRepo) DeleteByTripID(ctx context.Context, tripID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"trip_id": tripID})
	if err != nil {
		return 0, fmt.Errorf("repo.ActivityRepo.DeleteByTripID: %w", err)
	}
	return res.DeletedCount, nil
}

// patchToSet maps the non-nil fields of an ActivityPatch to a $set document.
// Date/time typed fields go through their own BSON marshalers, so the string
// storage form is applied here exactly as on insert.
func patchToSet(patch domain.ActivityPatch) bson.M {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.StartTime != nil {
		set["start_time"] = *patch.StartTime
	}
	if patch.EndTime != nil {
		set["end_time"] = *patch.EndTime
	}
	if patch.LocationText != nil {
		set["location_text"] = *patch.LocationText
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if patch.Cost != nil {
		set["cost"] = *patch.Cost
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.Color != nil {
		set["color"] = *patch.Color
	}
	if patch.DayID != nil {
		set["day_id"] = *patch.DayID
	}
	if patch.OrderIndex != nil {
		set["order_index"] = *patch.OrderIndex
	}
	return set
}
