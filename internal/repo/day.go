package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tripflow/backend/internal/domain"
)

// DayRepo defines the persistence operations for Days.
type DayRepo interface {
	// Create inserts a new day document. The caller supplies the complete
	// record, including the generated ID and creation timestamp.
	Create(ctx context.Context, day domain.Day) error

	// ListByTripID returns all days of a trip ordered ascending by index,
	// capped at listLimit documents.
	ListByTripID(ctx context.Context, tripID string) ([]domain.Day, error)

	// DeleteByTripID removes every day belonging to the trip and returns the
	// number of documents removed. Zero removals is not an error.
	DeleteByTripID(ctx context.Context, tripID string) (int64, error)
}

// mongoDayRepo is the MongoDB implementation of DayRepo.
type mongoDayRepo struct {
	col *mongo.Collection
}

// NewDayRepo constructs a DayRepo backed by the days collection of db.
func NewDayRepo(db *mongo.Database) DayRepo {
	return &mongoDayRepo{col: db.Collection(daysCollection)}
}

// Create inserts a new day document.
func (r *mongoDayRepo) Create(ctx context.Context, day domain.Day) error {
	if _, err := r.col.InsertOne(ctx, day); err != nil {
		return fmt.Errorf("repo.DayRepo.Create: %w", err)
	}
	return nil
}

// ListByTripID returns a trip's days ordered ascending by index.
func (r *mongoDayRepo) ListByTripID(ctx context.Context, tripID string) ([]domain.Day, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "index", Value: 1}}).
		SetLimit(listLimit)
	cur, err := r.col.Find(ctx, bson.M{"trip_id": tripID}, opts)
	if err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTripID: %w", err)
	}

	var days []domain.Day
	if err := cur.All(ctx, &days); err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTripID: decode: %w", err)
	}
	return days, nil
}

// DeleteByTripID removes all days of a trip.
func (r *mongoDayRepo) DeleteByTripID(ctx context.Context, tripID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"trip_id": tripID})
	if err != nil {
		return 0, fmt.Errorf("repo.DayRepo.DeleteByTripID: %w", err)
	}
	return res.DeletedCount, nil
}
