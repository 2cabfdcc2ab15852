package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tripflow/backend/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete MongoDB
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip document. The caller supplies the complete
	// record, including the generated ID and timestamps.
	Create(ctx context.Context, trip domain.Trip) error

	// GetByID retrieves a single trip by its generated ID.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id string) (domain.Trip, error)

	// List returns all trips, capped at listLimit documents.
	List(ctx context.Context) ([]domain.Trip, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does
	// not exist. It does not touch the trip's days or activities — the
	// cascade lives in the service layer.
	Delete(ctx context.Context, id string) error
}

// mongoTripRepo is the MongoDB implementation of TripRepo.
type mongoTripRepo struct {
	col *mongo.Collection
}

// NewTripRepo constructs a TripRepo backed by the trips collection of db.
func NewTripRepo(db *mongo.Database) TripRepo {
	return &mongoTripRepo{col: db.Collection(tripsCollection)}
}

// Create inserts a new trip document.
func (r *mongoTripRepo) Create(ctx context.Context, trip domain.Trip) error {
	if _, err := r.col.InsertOne(ctx, trip); err != nil {
		return fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return nil
}

// GetByID retrieves a trip by its generated ID.
func (r *mongoTripRepo) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	var trip domain.Trip
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
		}
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return trip, nil
}

// List returns all trips, capped at listLimit.
func (r *mongoTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}

	var trips []domain.Trip
	if err := cur.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: decode: %w", err)
	}
	return trips, nil
}

// Delete removes a trip by its generated ID.
func (r *mongoTripRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}
