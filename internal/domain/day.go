package domain

import "time"

// Day is a single calendar day within a trip.
// Index is the 1-based position of the day in its trip ("Day 1", "Day 2", …).
// It is caller-supplied; uniqueness and contiguity within a trip are not
// verified.
type Day struct {
	ID        string    `bson:"id" json:"id"`
	TripID    string    `bson:"trip_id" json:"trip_id"`
	Date      Date      `bson:"date" json:"date"`
	Index     int       `bson:"index" json:"index"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
