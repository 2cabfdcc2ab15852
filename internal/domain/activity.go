package domain

import "time"

// Defaults applied when an activity is created without the optional fields.
const (
	DefaultCategory = "general"
	DefaultPriority = "medium"
	DefaultColor    = "#3b82f6"
)

// Activity is a scheduled item within a day.
// TripID is denormalized alongside DayID so a trip's activities can be
// fetched in one query without touching the days collection.
//
// OrderIndex establishes display order among the activities of a day. It is
// not guaranteed unique; consumers resolve ties by insertion order.
type Activity struct {
	ID           string    `bson:"id" json:"id"`
	TripID       string    `bson:"trip_id" json:"trip_id"`
	DayID        string    `bson:"day_id" json:"day_id"`
	Title        string    `bson:"title" json:"title"`
	StartTime    TimeOfDay `bson:"start_time" json:"start_time"`
	EndTime      TimeOfDay `bson:"end_time" json:"end_time"`
	LocationText string    `bson:"location_text,omitempty" json:"location_text,omitempty"`
	Category     string    `bson:"category" json:"category"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Cost         float64   `bson:"cost" json:"cost"`
	Priority     string    `bson:"priority" json:"priority"`
	Color        string    `bson:"color" json:"color"`
	OrderIndex   int       `bson:"order_index" json:"order_index"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// ActivityPatch is an explicit field mask for partial activity updates.
// A nil field means "leave unchanged" — never "clear to empty".
type ActivityPatch struct {
	Title        *string
	StartTime    *TimeOfDay
	EndTime      *TimeOfDay
	LocationText *string
	Category     *string
	Notes        *string
	Cost         *float64
	Priority     *string
	Color        *string
	DayID        *string
	OrderIndex   *int
}

// IsEmpty reports whether the patch carries no fields at all.
func (p ActivityPatch) IsEmpty() bool {
	return p.Title == nil && p.StartTime == nil && p.EndTime == nil &&
		p.LocationText == nil && p.Category == nil && p.Notes == nil &&
		p.Cost == nil && p.Priority == nil && p.Color == nil &&
		p.DayID == nil && p.OrderIndex == nil
}

// ReorderItem is one entry of a bulk reorder request: assign the activity a
// new order index and, optionally, move it to another day.
type ReorderItem struct {
	ID         string  `json:"id"`
	OrderIndex int     `json:"order_index"`
	DayID      *string `json:"day_id,omitempty"`
}

// ReorderResult reports the outcome of one ReorderItem. Updated is false when
// no activity with that ID existed — the update was a no-op, not an error.
type ReorderResult struct {
	ID      string `json:"id"`
	Updated bool   `json:"updated"`
}
