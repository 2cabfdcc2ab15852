// Package repo contains all database access logic for the Tripflow API.
// Each resource has its own file with an interface and a MongoDB
// implementation. No business logic lives here — only queries and type
// mapping.
//
// Documents are keyed by the entities' own generated "id" field, not the
// store's internal _id. The store enforces no referential integrity between
// collections; that is the service layer's responsibility.
package repo

// listLimit caps every unpaginated list query. Collections are expected to
// stay far below this in practice.
const listLimit = 1000

// Collection names within the Tripflow database.
const (
	tripsCollection      = "trips"
	daysCollection       = "days"
	activitiesCollection = "activities"
)
