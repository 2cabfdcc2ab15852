// Package domain contains the core data types for the Tripflow API.
// This package has no dependencies on other internal packages and is imported
// by every other internal package (repo, service, handler).
package domain

import "time"

// Trip represents a single trip itinerary.
// A trip is the top-level aggregate; days and activities belong to a trip.
//
// DateStart and DateEnd are caller-supplied and their ordering is not
// validated — a trip ending before it starts is accepted as-is.
type Trip struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	DateStart Date      `bson:"date_start" json:"date_start"`
	DateEnd   Date      `bson:"date_end" json:"date_end"`
	Currency  string    `bson:"currency" json:"currency"`
	Theme     string    `bson:"theme" json:"theme"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// TripDetail is the consolidated view of a trip: the trip record plus all of
// its days (ascending by index) and all of its activities (ascending by
// order_index). Days and Activities are never nil, only possibly empty.
type TripDetail struct {
	Trip       Trip       `json:"trip"`
	Days       []Day      `json:"days"`
	Activities []Activity `json:"activities"`
}
