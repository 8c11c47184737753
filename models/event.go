package models

import "time"

// Event is a scheduled record with a required start and an optional end.
// The "end strictly after start" rule is enforced at the form layer, not by
// this type.
type Event struct {
	// ID is the backend-assigned unique identifier.
	ID int64 `json:"id"`

	// Title is the display name. Required, length-validated at the form
	// layer.
	Title string `json:"title"`

	// Description is the optional free-text body.
	Description string `json:"description,omitempty"`

	// StartAt is the event start. Required.
	StartAt time.Time `json:"startAt"`

	// EndAt is the optional event end. When present it is strictly after
	// StartAt.
	EndAt *time.Time `json:"endAt,omitempty"`

	// Archived marks the event as archived.
	Archived bool `json:"archived"`

	// Tags holds the full tag objects associated with the event.
	Tags []Tag `json:"tags"`
}

// Upcoming reports whether the event starts at or after now. The dashboard
// and events list use it to partition events into upcoming and past buckets.
func (e Event) Upcoming(now time.Time) bool {
	return !e.StartAt.Before(now)
}

// CreateEventRequest is the payload for creating an event.
type CreateEventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartAt     time.Time  `json:"startAt"`
	EndAt       *time.Time `json:"endAt,omitempty"`
	TagIDs      []int64    `json:"tagIds"`
}

// UpdateEventRequest is the payload for a partial event update.
type UpdateEventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartAt     time.Time  `json:"startAt"`
	EndAt       *time.Time `json:"endAt,omitempty"`
	TagIDs      []int64    `json:"tagIds"`
	Archived    bool       `json:"archived"`
}
