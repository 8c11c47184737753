package models

import "time"

// Note is a free-text record with an archived flag and associated tags.
//
// Timestamps are assigned by the backend: CreatedAt on creation, UpdatedAt
// on every successful mutation. The client never sets either.
type Note struct {
	// ID is the backend-assigned unique identifier.
	ID int64 `json:"id"`

	// Title is the display name. Required, length-validated at the form
	// layer before any request is issued.
	Title string `json:"title"`

	// Content is the free-text body. Optional, length-capped.
	Content string `json:"content"`

	// Archived marks the note as archived. Archived notes are excluded
	// from the default list view.
	Archived bool `json:"archived"`

	// Tags holds the full tag objects associated with the note, as
	// returned by the backend.
	Tags []Tag `json:"tags"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateNoteRequest is the payload for creating a note. Tags are referenced
// by identifier; the backend resolves them to full objects in the response.
type CreateNoteRequest struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	TagIDs  []int64 `json:"tagIds"`
}

// UpdateNoteRequest is the payload for a partial note update. The backend
// merges it into the stored record and returns the resulting entity.
type UpdateNoteRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	TagIDs   []int64 `json:"tagIds"`
	Archived bool    `json:"archived"`
}

// ListNotesParams are the optional filters forwarded verbatim as query
// parameters of the notes collection endpoint. Nil fields are omitted.
type ListNotesParams struct {
	// Page is the zero-based page index.
	Page *int

	// Size is the page size.
	Size *int

	// Archived filters by the archived flag.
	Archived *bool

	// Tag filters by tag name.
	Tag *string
}
