package models

// Tag is a user-defined label attached to notes and events through a
// many-to-many relation. The backend assigns the identifier on creation;
// it never changes afterwards.
type Tag struct {
	// ID is the backend-assigned unique identifier.
	ID int64 `json:"id"`

	// Name is the display name. Non-empty; uniqueness is enforced by the
	// backend, not the client.
	Name string `json:"name"`
}

// CreateTagRequest is the payload for creating a tag. The identifier is
// excluded; the backend assigns it and returns the full [Tag].
type CreateTagRequest struct {
	Name string `json:"name"`
}

// UpdateTagRequest renames an existing tag.
type UpdateTagRequest struct {
	Name string `json:"name"`
}
