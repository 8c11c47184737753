package models

// NotesPage is the pagination envelope returned by the notes collection
// endpoint. Events and tags are small collections and are returned as plain
// arrays without an envelope.
type NotesPage struct {
	// Content is the slice of notes on the current page.
	Content []Note `json:"content"`

	// TotalElements is the total number of notes matching the filter.
	TotalElements int `json:"totalElements"`

	// TotalPages is the number of pages at the current page size.
	TotalPages int `json:"totalPages"`

	// Size is the page size used by the backend for this response.
	Size int `json:"size"`

	// Number is the zero-based index of the current page.
	Number int `json:"number"`
}
