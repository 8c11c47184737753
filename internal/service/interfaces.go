// Package service contains the typed REST bindings for the three ApoloNotes
// resources. Each method maps one CRUD operation to one endpoint call and
// returns the parsed response body or nothing. No validation happens here;
// that is the form layer's responsibility; this layer is purely transport
// binding over [adapter.HTTPDoer].
package service

import (
	"context"

	"github.com/apolonotes/apolo-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// NotesService binds the notes collection and item endpoints. The notes
// collection is the only paginated one: List forwards the optional filter
// params verbatim and returns the page envelope.
type NotesService interface {
	List(ctx context.Context, params *models.ListNotesParams) (models.NotesPage, error)
	Get(ctx context.Context, id int64) (models.Note, error)
	Create(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)
	Update(ctx context.Context, id int64, req models.UpdateNoteRequest) (models.Note, error)
	Delete(ctx context.Context, id int64) error
}

// EventsService binds the events endpoints.
type EventsService interface {
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id int64) (models.Event, error)
	Create(ctx context.Context, req models.CreateEventRequest) (models.Event, error)
	Update(ctx context.Context, id int64, req models.UpdateEventRequest) (models.Event, error)
	Delete(ctx context.Context, id int64) error
}

// TagsService binds the tags endpoints. Tags have no detail view, so the
// single-item read is not part of the contract.
type TagsService interface {
	List(ctx context.Context) ([]models.Tag, error)
	Create(ctx context.Context, req models.CreateTagRequest) (models.Tag, error)
	Update(ctx context.Context, id int64, req models.UpdateTagRequest) (models.Tag, error)
	Delete(ctx context.Context, id int64) error
}
