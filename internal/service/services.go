package service

import "github.com/apolonotes/apolo-console/internal/adapter"

// Services bundles the three resource bindings for dependency injection.
type Services struct {
	Notes  NotesService
	Events EventsService
	Tags   TagsService
}

// NewServices constructs all resource services over a shared [adapter.HTTPDoer].
func NewServices(doer adapter.HTTPDoer) *Services {
	return &Services{
		Notes:  NewNotesService(doer),
		Events: NewEventsService(doer),
		Tags:   NewTagsService(doer),
	}
}
