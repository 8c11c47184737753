package resource

import "github.com/apolonotes/apolo-console/internal/service"

// Stores bundles the three entity stores for dependency injection.
type Stores struct {
	Notes  *NotesStore
	Events *EventsStore
	Tags   *TagsStore
}

// NewStores constructs all stores over their service bindings.
func NewStores(services *service.Services) *Stores {
	return &Stores{
		Notes:  NewNotesStore(services.Notes),
		Events: NewEventsStore(services.Events),
		Tags:   NewTagsStore(services.Tags),
	}
}
