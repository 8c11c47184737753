package resource

import (
	"context"
	"sync"

	"github.com/apolonotes/apolo-console/internal/service"
	"github.com/apolonotes/apolo-console/models"
)

// NotesStore wraps [service.NotesService] with reducer-backed collection
// state. The notes collection is paginated, so Create performs no optimistic
// append; the list screen re-fetches the current page instead.
type NotesStore struct {
	col *collection[models.Note]
	svc service.NotesService

	mu   sync.Mutex
	page models.NotesPage
}

// NewNotesStore returns an empty store over svc.
func NewNotesStore(svc service.NotesService) *NotesStore {
	return &NotesStore{
		col: newCollection(func(n models.Note) int64 { return n.ID }),
		svc: svc,
	}
}

// State returns a copy of the held collection state.
func (s *NotesStore) State() State[models.Note] {
	return s.col.snapshot()
}

// Page returns the pagination envelope of the last successful FetchAll.
func (s *NotesStore) Page() models.NotesPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// FetchAll replaces the held collection with the page matching params and
// returns it. On failure the error message is recorded and the error
// re-raised so the caller may react.
func (s *NotesStore) FetchAll(ctx context.Context, params *models.ListNotesParams) (models.NotesPage, error) {
	s.col.begin()

	page, err := s.svc.List(ctx, params)
	s.col.settle(err, "Failed to fetch notes")
	if err != nil {
		return models.NotesPage{}, err
	}

	s.col.dispatch(action[models.Note]{kind: actionReplaceAll, items: page.Content})
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
	return page, nil
}

// GetOne fetches a single note without touching the held collection; detail
// screens hold their own copy.
func (s *NotesStore) GetOne(ctx context.Context, id int64) (models.Note, error) {
	s.col.begin()

	note, err := s.svc.Get(ctx, id)
	s.col.settle(err, "Failed to fetch note")
	if err != nil {
		return models.Note{}, err
	}
	return note, nil
}

// Create submits a new note and returns the backend-assigned entity. The
// held page is left untouched.
func (s *NotesStore) Create(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	s.col.begin()

	note, err := s.svc.Create(ctx, req)
	s.col.settle(err, "Failed to create note")
	if err != nil {
		return models.Note{}, err
	}
	return note, nil
}

// Update submits a partial update and replaces the matching entry in the
// held collection by identifier equality.
func (s *NotesStore) Update(ctx context.Context, id int64, req models.UpdateNoteRequest) (models.Note, error) {
	s.col.begin()

	note, err := s.svc.Update(ctx, id, req)
	s.col.settle(err, "Failed to update note")
	if err != nil {
		return models.Note{}, err
	}

	s.col.dispatch(action[models.Note]{kind: actionUpsertOne, item: note})
	return note, nil
}

// Delete removes the note remotely, then drops the matching entry from the
// held collection. A failed delete (including not-found) leaves the
// collection unchanged.
func (s *NotesStore) Delete(ctx context.Context, id int64) error {
	s.col.begin()

	err := s.svc.Delete(ctx, id)
	s.col.settle(err, "Failed to delete note")
	if err != nil {
		return err
	}

	s.col.dispatch(action[models.Note]{kind: actionRemoveOne, id: id})
	return nil
}
