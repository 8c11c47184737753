package resource

import (
	"context"

	"github.com/apolonotes/apolo-console/internal/service"
	"github.com/apolonotes/apolo-console/models"
)

// EventsStore wraps [service.EventsService] with reducer-backed collection
// state. The events collection is unpaginated, so Create appends the new
// entity optimistically.
type EventsStore struct {
	col *collection[models.Event]
	svc service.EventsService
}

// NewEventsStore returns an empty store over svc.
func NewEventsStore(svc service.EventsService) *EventsStore {
	return &EventsStore{
		col: newCollection(func(e models.Event) int64 { return e.ID }),
		svc: svc,
	}
}

// State returns a copy of the held collection state.
func (s *EventsStore) State() State[models.Event] {
	return s.col.snapshot()
}

// FetchAll replaces the held collection and returns it.
func (s *EventsStore) FetchAll(ctx context.Context) ([]models.Event, error) {
	s.col.begin()

	events, err := s.svc.List(ctx)
	s.col.settle(err, "Failed to fetch events")
	if err != nil {
		return nil, err
	}

	s.col.dispatch(action[models.Event]{kind: actionReplaceAll, items: events})
	return events, nil
}

// GetOne fetches a single event without touching the held collection.
func (s *EventsStore) GetOne(ctx context.Context, id int64) (models.Event, error) {
	s.col.begin()

	event, err := s.svc.Get(ctx, id)
	s.col.settle(err, "Failed to fetch event")
	if err != nil {
		return models.Event{}, err
	}
	return event, nil
}

// Create submits a new event and appends the backend-assigned entity to the
// held collection.
func (s *EventsStore) Create(ctx context.Context, req models.CreateEventRequest) (models.Event, error) {
	s.col.begin()

	event, err := s.svc.Create(ctx, req)
	s.col.settle(err, "Failed to create event")
	if err != nil {
		return models.Event{}, err
	}

	s.col.dispatch(action[models.Event]{kind: actionUpsertOne, item: event})
	return event, nil
}

// Update submits a partial update and replaces the matching entry by
// identifier equality.
func (s *EventsStore) Update(ctx context.Context, id int64, req models.UpdateEventRequest) (models.Event, error) {
	s.col.begin()

	event, err := s.svc.Update(ctx, id, req)
	s.col.settle(err, "Failed to update event")
	if err != nil {
		return models.Event{}, err
	}

	s.col.dispatch(action[models.Event]{kind: actionUpsertOne, item: event})
	return event, nil
}

// Delete removes the event remotely, then drops the matching entry from the
// held collection. A failed delete leaves the collection unchanged.
func (s *EventsStore) Delete(ctx context.Context, id int64) error {
	s.col.begin()

	err := s.svc.Delete(ctx, id)
	s.col.settle(err, "Failed to delete event")
	if err != nil {
		return err
	}

	s.col.dispatch(action[models.Event]{kind: actionRemoveOne, id: id})
	return nil
}
