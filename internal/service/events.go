package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/apolonotes/apolo-console/internal/adapter"
	"github.com/apolonotes/apolo-console/models"
)

type eventsService struct {
	doer adapter.HTTPDoer
}

// NewEventsService returns the [EventsService] bound to the /events
// endpoints.
func NewEventsService(doer adapter.HTTPDoer) EventsService {
	return &eventsService{doer: doer}
}

func (s *eventsService) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.doer.Get(ctx, "/events", nil, &events); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventsService) Get(ctx context.Context, id int64) (models.Event, error) {
	var event models.Event
	if err := s.doer.Get(ctx, "/events/"+strconv.FormatInt(id, 10), nil, &event); err != nil {
		return models.Event{}, fmt.Errorf("get event %d: %w", id, err)
	}
	return event, nil
}

func (s *eventsService) Create(ctx context.Context, req models.CreateEventRequest) (models.Event, error) {
	var event models.Event
	if err := s.doer.Post(ctx, "/events", req, &event); err != nil {
		return models.Event{}, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventsService) Update(ctx context.Context, id int64, req models.UpdateEventRequest) (models.Event, error) {
	var event models.Event
	if err := s.doer.Put(ctx, "/events/"+strconv.FormatInt(id, 10), req, &event); err != nil {
		return models.Event{}, fmt.Errorf("update event %d: %w", id, err)
	}
	return event, nil
}

func (s *eventsService) Delete(ctx context.Context, id int64) error {
	if err := s.doer.Delete(ctx, "/events/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	return nil
}
