package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/apolonotes/apolo-console/internal/adapter"
	"github.com/apolonotes/apolo-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsService_CreateGetList(t *testing.T) {
	backend, services := newTestServices(t)
	conf := backend.SeedTag("conference")
	ctx := context.Background()

	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	created, err := services.Events.Create(ctx, models.CreateEventRequest{
		Title:       "planning session",
		Description: "quarterly roadmap",
		StartAt:     start,
		EndAt:       &end,
		TagIDs:      []int64{conf.ID},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.StartAt.Equal(start))
	require.NotNil(t, created.EndAt)
	assert.True(t, created.EndAt.Equal(end))
	require.Len(t, created.Tags, 1)

	fetched, err := services.Events.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "planning session", fetched.Title)

	events, err := services.Events.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, created.ID, events[0].ID)
}

func TestEventsService_CreateWithoutEndIsOpenEnded(t *testing.T) {
	_, services := newTestServices(t)
	ctx := context.Background()

	created, err := services.Events.Create(ctx, models.CreateEventRequest{
		Title:   "standup",
		StartAt: time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Nil(t, created.EndAt)
}

func TestEventsService_UpdateReplacesFields(t *testing.T) {
	backend, services := newTestServices(t)
	ctx := context.Background()

	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	seeded := backend.SeedEvent(models.Event{Title: "draft", StartAt: start})

	moved := start.Add(24 * time.Hour)
	updated, err := services.Events.Update(ctx, seeded.ID, models.UpdateEventRequest{
		Title:    "rescheduled",
		StartAt:  moved,
		Archived: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "rescheduled", updated.Title)
	assert.True(t, updated.StartAt.Equal(moved))
	assert.True(t, updated.Archived)
}

func TestEventsService_DeleteMissingMapsToErrNotFound(t *testing.T) {
	_, services := newTestServices(t)

	err := services.Events.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}
