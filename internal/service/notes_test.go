package service_test

import (
	"context"
	"testing"

	"github.com/apolonotes/apolo-console/internal/adapter"
	"github.com/apolonotes/apolo-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesService_CreateGetList(t *testing.T) {
	backend, services := newTestServices(t)
	work := backend.SeedTag("work")
	ctx := context.Background()

	created, err := services.Notes.Create(ctx, models.CreateNoteRequest{
		Title:   "groceries",
		Content: "milk, eggs",
		TagIDs:  []int64{work.ID},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "groceries", created.Title)
	require.Len(t, created.Tags, 1)
	assert.Equal(t, "work", created.Tags[0].Name)
	assert.False(t, created.CreatedAt.IsZero())

	fetched, err := services.Notes.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "milk, eggs", fetched.Content)

	page, err := services.Notes.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalElements)
	require.Len(t, page.Content, 1)
	assert.Equal(t, created.ID, page.Content[0].ID)
}

func TestNotesService_ListForwardsFilters(t *testing.T) {
	backend, services := newTestServices(t)
	work := backend.SeedTag("work")
	ctx := context.Background()

	backend.SeedNote(models.Note{Title: "active work", Tags: []models.Tag{work}})
	backend.SeedNote(models.Note{Title: "active plain"})
	backend.SeedNote(models.Note{Title: "archived work", Archived: true, Tags: []models.Tag{work}})

	page, err := services.Notes.List(ctx, &models.ListNotesParams{Archived: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalElements)

	page, err = services.Notes.List(ctx, &models.ListNotesParams{
		Archived: boolPtr(false),
		Tag:      strPtr("work"),
	})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "active work", page.Content[0].Title)

	page, err = services.Notes.List(ctx, &models.ListNotesParams{Archived: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "archived work", page.Content[0].Title)
}

func TestNotesService_ListPaginates(t *testing.T) {
	backend, services := newTestServices(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		backend.SeedNote(models.Note{Title: "note"})
	}

	page, err := services.Notes.List(ctx, &models.ListNotesParams{Page: intPtr(1), Size: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 2, page.Size)
	assert.Len(t, page.Content, 2)
}

func TestNotesService_UpdateMergesAndBumpsTimestamp(t *testing.T) {
	backend, services := newTestServices(t)
	ctx := context.Background()

	seeded := backend.SeedNote(models.Note{Title: "draft", Content: "body"})

	updated, err := services.Notes.Update(ctx, seeded.ID, models.UpdateNoteRequest{
		Title:    "final",
		Content:  "body",
		Archived: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.True(t, updated.Archived)
	assert.Equal(t, seeded.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(seeded.UpdatedAt))
}

func TestNotesService_UpdateKeepsUntouchedFields(t *testing.T) {
	backend, services := newTestServices(t)
	ctx := context.Background()

	seeded := backend.SeedNote(models.Note{Title: "draft", Content: "body"})

	updated, err := services.Notes.Update(ctx, seeded.ID, models.UpdateNoteRequest{Title: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "body", updated.Content)
	assert.Equal(t, seeded.CreatedAt, updated.CreatedAt)
}

func TestNotesService_DeleteRemovesNote(t *testing.T) {
	backend, services := newTestServices(t)
	ctx := context.Background()

	seeded := backend.SeedNote(models.Note{Title: "to delete"})

	require.NoError(t, services.Notes.Delete(ctx, seeded.ID))
	assert.Zero(t, backend.NoteCount())

	err := services.Notes.Delete(ctx, seeded.ID)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestNotesService_GetMissingMapsToErrNotFound(t *testing.T) {
	_, services := newTestServices(t)

	_, err := services.Notes.Get(context.Background(), 999)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestNotesService_CreateWithUnknownTagRejected(t *testing.T) {
	_, services := newTestServices(t)

	_, err := services.Notes.Create(context.Background(), models.CreateNoteRequest{
		Title:  "bad tags",
		TagIDs: []int64{404},
	})
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}
