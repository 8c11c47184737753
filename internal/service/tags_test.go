package service_test

import (
	"context"
	"testing"

	"github.com/apolonotes/apolo-console/internal/adapter"
	"github.com/apolonotes/apolo-console/internal/service"
	"github.com/apolonotes/apolo-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTagIDs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int64
	}{
		{name: "empty", raw: "", want: []int64{}},
		{name: "single", raw: "7", want: []int64{7}},
		{name: "plain list", raw: "1,2,7", want: []int64{1, 2, 7}},
		{name: "spaces ignored", raw: " 1, 2 ,7 ", want: []int64{1, 2, 7}},
		{name: "duplicates dropped", raw: "2,2,1,2", want: []int64{1, 2}},
		{name: "sorted output", raw: "9,3,5", want: []int64{3, 5, 9}},
		{name: "blank fragments dropped", raw: "1,,2,", want: []int64{1, 2}},
		{name: "non-numeric dropped", raw: "1,work,2", want: []int64{1, 2}},
		{name: "non-positive dropped", raw: "0,-3,4", want: []int64{4}},
		{name: "only junk", raw: "a, b, -1", want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.ParseTagIDs(tt.raw))
		})
	}
}

func TestFormatTagIDs(t *testing.T) {
	assert.Equal(t, "", service.FormatTagIDs(nil))
	assert.Equal(t, "3", service.FormatTagIDs([]models.Tag{{ID: 3, Name: "work"}}))
	assert.Equal(t, "3, 8", service.FormatTagIDs([]models.Tag{
		{ID: 3, Name: "work"},
		{ID: 8, Name: "home"},
	}))
}

func TestTagsService_CreateListUpdate(t *testing.T) {
	_, services := newTestServices(t)
	ctx := context.Background()

	created, err := services.Tags.Create(ctx, models.CreateTagRequest{Name: "work"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "work", created.Name)

	renamed, err := services.Tags.Update(ctx, created.ID, models.UpdateTagRequest{Name: "office"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, renamed.ID)
	assert.Equal(t, "office", renamed.Name)

	tags, err := services.Tags.List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "office", tags[0].Name)
}

func TestTagsService_DuplicateNameRejected(t *testing.T) {
	backend, services := newTestServices(t)
	backend.SeedTag("work")

	_, err := services.Tags.Create(context.Background(), models.CreateTagRequest{Name: "work"})
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}

func TestTagsService_RenamePropagatesToNotes(t *testing.T) {
	backend, services := newTestServices(t)
	ctx := context.Background()

	work := backend.SeedTag("work")
	seeded := backend.SeedNote(models.Note{Title: "tagged", Tags: []models.Tag{work}})

	_, err := services.Tags.Update(ctx, work.ID, models.UpdateTagRequest{Name: "office"})
	require.NoError(t, err)

	note, err := services.Notes.Get(ctx, seeded.ID)
	require.NoError(t, err)
	require.Len(t, note.Tags, 1)
	assert.Equal(t, "office", note.Tags[0].Name)
}

func TestTagsService_DeleteDetachesFromNotes(t *testing.T) {
	backend, services := newTestServices(t)
	ctx := context.Background()

	work := backend.SeedTag("work")
	seeded := backend.SeedNote(models.Note{Title: "tagged", Tags: []models.Tag{work}})

	require.NoError(t, services.Tags.Delete(ctx, work.ID))

	note, err := services.Notes.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Empty(t, note.Tags)

	err = services.Tags.Delete(ctx, work.ID)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}
