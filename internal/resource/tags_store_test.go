package resource_test

import (
	"context"
	"errors"
	"testing"

	"github.com/apolonotes/apolo-console/internal/mock"
	"github.com/apolonotes/apolo-console/internal/resource"
	"github.com/apolonotes/apolo-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTagsStore_FetchAllReplacesCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockTagsService(ctrl)

	svc.EXPECT().List(gomock.Any()).Return([]models.Tag{{ID: 1, Name: "work"}}, nil)

	store := resource.NewTagsStore(svc)
	tags, err := store.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, tags, 1)
	assert.True(t, store.State().Loaded)
}

func TestTagsStore_CreateAppends(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockTagsService(ctrl)

	svc.EXPECT().List(gomock.Any()).Return([]models.Tag{{ID: 1, Name: "work"}}, nil)
	svc.EXPECT().Create(gomock.Any(), models.CreateTagRequest{Name: "home"}).
		Return(models.Tag{ID: 2, Name: "home"}, nil)

	store := resource.NewTagsStore(svc)
	_, err := store.FetchAll(context.Background())
	require.NoError(t, err)

	created, err := store.Create(context.Background(), models.CreateTagRequest{Name: "home"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)

	state := store.State()
	require.Len(t, state.Items, 2)
	assert.Equal(t, "home", state.Items[1].Name)
}

func TestTagsStore_UpdateRenamesInPlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockTagsService(ctrl)

	svc.EXPECT().List(gomock.Any()).Return([]models.Tag{{ID: 1, Name: "work"}}, nil)
	svc.EXPECT().Update(gomock.Any(), int64(1), models.UpdateTagRequest{Name: "office"}).
		Return(models.Tag{ID: 1, Name: "office"}, nil)

	store := resource.NewTagsStore(svc)
	_, err := store.FetchAll(context.Background())
	require.NoError(t, err)

	_, err = store.Update(context.Background(), 1, models.UpdateTagRequest{Name: "office"})
	require.NoError(t, err)

	state := store.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "office", state.Items[0].Name)
}

func TestTagsStore_DoubleDeleteLeavesCollectionSettled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockTagsService(ctrl)

	svc.EXPECT().List(gomock.Any()).Return([]models.Tag{{ID: 1, Name: "work"}}, nil)
	first := svc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	svc.EXPECT().Delete(gomock.Any(), int64(1)).
		Return(errors.New("resource not found")).
		After(first)

	store := resource.NewTagsStore(svc)
	_, err := store.FetchAll(context.Background())
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), 1))
	require.Empty(t, store.State().Items)

	// The second delete of the same id fails remotely; the collection stays
	// empty and the loading flag still resets.
	err = store.Delete(context.Background(), 1)
	require.Error(t, err)

	state := store.State()
	assert.Empty(t, state.Items)
	assert.False(t, state.Loading)
	assert.Equal(t, "Failed to delete tag", state.Err)
}
