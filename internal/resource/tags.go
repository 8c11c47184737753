package resource

import (
	"context"

	"github.com/apolonotes/apolo-console/internal/service"
	"github.com/apolonotes/apolo-console/models"
)

// TagsStore wraps [service.TagsService] with reducer-backed collection
// state. Tags have no detail screen, so there is no GetOne.
type TagsStore struct {
	col *collection[models.Tag]
	svc service.TagsService
}

// NewTagsStore returns an empty store over svc.
func NewTagsStore(svc service.TagsService) *TagsStore {
	return &TagsStore{
		col: newCollection(func(t models.Tag) int64 { return t.ID }),
		svc: svc,
	}
}

// State returns a copy of the held collection state.
func (s *TagsStore) State() State[models.Tag] {
	return s.col.snapshot()
}

// FetchAll replaces the held collection and returns it.
func (s *TagsStore) FetchAll(ctx context.Context) ([]models.Tag, error) {
	s.col.begin()

	tags, err := s.svc.List(ctx)
	s.col.settle(err, "Failed to fetch tags")
	if err != nil {
		return nil, err
	}

	s.col.dispatch(action[models.Tag]{kind: actionReplaceAll, items: tags})
	return tags, nil
}

// Create submits a new tag and appends the backend-assigned entity to the
// held collection.
func (s *TagsStore) Create(ctx context.Context, req models.CreateTagRequest) (models.Tag, error) {
	s.col.begin()

	tag, err := s.svc.Create(ctx, req)
	s.col.settle(err, "Failed to create tag")
	if err != nil {
		return models.Tag{}, err
	}

	s.col.dispatch(action[models.Tag]{kind: actionUpsertOne, item: tag})
	return tag, nil
}

// Update renames a tag and replaces the matching entry by identifier
// equality.
func (s *TagsStore) Update(ctx context.Context, id int64, req models.UpdateTagRequest) (models.Tag, error) {
	s.col.begin()

	tag, err := s.svc.Update(ctx, id, req)
	s.col.settle(err, "Failed to update tag")
	if err != nil {
		return models.Tag{}, err
	}

	s.col.dispatch(action[models.Tag]{kind: actionUpsertOne, item: tag})
	return tag, nil
}

// Delete removes the tag remotely, then drops the matching entry from the
// held collection. Deleting a tag does not cascade-clean references held by
// notes or events; that is the backend's concern.
func (s *TagsStore) Delete(ctx context.Context, id int64) error {
	s.col.begin()

	err := s.svc.Delete(ctx, id)
	s.col.settle(err, "Failed to delete tag")
	if err != nil {
		return err
	}

	s.col.dispatch(action[models.Tag]{kind: actionRemoveOne, id: id})
	return nil
}
