package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/apolonotes/apolo-console/internal/adapter"
	"github.com/apolonotes/apolo-console/models"
)

type tagsService struct {
	doer adapter.HTTPDoer
}

// NewTagsService returns the [TagsService] bound to the /tags endpoints.
func NewTagsService(doer adapter.HTTPDoer) TagsService {
	return &tagsService{doer: doer}
}

func (s *tagsService) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.doer.Get(ctx, "/tags", nil, &tags); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (s *tagsService) Create(ctx context.Context, req models.CreateTagRequest) (models.Tag, error) {
	var tag models.Tag
	if err := s.doer.Post(ctx, "/tags", req, &tag); err != nil {
		return models.Tag{}, fmt.Errorf("create tag: %w", err)
	}
	return tag, nil
}

func (s *tagsService) Update(ctx context.Context, id int64, req models.UpdateTagRequest) (models.Tag, error) {
	var tag models.Tag
	if err := s.doer.Put(ctx, "/tags/"+strconv.FormatInt(id, 10), req, &tag); err != nil {
		return models.Tag{}, fmt.Errorf("update tag %d: %w", id, err)
	}
	return tag, nil
}

func (s *tagsService) Delete(ctx context.Context, id int64) error {
	if err := s.doer.Delete(ctx, "/tags/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("delete tag %d: %w", id, err)
	}
	return nil
}

// ParseTagIDs decodes a comma-delimited tag-id string as typed in forms
// ("1, 2,7") into a de-duplicated, sorted id slice. Blank and non-numeric
// fragments are dropped. This is the single place the delimited-string
// convention exists; everywhere else tag references are typed slices.
func ParseTagIDs(raw string) []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)

	for _, fragment := range strings.Split(raw, ",") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		id, err := strconv.ParseInt(fragment, 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FormatTagIDs renders tag references back into the comma-delimited form
// used to prefill edit forms.
func FormatTagIDs(tags []models.Tag) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, strconv.FormatInt(tag.ID, 10))
	}
	return strings.Join(parts, ", ")
}
