package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/apolonotes/apolo-console/internal/adapter"
	"github.com/apolonotes/apolo-console/models"
)

type notesService struct {
	doer adapter.HTTPDoer
}

// NewNotesService returns the [NotesService] bound to the /notes endpoints.
func NewNotesService(doer adapter.HTTPDoer) NotesService {
	return &notesService{doer: doer}
}

func (s *notesService) List(ctx context.Context, params *models.ListNotesParams) (models.NotesPage, error) {
	var page models.NotesPage
	if err := s.doer.Get(ctx, "/notes", notesQuery(params), &page); err != nil {
		return models.NotesPage{}, fmt.Errorf("list notes: %w", err)
	}
	return page, nil
}

func (s *notesService) Get(ctx context.Context, id int64) (models.Note, error) {
	var note models.Note
	if err := s.doer.Get(ctx, "/notes/"+strconv.FormatInt(id, 10), nil, &note); err != nil {
		return models.Note{}, fmt.Errorf("get note %d: %w", id, err)
	}
	return note, nil
}

func (s *notesService) Create(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	var note models.Note
	if err := s.doer.Post(ctx, "/notes", req, &note); err != nil {
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

func (s *notesService) Update(ctx context.Context, id int64, req models.UpdateNoteRequest) (models.Note, error) {
	var note models.Note
	if err := s.doer.Put(ctx, "/notes/"+strconv.FormatInt(id, 10), req, &note); err != nil {
		return models.Note{}, fmt.Errorf("update note %d: %w", id, err)
	}
	return note, nil
}

func (s *notesService) Delete(ctx context.Context, id int64) error {
	if err := s.doer.Delete(ctx, "/notes/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	return nil
}

// notesQuery renders the optional filter params as query values, forwarded
// verbatim when supplied.
func notesQuery(params *models.ListNotesParams) url.Values {
	if params == nil {
		return nil
	}

	query := url.Values{}
	if params.Page != nil {
		query.Set("page", strconv.Itoa(*params.Page))
	}
	if params.Size != nil {
		query.Set("size", strconv.Itoa(*params.Size))
	}
	if params.Archived != nil {
		query.Set("archived", strconv.FormatBool(*params.Archived))
	}
	if params.Tag != nil {
		query.Set("tag", *params.Tag)
	}
	if len(query) == 0 {
		return nil
	}
	return query
}
