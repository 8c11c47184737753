// Package apitest runs an in-memory fake of the ApoloNotes backend for
// integration tests. It serves the same routes, envelopes, and error bodies
// as the real service so adapter and service tests exercise full HTTP round
// trips instead of stubbed transports.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"dario.cat/mergo"
	"github.com/apolonotes/apolo-console/models"
	"github.com/go-chi/chi/v5"
)

// timeAtomic merges time.Time values as a whole. Without it mergo recurses
// into the struct's unexported fields and clobbers stored timestamps with
// zero values on partial updates.
type timeAtomic struct{}

func (timeAtomic) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeOf(time.Time{}) {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if dst.CanSet() && !src.Interface().(time.Time).IsZero() {
			dst.Set(src)
		}
		return nil
	}
}

const defaultPageSize = 20

// Server is the fake backend. Collections live in memory and reset with each
// instance; identifiers are assigned from a shared counter.
type Server struct {
	*httptest.Server

	mu     sync.Mutex
	notes  map[int64]models.Note
	events map[int64]models.Event
	tags   map[int64]models.Tag
	nextID int64

	// Token, when set, makes every route demand "Bearer <Token>" and answer
	// 401 with the backend's error envelope otherwise.
	Token string
}

// New starts the fake backend and registers its shutdown with t.Cleanup.
func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		notes:  make(map[int64]models.Note),
		events: make(map[int64]models.Event),
		tags:   make(map[int64]models.Tag),
	}

	r := chi.NewRouter()
	r.Use(s.requireToken)

	r.Route("/notes", func(r chi.Router) {
		r.Get("/", s.listNotes)
		r.Post("/", s.createNote)
		r.Get("/{id}", s.getNote)
		r.Put("/{id}", s.updateNote)
		r.Delete("/{id}", s.deleteNote)
	})
	r.Route("/events", func(r chi.Router) {
		r.Get("/", s.listEvents)
		r.Post("/", s.createEvent)
		r.Get("/{id}", s.getEvent)
		r.Put("/{id}", s.updateEvent)
		r.Delete("/{id}", s.deleteEvent)
	})
	r.Route("/tags", func(r chi.Router) {
		r.Get("/", s.listTags)
		r.Post("/", s.createTag)
		r.Put("/{id}", s.updateTag)
		r.Delete("/{id}", s.deleteTag)
	})

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// SeedTag inserts a tag and returns it with its assigned identifier.
func (s *Server) SeedTag(name string) models.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()

	tag := models.Tag{ID: s.allocateID(), Name: name}
	s.tags[tag.ID] = tag
	return tag
}

// SeedNote inserts a note and returns it with identifier and timestamps
// assigned.
func (s *Server) SeedNote(note models.Note) models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	note.ID = s.allocateID()
	now := s.now()
	note.CreatedAt = now
	note.UpdatedAt = now
	if note.Tags == nil {
		note.Tags = []models.Tag{}
	}
	s.notes[note.ID] = note
	return note
}

// SeedEvent inserts an event and returns it with its assigned identifier.
func (s *Server) SeedEvent(event models.Event) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.allocateID()
	if event.Tags == nil {
		event.Tags = []models.Tag{}
	}
	s.events[event.ID] = event
	return event
}

// NoteCount reports the number of stored notes.
func (s *Server) NoteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

func (s *Server) allocateID() int64 {
	s.nextID++
	return s.nextID
}

func (s *Server) now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		token := s.Token
		s.mu.Unlock()

		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			writeError(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ── notes ──

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	page, size := 0, defaultPageSize
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "invalid page")
			return
		}
		page = parsed
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid size")
			return
		}
		size = parsed
	}

	var archived *bool
	if raw := r.URL.Query().Get("archived"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid archived flag")
			return
		}
		archived = &value
	}
	tagFilter := r.URL.Query().Get("tag")

	s.mu.Lock()
	matched := make([]models.Note, 0, len(s.notes))
	for _, note := range s.notes {
		if archived != nil && note.Archived != *archived {
			continue
		}
		if tagFilter != "" && !hasTagNamed(note.Tags, tagFilter) {
			continue
		}
		matched = append(matched, note)
	}
	s.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	totalPages := (total + size - 1) / size
	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	writeJSON(w, http.StatusOK, models.NotesPage{
		Content:       matched[start:end],
		TotalElements: total,
		TotalPages:    totalPages,
		Size:          size,
		Number:        page,
	})
}

func (s *Server) getNote(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	note, exists := s.notes[id]
	s.mu.Unlock()
	if !exists {
		writeError(w, http.StatusNotFound, "note not found")
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNoteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	s.mu.Lock()
	tags, ok := s.resolveTags(req.TagIDs)
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusBadRequest, "unknown tag id")
		return
	}

	now := s.now()
	note := models.Note{
		ID:        s.allocateID(),
		Title:     req.Title,
		Content:   req.Content,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes[note.ID] = note
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, note)
}

func (s *Server) updateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req models.UpdateNoteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	note, exists := s.notes[id]
	if !exists {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "note not found")
		return
	}
	tags, ok := s.resolveTags(req.TagIDs)
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusBadRequest, "unknown tag id")
		return
	}

	patch := models.Note{Title: req.Title, Content: req.Content, Tags: tags}
	if err := mergo.Merge(&note, patch, mergo.WithOverride, mergo.WithTransformers(timeAtomic{})); err != nil {
		s.mu.Unlock()
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	note.Archived = req.Archived
	note.UpdatedAt = s.now()
	s.notes[id] = note
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, note)
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	_, exists := s.notes[id]
	delete(s.notes, id)
	s.mu.Unlock()

	if !exists {
		writeError(w, http.StatusNotFound, "note not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── events ──

func (s *Server) listEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	events := make([]models.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, event)
	}
	s.mu.Unlock()

	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) getEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	event, exists := s.events[id]
	s.mu.Unlock()
	if !exists {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" || req.StartAt.IsZero() {
		writeError(w, http.StatusBadRequest, "title and startAt are required")
		return
	}

	s.mu.Lock()
	tags, ok := s.resolveTags(req.TagIDs)
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusBadRequest, "unknown tag id")
		return
	}

	event := models.Event{
		ID:          s.allocateID(),
		Title:       req.Title,
		Description: req.Description,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		Tags:        tags,
	}
	s.events[event.ID] = event
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, event)
}

func (s *Server) updateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req models.UpdateEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	event, exists := s.events[id]
	if !exists {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	tags, ok := s.resolveTags(req.TagIDs)
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusBadRequest, "unknown tag id")
		return
	}

	patch := models.Event{
		Title:       req.Title,
		Description: req.Description,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		Tags:        tags,
	}
	if err := mergo.Merge(&event, patch, mergo.WithOverride, mergo.WithTransformers(timeAtomic{})); err != nil {
		s.mu.Unlock()
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	event.Archived = req.Archived
	s.events[id] = event
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, event)
}

func (s *Server) deleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	_, exists := s.events[id]
	delete(s.events, id)
	s.mu.Unlock()

	if !exists {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── tags ──

func (s *Server) listTags(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	tags := make([]models.Tag, 0, len(s.tags))
	for _, tag := range s.tags {
		tags = append(tags, tag)
	}
	s.mu.Unlock()

	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
	writeJSON(w, http.StatusOK, tags)
}

func (s *Server) createTag(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTagRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	s.mu.Lock()
	for _, existing := range s.tags {
		if existing.Name == req.Name {
			s.mu.Unlock()
			writeError(w, http.StatusBadRequest, "tag name already exists")
			return
		}
	}
	tag := models.Tag{ID: s.allocateID(), Name: req.Name}
	s.tags[tag.ID] = tag
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, tag)
}

func (s *Server) updateTag(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req models.UpdateTagRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	tag, exists := s.tags[id]
	if !exists {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "tag not found")
		return
	}
	tag.Name = req.Name
	s.tags[id] = tag
	s.renameTagEverywhere(tag)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, tag)
}

func (s *Server) deleteTag(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	_, exists := s.tags[id]
	delete(s.tags, id)
	if exists {
		s.detachTagEverywhere(id)
	}
	s.mu.Unlock()

	if !exists {
		writeError(w, http.StatusNotFound, "tag not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// resolveTags maps identifiers to stored tags. Callers hold the lock.
func (s *Server) resolveTags(ids []int64) ([]models.Tag, bool) {
	tags := make([]models.Tag, 0, len(ids))
	for _, id := range ids {
		tag, exists := s.tags[id]
		if !exists {
			return nil, false
		}
		tags = append(tags, tag)
	}
	return tags, true
}

func (s *Server) renameTagEverywhere(tag models.Tag) {
	for id, note := range s.notes {
		for i := range note.Tags {
			if note.Tags[i].ID == tag.ID {
				note.Tags[i].Name = tag.Name
			}
		}
		s.notes[id] = note
	}
	for id, event := range s.events {
		for i := range event.Tags {
			if event.Tags[i].ID == tag.ID {
				event.Tags[i].Name = tag.Name
			}
		}
		s.events[id] = event
	}
}

func (s *Server) detachTagEverywhere(tagID int64) {
	for id, note := range s.notes {
		note.Tags = withoutTag(note.Tags, tagID)
		s.notes[id] = note
	}
	for id, event := range s.events {
		event.Tags = withoutTag(event.Tags, tagID)
		s.events[id] = event
	}
}

func withoutTag(tags []models.Tag, tagID int64) []models.Tag {
	kept := make([]models.Tag, 0, len(tags))
	for _, tag := range tags {
		if tag.ID != tagID {
			kept = append(kept, tag)
		}
	}
	return kept
}

func hasTagNamed(tags []models.Tag, name string) bool {
	for _, tag := range tags {
		if tag.Name == name {
			return true
		}
	}
	return false
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid identifier")
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
