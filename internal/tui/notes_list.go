package tui

import (
	"fmt"
	"strings"

	"github.com/apolonotes/apolo-console/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// notesListModel shows the current page of the notes collection. The search
// box filters the loaded page by title locally; the archived toggle and the
// page cursor go back to the backend as query params.
type notesListModel struct {
	page         models.NotesPage
	idx          int
	loading      bool
	showArchived bool
	searching    bool
	search       textinput.Model
	status       string
}

func newNotesListModel() notesListModel {
	search := textinput.New()
	search.Placeholder = "search title"
	search.Width = 30
	return notesListModel{search: search, loading: true}
}

// visible returns the notes on the current page whose title matches the
// search text.
func (m notesListModel) visible() []models.Note {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if query == "" {
		return m.page.Content
	}

	matched := make([]models.Note, 0, len(m.page.Content))
	for _, note := range m.page.Content {
		if strings.Contains(strings.ToLower(note.Title), query) {
			matched = append(matched, note)
		}
	}
	return matched
}

func (m notesListModel) current() (models.Note, bool) {
	visible := m.visible()
	if len(visible) == 0 || m.idx < 0 || m.idx >= len(visible) {
		return models.Note{}, false
	}
	return visible[m.idx], true
}

// clampCursor keeps the cursor inside the visible slice after a reload or
// delete.
func (m *notesListModel) clampCursor() {
	visible := m.visible()
	if m.idx >= len(visible) {
		m.idx = len(visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m notesListModel) View() string {
	header := titleStyle.Render("Notes")
	if m.showArchived {
		header += badgeStyle.Render("  (archived)")
	}
	out := header + "\n\n"

	if m.searching || m.search.Value() != "" {
		out += "Search: [" + m.search.View() + "]\n\n"
	}

	switch {
	case m.loading:
		out += "Loading...\n"
	case len(m.visible()) == 0:
		out += "No notes\n"
	default:
		out += "Title                        │ Tags                 │ Updated\n"
		out += "─────────────────────────────┼──────────────────────┼─────────────────\n"
		for i, note := range m.visible() {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s │ %s │ %s\n",
				cursor,
				fitText(note.Title, 27),
				fitText(tagNames(note.Tags), 20),
				formatTime(note.UpdatedAt),
			)
		}
		out += fmt.Sprintf("\nPage %d/%d · %d notes\n",
			m.page.Number+1, max(m.page.TotalPages, 1), m.page.TotalElements)
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n new  enter open  e edit  d delete  / search  v archived  ←/→ page  r reload")
	return out
}
