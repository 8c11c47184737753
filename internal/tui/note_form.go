package tui

import (
	"strings"

	"github.com/apolonotes/apolo-console/internal/service"
	"github.com/apolonotes/apolo-console/internal/validators"
	"github.com/apolonotes/apolo-console/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

const noteContentLimit = 5000

var noteSchema = validators.Schema{
	"title": {
		validators.Required("Title is required"),
		validators.MinLen(3, "Title must be at least 3 characters"),
	},
	"content": {
		validators.MaxLen(noteContentLimit, validators.MaxLenMessage(noteContentLimit)),
	},
}

// noteFormModel drives both create and edit. Tag references are typed as a
// comma-delimited id string and decoded on submit; unknown fragments are
// dropped by the parser rather than rejected.
type noteFormModel struct {
	title      textinput.Model
	content    textarea.Model
	tagIDs     textinput.Model
	focus      int
	editing    bool
	noteID     int64
	archived   bool
	submitting bool
	violations map[string]string
}

func newNoteFormModel(note *models.Note) noteFormModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.Width = 50
	title.Focus()

	content := textarea.New()
	content.Placeholder = "content"
	content.SetWidth(54)
	content.SetHeight(6)
	content.CharLimit = 0

	tagIDs := textinput.New()
	tagIDs.Placeholder = "tag ids, e.g. 1, 4"
	tagIDs.Width = 30

	m := noteFormModel{title: title, content: content, tagIDs: tagIDs}
	if note == nil {
		return m
	}

	m.editing = true
	m.noteID = note.ID
	m.archived = note.Archived
	m.title.SetValue(note.Title)
	m.content.SetValue(note.Content)
	m.tagIDs.SetValue(service.FormatTagIDs(note.Tags))
	return m
}

func (m noteFormModel) values() validators.Values {
	return validators.Values{
		"title":   strings.TrimSpace(m.title.Value()),
		"content": m.content.Value(),
	}
}

func (m noteFormModel) toCreateRequest() models.CreateNoteRequest {
	return models.CreateNoteRequest{
		Title:   strings.TrimSpace(m.title.Value()),
		Content: m.content.Value(),
		TagIDs:  service.ParseTagIDs(m.tagIDs.Value()),
	}
}

func (m noteFormModel) toUpdateRequest() models.UpdateNoteRequest {
	return models.UpdateNoteRequest{
		Title:    strings.TrimSpace(m.title.Value()),
		Content:  m.content.Value(),
		TagIDs:   service.ParseTagIDs(m.tagIDs.Value()),
		Archived: m.archived,
	}
}

const noteFormFields = 3

func (m *noteFormModel) setFocus(focus int) {
	m.title.Blur()
	m.content.Blur()
	m.tagIDs.Blur()

	m.focus = (focus + noteFormFields) % noteFormFields
	switch m.focus {
	case 0:
		m.title.Focus()
	case 1:
		m.content.Focus()
	case 2:
		m.tagIDs.Focus()
	}
}

func (m noteFormModel) View() string {
	header := "New note"
	if m.editing {
		header = "Edit note" + archivedBadge(m.archived)
	}

	out := titleStyle.Render(header) + "\n\n"
	out += "Title:   [" + m.title.View() + "]\n"
	out += fieldViolation(m.violations, "title")
	out += "Content:\n" + m.content.View() + "\n"
	out += fieldViolation(m.violations, "content")
	out += "Tag ids: [" + m.tagIDs.View() + "]\n"

	if m.submitting {
		out += "\nSaving...\n"
	}

	help := "ctrl+s save  tab next field  esc cancel"
	if m.editing {
		help = "ctrl+s save  tab next field  ctrl+a toggle archived  esc cancel"
	}
	out += "\n" + helpStyle.Render(help)
	return out
}
