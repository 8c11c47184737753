package tui

import (
	"fmt"
	"strings"

	"github.com/apolonotes/apolo-console/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// tagsModel is the flat tag management screen: a list with an inline input
// that doubles for create and rename.
type tagsModel struct {
	tags    []models.Tag
	idx     int
	loading bool

	input      textinput.Model
	editingTag int64 // 0 means the input creates a new tag
	inputOpen  bool
	submitting bool
	violation  string
	status     string
}

func newTagsModel() tagsModel {
	input := textinput.New()
	input.Placeholder = "tag name"
	input.Width = 30
	return tagsModel{input: input, loading: true}
}

func (m tagsModel) current() (models.Tag, bool) {
	if len(m.tags) == 0 || m.idx < 0 || m.idx >= len(m.tags) {
		return models.Tag{}, false
	}
	return m.tags[m.idx], true
}

func (m *tagsModel) clampCursor() {
	if m.idx >= len(m.tags) {
		m.idx = len(m.tags) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *tagsModel) openInput(tag *models.Tag) {
	m.inputOpen = true
	m.violation = ""
	m.input.SetValue("")
	m.editingTag = 0
	if tag != nil {
		m.editingTag = tag.ID
		m.input.SetValue(tag.Name)
	}
	m.input.Focus()
}

func (m *tagsModel) closeInput() {
	m.inputOpen = false
	m.editingTag = 0
	m.violation = ""
	m.input.Blur()
}

func (m tagsModel) name() string {
	return strings.TrimSpace(m.input.Value())
}

func (m tagsModel) View() string {
	out := titleStyle.Render("Tags") + "\n\n"

	switch {
	case m.loading:
		out += "Loading...\n"
	case len(m.tags) == 0:
		out += "No tags\n"
	default:
		for i, tag := range m.tags {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%-4d │ %s\n", cursor, tag.ID, tag.Name)
		}
	}

	if m.inputOpen {
		label := "New tag"
		if m.editingTag != 0 {
			label = "Rename tag"
		}
		out += "\n" + label + ": [" + m.input.View() + "]\n"
		if m.violation != "" {
			out += "  " + fieldErr.Render(m.violation) + "\n"
		}
		if m.submitting {
			out += "Saving...\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	help := "n new  e rename  d delete  r reload"
	if m.inputOpen {
		help = "enter save  esc cancel"
	}
	out += "\n" + helpStyle.Render(help)
	return out
}
