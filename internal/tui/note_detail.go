package tui

import (
	"strings"

	"github.com/apolonotes/apolo-console/models"
)

type noteDetailModel struct {
	note   models.Note
	status string
}

func (m noteDetailModel) View() string {
	out := titleStyle.Render("Note: "+m.note.Title) + archivedBadge(m.note.Archived) + "\n\n"

	content := strings.TrimSpace(m.note.Content)
	if content == "" {
		content = "(empty)"
	}
	out += content + "\n\n"

	out += "Tags:    " + tagNames(m.note.Tags) + "\n"
	out += "Created: " + formatTime(m.note.CreatedAt) + "\n"
	out += "Updated: " + formatTime(m.note.UpdatedAt) + "\n"

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("e edit  d delete  c copy content  esc back")
	return out
}
