package tui

import (
	"strings"
	"time"

	"github.com/apolonotes/apolo-console/models"
)

type eventDetailModel struct {
	event  models.Event
	status string
}

func (m eventDetailModel) View() string {
	out := titleStyle.Render("Event: "+m.event.Title) + archivedBadge(m.event.Archived) + "\n\n"

	description := strings.TrimSpace(m.event.Description)
	if description == "" {
		description = "(empty)"
	}
	out += description + "\n\n"

	out += "Start: " + formatTime(m.event.StartAt) + "\n"
	out += "End:   " + formatTimePtr(m.event.EndAt) + "\n"
	out += "Tags:  " + tagNames(m.event.Tags) + "\n"
	if m.event.Upcoming(time.Now()) {
		out += "\nUpcoming\n"
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("e edit  d delete  esc back")
	return out
}
