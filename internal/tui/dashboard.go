package tui

import (
	"fmt"
	"time"

	"github.com/apolonotes/apolo-console/models"
)

// dashboardModel is the landing screen after sign-in: collection counters
// plus the next few upcoming events.
type dashboardModel struct {
	email   string
	notes   models.NotesPage
	events  eventsListModel
	tags    []models.Tag
	loading bool
}

func newDashboardModel() dashboardModel {
	return dashboardModel{loading: true, events: newEventsListModel()}
}

func (m dashboardModel) View() string {
	out := titleStyle.Render("ApoloNotes") + "\n"
	if m.email != "" {
		out += helpStyle.Render("signed in as "+m.email) + "\n"
	}
	out += "\n"

	if m.loading {
		out += "Loading...\n"
		out += "\n" + helpStyle.Render("1 dashboard  2 notes  3 events  4 tags  ctrl+l sign out  ctrl+c quit")
		return out
	}

	upcoming, past := m.events.partition(time.Now())
	out += fmt.Sprintf("Notes: %d    Events: %d upcoming, %d past    Tags: %d\n\n",
		m.notes.TotalElements, len(upcoming), len(past), len(m.tags))

	if len(upcoming) == 0 {
		out += "No upcoming events\n"
	} else {
		out += "── Upcoming ──\n"
		limit := min(len(upcoming), 5)
		for _, event := range upcoming[:limit] {
			out += fmt.Sprintf("  %s │ %s\n", fitText(event.Title, 26), formatTime(event.StartAt))
		}
	}

	if len(m.notes.Content) > 0 {
		out += "\n── Recent notes ──\n"
		limit := min(len(m.notes.Content), 5)
		for _, note := range m.notes.Content[:limit] {
			out += fmt.Sprintf("  %s │ %s\n", fitText(note.Title, 26), formatTime(note.UpdatedAt))
		}
	}

	out += "\n" + helpStyle.Render("1 dashboard  2 notes  3 events  4 tags  ctrl+l sign out  ctrl+c quit")
	return out
}
