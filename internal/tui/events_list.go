package tui

import (
	"fmt"
	"sort"
	"time"

	"github.com/apolonotes/apolo-console/models"
)

// eventsListModel shows all events split into upcoming and past halves.
// Navigation runs over the concatenation, upcoming first.
type eventsListModel struct {
	events  []models.Event
	idx     int
	loading bool
	status  string
}

func newEventsListModel() eventsListModel {
	return eventsListModel{loading: true}
}

// partition splits the held events around now. Upcoming sorts soonest first,
// past sorts most recent first.
func (m eventsListModel) partition(now time.Time) (upcoming, past []models.Event) {
	for _, event := range m.events {
		if event.Upcoming(now) {
			upcoming = append(upcoming, event)
		} else {
			past = append(past, event)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].StartAt.Before(upcoming[j].StartAt) })
	sort.Slice(past, func(i, j int) bool { return past[i].StartAt.After(past[j].StartAt) })
	return upcoming, past
}

// ordered returns the navigable slice, upcoming then past.
func (m eventsListModel) ordered(now time.Time) []models.Event {
	upcoming, past := m.partition(now)
	return append(upcoming, past...)
}

func (m eventsListModel) current(now time.Time) (models.Event, bool) {
	ordered := m.ordered(now)
	if len(ordered) == 0 || m.idx < 0 || m.idx >= len(ordered) {
		return models.Event{}, false
	}
	return ordered[m.idx], true
}

func (m *eventsListModel) clampCursor(now time.Time) {
	ordered := m.ordered(now)
	if m.idx >= len(ordered) {
		m.idx = len(ordered) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m eventsListModel) View() string {
	out := titleStyle.Render("Events") + "\n\n"

	if m.loading {
		out += "Loading...\n"
		out += "\n" + helpStyle.Render("n new  enter open  e edit  d delete  r reload")
		return out
	}

	now := time.Now()
	upcoming, past := m.partition(now)
	if len(upcoming) == 0 && len(past) == 0 {
		out += "No events\n"
	}

	row := 0
	renderSection := func(label string, events []models.Event) {
		if len(events) == 0 {
			return
		}
		out += label + "\n"
		for _, event := range events {
			cursor := "  "
			if row == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s │ %s │ %s%s\n",
				cursor,
				fitText(event.Title, 26),
				formatTime(event.StartAt),
				fitText(tagNames(event.Tags), 18),
				archivedBadge(event.Archived),
			)
			row++
		}
		out += "\n"
	}

	renderSection("── Upcoming ──", upcoming)
	renderSection("── Past ──", past)

	if m.status != "" {
		out += m.status + "\n"
	}

	out += helpStyle.Render("n new  enter open  e edit  d delete  r reload")
	return out
}
