package tui

import (
	"strings"
	"time"

	"github.com/apolonotes/apolo-console/internal/service"
	"github.com/apolonotes/apolo-console/internal/validators"
	"github.com/apolonotes/apolo-console/models"
	"github.com/charmbracelet/bubbles/textinput"
)

var eventSchema = validators.Schema{
	"title": {
		validators.Required("Title is required"),
		validators.MinLen(3, "Title must be at least 3 characters"),
	},
	"startAt": {
		validators.Required("Start is required"),
		validators.Datetime(timeLayout, "Use the format 2006-01-02 15:04"),
	},
	"endAt": {
		validators.Datetime(timeLayout, "Use the format 2006-01-02 15:04"),
		validators.AfterField("startAt", timeLayout, "End must be after start"),
	},
}

type eventFormModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	eventID    int64
	archived   bool
	submitting bool
	violations map[string]string
}

func newEventFormModel(event *models.Event) eventFormModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.Width = 50
	title.Focus()

	description := textinput.New()
	description.Placeholder = "description"
	description.Width = 50

	start := textinput.New()
	start.Placeholder = timeLayout
	start.Width = 20

	end := textinput.New()
	end.Placeholder = timeLayout + " (optional)"
	end.Width = 20

	tagIDs := textinput.New()
	tagIDs.Placeholder = "tag ids, e.g. 1, 4"
	tagIDs.Width = 30

	m := eventFormModel{inputs: []textinput.Model{title, description, start, end, tagIDs}}
	if event == nil {
		return m
	}

	m.editing = true
	m.eventID = event.ID
	m.archived = event.Archived
	m.inputs[0].SetValue(event.Title)
	m.inputs[1].SetValue(event.Description)
	m.inputs[2].SetValue(event.StartAt.Local().Format(timeLayout))
	if event.EndAt != nil {
		m.inputs[3].SetValue(event.EndAt.Local().Format(timeLayout))
	}
	m.inputs[4].SetValue(service.FormatTagIDs(event.Tags))
	return m
}

func (m eventFormModel) values() validators.Values {
	return validators.Values{
		"title":   strings.TrimSpace(m.inputs[0].Value()),
		"startAt": strings.TrimSpace(m.inputs[2].Value()),
		"endAt":   strings.TrimSpace(m.inputs[3].Value()),
	}
}

func (m eventFormModel) times() (start time.Time, end *time.Time) {
	start, _ = time.ParseInLocation(timeLayout, strings.TrimSpace(m.inputs[2].Value()), time.Local)
	if raw := strings.TrimSpace(m.inputs[3].Value()); raw != "" {
		if parsed, err := time.ParseInLocation(timeLayout, raw, time.Local); err == nil {
			end = &parsed
		}
	}
	return start, end
}

func (m eventFormModel) toCreateRequest() models.CreateEventRequest {
	start, end := m.times()
	return models.CreateEventRequest{
		Title:       strings.TrimSpace(m.inputs[0].Value()),
		Description: strings.TrimSpace(m.inputs[1].Value()),
		StartAt:     start,
		EndAt:       end,
		TagIDs:      service.ParseTagIDs(m.inputs[4].Value()),
	}
}

func (m eventFormModel) toUpdateRequest() models.UpdateEventRequest {
	start, end := m.times()
	return models.UpdateEventRequest{
		Title:       strings.TrimSpace(m.inputs[0].Value()),
		Description: strings.TrimSpace(m.inputs[1].Value()),
		StartAt:     start,
		EndAt:       end,
		TagIDs:      service.ParseTagIDs(m.inputs[4].Value()),
		Archived:    m.archived,
	}
}

func (m *eventFormModel) setFocus(focus int) {
	m.inputs[m.focus].Blur()
	m.focus = (focus + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m eventFormModel) View() string {
	header := "New event"
	if m.editing {
		header = "Edit event" + archivedBadge(m.archived)
	}

	out := titleStyle.Render(header) + "\n\n"
	out += "Title:       [" + m.inputs[0].View() + "]\n"
	out += fieldViolation(m.violations, "title")
	out += "Description: [" + m.inputs[1].View() + "]\n"
	out += "Start:       [" + m.inputs[2].View() + "]\n"
	out += fieldViolation(m.violations, "startAt")
	out += "End:         [" + m.inputs[3].View() + "]\n"
	out += fieldViolation(m.violations, "endAt")
	out += "Tag ids:     [" + m.inputs[4].View() + "]\n"

	if m.submitting {
		out += "\nSaving...\n"
	}
	out += "\n" + helpStyle.Render("enter save  tab next field  esc cancel")
	return out
}
