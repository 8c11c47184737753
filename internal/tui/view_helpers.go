package tui

import (
	"strings"
	"time"

	"github.com/apolonotes/apolo-console/models"
)

// timeLayout is the datetime format used by every form field and listing.
const timeLayout = "2006-01-02 15:04"

func fitText(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s + strings.Repeat(" ", width-len(runes))
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

func tagNames(tags []models.Tag) string {
	if len(tags) == 0 {
		return "-"
	}
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return strings.Join(names, ", ")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatTime(*t)
}

func archivedBadge(archived bool) string {
	if archived {
		return badgeStyle.Render(" [archived]")
	}
	return ""
}
