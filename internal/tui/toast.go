package tui

import (
	"time"

	"github.com/apolonotes/apolo-console/internal/notify"
	tea "github.com/charmbracelet/bubbletea"
)

const toastLifetime = 4 * time.Second

// toastModel is the single-slot toast surface. A new toast replaces the
// visible one; the sequence number ties each expiry tick to the toast that
// scheduled it, so a stale tick cannot dismiss a newer toast.
type toastModel struct {
	message  string
	severity notify.Severity
	visible  bool
	seq      int
}

func (m *toastModel) show(message string, severity notify.Severity) tea.Cmd {
	m.message = message
	m.severity = severity
	m.visible = true
	m.seq++

	seq := m.seq
	return tea.Tick(toastLifetime, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *toastModel) expire(msg toastExpiredMsg) {
	if msg.seq == m.seq {
		m.visible = false
	}
}

func (m toastModel) View() string {
	if !m.visible {
		return ""
	}
	return toastStyle(m.severity).Render(m.message)
}
