package tui

import tea "github.com/charmbracelet/bubbletea"

// confirmModel is the modal delete confirmation. While active it swallows
// all key input; the stored command runs only on an explicit yes.
type confirmModel struct {
	active  bool
	subject string
	onYes   tea.Cmd
}

func (m *confirmModel) ask(subject string, onYes tea.Cmd) {
	m.active = true
	m.subject = subject
	m.onYes = onYes
}

func (m *confirmModel) dismiss() {
	m.active = false
	m.subject = ""
	m.onYes = nil
}

func (m confirmModel) View() string {
	body := "Delete \"" + m.subject + "\"?\n\n" + helpStyle.Render("y confirm   n/esc cancel")
	return overlayStyle.Render(body)
}
