package tui

import (
	"github.com/apolonotes/apolo-console/internal/notify"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	fieldErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	badgeStyle   = lipgloss.NewStyle().Faint(true)
	overlayStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	toastSuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	toastErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	toastInfoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

func toastStyle(severity notify.Severity) lipgloss.Style {
	switch severity {
	case notify.SeveritySuccess:
		return toastSuccessStyle
	case notify.SeverityError:
		return toastErrorStyle
	default:
		return toastInfoStyle
	}
}
