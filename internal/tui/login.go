package tui

import (
	"strings"

	"github.com/apolonotes/apolo-console/internal/validators"
	"github.com/charmbracelet/bubbles/textinput"
)

var loginSchema = validators.Schema{
	"email": {
		validators.Required("Email is required"),
		validators.Email("Enter a valid email address"),
	},
	"password": {
		validators.Required("Password is required"),
		validators.MinLen(6, "Password must be at least 6 characters"),
	},
}

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	violations map[string]string

	// federated is set while a browser sign-in is pending; the view shows
	// verificationURL until the provider reports completion.
	federated       bool
	verificationURL string
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{email, password}}
}

func (m loginModel) values() validators.Values {
	return validators.Values{
		"email":    strings.TrimSpace(m.inputs[0].Value()),
		"password": m.inputs[1].Value(),
	}
}

func (m loginModel) View() string {
	out := titleStyle.Render("ApoloNotes / Sign in") + "\n\n"
	out += "Email:    [" + m.inputs[0].View() + "]\n"
	out += fieldViolation(m.violations, "email")
	out += "Password: [" + m.inputs[1].View() + "]\n"
	out += fieldViolation(m.violations, "password")

	if m.submitting {
		out += "\nSigning in...\n"
	}
	if m.federated {
		out += "\nFinish signing in at:\n  " + m.verificationURL + "\n"
		out += "Waiting for the provider... " + helpStyle.Render("esc cancel") + "\n"
	}
	out += "\n" + helpStyle.Render("enter sign in  tab next field  ctrl+n create account  ctrl+o browser sign in  ctrl+c quit")
	return out
}

// fieldViolation renders the field's validation message line, or nothing.
func fieldViolation(violations map[string]string, field string) string {
	message, ok := violations[field]
	if !ok {
		return ""
	}
	return "  " + fieldErr.Render(message) + "\n"
}
