package tui

import (
	"strings"

	"github.com/apolonotes/apolo-console/internal/validators"
	"github.com/charmbracelet/bubbles/textinput"
)

// The account-creation password rule is stricter than sign-in: bounded
// length with at least one letter and one digit.
var signupSchema = validators.Schema{
	"email": {
		validators.Required("Email is required"),
		validators.Email("Enter a valid email address"),
	},
	"password": {
		validators.Required("Password is required"),
		validators.MinLen(6, "Password must be at least 6 characters"),
		validators.MaxLen(16, "Password must be at most 16 characters"),
		validators.Pattern(`^(.*[a-zA-Z].*[0-9].*|.*[0-9].*[a-zA-Z].*)$`, "Password must contain a letter and a digit"),
	},
	"confirm": {
		validators.Required("Repeat the password"),
		validators.EqualsField("password", "Passwords do not match"),
	},
}

type signupModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	violations map[string]string
}

func newSignupModel() signupModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	confirm := textinput.New()
	confirm.Placeholder = "repeat password"
	confirm.Width = 40
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '*'

	return signupModel{inputs: []textinput.Model{email, password, confirm}}
}

func (m signupModel) values() validators.Values {
	return validators.Values{
		"email":    strings.TrimSpace(m.inputs[0].Value()),
		"password": m.inputs[1].Value(),
		"confirm":  m.inputs[2].Value(),
	}
}

func (m signupModel) View() string {
	out := titleStyle.Render("ApoloNotes / Create account") + "\n\n"
	out += "Email:           [" + m.inputs[0].View() + "]\n"
	out += fieldViolation(m.violations, "email")
	out += "Password:        [" + m.inputs[1].View() + "]\n"
	out += fieldViolation(m.violations, "password")
	out += "Repeat password: [" + m.inputs[2].View() + "]\n"
	out += fieldViolation(m.violations, "confirm")

	if m.submitting {
		out += "\nCreating account...\n"
	}
	out += "\n" + helpStyle.Render("enter create  tab next field  esc back to sign in  ctrl+c quit")
	return out
}
