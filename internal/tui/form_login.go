package tui

import (
	"strings"

	"github.com/MKhiriev/go-campus-login/internal/app"
	"github.com/MKhiriev/go-campus-login/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// rememberFocus is the focus index of the "Remember me" row, one past the
// two text inputs.
const rememberFocus = 2

type loginFormModel struct {
	inputs     []textinput.Model
	focus      int
	remember   bool
	submitting bool
	spinner    spinner.Model
	status     string
	failed     bool
}

func newLoginFormModel(saved models.Credential) loginFormModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '*'
	inputs[0].Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := loginFormModel{inputs: inputs, spinner: s}
	if saved.IsZero() {
		return m
	}

	m.inputs[0].SetValue(saved.Username)
	m.inputs[1].SetValue(saved.Password)
	m.remember = true
	return m
}

func (m loginFormModel) credential() models.Credential {
	return models.Credential{
		Username: strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
}

func (m loginFormModel) View() string {
	out := titleStyle.Render("Log in to CITPC Internet") + "\n\n"
	out += "Username: [" + m.inputs[0].View() + "]\n"
	out += "Password: [" + m.inputs[1].View() + "]\n"

	check := "[ ]"
	if m.remember {
		check = "[x]"
	}
	cursor := "  "
	if m.focus == rememberFocus {
		cursor = "> "
	}
	out += cursor + check + " Remember me\n\n"

	if m.submitting {
		out += m.spinner.View() + " " + app.MsgLoggingIn + "\n\n"
	} else if m.status != "" {
		if m.failed {
			out += errorStyle.Render(m.status) + "\n\n"
		} else {
			out += m.status + "\n\n"
		}
	}

	out += helpStyle.Render("esc cancel  tab next field  space toggle remember  enter log in")
	return out
}
