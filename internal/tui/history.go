package tui

import (
	"fmt"

	"github.com/MKhiriev/go-campus-login/models"
	"github.com/charmbracelet/bubbles/spinner"
)

// historyLimit caps how many journaled attempts the history screen loads.
const historyLimit = 50

type historyModel struct {
	attempts []models.LoginAttempt
	idx      int
	loading  bool
	spinner  spinner.Model
}

func newHistoryModel() historyModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return historyModel{spinner: s, loading: true}
}

func (m historyModel) current() (models.LoginAttempt, bool) {
	if len(m.attempts) == 0 || m.idx < 0 || m.idx >= len(m.attempts) {
		return models.LoginAttempt{}, false
	}
	return m.attempts[m.idx], true
}

func attemptIcon(a models.LoginAttempt) string {
	if a.Result == models.OutcomeSuccess {
		return "[+]"
	}
	return "[-]"
}

func attemptLine(a models.LoginAttempt) string {
	label := string(a.Result)
	if a.Result == models.OutcomeFailure && a.Reason != "" {
		label = string(a.Reason)
	}
	return fmt.Sprintf("%s %s  %-20s %s",
		attemptIcon(a),
		a.CreatedAt.Format("2006-01-02 15:04"),
		fitText(a.Username, 20),
		label,
	)
}

func (m historyModel) View() string {
	header := titleStyle.Render("Attempt history")
	if m.loading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.attempts) == 0 {
		out += "No attempts recorded\n"
	} else {
		for i, a := range m.attempts {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += cursor + attemptLine(a) + "\n"
		}
	}

	out += "\n" + helpStyle.Render("enter open  esc back  q quit")
	return out
}
