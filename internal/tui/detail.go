package tui

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-campus-login/models"
)

type detailModel struct {
	attempt models.LoginAttempt
	status  string
}

func reasonName(r models.FailureReason) string {
	switch r {
	case models.ReasonNetworkUnreachable:
		return "Network unreachable"
	case models.ReasonTimeout:
		return "Timeout"
	case models.ReasonInvalidCredentials:
		return "Invalid credentials"
	case models.ReasonServerError:
		return "Server error"
	default:
		return "-"
	}
}

func (m detailModel) View() string {
	a := m.attempt

	result := "Success"
	if a.Result == models.OutcomeFailure {
		result = "Failure"
	}

	statusCode := "-"
	if a.StatusCode != 0 {
		statusCode = strconv.Itoa(a.StatusCode)
	}

	out := titleStyle.Render("Login attempt") + "\n\n"
	out += fmt.Sprintf("Username:    %s\n", a.Username)
	out += fmt.Sprintf("Result:      %s\n", result)
	if a.Result == models.OutcomeFailure {
		out += fmt.Sprintf("Reason:      %s\n", reasonName(a.Reason))
	}
	out += fmt.Sprintf("HTTP status: %s\n", statusCode)
	out += fmt.Sprintf("Elapsed:     %d ms\n", a.ElapsedMS)
	out += fmt.Sprintf("When:        %s\n", a.CreatedAt.Format("2006-01-02 15:04:05"))

	out += "\n" + helpStyle.Render("u copy username  esc back  q quit")

	if m.status != "" {
		out += "\n\n" + m.status
	}

	return out
}
