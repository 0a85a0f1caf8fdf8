package tui

import (
	"context"

	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/MKhiriev/go-campus-login/internal/service"
	"github.com/MKhiriev/go-campus-login/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the interactive terminal frontend of the campus login client.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.BuildInfo
}

func New(services *service.ClientServices, buildInfo models.BuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// Run drives the interactive session until the user leaves the program.
// A user-initiated quit is reported as ErrUserQuit so callers can tell it
// apart from terminal failures.
func (t *TUI) Run(ctx context.Context) error {
	root := newAppModel(ctx, t.services, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}
