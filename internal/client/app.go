package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/MKhiriev/go-campus-login/internal/service"
	"github.com/MKhiriev/go-campus-login/internal/tui"
	"github.com/MKhiriev/go-campus-login/internal/workers"
)

// App assembles the client runtime: the interactive TUI in the foreground
// and the journal housekeeping workers behind it.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{
		services: services,
		tui:      ui,
		workers:  workers.NewWorkers(services.PruneJob),
		logger:   logger,
	}, nil
}

// Run starts the background workers and blocks in the TUI until the user
// leaves. The logger rides the context so services resolve it per call.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err := a.tui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Str("func", "App.Run").Msg("user quit")
			return nil
		}
		return err
	}

	return nil
}
