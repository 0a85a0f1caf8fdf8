package portalsim

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-campus-login/internal/logger"
)

type Server struct {
	httpServer *http.Server

	logger *logger.Logger
}

func NewServer(handler *Handler, cfg Config, logger *logger.Logger) *Server {
	logger.Info().Msg("creating portal simulator server...")

	return &Server{
		httpServer: &http.Server{
			Addr:    cfg.Addr,
			Handler: handler.Init(),
		},
		logger: logger,
	}
}

// Run serves until SIGTERM/SIGINT/SIGQUIT, then drains in-flight requests
// before returning.
func (s *Server) Run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		if err := s.httpServer.Shutdown(context.Background()); err != nil {
			s.logger.Err(err).Msg("HTTP server Shutdown")
		}

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("Launching portal simulator")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server ListenAndServe: %w", err)
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
