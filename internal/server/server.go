package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/akarimov/study-keeper/internal/config"
	handler "github.com/akarimov/study-keeper/internal/handler/http"
	"github.com/akarimov/study-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the API server around the given HTTP handler and
// configuration.
func NewServer(h *handler.Handler, cfg *config.ServerConfig, logger *logger.Logger) Server {
	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")

	return &server{
		httpServer: newHTTPServer(h.Init(), cfg.HTTPAddress, cfg.ShutdownTimeout, logger),
		logger:     logger,
	}
}

// RunServer implements [Server]. It serves until SIGINT/SIGTERM/SIGQUIT and
// then shuts down gracefully.
func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shut down gracefully")
}

// Shutdown implements [Server].
func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
