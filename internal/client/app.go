package client

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/akarimov/study-keeper/internal/config"
	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/internal/service"
	"github.com/akarimov/study-keeper/internal/store"
)

// App is the headless client runtime: it restores the persisted session,
// primes the local mirrors, and keeps the refresh job running until the
// process is told to stop.
type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	workers  config.ClientWorkers
	logger   *logger.Logger
}

// NewApp assembles the client runtime from its wired parts.
func NewApp(services *service.ClientServices, storages *store.ClientStorages, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	return &App{
		services: services,
		storages: storages,
		workers:  workers,
		logger:   log,
	}, nil
}

// Run implements [Client]. It blocks until SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if user, ok := a.services.Session.Restore(ctx); ok {
		a.logger.Info().Str("user_id", user.ID).Msg("session restored")
	} else {
		a.logger.Info().Msg("no persisted session, starting unauthenticated")
	}

	// prime the community mirror so the first screen has content even if
	// the network goes away right after startup
	if _, err := a.services.Community.GetCommunityItems(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial community fetch failed")
	}

	a.services.Refresh.Start(ctx, a.workers.RefreshInterval)
	defer a.services.Refresh.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("shutting down client")

	if err := a.storages.Slots.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("closing local store")
	}

	return nil
}
