package store

import (
	"context"
	"fmt"

	"github.com/akarimov/study-keeper/internal/config"
	"github.com/akarimov/study-keeper/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer. Currently it holds only the slot
// store; additional storages can be added here as the feature set grows.
type ClientStorages struct {
	// Slots is the SQLite-backed key-value cache holding one JSON value per
	// logical collection.
	Slots SlotStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger: it opens the SQLite database at cfg.DB.DSN
// (creating the file if needed), runs pending schema migrations, and wires
// the slot store.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating client storages...")

	slots, err := NewSQLiteSlotStore(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{Slots: slots}, nil
}
