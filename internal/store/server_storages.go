package store

import (
	"fmt"

	"github.com/akarimov/study-keeper/internal/logger"
)

// Storages bundles the server's storage backends.
type Storages struct {
	Documents DocumentStore
}

// NewStorages initializes the server storage layer. documentPath is the JSON
// file the document persists to; empty keeps the document in memory only.
func NewStorages(documentPath string, log *logger.Logger) (*Storages, error) {
	docs, err := NewFileDocumentStore(documentPath, log)
	if err != nil {
		return nil, fmt.Errorf("init document store: %w", err)
	}

	return &Storages{Documents: docs}, nil
}
