package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/akarimov/study-keeper/internal/logger"
)

// DocumentStore serializes access to the server's single [Document].
//
// View runs fn with a read lock; fn must not mutate the document. Update
// runs fn with the write lock and persists the mutated document before
// returning; an error from fn rolls the in-memory document back and nothing
// is written.
type DocumentStore interface {
	View(ctx context.Context, fn func(doc *Document) error) error
	Update(ctx context.Context, fn func(doc *Document) error) error
}

type fileDocumentStore struct {
	path   string
	logger *logger.Logger

	mu  sync.RWMutex
	doc Document
}

// NewFileDocumentStore loads the document from path, creating parent
// directories as needed. A missing file yields an empty document; a corrupt
// file is logged and replaced by an empty document on the next write rather
// than refusing to start. An empty path keeps the document in memory only.
func NewFileDocumentStore(path string, log *logger.Logger) (DocumentStore, error) {
	if path == "" {
		log.Warn().Msg("no document path configured, data will not survive restarts")
		return &fileDocumentStore{logger: log}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create document dir: %w", err)
		}
	}

	s := &fileDocumentStore{path: path, logger: log}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Info().Str("path", path).Msg("no existing document, starting empty")
	case err != nil:
		return nil, fmt.Errorf("read document: %w", err)
	default:
		if uerr := json.Unmarshal(raw, &s.doc); uerr != nil {
			log.Warn().Err(uerr).Str("path", path).Msg("document is corrupt, starting empty")
			s.doc = Document{}
		}
	}

	return s, nil
}

func (s *fileDocumentStore) View(ctx context.Context, fn func(doc *Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.doc)
}

func (s *fileDocumentStore) Update(ctx context.Context, fn func(doc *Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// snapshot for rollback; fn may mutate the document freely
	snapshot, err := json.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("snapshot document: %w", err)
	}

	if err = fn(&s.doc); err != nil {
		var restored Document
		if rerr := json.Unmarshal(snapshot, &restored); rerr == nil {
			s.doc = restored
		}
		return err
	}

	if err = s.persist(); err != nil {
		var restored Document
		if rerr := json.Unmarshal(snapshot, &restored); rerr == nil {
			s.doc = restored
		}
		return fmt.Errorf("persist document: %w", err)
	}

	return nil
}

// persist writes the document to a sibling temp file and renames it over
// the target, so a crash mid-write never leaves a half-written document.
func (s *fileDocumentStore) persist() error {
	if s.path == "" {
		return nil
	}

	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".document-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace document: %w", err)
	}

	return nil
}
