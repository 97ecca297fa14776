package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/akarimov/study-keeper/internal/config"
	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/migrations"
)

type sqliteSlotStore struct {
	db     *sql.DB
	logger *logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSQLiteSlotStore opens (creating if necessary) the client's local SQLite
// database at cfg.DSN, applies pending schema migrations, and returns a
// [SlotStore] backed by it.
func NewSQLiteSlotStore(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (SlotStore, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewSQLiteSlotStore").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteSlotStore").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteSlotStore").Msg("error connecting database (ping)")
		return nil, err
	}

	if err = migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	log.Debug().Str("func", "NewSQLiteSlotStore").Msg("connected to local database successfully")

	return &sqliteSlotStore{
		db:     db,
		logger: log,
		locks:  make(map[string]*sync.Mutex),
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB dir: %w", err)
			}
		}

		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

// slotLock returns the mutex serializing writes for one slot. Locks are
// created lazily and never discarded; the slot set is small and fixed.
func (s *sqliteSlotStore) slotLock(slot string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[slot]
	if !ok {
		l = &sync.Mutex{}
		s.locks[slot] = l
	}
	return l
}

func (s *sqliteSlotStore) Read(ctx context.Context, slot string) ([]byte, error) {
	query, args, err := selectSlotQuery(slot)
	if err != nil {
		return nil, fmt.Errorf("build select query for slot %s: %w", slot, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("slot", slot).Msg("failed to read slot")
		return nil, fmt.Errorf("read slot %s: %w", slot, err)
	}

	return value, nil
}

func (s *sqliteSlotStore) Write(ctx context.Context, slot string, value any) error {
	lock := s.slotLock(slot)
	lock.Lock()
	defer lock.Unlock()

	return s.write(ctx, slot, value)
}

func (s *sqliteSlotStore) Mutate(ctx context.Context, slot string, fn func(raw []byte) (any, error)) error {
	lock := s.slotLock(slot)
	lock.Lock()
	defer lock.Unlock()

	raw, err := s.Read(ctx, slot)
	if err != nil && !errors.Is(err, ErrSlotNotFound) {
		return err
	}

	next, err := fn(raw)
	if err != nil {
		return err
	}

	return s.write(ctx, slot, next)
}

func (s *sqliteSlotStore) write(ctx context.Context, slot string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", slot, err)
	}

	query, args, err := upsertSlotQuery(slot, payload)
	if err != nil {
		return fmt.Errorf("build upsert query for slot %s: %w", slot, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("slot", slot).Msg("failed to write slot")
		return fmt.Errorf("write slot %s: %w", slot, err)
	}

	return nil
}

func (s *sqliteSlotStore) Clear(ctx context.Context, slots ...string) error {
	if len(slots) == 0 {
		return nil
	}

	query, args, err := deleteSlotsQuery(slots)
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Strs("slots", slots).Msg("failed to clear slots")
		return fmt.Errorf("clear slots: %w", err)
	}

	return nil
}

func (s *sqliteSlotStore) Close() error {
	return s.db.Close()
}
