package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarimov/study-keeper/internal/logger"
)

func newMockedSlotStore(t *testing.T) (*sqliteSlotStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &sqliteSlotStore{
		db:     db,
		logger: logger.Nop(),
		locks:  make(map[string]*sync.Mutex),
	}, mock
}

func TestSlotStore_ReadQueryError(t *testing.T) {
	s, mock := newMockedSlotStore(t)

	mock.ExpectQuery("SELECT value FROM slots").
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Read(context.Background(), "decks")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotStore_WriteExecError(t *testing.T) {
	s, mock := newMockedSlotStore(t)

	mock.ExpectExec("INSERT INTO slots").
		WillReturnError(errors.New("database is locked"))

	err := s.Write(context.Background(), "decks", []string{"x"})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotStore_MutateReadError(t *testing.T) {
	s, mock := newMockedSlotStore(t)

	mock.ExpectQuery("SELECT value FROM slots").
		WillReturnError(errors.New("disk I/O error"))

	called := false
	err := s.Mutate(context.Background(), "decks", func(raw []byte) (any, error) {
		called = true
		return nil, nil
	})
	require.Error(t, err)
	assert.False(t, called, "mutate fn must not run when the read fails")
}

func TestSlotStore_WriteUnmarshalableValue(t *testing.T) {
	s, _ := newMockedSlotStore(t)

	err := s.Write(context.Background(), "decks", func() {})
	require.Error(t, err)
}
