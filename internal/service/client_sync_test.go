package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akarimov/study-keeper/internal/config"
	"github.com/akarimov/study-keeper/internal/connectivity"
	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/internal/mock"
	"github.com/akarimov/study-keeper/internal/store"
)

// testEnv wires a service core from a real SQLite slot store in a temp dir,
// a mocked remote adapter, and a manually driven connectivity oracle. With
// the oracle offline, any adapter call fails the test because no
// expectations are registered.
type testEnv struct {
	core    *syncCore
	slots   store.SlotStore
	adapter *mock.MockServerAdapter
	oracle  *connectivity.Manual
}

func newTestEnv(t *testing.T, online bool) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	oracle := connectivity.NewManual(online)

	slots, err := store.NewSQLiteSlotStore(context.Background(), config.ClientDB{
		DSN: filepath.Join(t.TempDir(), "client.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = slots.Close() })

	return &testEnv{
		core:    newSyncCore(slots, mockAdapter, oracle, logger.Nop()),
		slots:   slots,
		adapter: mockAdapter,
		oracle:  oracle,
	}
}

// authed marks the adapter as holding a session token, which together with
// an online oracle makes canSync true.
func (e *testEnv) authed() {
	e.adapter.EXPECT().Token().Return("test-token").AnyTimes()
}

// readMirror decodes the current content of a collection slot.
func readMirror[T any](t *testing.T, e *testEnv, slot string) T {
	t.Helper()
	return store.ReadSlot[T](e.slots.Read(context.Background(), slot))
}
