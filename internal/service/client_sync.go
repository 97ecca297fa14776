package service

import (
	"context"

	"github.com/akarimov/study-keeper/internal/adapter"
	"github.com/akarimov/study-keeper/internal/connectivity"
	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/internal/store"
	"github.com/akarimov/study-keeper/models"
)

// syncCore bundles the three collaborators every client service shares: the
// local slot store (the mirror), the remote adapter, and the connectivity
// oracle. Services embed a pointer to one shared core.
type syncCore struct {
	slots   store.SlotStore
	adapter adapter.ServerAdapter
	oracle  connectivity.Oracle
	logger  *logger.Logger
}

func newSyncCore(slots store.SlotStore, srvAdapter adapter.ServerAdapter, oracle connectivity.Oracle, log *logger.Logger) *syncCore {
	return &syncCore{slots: slots, adapter: srvAdapter, oracle: oracle, logger: log}
}

// canSync reports whether an authenticated remote call is worth attempting:
// the oracle believes the network is up and a session token is held. It
// gates remote reads and best-effort remote writes alike.
func (c *syncCore) canSync(ctx context.Context) bool {
	return c.oracle.Online(ctx) && c.adapter.Token() != ""
}

// remoteFailed is the single place a best-effort remote operation is allowed
// to swallow its error. Every ignored remote failure goes through here so
// the policy stays visible in the logs and greppable in the code.
func (c *syncCore) remoteFailed(op string, err error) {
	c.logger.Warn().Err(err).Str("op", op).Msg("remote call failed, continuing on local data")
}

// mirrorWriteFailed logs a failure to refresh the local mirror after a
// successful remote read. The fresh remote data is still returned to the
// caller; only the cache stays stale.
func (c *syncCore) mirrorWriteFailed(slot string, err error) {
	c.logger.Warn().Err(err).Str("slot", slot).Msg("failed to update local mirror")
}

// readCollection is the shared read path: remote-first with local fallback.
// When sync is possible the remote list is fetched and overwrites the mirror
// whole; any remote failure degrades silently to the mirrored copy. The
// returned error covers only local persistence problems, and the mirror read
// path never produces one (missing and corrupt slots decode to empty).
func readCollection[T any](ctx context.Context, c *syncCore, coll models.Collection, fetch func(context.Context) ([]T, error)) ([]T, error) {
	slot := coll.String()

	if c.canSync(ctx) {
		items, err := fetch(ctx)
		if err == nil {
			if items == nil {
				items = []T{}
			}
			if werr := c.slots.Write(ctx, slot, items); werr != nil {
				c.mirrorWriteFailed(slot, werr)
			}
			return items, nil
		}
		c.remoteFailed("list "+slot, err)
	}

	return store.ReadSlot[[]T](c.slots.Read(ctx, slot)), nil
}

// upsertLocal replaces the item with the same id in place, preserving its
// position in the collection, or prepends it when the id is new. The whole
// read-modify-write runs under the slot's lock.
func upsertLocal[T any](ctx context.Context, c *syncCore, coll models.Collection, item T, idOf func(T) string) error {
	return c.slots.Mutate(ctx, coll.String(), func(raw []byte) (any, error) {
		items := store.Decode[[]T](raw)

		for i := range items {
			if idOf(items[i]) == idOf(item) {
				items[i] = item
				return items, nil
			}
		}

		return append([]T{item}, items...), nil
	})
}

// removeLocal filters the item with the given id out of the collection.
// Removing an id that is not present is a no-op, which makes deletes
// idempotent.
func removeLocal[T any](ctx context.Context, c *syncCore, coll models.Collection, id string, idOf func(T) string) error {
	return c.slots.Mutate(ctx, coll.String(), func(raw []byte) (any, error) {
		items := store.Decode[[]T](raw)

		kept := items[:0]
		for _, it := range items {
			if idOf(it) != id {
				kept = append(kept, it)
			}
		}

		return kept, nil
	})
}
