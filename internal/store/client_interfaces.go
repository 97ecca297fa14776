package store

import (
	"context"
)

// Slot names of the client's local key-value layout. Each slot holds one
// JSON value read and written as a whole unit; there is no partial-key
// access. Collection slots reuse the collection name
// (models.Collection.String()).
const (
	SlotCredential = "credential"
	SlotProfile    = "profile"
)

// SlotStore is the client's durable key-value cache. Values survive process
// restarts and serve as the offline fallback for every collection the sync
// layer manages.
//
// A corrupt persisted value is the caller's concern only insofar as
// [Decode] maps it to the type's zero value; SlotStore itself hands raw
// bytes back and forth.
type SlotStore interface {
	// Read returns the raw JSON value of the slot.
	// Returns ErrSlotNotFound if the slot has never been written.
	Read(ctx context.Context, slot string) ([]byte, error)

	// Write marshals value to JSON and replaces the slot's content whole.
	Write(ctx context.Context, slot string, value any) error

	// Mutate runs fn under the slot's write lock: fn receives the current
	// raw value (nil if the slot is absent) and returns the replacement
	// value, which is marshaled and written before the lock is released.
	// Returning an error from fn aborts the write.
	//
	// All read-modify-write cycles on a slot must go through Mutate so that
	// concurrent upserts to the same collection serialize instead of losing
	// writes.
	Mutate(ctx context.Context, slot string, fn func(raw []byte) (any, error)) error

	// Clear removes the given slots. Clearing an absent slot is a no-op.
	Clear(ctx context.Context, slots ...string) error

	// Close releases the underlying database handle.
	Close() error
}
