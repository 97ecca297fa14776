package store

import "errors"

var (
	// ErrSlotNotFound is returned by SlotStore.Read for a slot that has
	// never been written.
	ErrSlotNotFound = errors.New("local slot not found")
)
