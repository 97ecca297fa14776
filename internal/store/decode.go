package store

import "encoding/json"

// Decode unmarshals a raw slot value into T. A nil, empty, or corrupt value
// decodes to T's zero value: the local cache degrades to "empty", it never
// fails the caller.
func Decode[T any](raw []byte) T {
	var v T
	if len(raw) == 0 {
		return v
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero
	}
	return v
}

// ReadSlot reads and decodes one slot. Missing and corrupt slots both
// decode to T's zero value.
func ReadSlot[T any](raw []byte, err error) T {
	if err != nil {
		var zero T
		return zero
	}
	return Decode[T](raw)
}
