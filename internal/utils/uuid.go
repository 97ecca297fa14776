package utils

import "github.com/google/uuid"

// NewID returns a new opaque entity identifier. V7 UUIDs keep ids roughly
// time-ordered, which makes the server-side document easier to eyeball.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
