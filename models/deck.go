package models

import "time"

// Card is a single flashcard inside a deck. Cards have no identity of their
// own; they live and die with the owning deck.
type Card struct {
	Front string `json:"front"`
	Back  string `json:"back"`
	Color string `json:"color,omitempty"`
}

// Deck is a study set owned by exactly one user. The card sequence is
// ordered; position is meaningful to the UI.
type Deck struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Cards       []Card    `json:"cards"`
	CreatedAt   time.Time `json:"created_at"`
}
