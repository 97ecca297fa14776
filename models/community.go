package models

import "time"

// CommunityKind discriminates what a community item embeds.
type CommunityKind string

const (
	CommunityDeck CommunityKind = "deck"
	CommunityNote CommunityKind = "note"
)

// CommunityItem is a publicly shared snapshot of a deck or a note.
//
// Publishing copies the underlying record into the item (a snapshot, not a
// live link): later edits to the source deck/note do not propagate. Once
// published the item is immutable except for Downloads, which only ever
// increments.
type CommunityItem struct {
	ID          string        `json:"id"`
	Kind        CommunityKind `json:"kind"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`

	// Author is the publisher's display name, denormalized at publish time.
	Author string `json:"author,omitempty"`

	// Exactly one of Deck/Note is set, matching Kind.
	Deck *Deck `json:"deck,omitempty"`
	Note *Note `json:"note,omitempty"`

	Downloads   int       `json:"downloads"`
	PublishedAt time.Time `json:"published_at"`
}
