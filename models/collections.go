package models

// Collection names the logical collections the sync layer moves between the
// remote API and local storage. The string value doubles as the local slot
// name and the remote resource path segment.
type Collection string

const (
	CollectionDecks     Collection = "decks"
	CollectionNotes     Collection = "notes"
	CollectionTests     Collection = "tests"
	CollectionStats     Collection = "stats"
	CollectionChats     Collection = "chats"
	CollectionCommunity Collection = "community"
)

func (c Collection) String() string { return string(c) }
