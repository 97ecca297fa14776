package service

import (
	"context"

	"github.com/akarimov/study-keeper/models"
)

// AuthService handles account registration, credential verification, and
// the JWT token lifecycle on the server.
type AuthService interface {
	// RegisterUser creates an account. Email must be unique; email, password,
	// and name are required. The returned user carries its credential hash
	// and must be stripped via models.User.Public before serialization.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies credentials and returns the matching user. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateToken issues a signed JWT for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a compact JWT string (signature, expiry, issuer)
	// and returns the parsed token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetUser returns the user by id.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// UpdatePreferences replaces the user's preference set and returns the
	// updated user.
	UpdatePreferences(ctx context.Context, userID string, prefs models.Preferences) (models.User, error)
}

// StudyService is the server-side CRUD over the user's study collections.
// Every operation is scoped to the owning user; ids from other users are
// invisible, so a cross-user id behaves exactly like an unknown one.
type StudyService interface {
	Decks(ctx context.Context, userID string) ([]models.Deck, error)
	// SaveDeck upserts by id: an empty or unknown id creates, a known id
	// owned by userID replaces.
	SaveDeck(ctx context.Context, userID string, deck models.Deck) (models.Deck, error)
	DeleteDeck(ctx context.Context, userID, id string) error

	Notes(ctx context.Context, userID string) ([]models.Note, error)
	SaveNote(ctx context.Context, userID string, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, userID, id string) error

	Exams(ctx context.Context, userID string) ([]models.Exam, error)
	SaveExam(ctx context.Context, userID string, exam models.Exam) (models.Exam, error)
	DeleteExam(ctx context.Context, userID, id string) error

	Stats(ctx context.Context, userID string) (models.UserStats, error)
	// MergeStats shallow-merges the partial record into the user's stored
	// stats; zero-valued fields in partial leave stored values alone.
	MergeStats(ctx context.Context, userID string, partial models.UserStats) (models.UserStats, error)

	Chats(ctx context.Context, userID string) ([]models.ChatSession, error)
	SaveChat(ctx context.Context, userID string, chat models.ChatSession) (models.ChatSession, error)
}

// CommunityService manages the public feed of shared decks and notes.
type CommunityService interface {
	// List returns the feed, newest first. No authentication required.
	List(ctx context.Context) ([]models.CommunityItem, error)

	// Publish adds a snapshot to the feed. Re-publishing an existing id
	// returns the stored item unchanged.
	Publish(ctx context.Context, author models.User, item models.CommunityItem) (models.CommunityItem, error)

	// IncrementDownload bumps an item's download counter. Unknown ids are
	// a silent no-op so stale clients never see an error for it.
	IncrementDownload(ctx context.Context, id string) error
}
