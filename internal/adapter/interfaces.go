package adapter

import (
	"context"

	"github.com/akarimov/study-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the thin typed wrapper over the remote REST API.
//
// Every method maps to exactly one endpoint and returns transport and
// non-2xx failures as errors. The adapter never swallows a failure: deciding
// to ignore one (and fall back to the local cache) is the sync layer's
// explicit policy, not the transport's.
//
// The bearer token set via SetToken is attached to every request except
// registration, login, and the public community reads.
type ServerAdapter interface {
	// SetToken stores the bearer token for subsequent authenticated requests.
	// An empty string clears it.
	SetToken(token string)
	// Token returns the bearer token currently held by the adapter.
	Token() string

	// Register creates an account. Returns the issued token and the created
	// profile. Duplicate email maps to ErrConflict, invalid input to
	// ErrBadRequest.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	// Login exchanges credentials for a token and profile. Bad credentials
	// map to ErrUnauthorized.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)
	// Profile returns the authenticated user's profile.
	Profile(ctx context.Context) (models.User, error)
	// UpdatePreferences replaces the authenticated user's preference set.
	UpdatePreferences(ctx context.Context, prefs models.Preferences) error

	ListDecks(ctx context.Context) ([]models.Deck, error)
	CreateDeck(ctx context.Context, deck models.Deck) error
	UpdateDeck(ctx context.Context, deck models.Deck) error
	DeleteDeck(ctx context.Context, id string) error

	ListNotes(ctx context.Context) ([]models.Note, error)
	UpsertNote(ctx context.Context, note models.Note) error
	DeleteNote(ctx context.Context, id string) error

	ListExams(ctx context.Context) ([]models.Exam, error)
	CreateExam(ctx context.Context, exam models.Exam) error
	DeleteExam(ctx context.Context, id string) error

	GetStats(ctx context.Context) (models.UserStats, error)
	SaveStats(ctx context.Context, stats models.UserStats) error

	ListChats(ctx context.Context) ([]models.ChatSession, error)
	UpsertChat(ctx context.Context, chat models.ChatSession) error

	// ListCommunity fetches the public community feed. No token required.
	ListCommunity(ctx context.Context) ([]models.CommunityItem, error)
	// PublishCommunity shares a snapshot. Publishing an id that already
	// exists succeeds without duplicating.
	PublishCommunity(ctx context.Context, item models.CommunityItem) error
	// IncrementDownload bumps the download counter of a community item.
	IncrementDownload(ctx context.Context, id string) error
}
