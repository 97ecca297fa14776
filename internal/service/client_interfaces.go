package service

import (
	"context"
	"time"

	"github.com/akarimov/study-keeper/models"
)

// ClientSessionService holds the client's current credential and profile.
// At most one credential is active; it is restored from local storage at
// startup and gates which operations attempt remote calls.
type ClientSessionService interface {
	// Restore loads a previously persisted credential and profile from local
	// storage. An expired or absent credential leaves the session
	// unauthenticated. Returns the restored profile and whether a session
	// now exists. Never touches the network.
	Restore(ctx context.Context) (models.User, bool)

	// Register creates a new account on the server and opens a session.
	// Requires connectivity: rejects immediately with ErrOffline when the
	// oracle reports offline, since no local registration fallback exists.
	// Invalid input and duplicate emails surface as ErrRegisterFailed with
	// the server's message.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates against the server and opens a session. Requires
	// connectivity (ErrOffline when offline); bad credentials surface as
	// ErrLoginFailed.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Logout closes the session: the in-memory credential and the persisted
	// credential/profile slots are cleared. Cached domain collections are
	// left in place.
	Logout(ctx context.Context) error

	// CurrentUser returns the profile of the active session, if any.
	CurrentUser() (models.User, bool)

	// Authenticated reports whether a session credential is held.
	Authenticated() bool

	// UpdatePreferences applies the preference set to the local profile copy
	// unconditionally and pushes it to the server best-effort.
	UpdatePreferences(ctx context.Context, prefs models.Preferences) error
}

// ClientStudyService is the sync orchestrator for the user's own study data
// (decks, notes, exams, stats, chat sessions).
//
// Every read prefers the remote authoritative store when a session exists
// and the oracle reports online, overwriting the local mirror with the
// response; any remote failure silently degrades to the mirror. Every write
// goes through to the mirror first; the remote write is best-effort and its
// failure is never surfaced. Only local persistence failures (disk) return
// errors.
type ClientStudyService interface {
	GetDecks(ctx context.Context) ([]models.Deck, error)
	// SaveDeck upserts a deck: an empty id means create (a fresh id is
	// assigned); an existing id is replaced in place in the mirror,
	// preserving its position. Returns the stored deck.
	SaveDeck(ctx context.Context, deck models.Deck) (models.Deck, error)
	// DeleteDeck removes the deck from the mirror unconditionally and from
	// the server best-effort. Idempotent.
	DeleteDeck(ctx context.Context, id string) error

	GetNotes(ctx context.Context) ([]models.Note, error)
	SaveNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, id string) error

	GetExams(ctx context.Context) ([]models.Exam, error)
	SaveExam(ctx context.Context, exam models.Exam) (models.Exam, error)
	DeleteExam(ctx context.Context, id string) error

	GetStats(ctx context.Context) (models.UserStats, error)
	// MergeStats shallow-merges the partial record into the stored one
	// (zero fields do not clobber) and pushes the merged result remotely
	// best-effort. Returns the merged record.
	MergeStats(ctx context.Context, partial models.UserStats) (models.UserStats, error)

	GetChats(ctx context.Context) ([]models.ChatSession, error)
	SaveChat(ctx context.Context, chat models.ChatSession) (models.ChatSession, error)
}

// ClientCommunityService is the community-feed specialization of the sync
// orchestrator. Reads are public (no credential needed) but bounded by a
// fetch timeout: a slow remote counts as unreachable. An empty cache with no
// remote data self-heals to a fixed seed set so the UI never renders an
// empty first screen.
type ClientCommunityService interface {
	GetCommunityItems(ctx context.Context) ([]models.CommunityItem, error)

	// Publish shares a snapshot of a deck or note. Publishing an id that is
	// already in the feed returns the existing item without duplicating.
	Publish(ctx context.Context, item models.CommunityItem) (models.CommunityItem, error)

	// IncrementDownload bumps the local counter optimistically (no-op for an
	// unknown id) and notifies the server best-effort. Local and remote
	// counters are never reconciled.
	IncrementDownload(ctx context.Context, id string) error
}

// ClientRefreshJob periodically re-reads every collection from the remote
// API while a session exists, keeping the local mirrors warm. Each tick is
// an independent logical operation; a failed tick is not retried.
type ClientRefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
