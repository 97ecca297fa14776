package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/akarimov/study-keeper/internal/store"
	"github.com/akarimov/study-keeper/internal/utils"
	"github.com/akarimov/study-keeper/models"
)

type clientSessionService struct {
	core *syncCore

	mu     sync.RWMutex
	user   models.User
	authed bool
}

// NewClientSessionService builds the session half of the client: it owns the
// credential lifecycle and keeps the remote adapter's bearer token in step
// with it.
func NewClientSessionService(core *syncCore) ClientSessionService {
	return &clientSessionService{core: core}
}

// Restore implements [ClientSessionService]. A persisted token that has
// already expired is discarded together with the cached profile, leaving the
// client unauthenticated rather than doomed to 401s. With a live network the
// cached profile is refreshed from the server; a failed refresh falls back
// to the cached copy like any other read.
func (s *clientSessionService) Restore(ctx context.Context) (models.User, bool) {
	token := store.ReadSlot[string](s.core.slots.Read(ctx, store.SlotCredential))
	if token == "" {
		return models.User{}, false
	}

	if utils.TokenExpired(token) {
		s.core.logger.Info().Msg("persisted session token expired, clearing session")
		if err := s.core.slots.Clear(ctx, store.SlotCredential, store.SlotProfile); err != nil {
			s.core.logger.Warn().Err(err).Msg("failed to clear expired session slots")
		}
		return models.User{}, false
	}

	s.core.adapter.SetToken(token)

	user := store.ReadSlot[models.User](s.core.slots.Read(ctx, store.SlotProfile))

	if s.core.oracle.Online(ctx) {
		fresh, err := s.core.adapter.Profile(ctx)
		if err != nil {
			s.core.remoteFailed("refresh profile", err)
		} else {
			user = fresh.Public()
			if werr := s.core.slots.Write(ctx, store.SlotProfile, user); werr != nil {
				s.core.mirrorWriteFailed(store.SlotProfile, werr)
			}
		}
	}

	s.setSession(user)

	return user, true
}

// Register implements [ClientSessionService].
func (s *clientSessionService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if !s.core.oracle.Online(ctx) {
		return models.User{}, fmt.Errorf("cannot register: %w", ErrOffline)
	}

	auth, err := s.core.adapter.Register(ctx, req)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrRegisterFailed, err)
	}

	return s.openSession(ctx, auth)
}

// Login implements [ClientSessionService].
func (s *clientSessionService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if !s.core.oracle.Online(ctx) {
		return models.User{}, fmt.Errorf("cannot login: %w", ErrOffline)
	}

	auth, err := s.core.adapter.Login(ctx, creds)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	return s.openSession(ctx, auth)
}

// openSession persists the issued credential and profile and activates the
// in-memory session. The adapter already holds the token at this point (its
// auth calls store it on success).
func (s *clientSessionService) openSession(ctx context.Context, auth models.AuthResponse) (models.User, error) {
	user := auth.User.Public()

	if err := s.core.slots.Write(ctx, store.SlotCredential, auth.Token); err != nil {
		return models.User{}, fmt.Errorf("persist credential: %w", err)
	}
	if err := s.core.slots.Write(ctx, store.SlotProfile, user); err != nil {
		return models.User{}, fmt.Errorf("persist profile: %w", err)
	}

	s.setSession(user)
	return user, nil
}

// Logout implements [ClientSessionService]. Only the credential and profile
// slots are cleared; the cached study collections stay on disk so the data
// is still there after the next login.
func (s *clientSessionService) Logout(ctx context.Context) error {
	s.core.adapter.SetToken("")

	s.mu.Lock()
	s.user = models.User{}
	s.authed = false
	s.mu.Unlock()

	if err := s.core.slots.Clear(ctx, store.SlotCredential, store.SlotProfile); err != nil {
		return fmt.Errorf("clear session slots: %w", err)
	}
	return nil
}

// CurrentUser implements [ClientSessionService].
func (s *clientSessionService) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.authed
}

// Authenticated implements [ClientSessionService].
func (s *clientSessionService) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authed
}

// UpdatePreferences implements [ClientSessionService]. The local profile is
// updated unconditionally so the UI reflects the change immediately; the
// remote push is best-effort.
func (s *clientSessionService) UpdatePreferences(ctx context.Context, prefs models.Preferences) error {
	s.mu.Lock()
	s.user.Preferences = prefs
	user := s.user
	s.mu.Unlock()

	if err := s.core.slots.Write(ctx, store.SlotProfile, user); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}

	if s.core.canSync(ctx) {
		if err := s.core.adapter.UpdatePreferences(ctx, prefs); err != nil {
			s.core.remoteFailed("update preferences", err)
		}
	}

	return nil
}

func (s *clientSessionService) setSession(user models.User) {
	s.mu.Lock()
	s.user = user
	s.authed = true
	s.mu.Unlock()
}
