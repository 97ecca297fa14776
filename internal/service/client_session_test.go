package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akarimov/study-keeper/internal/store"
	"github.com/akarimov/study-keeper/internal/utils"
	"github.com/akarimov/study-keeper/models"
)

func signedTestToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("study-keeper-test", "u1", ttl, "test-sign-key")
	require.NoError(t, err)
	return token.String()
}

func TestClientSessionService_LoginOffline_FailsFast(t *testing.T) {
	// no adapter expectations: the offline check must come first
	env := newTestEnv(t, false)

	svc := NewClientSessionService(env.core)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})
	require.ErrorIs(t, err, ErrOffline)
	assert.False(t, svc.Authenticated())
}

func TestClientSessionService_RegisterOffline_FailsFast(t *testing.T) {
	env := newTestEnv(t, false)

	svc := NewClientSessionService(env.core)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "a@b.c", Password: "pw"})
	require.ErrorIs(t, err, ErrOffline)
}

func TestClientSessionService_Login_PersistsSession(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()

	creds := models.Credentials{Email: "anna@example.com", Password: "pw"}
	env.adapter.EXPECT().Login(gomock.Any(), creds).Return(models.AuthResponse{
		Token: "issued-token",
		User: models.User{
			ID:           "u1",
			Email:        creds.Email,
			Name:         "Anna",
			PasswordHash: "leaked-from-careless-server",
		},
	}, nil)

	svc := NewClientSessionService(env.core)

	user, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Empty(t, user.PasswordHash, "credential hash never reaches the profile cache")

	assert.True(t, svc.Authenticated())
	current, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Anna", current.Name)

	assert.Equal(t, "issued-token", readMirror[string](t, env, store.SlotCredential))
	cachedProfile := readMirror[models.User](t, env, store.SlotProfile)
	assert.Equal(t, "u1", cachedProfile.ID)
	assert.Empty(t, cachedProfile.PasswordHash)
}

func TestClientSessionService_Login_BadCredentials(t *testing.T) {
	env := newTestEnv(t, true)

	env.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, errors.New("invalid email/password"))

	svc := NewClientSessionService(env.core)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "nope"})
	require.ErrorIs(t, err, ErrLoginFailed)
	assert.Contains(t, err.Error(), "invalid email/password")
	assert.False(t, svc.Authenticated())
}

func TestClientSessionService_Register_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t, true)

	env.adapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, errors.New("email already registered"))

	svc := NewClientSessionService(env.core)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "dup@example.com", Password: "pw"})
	require.ErrorIs(t, err, ErrRegisterFailed)
}

func TestClientSessionService_Logout_KeepsStudyData(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()

	require.NoError(t, env.slots.Write(ctx, store.SlotCredential, "some-token"))
	require.NoError(t, env.slots.Write(ctx, store.SlotProfile, models.User{ID: "u1"}))
	decks := []models.Deck{{ID: "d1", Title: "Kept"}}
	require.NoError(t, env.slots.Write(ctx, models.CollectionDecks.String(), decks))

	env.adapter.EXPECT().SetToken("")

	svc := NewClientSessionService(env.core)

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, svc.Authenticated())

	_, err := env.slots.Read(ctx, store.SlotCredential)
	assert.ErrorIs(t, err, store.ErrSlotNotFound)
	_, err = env.slots.Read(ctx, store.SlotProfile)
	assert.ErrorIs(t, err, store.ErrSlotNotFound)

	// cached collections survive the logout
	assert.Equal(t, decks, readMirror[[]models.Deck](t, env, models.CollectionDecks.String()))
}

func TestClientSessionService_Restore_ValidToken(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	token := signedTestToken(t, time.Hour)
	require.NoError(t, env.slots.Write(ctx, store.SlotCredential, token))
	require.NoError(t, env.slots.Write(ctx, store.SlotProfile, models.User{ID: "u1", Name: "Anna"}))

	env.adapter.EXPECT().SetToken(token)

	svc := NewClientSessionService(env.core)

	user, ok := svc.Restore(ctx)
	require.True(t, ok)
	assert.Equal(t, "Anna", user.Name)
	assert.True(t, svc.Authenticated())
}

func TestClientSessionService_Restore_RefreshesProfileOnline(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()

	token := signedTestToken(t, time.Hour)
	require.NoError(t, env.slots.Write(ctx, store.SlotCredential, token))
	require.NoError(t, env.slots.Write(ctx, store.SlotProfile, models.User{ID: "u1", Name: "Anna"}))

	env.adapter.EXPECT().SetToken(token)
	env.adapter.EXPECT().Profile(gomock.Any()).
		Return(models.User{ID: "u1", Name: "Anna Renamed", PasswordHash: "leaked-from-careless-server"}, nil)

	svc := NewClientSessionService(env.core)

	user, ok := svc.Restore(ctx)
	require.True(t, ok)
	assert.Equal(t, "Anna Renamed", user.Name)
	assert.Empty(t, user.PasswordHash)

	// the refreshed profile replaces the cached one
	assert.Equal(t, "Anna Renamed", readMirror[models.User](t, env, store.SlotProfile).Name)
}

func TestClientSessionService_Restore_ProfileFetchFailureFallsBack(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()

	token := signedTestToken(t, time.Hour)
	require.NoError(t, env.slots.Write(ctx, store.SlotCredential, token))
	require.NoError(t, env.slots.Write(ctx, store.SlotProfile, models.User{ID: "u1", Name: "Anna"}))

	env.adapter.EXPECT().SetToken(token)
	env.adapter.EXPECT().Profile(gomock.Any()).
		Return(models.User{}, errors.New("503 service unavailable"))

	svc := NewClientSessionService(env.core)

	user, ok := svc.Restore(ctx)
	require.True(t, ok)
	assert.Equal(t, "Anna", user.Name, "cached profile survives a failed refresh")
	assert.True(t, svc.Authenticated())
}

func TestClientSessionService_Restore_ExpiredTokenDiscarded(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	require.NoError(t, env.slots.Write(ctx, store.SlotCredential, signedTestToken(t, -time.Hour)))
	require.NoError(t, env.slots.Write(ctx, store.SlotProfile, models.User{ID: "u1"}))

	svc := NewClientSessionService(env.core)

	_, ok := svc.Restore(ctx)
	assert.False(t, ok)
	assert.False(t, svc.Authenticated())

	_, err := env.slots.Read(ctx, store.SlotCredential)
	assert.ErrorIs(t, err, store.ErrSlotNotFound, "expired credential is purged")
}

func TestClientSessionService_Restore_NoPersistedSession(t *testing.T) {
	env := newTestEnv(t, false)

	svc := NewClientSessionService(env.core)

	_, ok := svc.Restore(context.Background())
	assert.False(t, ok)
}

func TestClientSessionService_UpdatePreferences_OfflineUpdatesLocally(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	svc := NewClientSessionService(env.core).(*clientSessionService)
	svc.setSession(models.User{ID: "u1", Name: "Anna"})

	prefs := models.Preferences{Theme: "dark", ColorScheme: "ocean", SeasonalEffects: true}
	require.NoError(t, svc.UpdatePreferences(ctx, prefs))

	current, _ := svc.CurrentUser()
	assert.Equal(t, prefs, current.Preferences)
	assert.Equal(t, prefs, readMirror[models.User](t, env, store.SlotProfile).Preferences)
}

func TestClientSessionService_UpdatePreferences_RemoteBestEffort(t *testing.T) {
	env := newTestEnv(t, true)
	env.authed()
	ctx := context.Background()

	env.adapter.EXPECT().UpdatePreferences(gomock.Any(), gomock.Any()).
		Return(errors.New("502 bad gateway"))

	svc := NewClientSessionService(env.core).(*clientSessionService)
	svc.setSession(models.User{ID: "u1"})

	require.NoError(t, svc.UpdatePreferences(ctx, models.Preferences{Theme: "light"}))
}
