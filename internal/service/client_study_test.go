package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akarimov/study-keeper/models"
)

// ── reads ────────────────────────────────────────────────────────────────────

func TestClientStudyService_GetDecks_OnlineOverwritesMirror(t *testing.T) {
	env := newTestEnv(t, true)
	env.authed()
	ctx := context.Background()

	stale := []models.Deck{{ID: "old", Title: "Stale"}}
	require.NoError(t, env.slots.Write(ctx, models.CollectionDecks.String(), stale))

	fresh := []models.Deck{
		{ID: "d1", Title: "Chemistry"},
		{ID: "d2", Title: "History"},
	}
	env.adapter.EXPECT().ListDecks(gomock.Any()).Return(fresh, nil)

	svc := NewClientStudyService(env.core)

	got, err := svc.GetDecks(ctx)
	require.NoError(t, err)
	assert.Equal(t, fresh, got)

	// the remote response replaced the mirror whole
	assert.Equal(t, fresh, readMirror[[]models.Deck](t, env, models.CollectionDecks.String()))
}

func TestClientStudyService_GetDecks_RemoteFailureFallsBackToMirror(t *testing.T) {
	env := newTestEnv(t, true)
	env.authed()
	ctx := context.Background()

	cached := []models.Deck{{ID: "d1", Title: "Cached"}}
	require.NoError(t, env.slots.Write(ctx, models.CollectionDecks.String(), cached))

	env.adapter.EXPECT().ListDecks(gomock.Any()).Return(nil, errors.New("connection reset"))

	svc := NewClientStudyService(env.core)

	got, err := svc.GetDecks(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestClientStudyService_GetDecks_OfflineNeverTouchesAdapter(t *testing.T) {
	// no adapter expectations: any remote call fails the test
	env := newTestEnv(t, false)
	ctx := context.Background()

	cached := []models.Deck{{ID: "d1", Title: "Cached"}}
	require.NoError(t, env.slots.Write(ctx, models.CollectionDecks.String(), cached))

	svc := NewClientStudyService(env.core)

	got, err := svc.GetDecks(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestClientStudyService_GetDecks_EmptyMirror(t *testing.T) {
	env := newTestEnv(t, false)

	svc := NewClientStudyService(env.core)

	got, err := svc.GetDecks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ── upserts ──────────────────────────────────────────────────────────────────

func TestClientStudyService_SaveDeck_NewDeckGetsIDAndIsPrepended(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	existing := []models.Deck{{ID: "d1", Title: "First"}}
	require.NoError(t, env.slots.Write(ctx, models.CollectionDecks.String(), existing))

	svc := NewClientStudyService(env.core)

	saved, err := svc.SaveDeck(ctx, models.Deck{Title: "Brand New"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	mirror := readMirror[[]models.Deck](t, env, models.CollectionDecks.String())
	require.Len(t, mirror, 2)
	assert.Equal(t, saved.ID, mirror[0].ID, "new deck goes to the front")
	assert.Equal(t, "d1", mirror[1].ID)
}

func TestClientStudyService_SaveDeck_ExistingKeepsPosition(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	require.NoError(t, env.slots.Write(ctx, models.CollectionDecks.String(), []models.Deck{
		{ID: "d1", Title: "First"},
		{ID: "d2", Title: "Second"},
		{ID: "d3", Title: "Third"},
	}))

	svc := NewClientStudyService(env.core)

	_, err := svc.SaveDeck(ctx, models.Deck{ID: "d2", Title: "Second, edited"})
	require.NoError(t, err)

	mirror := readMirror[[]models.Deck](t, env, models.CollectionDecks.String())
	require.Len(t, mirror, 3)
	assert.Equal(t, []string{"d1", "d2", "d3"}, []string{mirror[0].ID, mirror[1].ID, mirror[2].ID})
	assert.Equal(t, "Second, edited", mirror[1].Title)
}

func TestClientStudyService_SaveDeck_CreateVsUpdateRemoteCall(t *testing.T) {
	env := newTestEnv(t, true)
	env.authed()
	ctx := context.Background()

	svc := NewClientStudyService(env.core)

	env.adapter.EXPECT().CreateDeck(gomock.Any(), gomock.Any()).Return(nil)
	created, err := svc.SaveDeck(ctx, models.Deck{Title: "fresh"})
	require.NoError(t, err)

	env.adapter.EXPECT().UpdateDeck(gomock.Any(), gomock.Any()).Return(nil)
	_, err = svc.SaveDeck(ctx, models.Deck{ID: created.ID, Title: "edited"})
	require.NoError(t, err)
}

func TestClientStudyService_SaveDeck_RemoteFailureIsSwallowed(t *testing.T) {
	env := newTestEnv(t, true)
	env.authed()
	ctx := context.Background()

	env.adapter.EXPECT().CreateDeck(gomock.Any(), gomock.Any()).Return(errors.New("503 service unavailable"))

	svc := NewClientStudyService(env.core)

	saved, err := svc.SaveDeck(ctx, models.Deck{Title: "survives"})
	require.NoError(t, err, "remote failure must not surface")

	mirror := readMirror[[]models.Deck](t, env, models.CollectionDecks.String())
	require.Len(t, mirror, 1)
	assert.Equal(t, saved.ID, mirror[0].ID)
}

func TestClientStudyService_SaveNote_ConcurrentUpsertsLoseNothing(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	svc := NewClientStudyService(env.core)

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := svc.SaveNote(ctx, models.Note{ID: fmt.Sprintf("n%02d", i), Title: "note"})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	mirror := readMirror[[]models.Note](t, env, models.CollectionNotes.String())
	assert.Len(t, mirror, n)
}

// ── deletes ──────────────────────────────────────────────────────────────────

func TestClientStudyService_DeleteDeck_Idempotent(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	require.NoError(t, env.slots.Write(ctx, models.CollectionDecks.String(), []models.Deck{
		{ID: "d1"}, {ID: "d2"},
	}))

	svc := NewClientStudyService(env.core)

	require.NoError(t, svc.DeleteDeck(ctx, "d1"))
	require.NoError(t, svc.DeleteDeck(ctx, "d1"), "second delete of same id succeeds")
	require.NoError(t, svc.DeleteDeck(ctx, "never-existed"))

	mirror := readMirror[[]models.Deck](t, env, models.CollectionDecks.String())
	require.Len(t, mirror, 1)
	assert.Equal(t, "d2", mirror[0].ID)
}

func TestClientStudyService_DeleteNote_RemoteBestEffort(t *testing.T) {
	env := newTestEnv(t, true)
	env.authed()
	ctx := context.Background()

	require.NoError(t, env.slots.Write(ctx, models.CollectionNotes.String(), []models.Note{{ID: "n1"}}))

	env.adapter.EXPECT().DeleteNote(gomock.Any(), "n1").Return(errors.New("410 gone"))

	svc := NewClientStudyService(env.core)

	require.NoError(t, svc.DeleteNote(ctx, "n1"))
	assert.Empty(t, readMirror[[]models.Note](t, env, models.CollectionNotes.String()))
}

// ── stats ────────────────────────────────────────────────────────────────────

func TestClientStudyService_MergeStats_PartialDoesNotClobber(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	require.NoError(t, env.slots.Write(ctx, models.CollectionStats.String(), models.UserStats{
		UserID: "u1",
		XP:     100,
		Goals:  []models.Goal{{ID: "g1", Title: "Finish chemistry deck"}},
	}))

	svc := NewClientStudyService(env.core)

	merged, err := svc.MergeStats(ctx, models.UserStats{XP: 150})
	require.NoError(t, err)

	assert.Equal(t, 150, merged.XP)
	assert.Equal(t, "u1", merged.UserID, "zero field in partial must not wipe stored value")
	require.Len(t, merged.Goals, 1)

	merged, err = svc.MergeStats(ctx, models.UserStats{
		Goals: []models.Goal{{ID: "g2", Title: "Revise history"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 150, merged.XP)
	require.Len(t, merged.Goals, 1)
	assert.Equal(t, "g2", merged.Goals[0].ID)

	assert.Equal(t, merged, readMirror[models.UserStats](t, env, models.CollectionStats.String()))
}

func TestClientStudyService_MergeStats_PushesMergedRecord(t *testing.T) {
	env := newTestEnv(t, true)
	env.authed()
	ctx := context.Background()

	require.NoError(t, env.slots.Write(ctx, models.CollectionStats.String(), models.UserStats{UserID: "u1", XP: 10}))

	env.adapter.EXPECT().
		SaveStats(gomock.Any(), models.UserStats{UserID: "u1", XP: 25}).
		Return(nil)

	svc := NewClientStudyService(env.core)

	_, err := svc.MergeStats(ctx, models.UserStats{XP: 25})
	require.NoError(t, err)
}

func TestClientStudyService_GetStats_RemoteFirst(t *testing.T) {
	env := newTestEnv(t, true)
	env.authed()
	ctx := context.Background()

	remote := models.UserStats{UserID: "u1", XP: 999}
	env.adapter.EXPECT().GetStats(gomock.Any()).Return(remote, nil)

	svc := NewClientStudyService(env.core)

	got, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, remote, got)
	assert.Equal(t, remote, readMirror[models.UserStats](t, env, models.CollectionStats.String()))
}
