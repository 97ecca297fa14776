package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/models"
)

// countingStudy wraps the real study service and counts deck refreshes.
type countingStudy struct {
	ClientStudyService
	decks atomic.Int64
}

func (c *countingStudy) GetDecks(ctx context.Context) ([]models.Deck, error) {
	c.decks.Add(1)
	return c.ClientStudyService.GetDecks(ctx)
}

type countingCommunity struct {
	ClientCommunityService
	feeds atomic.Int64
}

func (c *countingCommunity) GetCommunityItems(ctx context.Context) ([]models.CommunityItem, error) {
	c.feeds.Add(1)
	return c.ClientCommunityService.GetCommunityItems(ctx)
}

func TestClientRefreshJob_TicksAndStops(t *testing.T) {
	// offline env: every refresh read serves the mirror, no adapter calls
	env := newTestEnv(t, false)

	session := NewClientSessionService(env.core).(*clientSessionService)
	session.setSession(models.User{ID: "u1"})

	study := &countingStudy{ClientStudyService: NewClientStudyService(env.core)}
	community := &countingCommunity{ClientCommunityService: NewClientCommunityService(env.core, 0)}

	job := NewClientRefreshJob(session, study, community, logger.Nop())

	job.Start(context.Background(), 20*time.Millisecond)

	require.Eventually(t, func() bool {
		return study.decks.Load() >= 2 && community.feeds.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond)

	job.Stop()

	after := study.decks.Load()
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, after, study.decks.Load(), "no ticks after Stop")
}

func TestClientRefreshJob_SkipsStudyDataWithoutSession(t *testing.T) {
	env := newTestEnv(t, false)

	session := NewClientSessionService(env.core)
	study := &countingStudy{ClientStudyService: NewClientStudyService(env.core)}
	community := &countingCommunity{ClientCommunityService: NewClientCommunityService(env.core, 0)}

	job := NewClientRefreshJob(session, study, community, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool {
		return community.feeds.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)

	require.Zero(t, study.decks.Load(), "study collections need a session to refresh")
}

func TestClientRefreshJob_StopWithoutStart(t *testing.T) {
	env := newTestEnv(t, false)

	job := NewClientRefreshJob(
		NewClientSessionService(env.core),
		NewClientStudyService(env.core),
		NewClientCommunityService(env.core, 0),
		logger.Nop(),
	)

	job.Stop() // must not panic or block
}

func TestClientRefreshJob_RestartReplacesPreviousRun(t *testing.T) {
	env := newTestEnv(t, false)

	session := NewClientSessionService(env.core)
	study := NewClientStudyService(env.core)
	community := &countingCommunity{ClientCommunityService: NewClientCommunityService(env.core, 0)}

	job := NewClientRefreshJob(session, study, community, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Start(context.Background(), 10*time.Millisecond) // stops the first run

	require.Eventually(t, func() bool {
		return community.feeds.Load() >= 1
	}, 2*time.Second, 5*time.Millisecond)

	job.Stop()
}
