package service

import (
	"context"
	"sync"
	"time"

	"github.com/akarimov/study-keeper/internal/logger"
)

const defaultRefreshInterval = 5 * time.Minute

type clientRefreshJob struct {
	session   ClientSessionService
	study     ClientStudyService
	community ClientCommunityService
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob builds the background job that keeps the local
// mirrors warm by periodically re-reading every collection.
func NewClientRefreshJob(session ClientSessionService, study ClientStudyService, community ClientCommunityService, log *logger.Logger) ClientRefreshJob {
	return &clientRefreshJob{session: session, study: study, community: community, logger: log}
}

// Start implements [ClientRefreshJob].
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	jobCtx, cancel := context.WithCancel(ctx)

	j.mu.Lock()
	j.cancel = cancel
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run(jobCtx, interval)
}

// Stop implements [ClientRefreshJob].
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientRefreshJob) run(ctx context.Context, interval time.Duration) {
	defer j.wg.Done()

	j.logger.Info().Dur("interval", interval).Msg("refresh job started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("refresh job stopped")
			return
		case <-ticker.C:
			j.refreshOnce(ctx)
		}
	}
}

// refreshOnce re-reads every collection once. Each read is an ordinary sync
// read: it refreshes the mirror on success and quietly falls back on
// failure, so a bad tick needs no retry bookkeeping here.
func (j *clientRefreshJob) refreshOnce(ctx context.Context) {
	if j.session.Authenticated() {
		if _, err := j.study.GetDecks(ctx); err != nil {
			j.logger.Warn().Err(err).Msg("refresh decks failed")
		}
		if _, err := j.study.GetNotes(ctx); err != nil {
			j.logger.Warn().Err(err).Msg("refresh notes failed")
		}
		if _, err := j.study.GetExams(ctx); err != nil {
			j.logger.Warn().Err(err).Msg("refresh exams failed")
		}
		if _, err := j.study.GetStats(ctx); err != nil {
			j.logger.Warn().Err(err).Msg("refresh stats failed")
		}
		if _, err := j.study.GetChats(ctx); err != nil {
			j.logger.Warn().Err(err).Msg("refresh chats failed")
		}
	}

	// the community feed is public and refreshes regardless of session
	if _, err := j.community.GetCommunityItems(ctx); err != nil {
		j.logger.Warn().Err(err).Msg("refresh community failed")
	}
}
