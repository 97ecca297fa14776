package service

import (
	"context"
	"fmt"
	"time"

	"github.com/akarimov/study-keeper/internal/store"
	"github.com/akarimov/study-keeper/internal/utils"
	"github.com/akarimov/study-keeper/models"
)

type clientCommunityService struct {
	core *syncCore

	// fetchTimeout bounds the community feed fetch. The feed decorates the
	// home screen, so a slow remote is treated the same as an unreachable
	// one instead of blocking the UI.
	fetchTimeout time.Duration
}

// NewClientCommunityService builds the community-feed service. fetchTimeout
// bounds each remote feed fetch; zero or negative falls back to 3 seconds.
func NewClientCommunityService(core *syncCore, fetchTimeout time.Duration) ClientCommunityService {
	if fetchTimeout <= 0 {
		fetchTimeout = 3 * time.Second
	}
	return &clientCommunityService{core: core, fetchTimeout: fetchTimeout}
}

// GetCommunityItems implements [ClientCommunityService]. The feed is public,
// so unlike the study collections it only needs the network, not a session.
// When both the remote and the mirror come up empty the fixed seed set is
// written into the mirror and returned, so a fresh install never shows an
// empty feed.
func (s *clientCommunityService) GetCommunityItems(ctx context.Context) ([]models.CommunityItem, error) {
	slot := models.CollectionCommunity.String()

	if s.core.oracle.Online(ctx) {
		fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
		items, err := s.core.adapter.ListCommunity(fetchCtx)
		cancel()

		if err == nil && len(items) > 0 {
			if werr := s.core.slots.Write(ctx, slot, items); werr != nil {
				s.core.mirrorWriteFailed(slot, werr)
			}
			return items, nil
		}
		if err != nil {
			s.core.remoteFailed("list community", err)
		}
	}

	cached := store.ReadSlot[[]models.CommunityItem](s.core.slots.Read(ctx, slot))
	if len(cached) > 0 {
		return cached, nil
	}

	seed := seedCommunityItems()
	if err := s.core.slots.Write(ctx, slot, seed); err != nil {
		s.core.mirrorWriteFailed(slot, err)
	}
	return seed, nil
}

// Publish implements [ClientCommunityService]. Re-publishing an id already
// in the feed returns the stored item untouched; a new item is stamped and
// prepended.
func (s *clientCommunityService) Publish(ctx context.Context, item models.CommunityItem) (models.CommunityItem, error) {
	if item.ID == "" {
		item.ID = utils.NewID()
	}
	if item.PublishedAt.IsZero() {
		item.PublishedAt = time.Now().UTC()
	}

	var stored models.CommunityItem
	var duplicate bool

	err := s.core.slots.Mutate(ctx, models.CollectionCommunity.String(), func(raw []byte) (any, error) {
		items := store.Decode[[]models.CommunityItem](raw)

		for _, it := range items {
			if it.ID == item.ID {
				stored, duplicate = it, true
				return items, nil
			}
		}

		stored = item
		return append([]models.CommunityItem{item}, items...), nil
	})
	if err != nil {
		return models.CommunityItem{}, fmt.Errorf("publish locally: %w", err)
	}

	if !duplicate && s.core.canSync(ctx) {
		if err := s.core.adapter.PublishCommunity(ctx, stored); err != nil {
			s.core.remoteFailed("publish community item", err)
		}
	}

	return stored, nil
}

// IncrementDownload implements [ClientCommunityService]. The local bump is
// optimistic; an id that is not in the cached feed is silently skipped. The
// remote counter is notified best-effort and never read back to reconcile.
func (s *clientCommunityService) IncrementDownload(ctx context.Context, id string) error {
	err := s.core.slots.Mutate(ctx, models.CollectionCommunity.String(), func(raw []byte) (any, error) {
		items := store.Decode[[]models.CommunityItem](raw)

		for i := range items {
			if items[i].ID == id {
				items[i].Downloads++
				break
			}
		}

		return items, nil
	})
	if err != nil {
		return fmt.Errorf("increment download locally: %w", err)
	}

	if s.core.oracle.Online(ctx) {
		if err := s.core.adapter.IncrementDownload(ctx, id); err != nil {
			s.core.remoteFailed("increment download", err)
		}
	}

	return nil
}

// seedCommunityItems is the built-in starter feed shown when neither the
// remote API nor the local cache has anything to offer.
func seedCommunityItems() []models.CommunityItem {
	published := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	return []models.CommunityItem{
		{
			ID:          "seed-deck-study-basics",
			Kind:        models.CommunityDeck,
			Title:       "Study Basics",
			Description: "Core techniques for effective studying",
			Author:      "Study Keeper",
			Deck: &models.Deck{
				ID:    "seed-deck-study-basics",
				Title: "Study Basics",
				Cards: []models.Card{
					{Front: "What is spaced repetition?", Back: "Reviewing material at increasing intervals to fight the forgetting curve."},
					{Front: "What is active recall?", Back: "Testing yourself on material instead of re-reading it."},
					{Front: "What is the Pomodoro technique?", Back: "Focused 25-minute work sessions separated by short breaks."},
				},
				CreatedAt: published,
			},
			PublishedAt: published,
		},
		{
			ID:          "seed-deck-world-capitals",
			Kind:        models.CommunityDeck,
			Title:       "World Capitals",
			Description: "A quick warm-up geography deck",
			Author:      "Study Keeper",
			Deck: &models.Deck{
				ID:    "seed-deck-world-capitals",
				Title: "World Capitals",
				Cards: []models.Card{
					{Front: "Capital of Japan?", Back: "Tokyo"},
					{Front: "Capital of Brazil?", Back: "Brasília"},
					{Front: "Capital of Canada?", Back: "Ottawa"},
					{Front: "Capital of Australia?", Back: "Canberra"},
				},
				CreatedAt: published,
			},
			PublishedAt: published,
		},
		{
			ID:          "seed-note-getting-started",
			Kind:        models.CommunityNote,
			Title:       "Getting Started",
			Description: "How to organize your first study week",
			Author:      "Study Keeper",
			Note: &models.Note{
				ID:        "seed-note-getting-started",
				Title:     "Getting Started",
				Subject:   "Meta",
				Content:   "<h1>Welcome</h1><p>Create a deck for each subject, add a few cards a day, and review daily. Small consistent sessions beat cramming.</p>",
				CreatedAt: published,
				UpdatedAt: published,
			},
			PublishedAt: published,
		},
	}
}
