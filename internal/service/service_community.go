package service

import (
	"context"
	"fmt"
	"time"

	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/internal/store"
	"github.com/akarimov/study-keeper/internal/utils"
	"github.com/akarimov/study-keeper/models"
)

// communityService is the concrete implementation of CommunityService over
// the document store.
type communityService struct {
	documents store.DocumentStore
	logger    *logger.Logger
}

// NewCommunityService constructs a CommunityService backed by the document
// store.
func NewCommunityService(documents store.DocumentStore, logger *logger.Logger) CommunityService {
	return &communityService{documents: documents, logger: logger}
}

// List implements [CommunityService].
func (s *communityService) List(ctx context.Context) ([]models.CommunityItem, error) {
	items := []models.CommunityItem{}
	err := s.documents.View(ctx, func(doc *store.Document) error {
		items = append(items, doc.Community...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list community: %w", err)
	}
	return items, nil
}

// Publish implements [CommunityService]. The snapshot semantics live in the
// item itself (the client embeds a copy of the deck or note); the server
// only guarantees id-idempotence and stamps the author.
func (s *communityService) Publish(ctx context.Context, author models.User, item models.CommunityItem) (models.CommunityItem, error) {
	if item.Kind != models.CommunityDeck && item.Kind != models.CommunityNote {
		return models.CommunityItem{}, fmt.Errorf("%w: unknown community item kind %q", ErrValidation, item.Kind)
	}
	if item.ID == "" {
		item.ID = utils.NewID()
	}
	if item.Author == "" {
		item.Author = author.Name
	}
	if item.PublishedAt.IsZero() {
		item.PublishedAt = time.Now().UTC()
	}

	stored := item
	err := s.documents.Update(ctx, func(doc *store.Document) error {
		for _, existing := range doc.Community {
			if existing.ID == item.ID {
				stored = existing
				return nil
			}
		}
		doc.Community = append([]models.CommunityItem{item}, doc.Community...)
		return nil
	})
	if err != nil {
		return models.CommunityItem{}, fmt.Errorf("publish: %w", err)
	}

	return stored, nil
}

// IncrementDownload implements [CommunityService].
func (s *communityService) IncrementDownload(ctx context.Context, id string) error {
	err := s.documents.Update(ctx, func(doc *store.Document) error {
		for i := range doc.Community {
			if doc.Community[i].ID == id {
				doc.Community[i].Downloads++
				return nil
			}
		}
		s.logger.Debug().Str("id", id).Msg("download increment for unknown community item")
		return nil
	})
	if err != nil {
		return fmt.Errorf("increment download: %w", err)
	}
	return nil
}
