package service

import (
	"context"
	"fmt"
	"time"

	"dario.cat/mergo"

	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/internal/store"
	"github.com/akarimov/study-keeper/internal/utils"
	"github.com/akarimov/study-keeper/models"
)

// studyService is the concrete implementation of StudyService over the
// document store. Collections are stored flat; every operation filters or
// matches on the owning user id.
type studyService struct {
	documents store.DocumentStore
	logger    *logger.Logger
}

// NewStudyService constructs a StudyService backed by the document store.
func NewStudyService(documents store.DocumentStore, logger *logger.Logger) StudyService {
	return &studyService{documents: documents, logger: logger}
}

func (s *studyService) Decks(ctx context.Context, userID string) ([]models.Deck, error) {
	return listOwned(ctx, s.documents, userID,
		func(doc *store.Document) []models.Deck { return doc.Decks },
		func(d models.Deck) string { return d.UserID })
}

func (s *studyService) SaveDeck(ctx context.Context, userID string, deck models.Deck) (models.Deck, error) {
	if deck.ID == "" {
		deck.ID = utils.NewID()
	}
	deck.UserID = userID
	if deck.CreatedAt.IsZero() {
		deck.CreatedAt = time.Now().UTC()
	}

	err := s.documents.Update(ctx, func(doc *store.Document) error {
		doc.Decks = upsertOwned(doc.Decks, deck, userID,
			func(d models.Deck) (string, string) { return d.ID, d.UserID })
		return nil
	})
	if err != nil {
		return models.Deck{}, fmt.Errorf("save deck: %w", err)
	}
	return deck, nil
}

func (s *studyService) DeleteDeck(ctx context.Context, userID, id string) error {
	err := s.documents.Update(ctx, func(doc *store.Document) error {
		doc.Decks = deleteOwned(doc.Decks, id, userID,
			func(d models.Deck) (string, string) { return d.ID, d.UserID })
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}
	return nil
}

func (s *studyService) Notes(ctx context.Context, userID string) ([]models.Note, error) {
	return listOwned(ctx, s.documents, userID,
		func(doc *store.Document) []models.Note { return doc.Notes },
		func(n models.Note) string { return n.UserID })
}

func (s *studyService) SaveNote(ctx context.Context, userID string, note models.Note) (models.Note, error) {
	if note.ID == "" {
		note.ID = utils.NewID()
	}
	note.UserID = userID
	now := time.Now().UTC()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now

	err := s.documents.Update(ctx, func(doc *store.Document) error {
		doc.Notes = upsertOwned(doc.Notes, note, userID,
			func(n models.Note) (string, string) { return n.ID, n.UserID })
		return nil
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("save note: %w", err)
	}
	return note, nil
}

func (s *studyService) DeleteNote(ctx context.Context, userID, id string) error {
	err := s.documents.Update(ctx, func(doc *store.Document) error {
		doc.Notes = deleteOwned(doc.Notes, id, userID,
			func(n models.Note) (string, string) { return n.ID, n.UserID })
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

func (s *studyService) Exams(ctx context.Context, userID string) ([]models.Exam, error) {
	return listOwned(ctx, s.documents, userID,
		func(doc *store.Document) []models.Exam { return doc.Exams },
		func(e models.Exam) string { return e.UserID })
}

func (s *studyService) SaveExam(ctx context.Context, userID string, exam models.Exam) (models.Exam, error) {
	if exam.ID == "" {
		exam.ID = utils.NewID()
	}
	exam.UserID = userID

	err := s.documents.Update(ctx, func(doc *store.Document) error {
		doc.Exams = upsertOwned(doc.Exams, exam, userID,
			func(e models.Exam) (string, string) { return e.ID, e.UserID })
		return nil
	})
	if err != nil {
		return models.Exam{}, fmt.Errorf("save exam: %w", err)
	}
	return exam, nil
}

func (s *studyService) DeleteExam(ctx context.Context, userID, id string) error {
	err := s.documents.Update(ctx, func(doc *store.Document) error {
		doc.Exams = deleteOwned(doc.Exams, id, userID,
			func(e models.Exam) (string, string) { return e.ID, e.UserID })
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete exam: %w", err)
	}
	return nil
}

func (s *studyService) Stats(ctx context.Context, userID string) (models.UserStats, error) {
	stats := models.UserStats{UserID: userID}
	err := s.documents.View(ctx, func(doc *store.Document) error {
		for _, st := range doc.Stats {
			if st.UserID == userID {
				stats = st
				break
			}
		}
		return nil
	})
	if err != nil {
		return models.UserStats{}, fmt.Errorf("get stats: %w", err)
	}
	return stats, nil
}

// MergeStats implements [StudyService]. The document write lock makes the
// read-merge-write atomic, so concurrent partial updates compose.
func (s *studyService) MergeStats(ctx context.Context, userID string, partial models.UserStats) (models.UserStats, error) {
	partial.UserID = userID

	var merged models.UserStats
	err := s.documents.Update(ctx, func(doc *store.Document) error {
		for i := range doc.Stats {
			if doc.Stats[i].UserID == userID {
				if err := mergo.Merge(&doc.Stats[i], partial, mergo.WithOverride); err != nil {
					return fmt.Errorf("merge stats: %w", err)
				}
				merged = doc.Stats[i]
				return nil
			}
		}
		doc.Stats = append(doc.Stats, partial)
		merged = partial
		return nil
	})
	if err != nil {
		return models.UserStats{}, err
	}
	return merged, nil
}

func (s *studyService) Chats(ctx context.Context, userID string) ([]models.ChatSession, error) {
	return listOwned(ctx, s.documents, userID,
		func(doc *store.Document) []models.ChatSession { return doc.Chats },
		func(c models.ChatSession) string { return c.UserID })
}

func (s *studyService) SaveChat(ctx context.Context, userID string, chat models.ChatSession) (models.ChatSession, error) {
	if chat.ID == "" {
		chat.ID = utils.NewID()
	}
	chat.UserID = userID
	if chat.LastActive.IsZero() {
		chat.LastActive = time.Now().UTC()
	}

	err := s.documents.Update(ctx, func(doc *store.Document) error {
		doc.Chats = upsertOwned(doc.Chats, chat, userID,
			func(c models.ChatSession) (string, string) { return c.ID, c.UserID })
		return nil
	})
	if err != nil {
		return models.ChatSession{}, fmt.Errorf("save chat: %w", err)
	}
	return chat, nil
}

// listOwned returns the user's records from one flat collection, preserving
// document order. The result is a copy, never an alias into the document.
func listOwned[T any](ctx context.Context, documents store.DocumentStore, userID string, all func(*store.Document) []T, ownerOf func(T) string) ([]T, error) {
	owned := []T{}
	err := documents.View(ctx, func(doc *store.Document) error {
		for _, item := range all(doc) {
			if ownerOf(item) == userID {
				owned = append(owned, item)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return owned, nil
}

// upsertOwned replaces the record with a matching id and owner in place, or
// appends when none matches. A matching id owned by someone else is treated
// as unknown.
func upsertOwned[T any](items []T, item T, userID string, keyOf func(T) (id, owner string)) []T {
	itemID, _ := keyOf(item)
	for i := range items {
		id, owner := keyOf(items[i])
		if id == itemID && owner == userID {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

// deleteOwned filters out the record with the matching id and owner.
// Deleting an unknown id is a no-op.
func deleteOwned[T any](items []T, itemID, userID string, keyOf func(T) (id, owner string)) []T {
	kept := items[:0]
	for _, it := range items {
		id, owner := keyOf(it)
		if id == itemID && owner == userID {
			continue
		}
		kept = append(kept, it)
	}
	return kept
}
