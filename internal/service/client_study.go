package service

import (
	"context"
	"fmt"
	"time"

	"dario.cat/mergo"

	"github.com/akarimov/study-keeper/internal/store"
	"github.com/akarimov/study-keeper/internal/utils"
	"github.com/akarimov/study-keeper/models"
)

type clientStudyService struct {
	core *syncCore
}

// NewClientStudyService builds the sync orchestrator for the user's own
// study collections.
func NewClientStudyService(core *syncCore) ClientStudyService {
	return &clientStudyService{core: core}
}

func (s *clientStudyService) GetDecks(ctx context.Context) ([]models.Deck, error) {
	return readCollection(ctx, s.core, models.CollectionDecks, s.core.adapter.ListDecks)
}

// SaveDeck implements [ClientStudyService]. The local write always happens;
// the remote call is chosen by whether the caller supplied an id (update)
// or left it empty (create), and its failure is swallowed.
func (s *clientStudyService) SaveDeck(ctx context.Context, deck models.Deck) (models.Deck, error) {
	created := deck.ID == ""
	if created {
		deck.ID = utils.NewID()
	}
	if deck.CreatedAt.IsZero() {
		deck.CreatedAt = time.Now()
	}

	if err := upsertLocal(ctx, s.core, models.CollectionDecks, deck, deckID); err != nil {
		return models.Deck{}, fmt.Errorf("save deck locally: %w", err)
	}

	if s.core.canSync(ctx) {
		var err error
		if created {
			err = s.core.adapter.CreateDeck(ctx, deck)
		} else {
			err = s.core.adapter.UpdateDeck(ctx, deck)
		}
		if err != nil {
			s.core.remoteFailed("save deck", err)
		}
	}

	return deck, nil
}

func (s *clientStudyService) DeleteDeck(ctx context.Context, id string) error {
	if err := removeLocal(ctx, s.core, models.CollectionDecks, id, deckID); err != nil {
		return fmt.Errorf("delete deck locally: %w", err)
	}

	if s.core.canSync(ctx) {
		if err := s.core.adapter.DeleteDeck(ctx, id); err != nil {
			s.core.remoteFailed("delete deck", err)
		}
	}

	return nil
}

func (s *clientStudyService) GetNotes(ctx context.Context) ([]models.Note, error) {
	return readCollection(ctx, s.core, models.CollectionNotes, s.core.adapter.ListNotes)
}

func (s *clientStudyService) SaveNote(ctx context.Context, note models.Note) (models.Note, error) {
	if note.ID == "" {
		note.ID = utils.NewID()
	}
	now := time.Now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now

	if err := upsertLocal(ctx, s.core, models.CollectionNotes, note, noteID); err != nil {
		return models.Note{}, fmt.Errorf("save note locally: %w", err)
	}

	if s.core.canSync(ctx) {
		if err := s.core.adapter.UpsertNote(ctx, note); err != nil {
			s.core.remoteFailed("save note", err)
		}
	}

	return note, nil
}

func (s *clientStudyService) DeleteNote(ctx context.Context, id string) error {
	if err := removeLocal(ctx, s.core, models.CollectionNotes, id, noteID); err != nil {
		return fmt.Errorf("delete note locally: %w", err)
	}

	if s.core.canSync(ctx) {
		if err := s.core.adapter.DeleteNote(ctx, id); err != nil {
			s.core.remoteFailed("delete note", err)
		}
	}

	return nil
}

func (s *clientStudyService) GetExams(ctx context.Context) ([]models.Exam, error) {
	return readCollection(ctx, s.core, models.CollectionTests, s.core.adapter.ListExams)
}

func (s *clientStudyService) SaveExam(ctx context.Context, exam models.Exam) (models.Exam, error) {
	if exam.ID == "" {
		exam.ID = utils.NewID()
	}

	if err := upsertLocal(ctx, s.core, models.CollectionTests, exam, examID); err != nil {
		return models.Exam{}, fmt.Errorf("save exam locally: %w", err)
	}

	if s.core.canSync(ctx) {
		if err := s.core.adapter.CreateExam(ctx, exam); err != nil {
			s.core.remoteFailed("save exam", err)
		}
	}

	return exam, nil
}

func (s *clientStudyService) DeleteExam(ctx context.Context, id string) error {
	if err := removeLocal(ctx, s.core, models.CollectionTests, id, examID); err != nil {
		return fmt.Errorf("delete exam locally: %w", err)
	}

	if s.core.canSync(ctx) {
		if err := s.core.adapter.DeleteExam(ctx, id); err != nil {
			s.core.remoteFailed("delete exam", err)
		}
	}

	return nil
}

// GetStats implements [ClientStudyService]. Stats is a single document, not
// a list, so it bypasses readCollection but follows the same remote-first
// shape.
func (s *clientStudyService) GetStats(ctx context.Context) (models.UserStats, error) {
	slot := models.CollectionStats.String()

	if s.core.canSync(ctx) {
		stats, err := s.core.adapter.GetStats(ctx)
		if err == nil {
			if werr := s.core.slots.Write(ctx, slot, stats); werr != nil {
				s.core.mirrorWriteFailed(slot, werr)
			}
			return stats, nil
		}
		s.core.remoteFailed("get stats", err)
	}

	return store.ReadSlot[models.UserStats](s.core.slots.Read(ctx, slot)), nil
}

// MergeStats implements [ClientStudyService]. The partial record is
// shallow-merged into the stored one under the slot lock, so two concurrent
// partial updates compose instead of the later one wiping the earlier.
func (s *clientStudyService) MergeStats(ctx context.Context, partial models.UserStats) (models.UserStats, error) {
	slot := models.CollectionStats.String()

	var merged models.UserStats
	err := s.core.slots.Mutate(ctx, slot, func(raw []byte) (any, error) {
		merged = store.Decode[models.UserStats](raw)
		if err := mergo.Merge(&merged, partial, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge stats: %w", err)
		}
		return merged, nil
	})
	if err != nil {
		return models.UserStats{}, fmt.Errorf("save stats locally: %w", err)
	}

	if s.core.canSync(ctx) {
		if err := s.core.adapter.SaveStats(ctx, merged); err != nil {
			s.core.remoteFailed("save stats", err)
		}
	}

	return merged, nil
}

func (s *clientStudyService) GetChats(ctx context.Context) ([]models.ChatSession, error) {
	return readCollection(ctx, s.core, models.CollectionChats, s.core.adapter.ListChats)
}

func (s *clientStudyService) SaveChat(ctx context.Context, chat models.ChatSession) (models.ChatSession, error) {
	if chat.ID == "" {
		chat.ID = utils.NewID()
	}
	if chat.LastActive.IsZero() {
		chat.LastActive = time.Now()
	}

	if err := upsertLocal(ctx, s.core, models.CollectionChats, chat, chatID); err != nil {
		return models.ChatSession{}, fmt.Errorf("save chat locally: %w", err)
	}

	if s.core.canSync(ctx) {
		if err := s.core.adapter.UpsertChat(ctx, chat); err != nil {
			s.core.remoteFailed("save chat", err)
		}
	}

	return chat, nil
}

func deckID(d models.Deck) string        { return d.ID }
func noteID(n models.Note) string        { return n.ID }
func examID(e models.Exam) string        { return e.ID }
func chatID(c models.ChatSession) string { return c.ID }
