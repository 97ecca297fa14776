package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/models"
)

func TestCommunityService_PublishAndList(t *testing.T) {
	svc := NewCommunityService(newTestDocuments(t), logger.Nop())
	ctx := context.Background()

	author := models.User{ID: "u1", Name: "Anna"}

	first, err := svc.Publish(ctx, author, models.CommunityItem{
		Kind:  models.CommunityDeck,
		Title: "Biology 101",
		Deck:  &models.Deck{ID: "d1", Title: "Biology 101"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Anna", first.Author, "author name is stamped at publish time")
	assert.False(t, first.PublishedAt.IsZero())

	second, err := svc.Publish(ctx, author, models.CommunityItem{
		Kind:  models.CommunityNote,
		Title: "Exam tips",
		Note:  &models.Note{ID: "n1", Title: "Exam tips"},
	})
	require.NoError(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID, "newest first")
	assert.Equal(t, first.ID, items[1].ID)
}

func TestCommunityService_Publish_Idempotent(t *testing.T) {
	svc := NewCommunityService(newTestDocuments(t), logger.Nop())
	ctx := context.Background()

	item := models.CommunityItem{
		ID:    "pub-1",
		Kind:  models.CommunityDeck,
		Title: "Original",
		Deck:  &models.Deck{ID: "d1"},
	}

	first, err := svc.Publish(ctx, models.User{Name: "Anna"}, item)
	require.NoError(t, err)

	item.Title = "Sneaky rename"
	again, err := svc.Publish(ctx, models.User{Name: "Anna"}, item)
	require.NoError(t, err)
	assert.Equal(t, first, again, "re-publish returns the stored item unchanged")

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Original", items[0].Title)
}

func TestCommunityService_Publish_RejectsUnknownKind(t *testing.T) {
	svc := NewCommunityService(newTestDocuments(t), logger.Nop())

	_, err := svc.Publish(context.Background(), models.User{}, models.CommunityItem{Kind: "playlist"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCommunityService_IncrementDownload(t *testing.T) {
	svc := NewCommunityService(newTestDocuments(t), logger.Nop())
	ctx := context.Background()

	item, err := svc.Publish(ctx, models.User{Name: "Anna"}, models.CommunityItem{
		Kind: models.CommunityDeck,
		Deck: &models.Deck{ID: "d1"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.IncrementDownload(ctx, item.ID))
	require.NoError(t, svc.IncrementDownload(ctx, item.ID))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Downloads)
}

func TestCommunityService_IncrementDownload_UnknownIDIsNoop(t *testing.T) {
	svc := NewCommunityService(newTestDocuments(t), logger.Nop())

	require.NoError(t, svc.IncrementDownload(context.Background(), "ghost"))
}
