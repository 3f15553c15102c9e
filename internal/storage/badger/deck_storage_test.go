package badger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/common"
	"github.com/ternarybob/boardbridge/internal/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	config := &common.BadgerConfig{
		Path: filepath.Join(t.TempDir(), "db"),
	}

	manager, err := NewManager(config, arbor.NewLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	return manager
}

func TestDeckStorage_RoundTrip(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	deck := &models.Deck{
		ID:        "deck-1",
		BoardID:   "board-001",
		BoardName: "Q1 Strategic Planning Workshop",
		CreatedAt: time.Now().UTC(),
		Slides: []models.FrameSlide{
			{
				FrameID:    "frame-1",
				FrameTitle: "Goals & Vision",
				Slide:      models.Slide{Title: "Growth Targets", Bullets: []string{"Increase market share by 25%"}},
				RawNotes:   []string{"Increase market share by 25%"},
			},
		},
	}

	require.NoError(t, manager.DeckStorage().StoreDeck(ctx, deck))

	got, err := manager.DeckStorage().GetDeck(ctx, "deck-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "board-001", got.BoardID)
	require.Len(t, got.Slides, 1)
	assert.Equal(t, "Growth Targets", got.Slides[0].Slide.Title)
}

func TestDeckStorage_GetMissingReturnsNil(t *testing.T) {
	manager := newTestManager(t)

	got, err := manager.DeckStorage().GetDeck(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeckStorage_ListNewestFirst(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	older := &models.Deck{ID: "deck-old", BoardID: "b", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.Deck{ID: "deck-new", BoardID: "b", CreatedAt: time.Now()}
	require.NoError(t, manager.DeckStorage().StoreDeck(ctx, older))
	require.NoError(t, manager.DeckStorage().StoreDeck(ctx, newer))

	decks, err := manager.DeckStorage().ListDecks(ctx)
	require.NoError(t, err)
	require.Len(t, decks, 2)
	assert.Equal(t, "deck-new", decks[0].ID)
}

func TestAuthStorage_RoundTripAndDelete(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	creds := &models.BoardCredentials{
		ID:          "canvas",
		AccessToken: "token-abc",
		TokenType:   "Bearer",
		BaseURL:     "https://canvas.example.com/v2",
	}
	require.NoError(t, manager.AuthStorage().StoreCredentials(ctx, creds))
	assert.NotZero(t, creds.CreatedAt)

	got, err := manager.AuthStorage().GetCredentials(ctx, "canvas")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "token-abc", got.AccessToken)

	require.NoError(t, manager.AuthStorage().DeleteCredentials(ctx, "canvas"))

	got, err = manager.AuthStorage().GetCredentials(ctx, "canvas")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is a no-op
	assert.NoError(t, manager.AuthStorage().DeleteCredentials(ctx, "canvas"))
}
