package badger

import (
	"context"
	"fmt"
	"sort"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/boardbridge/internal/interfaces"
	"github.com/ternarybob/boardbridge/internal/models"
)

// DeckStorage implements the DeckStorage interface for Badger
type DeckStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewDeckStorage creates a new DeckStorage instance
func NewDeckStorage(db *BadgerDB, logger arbor.ILogger) interfaces.DeckStorage {
	return &DeckStorage{
		db:     db,
		logger: logger,
	}
}

func (s *DeckStorage) StoreDeck(ctx context.Context, deck *models.Deck) error {
	if deck.ID == "" {
		return fmt.Errorf("deck ID is required")
	}

	if err := s.db.Store().Upsert(deck.ID, deck); err != nil {
		return fmt.Errorf("failed to store deck: %w", err)
	}

	s.logger.Debug().
		Str("deck_id", deck.ID).
		Str("board_id", deck.BoardID).
		Int("slides", len(deck.Slides)).
		Msg("Deck stored")

	return nil
}

func (s *DeckStorage) GetDeck(ctx context.Context, id string) (*models.Deck, error) {
	var deck models.Deck
	if err := s.db.Store().Get(id, &deck); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}
	return &deck, nil
}

func (s *DeckStorage) ListDecks(ctx context.Context) ([]*models.Deck, error) {
	var decks []models.Deck
	if err := s.db.Store().Find(&decks, nil); err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}

	// Newest first
	sort.Slice(decks, func(i, j int) bool {
		return decks[i].CreatedAt.After(decks[j].CreatedAt)
	})

	result := make([]*models.Deck, len(decks))
	for i := range decks {
		result[i] = &decks[i]
	}
	return result, nil
}

func (s *DeckStorage) DeleteDeck(ctx context.Context, id string) error {
	if err := s.db.Store().Delete(id, &models.Deck{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete deck: %w", err)
	}
	return nil
}
