package interfaces

import (
	"context"

	"github.com/ternarybob/boardbridge/internal/models"
)

// AuthStorage persists the bearer credential across restarts.
type AuthStorage interface {
	StoreCredentials(ctx context.Context, credentials *models.BoardCredentials) error
	GetCredentials(ctx context.Context, id string) (*models.BoardCredentials, error)
	DeleteCredentials(ctx context.Context, id string) error
}

// DeckStorage persists generated slide decks.
type DeckStorage interface {
	StoreDeck(ctx context.Context, deck *models.Deck) error
	GetDeck(ctx context.Context, id string) (*models.Deck, error)
	ListDecks(ctx context.Context) ([]*models.Deck, error)
	DeleteDeck(ctx context.Context, id string) error
}

// StorageManager provides access to all storage interfaces.
type StorageManager interface {
	AuthStorage() AuthStorage
	DeckStorage() DeckStorage
	Close() error
}
