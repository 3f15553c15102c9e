package badger

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/common"
	"github.com/ternarybob/boardbridge/internal/interfaces"
)

// Manager bundles all badger-backed storage behind the StorageManager
// interface
type Manager struct {
	db          *BadgerDB
	authStorage interfaces.AuthStorage
	deckStorage interfaces.DeckStorage
	logger      arbor.ILogger
}

// Compile-time assertion
var _ interfaces.StorageManager = (*Manager)(nil)

// NewManager opens the database and wires the storage implementations
func NewManager(config *common.BadgerConfig, logger arbor.ILogger) (*Manager, error) {
	db, err := NewBadgerDB(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize badger storage: %w", err)
	}

	return &Manager{
		db:          db,
		authStorage: NewAuthStorage(db, logger),
		deckStorage: NewDeckStorage(db, logger),
		logger:      logger,
	}, nil
}

// AuthStorage returns the credential storage
func (m *Manager) AuthStorage() interfaces.AuthStorage {
	return m.authStorage
}

// DeckStorage returns the deck storage
func (m *Manager) DeckStorage() interfaces.DeckStorage {
	return m.deckStorage
}

// Close closes the underlying database
func (m *Manager) Close() error {
	return m.db.Close()
}
