package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/boardbridge/internal/interfaces"
	"github.com/ternarybob/boardbridge/internal/models"
)

// AuthStorage implements the AuthStorage interface for Badger
type AuthStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewAuthStorage creates a new AuthStorage instance
func NewAuthStorage(db *BadgerDB, logger arbor.ILogger) interfaces.AuthStorage {
	return &AuthStorage{
		db:     db,
		logger: logger,
	}
}

func (s *AuthStorage) StoreCredentials(ctx context.Context, credentials *models.BoardCredentials) error {
	if credentials.ID == "" {
		return fmt.Errorf("credentials ID is required")
	}

	now := time.Now().Unix()
	if credentials.CreatedAt == 0 {
		credentials.CreatedAt = now
	}
	credentials.UpdatedAt = now

	if err := s.db.Store().Upsert(credentials.ID, credentials); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}
	return nil
}

func (s *AuthStorage) GetCredentials(ctx context.Context, id string) (*models.BoardCredentials, error) {
	var creds models.BoardCredentials
	if err := s.db.Store().Get(id, &creds); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}
	return &creds, nil
}

func (s *AuthStorage) DeleteCredentials(ctx context.Context, id string) error {
	if err := s.db.Store().Delete(id, &models.BoardCredentials{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}
