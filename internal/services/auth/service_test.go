package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/interfaces"
	"github.com/ternarybob/boardbridge/internal/models"
)

// memAuthStorage is an in-memory AuthStorage for tests.
type memAuthStorage struct {
	creds map[string]*models.BoardCredentials
}

func newMemAuthStorage() *memAuthStorage {
	return &memAuthStorage{creds: make(map[string]*models.BoardCredentials)}
}

func (m *memAuthStorage) StoreCredentials(ctx context.Context, c *models.BoardCredentials) error {
	copied := *c
	m.creds[c.ID] = &copied
	return nil
}

func (m *memAuthStorage) GetCredentials(ctx context.Context, id string) (*models.BoardCredentials, error) {
	c, ok := m.creds[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (m *memAuthStorage) DeleteCredentials(ctx context.Context, id string) error {
	delete(m.creds, id)
	return nil
}

func TestService_NotConnectedByDefault(t *testing.T) {
	service, err := NewService(newMemAuthStorage(), arbor.NewLogger())
	require.NoError(t, err)

	assert.False(t, service.Connected())

	_, err = service.Token()
	assert.ErrorIs(t, err, interfaces.ErrReconnectRequired)
}

func TestService_StoreAndToken(t *testing.T) {
	storage := newMemAuthStorage()
	service, err := NewService(storage, arbor.NewLogger())
	require.NoError(t, err)

	require.NoError(t, service.Store(context.Background(), "token-xyz", "https://canvas.example.com/v2"))

	assert.True(t, service.Connected())

	token, err := service.Token()
	require.NoError(t, err)
	assert.Equal(t, "token-xyz", token)
	assert.Equal(t, "https://canvas.example.com/v2", service.BaseURL())

	// Persisted
	stored, err := storage.GetCredentials(context.Background(), credentialID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "token-xyz", stored.AccessToken)
}

func TestService_StoreRejectsEmptyToken(t *testing.T) {
	service, err := NewService(newMemAuthStorage(), arbor.NewLogger())
	require.NoError(t, err)

	assert.Error(t, service.Store(context.Background(), "   ", ""))
}

func TestService_LoadsStoredCredentials(t *testing.T) {
	storage := newMemAuthStorage()
	require.NoError(t, storage.StoreCredentials(context.Background(), &models.BoardCredentials{
		ID:          credentialID,
		AccessToken: "persisted-token",
		TokenType:   "Bearer",
	}))

	service, err := NewService(storage, arbor.NewLogger())
	require.NoError(t, err)

	assert.True(t, service.Connected())
	token, err := service.Token()
	require.NoError(t, err)
	assert.Equal(t, "persisted-token", token)
}

func TestService_InvalidateIsIdempotent(t *testing.T) {
	storage := newMemAuthStorage()
	service, err := NewService(storage, arbor.NewLogger())
	require.NoError(t, err)

	require.NoError(t, service.Store(context.Background(), "token-abc", ""))
	require.NoError(t, service.Invalidate(context.Background()))

	assert.False(t, service.Connected())
	_, err = service.Token()
	assert.ErrorIs(t, err, interfaces.ErrReconnectRequired)

	stored, err := storage.GetCredentials(context.Background(), credentialID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	// Second invalidate is a no-op
	assert.NoError(t, service.Invalidate(context.Background()))
}
