package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/interfaces"
	"github.com/ternarybob/boardbridge/internal/models"
)

// credentialID is the single key under which the canvas credential is
// persisted. One connected account at a time.
const credentialID = "canvas"

// Service manages the bearer credential for the remote canvas API. The
// credential is held in memory for fast access and mirrored to storage so it
// survives restarts.
type Service struct {
	mu          sync.RWMutex
	credentials *models.BoardCredentials
	authStorage interfaces.AuthStorage
	logger      arbor.ILogger
}

var _ interfaces.CredentialStore = (*Service)(nil)

// NewService creates the credential service, loading any stored credential.
func NewService(authStorage interfaces.AuthStorage, logger arbor.ILogger) (*Service, error) {
	service := &Service{
		authStorage: authStorage,
		logger:      logger,
	}

	creds, err := authStorage.GetCredentials(context.Background(), credentialID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored credentials: %w", err)
	}
	if creds != nil {
		service.credentials = creds
		logger.Info().Str("base_url", creds.BaseURL).Msg("Loaded stored canvas credentials")
	} else {
		logger.Debug().Msg("No stored canvas credentials found")
	}

	return service, nil
}

// Connected reports whether a credential is currently held.
func (s *Service) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credentials != nil && s.credentials.AccessToken != ""
}

// Token returns the held bearer token, or ErrReconnectRequired when absent.
func (s *Service) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.credentials == nil || s.credentials.AccessToken == "" {
		return "", interfaces.ErrReconnectRequired
	}
	return s.credentials.AccessToken, nil
}

// BaseURL returns the base URL recorded with the credential, or empty when
// no credential is held.
func (s *Service) BaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.credentials == nil {
		return ""
	}
	return s.credentials.BaseURL
}

// Store saves a new bearer credential, replacing any previous one.
func (s *Service) Store(ctx context.Context, accessToken, baseURL string) error {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return fmt.Errorf("access token is required")
	}

	creds := &models.BoardCredentials{
		ID:          credentialID,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		BaseURL:     baseURL,
	}

	if err := s.authStorage.StoreCredentials(ctx, creds); err != nil {
		return fmt.Errorf("failed to persist credentials: %w", err)
	}

	s.mu.Lock()
	s.credentials = creds
	s.mu.Unlock()

	s.logger.Info().Str("base_url", baseURL).Msg("Canvas credentials stored")
	return nil
}

// Invalidate discards the held credential. Idempotent: invalidating when no
// credential is held is a no-op, so concurrent 401 observers are safe.
func (s *Service) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	held := s.credentials != nil
	s.credentials = nil
	s.mu.Unlock()

	if err := s.authStorage.DeleteCredentials(ctx, credentialID); err != nil {
		return fmt.Errorf("failed to delete stored credentials: %w", err)
	}

	if held {
		s.logger.Warn().Msg("Canvas credentials invalidated; reconnect required")
	}
	return nil
}
