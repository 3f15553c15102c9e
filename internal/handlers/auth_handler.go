package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/interfaces"
)

// AuthHandler handles HTTP requests for canvas credential management
type AuthHandler struct {
	credentials interfaces.CredentialStore
	logger      arbor.ILogger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(credentials interfaces.CredentialStore, logger arbor.ILogger) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		logger:      logger,
	}
}

// GetAuthStatusHandler handles GET /api/auth/status
func (h *AuthHandler) GetAuthStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"connected": h.credentials.Connected(),
	})
}

type storeTokenRequest struct {
	AccessToken string `json:"access_token"`
	BaseURL     string `json:"base_url"`
}

// TokenHandler handles POST and DELETE /api/auth/token
func (h *AuthHandler) TokenHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.storeToken(w, r)
	case http.MethodDelete:
		h.deleteToken(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *AuthHandler) storeToken(w http.ResponseWriter, r *http.Request) {
	var req storeTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.AccessToken) == "" {
		WriteError(w, http.StatusBadRequest, "access_token is required")
		return
	}

	if err := h.credentials.Store(r.Context(), req.AccessToken, req.BaseURL); err != nil {
		h.logger.Error().Err(err).Msg("Failed to store credentials")
		WriteError(w, http.StatusInternalServerError, "Failed to store credentials")
		return
	}

	WriteSuccess(w, "Credentials stored")
}

func (h *AuthHandler) deleteToken(w http.ResponseWriter, r *http.Request) {
	if err := h.credentials.Invalidate(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("Failed to invalidate credentials")
		WriteError(w, http.StatusInternalServerError, "Failed to invalidate credentials")
		return
	}

	WriteSuccess(w, "Credentials removed")
}
