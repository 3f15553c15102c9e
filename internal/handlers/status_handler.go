package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/common"
	"github.com/ternarybob/boardbridge/internal/interfaces"
)

// StatusHandler handles HTTP requests for application status
type StatusHandler struct {
	credentials interfaces.CredentialStore
	config      *common.Config
	logger      arbor.ILogger
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(credentials interfaces.CredentialStore, config *common.Config, logger arbor.ILogger) *StatusHandler {
	return &StatusHandler{
		credentials: credentials,
		config:      config,
		logger:      logger,
	}
}

// GetStatusHandler handles GET /api/status
func (h *StatusHandler) GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"version":       common.GetVersion(),
		"environment":   h.config.Environment,
		"connected":     h.credentials.Connected(),
		"default_board": h.config.Canvas.BoardID,
		"provider":      string(h.config.LLM.DefaultProvider),
	})
}
