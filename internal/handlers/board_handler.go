package handlers

import (
	"errors"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/interfaces"
	"github.com/ternarybob/boardbridge/internal/services/canvas"
)

// BoardHandler handles HTTP requests for board ingestion and mapping
type BoardHandler struct {
	boards interfaces.BoardService
	logger arbor.ILogger
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boards interfaces.BoardService, logger arbor.ILogger) *BoardHandler {
	return &BoardHandler{
		boards: boards,
		logger: logger,
	}
}

// GetBoardHandler handles GET /api/boards/{id}
func (h *BoardHandler) GetBoardHandler(w http.ResponseWriter, r *http.Request, boardID string) {
	b, err := h.boards.IngestBoard(r.Context(), boardID)
	if err != nil {
		writeBoardError(w, h.logger, boardID, err)
		return
	}

	WriteJSON(w, http.StatusOK, b)
}

// GetMappedBoardHandler handles GET /api/boards/{id}/mapped
func (h *BoardHandler) GetMappedBoardHandler(w http.ResponseWriter, r *http.Request, boardID string) {
	b, err := h.boards.IngestBoard(r.Context(), boardID)
	if err != nil {
		writeBoardError(w, h.logger, boardID, err)
		return
	}

	WriteJSON(w, http.StatusOK, h.boards.MapBoard(b))
}

// writeBoardError maps ingestion failures onto HTTP status codes: rejected
// or missing credentials are 401, upstream failures are 502.
func writeBoardError(w http.ResponseWriter, logger arbor.ILogger, boardID string, err error) {
	logger.Error().Err(err).Str("board_id", boardID).Msg("Board ingestion failed")

	if errors.Is(err, interfaces.ErrReconnectRequired) {
		WriteError(w, http.StatusUnauthorized, "Board connection required: reconnect your canvas account")
		return
	}

	var apiErr *canvas.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		WriteError(w, http.StatusNotFound, "Board not found")
		return
	}

	WriteError(w, http.StatusBadGateway, "Board retrieval failed")
}
