package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/interfaces"
	"github.com/ternarybob/boardbridge/internal/models"
)

// SlidesHandler handles HTTP requests for summarization
type SlidesHandler struct {
	slides interfaces.SlideService
	logger arbor.ILogger
}

// NewSlidesHandler creates a new SlidesHandler
func NewSlidesHandler(slides interfaces.SlideService, logger arbor.ILogger) *SlidesHandler {
	return &SlidesHandler{
		slides: slides,
		logger: logger,
	}
}

// SummarizeHandler handles POST /api/summarize: one frame's notes in, one
// slide out. This endpoint never fails on provider errors; it degrades to
// the raw notes instead.
func (h *SlidesHandler) SummarizeHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req models.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.FrameTitle) == "" {
		WriteError(w, http.StatusBadRequest, "frame_title is required")
		return
	}

	slide, degraded := h.slides.SummarizeFrame(r.Context(), req)
	if degraded {
		h.logger.Warn().Str("frame_title", req.FrameTitle).Msg("Summarization degraded to raw notes")
	}

	WriteJSON(w, http.StatusOK, slide)
}

// SummarizeBoardHandler handles POST /api/boards/{id}/summarize: ingests,
// maps and summarizes the whole board into a deck.
func (h *SlidesHandler) SummarizeBoardHandler(w http.ResponseWriter, r *http.Request, boardID string) {
	deck, err := h.slides.SummarizeBoard(r.Context(), boardID)
	if err != nil {
		writeBoardError(w, h.logger, boardID, err)
		return
	}

	WriteJSON(w, http.StatusOK, deck)
}
