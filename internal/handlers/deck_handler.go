package handlers

import (
	"fmt"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/interfaces"
)

// DeckHandler handles HTTP requests for stored decks and exports
type DeckHandler struct {
	decks  interfaces.DeckStorage
	export interfaces.ExportService
	logger arbor.ILogger
}

// NewDeckHandler creates a new DeckHandler
func NewDeckHandler(decks interfaces.DeckStorage, export interfaces.ExportService, logger arbor.ILogger) *DeckHandler {
	return &DeckHandler{
		decks:  decks,
		export: export,
		logger: logger,
	}
}

// ListDecksHandler handles GET /api/decks
func (h *DeckHandler) ListDecksHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	decks, err := h.decks.ListDecks(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list decks")
		WriteError(w, http.StatusInternalServerError, "Failed to list decks")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"decks": decks,
		"count": len(decks),
	})
}

// GetDeckHandler handles GET /api/decks/{id}
func (h *DeckHandler) GetDeckHandler(w http.ResponseWriter, r *http.Request, deckID string) {
	deck, err := h.decks.GetDeck(r.Context(), deckID)
	if err != nil {
		h.logger.Error().Err(err).Str("deck_id", deckID).Msg("Failed to get deck")
		WriteError(w, http.StatusInternalServerError, "Failed to get deck")
		return
	}
	if deck == nil {
		WriteError(w, http.StatusNotFound, "Deck not found")
		return
	}

	WriteJSON(w, http.StatusOK, deck)
}

// DeleteDeckHandler handles DELETE /api/decks/{id}
func (h *DeckHandler) DeleteDeckHandler(w http.ResponseWriter, r *http.Request, deckID string) {
	if err := h.decks.DeleteDeck(r.Context(), deckID); err != nil {
		h.logger.Error().Err(err).Str("deck_id", deckID).Msg("Failed to delete deck")
		WriteError(w, http.StatusInternalServerError, "Failed to delete deck")
		return
	}

	WriteSuccess(w, "Deck deleted")
}

// ExportDeckHandler handles GET /api/decks/{id}/export?format=markdown|pdf
func (h *DeckHandler) ExportDeckHandler(w http.ResponseWriter, r *http.Request, deckID string) {
	deck, err := h.decks.GetDeck(r.Context(), deckID)
	if err != nil {
		h.logger.Error().Err(err).Str("deck_id", deckID).Msg("Failed to get deck")
		WriteError(w, http.StatusInternalServerError, "Failed to get deck")
		return
	}
	if deck == nil {
		WriteError(w, http.StatusNotFound, "Deck not found")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "markdown"
	}

	switch format {
	case "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", deckID+".md"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(h.export.DeckMarkdown(deck)))

	case "pdf":
		data, err := h.export.DeckPDF(deck)
		if err != nil {
			h.logger.Error().Err(err).Str("deck_id", deckID).Msg("PDF export failed")
			WriteError(w, http.StatusInternalServerError, "PDF export failed")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", deckID+".pdf"))
		w.WriteHeader(http.StatusOK)
		w.Write(data)

	default:
		WriteError(w, http.StatusBadRequest, "Unsupported export format: "+format)
	}
}
