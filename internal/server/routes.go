package server

import (
	"net/http"
	"strings"

	"github.com/ternarybob/boardbridge/internal/handlers"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - System
	mux.HandleFunc("/api/status", s.app.StatusHandler.GetStatusHandler)

	// API routes - Canvas credentials
	mux.HandleFunc("/api/auth/status", s.app.AuthHandler.GetAuthStatusHandler)
	mux.HandleFunc("/api/auth/token", s.app.AuthHandler.TokenHandler) // POST (store), DELETE (disconnect)

	// API routes - Boards
	mux.HandleFunc("/api/boards/", s.handleBoardRoutes) // GET /{id}, GET /{id}/mapped, POST /{id}/summarize

	// API routes - Summarization
	mux.HandleFunc("/api/summarize", s.app.SlidesHandler.SummarizeHandler)

	// API routes - Decks
	mux.HandleFunc("/api/decks", s.app.DeckHandler.ListDecksHandler)
	mux.HandleFunc("/api/decks/", s.handleDeckRoutes) // GET/DELETE /{id}, GET /{id}/export

	return mux
}

// handleBoardRoutes dispatches /api/boards/{id} and subpaths
func (s *Server) handleBoardRoutes(w http.ResponseWriter, r *http.Request) {
	id, rest := splitResourcePath(r.URL.Path, "/api/boards/")
	if id == "" {
		handlers.WriteError(w, http.StatusBadRequest, "Board ID is required")
		return
	}

	switch {
	case rest == "" && r.Method == http.MethodGet:
		s.app.BoardHandler.GetBoardHandler(w, r, id)
	case rest == "mapped" && r.Method == http.MethodGet:
		s.app.BoardHandler.GetMappedBoardHandler(w, r, id)
	case rest == "summarize" && r.Method == http.MethodPost:
		s.app.SlidesHandler.SummarizeBoardHandler(w, r, id)
	case rest == "" || rest == "mapped" || rest == "summarize":
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	default:
		handlers.WriteError(w, http.StatusNotFound, "Unknown board resource")
	}
}

// handleDeckRoutes dispatches /api/decks/{id} and subpaths
func (s *Server) handleDeckRoutes(w http.ResponseWriter, r *http.Request) {
	id, rest := splitResourcePath(r.URL.Path, "/api/decks/")
	if id == "" {
		handlers.WriteError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}

	switch {
	case rest == "" && r.Method == http.MethodGet:
		s.app.DeckHandler.GetDeckHandler(w, r, id)
	case rest == "" && r.Method == http.MethodDelete:
		s.app.DeckHandler.DeleteDeckHandler(w, r, id)
	case rest == "export" && r.Method == http.MethodGet:
		s.app.DeckHandler.ExportDeckHandler(w, r, id)
	case rest == "" || rest == "export":
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	default:
		handlers.WriteError(w, http.StatusNotFound, "Unknown deck resource")
	}
}

// splitResourcePath extracts the resource ID and trailing subresource from
// a path like {prefix}{id}[/{rest}].
func splitResourcePath(path, prefix string) (id, rest string) {
	trimmed := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if trimmed == "" {
		return "", ""
	}
	parts := strings.SplitN(trimmed, "/", 2)
	id = parts[0]
	if len(parts) == 2 {
		rest = parts[1]
	}
	return id, rest
}
