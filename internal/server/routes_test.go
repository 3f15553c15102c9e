package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitResourcePath(t *testing.T) {
	tests := []struct {
		path     string
		prefix   string
		wantID   string
		wantRest string
	}{
		{"/api/boards/board-001", "/api/boards/", "board-001", ""},
		{"/api/boards/board-001/", "/api/boards/", "board-001", ""},
		{"/api/boards/board-001/mapped", "/api/boards/", "board-001", "mapped"},
		{"/api/boards/board-001/summarize", "/api/boards/", "board-001", "summarize"},
		{"/api/boards/", "/api/boards/", "", ""},
		{"/api/decks/abc/export", "/api/decks/", "abc", "export"},
	}

	for _, tt := range tests {
		id, rest := splitResourcePath(tt.path, tt.prefix)
		assert.Equal(t, tt.wantID, id, tt.path)
		assert.Equal(t, tt.wantRest, rest, tt.path)
	}
}
