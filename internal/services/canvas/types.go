// Package canvas provides a client for the remote whiteboard canvas API.
// All remote board interactions go through this package.
package canvas

import "github.com/ternarybob/boardbridge/internal/models"

// boardResponse is the board metadata envelope.
type boardResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// itemsResponse is one page of board items. Cursor is empty on the final
// page.
type itemsResponse struct {
	Data   []models.Item `json:"data"`
	Cursor string        `json:"cursor,omitempty"`
	Limit  int           `json:"limit"`
	Size   int           `json:"size"`
	Total  int           `json:"total"`
}
