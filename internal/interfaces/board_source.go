package interfaces

import (
	"context"

	"github.com/ternarybob/boardbridge/internal/models"
)

// BoardSource abstracts the remote canvas listing API. Implementations talk
// to the vendor over HTTP; tests substitute fixtures.
type BoardSource interface {
	// GetBoardName fetches display metadata for a board.
	GetBoardName(ctx context.Context, boardID string) (string, error)

	// ListItems fetches one page of canvas items. An empty cursor requests
	// the first page; the returned cursor is empty on the final page.
	ListItems(ctx context.Context, boardID, cursor string) ([]models.Item, string, error)

	// ListAllItems drains the paginated listing into one ordered slice.
	// Any page failure aborts the whole collection: partial results are
	// never returned.
	ListAllItems(ctx context.Context, boardID string) ([]models.Item, error)
}
