package canvas

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ternarybob/boardbridge/internal/interfaces"
	"github.com/ternarybob/boardbridge/internal/models"
)

var _ interfaces.BoardSource = (*Client)(nil)

// GetBoardName retrieves the display name of a board.
func (c *Client) GetBoardName(ctx context.Context, boardID string) (string, error) {
	var board boardResponse
	if err := c.get(ctx, "/boards/"+url.PathEscape(boardID), nil, &board); err != nil {
		return "", err
	}
	return board.Name, nil
}

// ListItems retrieves one page of board items. An empty cursor requests the
// first page; the returned cursor is empty on the final page.
func (c *Client) ListItems(ctx context.Context, boardID, cursor string) ([]models.Item, string, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", c.pageSize))
	if cursor != "" {
		params.Set("cursor", cursor)
	}

	var page itemsResponse
	if err := c.get(ctx, "/boards/"+url.PathEscape(boardID)+"/items", params, &page); err != nil {
		return nil, "", err
	}

	return page.Data, page.Cursor, nil
}

// ListAllItems walks the cursor chain until exhaustion and returns every
// item in retrieval order. Any page failure aborts the whole run: no
// partial item lists are ever returned.
func (c *Client) ListAllItems(ctx context.Context, boardID string) ([]models.Item, error) {
	var (
		items  []models.Item
		cursor string
		page   int
	)

	for {
		page++

		pageItems, next, err := c.ListItems(ctx, boardID, cursor)
		if err != nil {
			return nil, &IngestionError{BoardID: boardID, Page: page, Err: err}
		}

		items = append(items, pageItems...)

		if c.logger != nil {
			c.logger.Debug().
				Str("board_id", boardID).
				Int("page", page).
				Int("items", len(pageItems)).
				Msg("Retrieved board items page")
		}

		if next == "" {
			break
		}
		cursor = next
	}

	if c.logger != nil {
		c.logger.Info().
			Str("board_id", boardID).
			Int("pages", page).
			Int("total_items", len(items)).
			Msg("Board item retrieval complete")
	}

	return items, nil
}
