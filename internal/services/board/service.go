// Package board turns raw canvas items into a normalized board model and
// maps content items into the frames that contain them.
package board

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/interfaces"
	"github.com/ternarybob/boardbridge/internal/models"
)

// Service implements board ingestion and spatial mapping.
type Service struct {
	source  interfaces.BoardSource
	palette *Palette
	logger  arbor.ILogger
}

var _ interfaces.BoardService = (*Service)(nil)

// NewService creates a board service. A nil palette uses the built-in
// vendor color table.
func NewService(source interfaces.BoardSource, palette *Palette, logger arbor.ILogger) *Service {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Service{
		source:  source,
		palette: palette,
		logger:  logger,
	}
}

// IngestBoard retrieves every item on the board and produces the normalized
// board model. Retrieval is all-or-nothing: any page failure aborts the run
// and no partial board is returned.
func (s *Service) IngestBoard(ctx context.Context, boardID string) (*models.Board, error) {
	name, err := s.source.GetBoardName(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve board metadata: %w", err)
	}

	items, err := s.source.ListAllItems(ctx, boardID)
	if err != nil {
		return nil, err
	}

	frames, frameByID := s.collectFrames(items)
	content := s.extractItems(items, frameByID)

	s.logger.Info().
		Str("board_id", boardID).
		Str("board_name", name).
		Int("raw_items", len(items)).
		Int("frames", len(frames)).
		Int("content_items", len(content)).
		Msg("Board ingested")

	return &models.Board{
		ID:     boardID,
		Name:   name,
		Frames: frames,
		Items:  content,
	}, nil
}
