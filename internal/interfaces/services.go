package interfaces

import (
	"context"

	"github.com/ternarybob/boardbridge/internal/models"
)

// BoardService runs the ingestion pipeline: paginated retrieval, coordinate
// normalization, content extraction and color normalization.
type BoardService interface {
	// IngestBoard fetches and normalizes a complete board. Fails as a unit:
	// a transport error mid-pagination returns an error and no board.
	IngestBoard(ctx context.Context, boardID string) (*models.Board, error)

	// MapBoard assigns each content item to at most one enclosing frame by
	// geometric center containment, first frame in board order winning.
	MapBoard(board *models.Board) *models.MappedBoard
}

// SlideService turns mapped board content into presentation slides.
type SlideService interface {
	// SummarizeFrame produces a slide for one frame's notes. Never fails:
	// provider errors degrade to the raw notes. The second return reports
	// whether the degraded path was taken.
	SummarizeFrame(ctx context.Context, req models.SummarizeRequest) (models.Slide, bool)

	// SummarizeBoard ingests, maps and summarizes a whole board into a
	// deck. Only ingestion can fail; summarization failures degrade
	// per-frame.
	SummarizeBoard(ctx context.Context, boardID string) (*models.Deck, error)
}

// ExportService renders decks into portable formats.
type ExportService interface {
	DeckMarkdown(deck *models.Deck) string
	DeckPDF(deck *models.Deck) ([]byte, error)
}
