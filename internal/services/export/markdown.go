// Package export renders generated decks into portable formats.
package export

import (
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/interfaces"
	"github.com/ternarybob/boardbridge/internal/models"
)

// Service implements interfaces.ExportService
type Service struct {
	logger arbor.ILogger
}

// Compile-time assertion
var _ interfaces.ExportService = (*Service)(nil)

// NewService creates a new export service
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		logger: logger,
	}
}

// DeckMarkdown renders a deck as a markdown document: one H2 section per
// slide in board frame order.
func (s *Service) DeckMarkdown(deck *models.Deck) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", deck.BoardName)
	fmt.Fprintf(&b, "_Generated %s_\n\n", deck.CreatedAt.Format("2006-01-02 15:04 MST"))

	for _, slide := range deck.Slides {
		fmt.Fprintf(&b, "## %s\n\n", slide.Slide.Title)

		if slide.Empty {
			b.WriteString("_No notes in this frame._\n\n")
			continue
		}

		for _, bullet := range slide.Slide.Bullets {
			fmt.Fprintf(&b, "- %s\n", bullet)
		}
		b.WriteString("\n")
	}

	return b.String()
}
