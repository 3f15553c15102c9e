package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/models"
)

func testDeck() *models.Deck {
	return &models.Deck{
		ID:        "deck-1",
		BoardID:   "board-001",
		BoardName: "Q1 Strategic Planning Workshop",
		CreatedAt: time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		Slides: []models.FrameSlide{
			{
				FrameID:    "frame-1",
				FrameTitle: "Goals & Vision",
				Slide: models.Slide{
					Title:   "Growth Targets",
					Bullets: []string{"Increase market share by 25%", "★ Lead the category by 2027"},
				},
			},
			{
				FrameID:    "frame-2",
				FrameTitle: "Key Challenges",
				Slide:      models.Slide{Title: "Key Challenges", Bullets: []string{}},
				Empty:      true,
			},
		},
	}
}

func TestDeckMarkdown(t *testing.T) {
	service := NewService(arbor.NewLogger())

	md := service.DeckMarkdown(testDeck())

	assert.True(t, strings.HasPrefix(md, "# Q1 Strategic Planning Workshop\n"))
	assert.Contains(t, md, "## Growth Targets\n")
	assert.Contains(t, md, "- Increase market share by 25%\n")
	assert.Contains(t, md, "- ★ Lead the category by 2027\n")

	// Empty frames render the placeholder, not an empty bullet list
	assert.Contains(t, md, "## Key Challenges\n")
	assert.Contains(t, md, "_No notes in this frame._")

	// Slide order follows deck order
	assert.Less(t, strings.Index(md, "Growth Targets"), strings.Index(md, "Key Challenges"))
}

func TestDeckPDF(t *testing.T) {
	service := NewService(arbor.NewLogger())

	data, err := service.DeckPDF(testDeck())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data[:5]), "%PDF-"))
}
