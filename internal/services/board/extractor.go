package board

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ternarybob/boardbridge/internal/models"
)

// extractItems converts raw canvas items into canonical content items:
// plain text, absolute coordinates, normalized color. Items of kinds that
// carry no text (images, documents, embeds, previews) and items whose text
// is empty after cleanup are dropped.
func (s *Service) extractItems(items []models.Item, frames map[string]*models.Frame) []models.ContentItem {
	var content []models.ContentItem
	for _, item := range items {
		if !item.Type.HasContent() {
			continue
		}

		text := extractText(item)
		if text == "" {
			continue
		}

		x, y := s.resolvePosition(item, frames)

		content = append(content, models.ContentItem{
			ID:     item.ID,
			Text:   text,
			X:      x,
			Y:      y,
			Width:  item.Geometry.Width,
			Height: item.Geometry.Height,
			Color:  s.palette.Normalize(item.Style.FillColor),
		})
	}
	return content
}

// extractText pulls the text payload for a content-bearing item kind. Cards
// join title and description with ": "; the separator is omitted when either
// half is empty.
func extractText(item models.Item) string {
	switch item.Type {
	case models.ItemKindStickyNote, models.ItemKindText, models.ItemKindShape:
		return cleanText(item.Data.Content)
	case models.ItemKindCard:
		title := cleanText(item.Data.Title)
		description := cleanText(item.Data.Description)
		switch {
		case title != "" && description != "":
			return title + ": " + description
		case title != "":
			return title
		default:
			return description
		}
	default:
		return ""
	}
}

// cleanText strips markup and collapses whitespace. Vendor text payloads
// arrive as HTML fragments (<p>, <br>, <strong> wrappers).
func cleanText(raw string) string {
	text := raw
	if strings.Contains(raw, "<") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
			// Keep line breaks as word boundaries
			doc.Find("br").Each(func(_ int, sel *goquery.Selection) {
				sel.ReplaceWithHtml(" ")
			})
			text = doc.Text()
		}
	}
	return strings.Join(strings.Fields(text), " ")
}
