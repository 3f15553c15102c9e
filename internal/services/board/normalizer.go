package board

import (
	"github.com/ternarybob/boardbridge/internal/models"
)

// collectFrames extracts frames from the raw item list, preserving retrieval
// order. Frames with non-positive width or height cannot contain anything and
// are dropped with a warning.
//
// Frame positions are absolute board coordinates already; only nested child
// items arrive frame-relative.
func (s *Service) collectFrames(items []models.Item) ([]models.Frame, map[string]*models.Frame) {
	var frames []models.Frame
	for _, item := range items {
		if item.Type != models.ItemKindFrame {
			continue
		}

		if item.Geometry.Width <= 0 || item.Geometry.Height <= 0 {
			s.logger.Warn().
				Str("frame_id", item.ID).
				Float64("width", item.Geometry.Width).
				Float64("height", item.Geometry.Height).
				Msg("Skipping degenerate frame")
			continue
		}

		frames = append(frames, models.Frame{
			ID:     item.ID,
			Title:  cleanText(item.Data.Title),
			X:      item.Position.X,
			Y:      item.Position.Y,
			Width:  item.Geometry.Width,
			Height: item.Geometry.Height,
		})
	}

	byID := make(map[string]*models.Frame, len(frames))
	for i := range frames {
		byID[frames[i].ID] = &frames[i]
	}
	return frames, byID
}

// resolvePosition converts a raw item position to absolute board coordinates.
// Items nested under a frame are frame-relative: absolute = frame top-left +
// raw offset. Items with no parent, or whose parent frame is unknown, keep
// their raw coordinates.
func (s *Service) resolvePosition(item models.Item, frames map[string]*models.Frame) (float64, float64) {
	if item.Parent == nil || item.Parent.ID == "" {
		return item.Position.X, item.Position.Y
	}

	frame, ok := frames[item.Parent.ID]
	if !ok {
		s.logger.Warn().
			Str("item_id", item.ID).
			Str("parent_id", item.Parent.ID).
			Msg("Item references unknown parent frame; keeping raw coordinates")
		return item.Position.X, item.Position.Y
	}

	return frame.X + item.Position.X, frame.Y + item.Position.Y
}
