package board

import (
	"github.com/ternarybob/boardbridge/internal/models"
)

// MapBoard assigns each content item to the frame containing its geometric
// center. Frames are tested in board order and the first containing frame
// wins, so an item overlapped by several frames is assigned exactly once.
// Items outside every frame are dropped from the mapping.
func (s *Service) MapBoard(b *models.Board) *models.MappedBoard {
	frameNotes := make([]models.FrameNotes, len(b.Frames))
	for i, frame := range b.Frames {
		frameNotes[i] = models.FrameNotes{Frame: frame}
	}

	var unassigned int
	for _, item := range b.Items {
		cx, cy := item.Center()

		assigned := false
		for i := range frameNotes {
			if frameNotes[i].Frame.Contains(cx, cy) {
				frameNotes[i].Notes = append(frameNotes[i].Notes, item)
				assigned = true
				break
			}
		}
		if !assigned {
			unassigned++
		}
	}

	for i := range frameNotes {
		frameNotes[i].NoteCount = len(frameNotes[i].Notes)
	}

	if unassigned > 0 {
		s.logger.Debug().
			Str("board_id", b.ID).
			Int("unassigned", unassigned).
			Msg("Content items outside all frames were dropped from mapping")
	}

	return &models.MappedBoard{
		BoardID:   b.ID,
		BoardName: b.Name,
		Frames:    frameNotes,
	}
}
