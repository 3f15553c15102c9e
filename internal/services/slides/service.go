// Package slides turns mapped board content into presentation slides via a
// completion provider, degrading to raw notes when the provider fails.
package slides

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/common"
	"github.com/ternarybob/boardbridge/internal/interfaces"
	"github.com/ternarybob/boardbridge/internal/models"
)

// maxFallbackBullets caps how many raw notes the degraded slide carries.
const maxFallbackBullets = 5

// placeholderBullet is the single bullet on the slide for a frame with no
// mapped notes.
const placeholderBullet = "No notes in this frame"

// Service implements frame and board summarization.
type Service struct {
	boards   interfaces.BoardService
	provider interfaces.CompletionProvider
	decks    interfaces.DeckStorage
	config   *common.SummarizeConfig
	logger   arbor.ILogger
}

var _ interfaces.SlideService = (*Service)(nil)

// NewService creates a slide service. Deck storage is optional: a nil decks
// argument disables persistence of generated decks. A typed nil counts as
// nil here so a nil concrete pointer cannot reach StoreDeck.
func NewService(boards interfaces.BoardService, provider interfaces.CompletionProvider, decks interfaces.DeckStorage, config *common.SummarizeConfig, logger arbor.ILogger) *Service {
	if decks != nil {
		if v := reflect.ValueOf(decks); v.Kind() == reflect.Ptr && v.IsNil() {
			decks = nil
		}
	}
	return &Service{
		boards:   boards,
		provider: provider,
		decks:    decks,
		config:   config,
		logger:   logger,
	}
}

// slideResponse is the provider's JSON answer. Pointer fields distinguish
// "absent" from "empty" so fallback applies per field.
type slideResponse struct {
	Title      *string  `json:"title"`
	Bullets    []string `json:"bullets"`
	Aspiration *string  `json:"aspiration"`
}

// SummarizeFrame produces slide content for one frame's notes. This never
// fails: any provider or parse error degrades to the frame title and the
// first raw notes. The boolean reports whether the degraded path was taken.
func (s *Service) SummarizeFrame(ctx context.Context, req models.SummarizeRequest) (models.Slide, bool) {
	fallback := models.Slide{
		Title:   req.FrameTitle,
		Bullets: firstN(req.Notes, maxFallbackBullets),
	}

	if s.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.RequestTimeout)
		defer cancel()
	}

	prompt := buildPrompt(req.FrameTitle, req.Notes, s.config.IncludeAspiration)

	response, err := s.provider.Complete(ctx, systemInstruction, prompt)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("frame_title", req.FrameTitle).
			Msg("Summarization failed; degrading to raw notes")
		return fallback, true
	}

	var parsed slideResponse
	if err := json.Unmarshal([]byte(cleanMarkdownFences(response)), &parsed); err != nil {
		s.logger.Error().
			Err(err).
			Str("frame_title", req.FrameTitle).
			Msg("Provider returned unparseable slide content; degrading to raw notes")
		return fallback, true
	}

	// Field-by-field fallback: a response missing one field still uses the
	// other.
	slide := models.Slide{
		Title:   fallback.Title,
		Bullets: fallback.Bullets,
	}
	if parsed.Title != nil && *parsed.Title != "" {
		slide.Title = *parsed.Title
	}
	if parsed.Bullets != nil {
		slide.Bullets = parsed.Bullets
	}
	if s.config.IncludeAspiration && parsed.Aspiration != nil && *parsed.Aspiration != "" {
		slide.Bullets = append(slide.Bullets, "★ "+*parsed.Aspiration)
	}

	return slide, false
}

// SummarizeBoard ingests, maps and summarizes a whole board into a deck.
// Only ingestion can fail; per-frame summarization degrades instead of
// failing. Frames with no mapped notes get a placeholder slide without a
// provider call. Slides come back in board frame order regardless of the
// concurrency level.
func (s *Service) SummarizeBoard(ctx context.Context, boardID string) (*models.Deck, error) {
	b, err := s.boards.IngestBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	mapped := s.boards.MapBoard(b)

	concurrency := s.config.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]models.FrameSlide, len(mapped.Frames))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, frameNotes := range mapped.Frames {
		notes := noteTexts(frameNotes.Notes)

		if len(notes) == 0 {
			results[i] = models.FrameSlide{
				FrameID:    frameNotes.Frame.ID,
				FrameTitle: frameNotes.Frame.Title,
				Slide: models.Slide{
					Title:   frameNotes.Frame.Title,
					Bullets: []string{placeholderBullet},
				},
				RawNotes: []string{},
				Empty:    true,
			}
			continue
		}

		wg.Add(1)
		go func(idx int, frame models.Frame, notes []string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			slide, degraded := s.SummarizeFrame(ctx, models.SummarizeRequest{
				FrameTitle: frame.Title,
				Notes:      notes,
			})

			results[idx] = models.FrameSlide{
				FrameID:    frame.ID,
				FrameTitle: frame.Title,
				Slide:      slide,
				RawNotes:   notes,
				Degraded:   degraded,
			}
		}(i, frameNotes.Frame, notes)
	}

	wg.Wait()

	deck := &models.Deck{
		ID:        uuid.New().String(),
		BoardID:   mapped.BoardID,
		BoardName: mapped.BoardName,
		Slides:    results,
		CreatedAt: time.Now().UTC(),
	}

	if s.decks != nil {
		if err := s.decks.StoreDeck(ctx, deck); err != nil {
			s.logger.Warn().Err(err).Str("deck_id", deck.ID).Msg("Failed to persist deck")
		}
	}

	s.logger.Info().
		Str("board_id", boardID).
		Str("deck_id", deck.ID).
		Int("slides", len(deck.Slides)).
		Msg("Board summarized")

	return deck, nil
}

func noteTexts(notes []models.ContentItem) []string {
	texts := make([]string, len(notes))
	for i, note := range notes {
		texts[i] = note.Text
	}
	return texts
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return append([]string{}, items...)
	}
	return append([]string{}, items[:n]...)
}
