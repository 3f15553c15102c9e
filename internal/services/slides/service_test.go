package slides

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/common"
	"github.com/ternarybob/boardbridge/internal/interfaces"
	"github.com/ternarybob/boardbridge/internal/models"
)

// fakeProvider returns canned responses keyed by call order.
type fakeProvider struct {
	mu        sync.Mutex
	calls     int
	prompts   []string
	response  string
	responses map[int]string // overrides by call index
	err       error
}

func (f *fakeProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	f.mu.Lock()
	idx := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.err != nil {
		return "", f.err
	}
	if resp, ok := f.responses[idx]; ok {
		return resp, nil
	}
	return f.response, nil
}

func (f *fakeProvider) Close() error { return nil }

// fakeBoards serves a fixed mapped board.
type fakeBoards struct {
	board  *models.Board
	mapped *models.MappedBoard
	err    error
}

func (f *fakeBoards) IngestBoard(ctx context.Context, boardID string) (*models.Board, error) {
	return f.board, f.err
}

func (f *fakeBoards) MapBoard(b *models.Board) *models.MappedBoard {
	return f.mapped
}

// fakeDecks records stored decks.
type fakeDecks struct {
	mu     sync.Mutex
	stored []*models.Deck
}

func (f *fakeDecks) StoreDeck(ctx context.Context, deck *models.Deck) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = append(f.stored, deck)
	return nil
}

func (f *fakeDecks) GetDeck(ctx context.Context, id string) (*models.Deck, error) { return nil, nil }
func (f *fakeDecks) ListDecks(ctx context.Context) ([]*models.Deck, error)        { return nil, nil }
func (f *fakeDecks) DeleteDeck(ctx context.Context, id string) error              { return nil }

func newTestService(provider *fakeProvider, boards *fakeBoards, decks interfaces.DeckStorage, cfg *common.SummarizeConfig) *Service {
	if cfg == nil {
		cfg = &common.SummarizeConfig{Concurrency: 1}
	}
	return NewService(boards, provider, decks, cfg, arbor.NewLogger())
}

func TestSummarizeFrame_Success(t *testing.T) {
	provider := &fakeProvider{
		response: "```json\n{\"title\": \"Growth Targets\", \"bullets\": [\"Expand into EMEA\", \"Ship the beta\"]}\n```",
	}
	service := newTestService(provider, nil, nil, nil)

	slide, degraded := service.SummarizeFrame(context.Background(), models.SummarizeRequest{
		FrameTitle: "Goals & Vision",
		Notes:      []string{"Expand into EMEA", "Ship the beta in June"},
	})

	assert.False(t, degraded)
	assert.Equal(t, "Growth Targets", slide.Title)
	assert.Equal(t, []string{"Expand into EMEA", "Ship the beta"}, slide.Bullets)

	require.Len(t, provider.prompts, 1)
	assert.Contains(t, provider.prompts[0], `"Goals & Vision"`)
	assert.Contains(t, provider.prompts[0], "- Expand into EMEA")
}

func TestSummarizeFrame_ProviderErrorDegrades(t *testing.T) {
	provider := &fakeProvider{err: errors.New("api unavailable")}
	service := newTestService(provider, nil, nil, nil)

	notes := []string{"one", "two", "three", "four", "five", "six", "seven"}
	slide, degraded := service.SummarizeFrame(context.Background(), models.SummarizeRequest{
		FrameTitle: "Key Challenges",
		Notes:      notes,
	})

	assert.True(t, degraded)
	assert.Equal(t, "Key Challenges", slide.Title)
	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, slide.Bullets)
}

func TestSummarizeFrame_UnparseableResponseDegrades(t *testing.T) {
	provider := &fakeProvider{response: "Sure! Here is your slide content: Growth..."}
	service := newTestService(provider, nil, nil, nil)

	slide, degraded := service.SummarizeFrame(context.Background(), models.SummarizeRequest{
		FrameTitle: "Action Items",
		Notes:      []string{"Schedule design review"},
	})

	assert.True(t, degraded)
	assert.Equal(t, "Action Items", slide.Title)
	assert.Equal(t, []string{"Schedule design review"}, slide.Bullets)
}

func TestSummarizeFrame_FieldByFieldFallback(t *testing.T) {
	// Missing title: keep frame title, use provider bullets
	provider := &fakeProvider{response: `{"bullets": ["Do the thing"]}`}
	service := newTestService(provider, nil, nil, nil)

	slide, degraded := service.SummarizeFrame(context.Background(), models.SummarizeRequest{
		FrameTitle: "Team Responsibilities",
		Notes:      []string{"raw note"},
	})
	assert.False(t, degraded)
	assert.Equal(t, "Team Responsibilities", slide.Title)
	assert.Equal(t, []string{"Do the thing"}, slide.Bullets)

	// Missing bullets: keep raw notes, use provider title
	provider = &fakeProvider{response: `{"title": "Ownership Matrix"}`}
	service = newTestService(provider, nil, nil, nil)

	slide, degraded = service.SummarizeFrame(context.Background(), models.SummarizeRequest{
		FrameTitle: "Team Responsibilities",
		Notes:      []string{"raw note"},
	})
	assert.False(t, degraded)
	assert.Equal(t, "Ownership Matrix", slide.Title)
	assert.Equal(t, []string{"raw note"}, slide.Bullets)
}

func TestSummarizeFrame_AspirationAppended(t *testing.T) {
	provider := &fakeProvider{
		response: `{"title": "Vision", "bullets": ["Grow"], "aspiration": "Become the category leader by 2027"}`,
	}
	cfg := &common.SummarizeConfig{Concurrency: 1, IncludeAspiration: true}
	service := newTestService(provider, nil, nil, cfg)

	slide, degraded := service.SummarizeFrame(context.Background(), models.SummarizeRequest{
		FrameTitle: "Goals",
		Notes:      []string{"note"},
	})

	assert.False(t, degraded)
	assert.Equal(t, []string{"Grow", "★ Become the category leader by 2027"}, slide.Bullets)
	assert.Contains(t, provider.prompts[0], "aspiration")
}

func TestSummarizeFrame_AspirationIgnoredWhenDisabled(t *testing.T) {
	provider := &fakeProvider{
		response: `{"title": "Vision", "bullets": ["Grow"], "aspiration": "unrequested"}`,
	}
	service := newTestService(provider, nil, nil, nil)

	slide, _ := service.SummarizeFrame(context.Background(), models.SummarizeRequest{
		FrameTitle: "Goals",
		Notes:      []string{"note"},
	})

	assert.Equal(t, []string{"Grow"}, slide.Bullets)
	assert.NotContains(t, provider.prompts[0], "aspiration")
}

func testMappedBoard() *fakeBoards {
	frames := []models.FrameNotes{
		{
			Frame: models.Frame{ID: "frame-1", Title: "Goals & Vision"},
			Notes: []models.ContentItem{
				{ID: "n1", Text: "Increase market share by 25%"},
			},
			NoteCount: 1,
		},
		{
			Frame:     models.Frame{ID: "frame-2", Title: "Key Challenges"},
			Notes:     nil,
			NoteCount: 0,
		},
		{
			Frame: models.Frame{ID: "frame-3", Title: "Action Items"},
			Notes: []models.ContentItem{
				{ID: "n2", Text: "Schedule design review"},
				{ID: "n3", Text: "Hire two engineers"},
			},
			NoteCount: 2,
		},
	}
	return &fakeBoards{
		board: &models.Board{ID: "board-001", Name: "Planning"},
		mapped: &models.MappedBoard{
			BoardID:   "board-001",
			BoardName: "Planning",
			Frames:    frames,
		},
	}
}

func TestSummarizeBoard_FrameOrderAndPlaceholders(t *testing.T) {
	provider := &fakeProvider{
		response: `{"title": "Generated", "bullets": ["bullet"]}`,
	}
	decks := &fakeDecks{}
	cfg := &common.SummarizeConfig{Concurrency: 3}
	service := newTestService(provider, testMappedBoard(), decks, cfg)

	deck, err := service.SummarizeBoard(context.Background(), "board-001")
	require.NoError(t, err)
	require.Len(t, deck.Slides, 3)

	// Board frame order is preserved under concurrency
	assert.Equal(t, "frame-1", deck.Slides[0].FrameID)
	assert.Equal(t, "frame-2", deck.Slides[1].FrameID)
	assert.Equal(t, "frame-3", deck.Slides[2].FrameID)

	// Empty frame gets the placeholder without a provider call
	empty := deck.Slides[1]
	assert.True(t, empty.Empty)
	assert.Equal(t, "Key Challenges", empty.Slide.Title)
	assert.Equal(t, []string{"No notes in this frame"}, empty.Slide.Bullets)
	assert.Equal(t, 2, provider.calls)

	// Deck metadata and persistence
	assert.NotEmpty(t, deck.ID)
	assert.Equal(t, "board-001", deck.BoardID)
	assert.Equal(t, "Planning", deck.BoardName)
	require.Len(t, decks.stored, 1)
	assert.Equal(t, deck.ID, decks.stored[0].ID)
}

func TestSummarizeBoard_EmptyFramePlaceholderHasSingleBullet(t *testing.T) {
	boards := &fakeBoards{
		board: &models.Board{ID: "board-001", Name: "Planning"},
		mapped: &models.MappedBoard{
			BoardID:   "board-001",
			BoardName: "Planning",
			Frames: []models.FrameNotes{
				{Frame: models.Frame{ID: "frame-1", Title: "Parking Lot"}},
			},
		},
	}
	provider := &fakeProvider{}
	service := newTestService(provider, boards, nil, nil)

	deck, err := service.SummarizeBoard(context.Background(), "board-001")
	require.NoError(t, err)
	require.Len(t, deck.Slides, 1)

	slide := deck.Slides[0]
	assert.True(t, slide.Empty)
	assert.Equal(t, "Parking Lot", slide.Slide.Title)
	require.Len(t, slide.Slide.Bullets, 1)
	assert.Equal(t, "No notes in this frame", slide.Slide.Bullets[0])
	assert.Zero(t, provider.calls)
}

func TestNewService_TypedNilDeckStorageDisablesPersistence(t *testing.T) {
	var decks *fakeDecks
	provider := &fakeProvider{response: `{"title": "T", "bullets": ["b"]}`}
	service := newTestService(provider, testMappedBoard(), decks, nil)

	assert.Nil(t, service.decks)

	deck, err := service.SummarizeBoard(context.Background(), "board-001")
	require.NoError(t, err)
	require.Len(t, deck.Slides, 3)
}

func TestSummarizeBoard_DegradedFramesDoNotFailTheDeck(t *testing.T) {
	provider := &fakeProvider{err: errors.New("provider down")}
	service := newTestService(provider, testMappedBoard(), nil, nil)

	deck, err := service.SummarizeBoard(context.Background(), "board-001")
	require.NoError(t, err)

	assert.True(t, deck.Slides[0].Degraded)
	assert.Equal(t, "Goals & Vision", deck.Slides[0].Slide.Title)
	assert.Equal(t, []string{"Increase market share by 25%"}, deck.Slides[0].Slide.Bullets)

	assert.True(t, deck.Slides[2].Degraded)
	assert.Equal(t, []string{"Schedule design review", "Hire two engineers"}, deck.Slides[2].Slide.Bullets)
}

func TestSummarizeBoard_IngestionFailureAborts(t *testing.T) {
	ingestErr := errors.New("pagination failed")
	boards := &fakeBoards{err: ingestErr}
	service := newTestService(&fakeProvider{}, boards, nil, nil)

	deck, err := service.SummarizeBoard(context.Background(), "board-001")
	assert.Nil(t, deck)
	assert.ErrorIs(t, err, ingestErr)
}

func TestSummarizeBoard_ManyFramesBoundedConcurrency(t *testing.T) {
	// 20 frames, each with one note; responses keyed by call order would be
	// racy, so every call returns a title echoing nothing and we rely on
	// RawNotes to verify placement.
	frames := make([]models.FrameNotes, 20)
	for i := range frames {
		frames[i] = models.FrameNotes{
			Frame: models.Frame{ID: fmt.Sprintf("frame-%d", i), Title: fmt.Sprintf("Frame %d", i)},
			Notes: []models.ContentItem{
				{ID: fmt.Sprintf("n-%d", i), Text: fmt.Sprintf("note %d", i)},
			},
			NoteCount: 1,
		}
	}
	boards := &fakeBoards{
		board:  &models.Board{ID: "board-001"},
		mapped: &models.MappedBoard{BoardID: "board-001", Frames: frames},
	}
	provider := &fakeProvider{response: `{"title": "T", "bullets": ["b"]}`}
	cfg := &common.SummarizeConfig{Concurrency: 4}
	service := newTestService(provider, boards, nil, cfg)

	deck, err := service.SummarizeBoard(context.Background(), "board-001")
	require.NoError(t, err)
	require.Len(t, deck.Slides, 20)

	for i, slide := range deck.Slides {
		assert.Equal(t, fmt.Sprintf("frame-%d", i), slide.FrameID)
		assert.Equal(t, []string{fmt.Sprintf("note %d", i)}, slide.RawNotes)
	}
	assert.Equal(t, 20, provider.calls)
}

func TestCleanMarkdownFences(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, cleanMarkdownFences("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, cleanMarkdownFences("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, cleanMarkdownFences(`  {"a": 1}  `))
	assert.Equal(t, `{"a": 1}`, cleanMarkdownFences("```JSON\n{\"a\": 1}\n```"))
}
