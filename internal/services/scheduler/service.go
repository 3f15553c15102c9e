// Package scheduler runs the optional periodic re-summarization of the
// default board.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/common"
	"github.com/ternarybob/boardbridge/internal/interfaces"
)

// Service schedules background deck refreshes with cron semantics
// (six-field expressions, seconds first).
type Service struct {
	cron    *cron.Cron
	slides  interfaces.SlideService
	config  *common.RefreshConfig
	boardID string
	logger  arbor.ILogger
	entryID cron.EntryID
}

// NewService creates the refresh scheduler. It does nothing until Start.
func NewService(slides interfaces.SlideService, config *common.RefreshConfig, boardID string, logger arbor.ILogger) *Service {
	return &Service{
		cron:    cron.New(cron.WithSeconds()),
		slides:  slides,
		config:  config,
		boardID: boardID,
		logger:  logger,
	}
}

// Start registers the refresh job and starts the cron runner. Disabled or
// unconfigured schedules are a no-op.
func (s *Service) Start() error {
	if !s.config.Enabled {
		s.logger.Debug().Msg("Scheduled refresh disabled")
		return nil
	}
	if s.boardID == "" {
		s.logger.Warn().Msg("Scheduled refresh enabled but no default board configured; skipping")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, s.refresh)
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", s.config.Schedule, err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.logger.Info().
		Str("schedule", s.config.Schedule).
		Str("board_id", s.boardID).
		Msg("Scheduled refresh started")
	return nil
}

// Stop halts the cron runner and waits for a running refresh to finish.
func (s *Service) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(30 * time.Second):
		s.logger.Warn().Msg("Timed out waiting for scheduled refresh to finish")
	}
}

func (s *Service) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	startTime := time.Now()
	deck, err := s.slides.SummarizeBoard(ctx, s.boardID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("board_id", s.boardID).
			Msg("Scheduled refresh failed")
		return
	}

	s.logger.Info().
		Str("board_id", s.boardID).
		Str("deck_id", deck.ID).
		Int("slides", len(deck.Slides)).
		Dur("duration", time.Since(startTime)).
		Msg("Scheduled refresh complete")
}
