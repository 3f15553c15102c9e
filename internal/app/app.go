// Package app wires configuration, storage, services and handlers together.
package app

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/common"
	"github.com/ternarybob/boardbridge/internal/handlers"
	"github.com/ternarybob/boardbridge/internal/interfaces"
	"github.com/ternarybob/boardbridge/internal/services/auth"
	"github.com/ternarybob/boardbridge/internal/services/board"
	"github.com/ternarybob/boardbridge/internal/services/canvas"
	"github.com/ternarybob/boardbridge/internal/services/export"
	"github.com/ternarybob/boardbridge/internal/services/llm"
	"github.com/ternarybob/boardbridge/internal/services/scheduler"
	"github.com/ternarybob/boardbridge/internal/services/slides"
	badgerstorage "github.com/ternarybob/boardbridge/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	StorageManager interfaces.StorageManager

	AuthService      *auth.Service
	CanvasClient     *canvas.Client
	BoardService     interfaces.BoardService
	Provider         interfaces.CompletionProvider
	SlideService     interfaces.SlideService
	ExportService    interfaces.ExportService
	SchedulerService *scheduler.Service

	// HTTP handlers
	StatusHandler *handlers.StatusHandler
	AuthHandler   *handlers.AuthHandler
	BoardHandler  *handlers.BoardHandler
	SlidesHandler *handlers.SlidesHandler
	DeckHandler   *handlers.DeckHandler
}

// New creates the application with all dependencies wired.
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	a := &App{
		Config: config,
		Logger: logger,
	}

	storageManager, err := badgerstorage.NewManager(&config.Storage.Badger, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.StorageManager = storageManager

	authService, err := auth.NewService(storageManager.AuthStorage(), logger)
	if err != nil {
		storageManager.Close()
		return nil, fmt.Errorf("failed to initialize credential service: %w", err)
	}
	a.AuthService = authService

	canvasOpts := []canvas.ClientOption{
		canvas.WithLogger(logger),
		canvas.WithPageSize(config.Canvas.PageSize),
		canvas.WithRateLimit(config.Canvas.RateLimit),
	}
	if config.Canvas.BaseURL != "" {
		canvasOpts = append(canvasOpts, canvas.WithBaseURL(config.Canvas.BaseURL))
	}
	if config.Canvas.RequestTimeout > 0 {
		canvasOpts = append(canvasOpts, canvas.WithTimeout(config.Canvas.RequestTimeout))
	}
	a.CanvasClient = canvas.NewClient(authService, canvasOpts...)

	palette := board.DefaultPalette()
	if config.Canvas.PaletteFile != "" {
		if err := palette.LoadOverrides(config.Canvas.PaletteFile); err != nil {
			storageManager.Close()
			return nil, fmt.Errorf("failed to load palette overrides: %w", err)
		}
		logger.Info().Str("file", config.Canvas.PaletteFile).Msg("Palette overrides loaded")
	}
	a.BoardService = board.NewService(a.CanvasClient, palette, logger)

	provider, err := llm.NewProvider(config, logger)
	if err != nil {
		storageManager.Close()
		return nil, fmt.Errorf("failed to initialize completion provider: %w", err)
	}
	a.Provider = provider

	a.SlideService = slides.NewService(a.BoardService, provider, storageManager.DeckStorage(), &config.Summarize, logger)
	a.ExportService = export.NewService(logger)
	a.SchedulerService = scheduler.NewService(a.SlideService, &config.Refresh, config.Canvas.BoardID, logger)

	a.StatusHandler = handlers.NewStatusHandler(authService, config, logger)
	a.AuthHandler = handlers.NewAuthHandler(authService, logger)
	a.BoardHandler = handlers.NewBoardHandler(a.BoardService, logger)
	a.SlidesHandler = handlers.NewSlidesHandler(a.SlideService, logger)
	a.DeckHandler = handlers.NewDeckHandler(storageManager.DeckStorage(), a.ExportService, logger)

	logger.Info().Msg("Application initialized")
	return a, nil
}

// Start launches background services.
func (a *App) Start() error {
	return a.SchedulerService.Start()
}

// Close shuts down background services and releases resources.
func (a *App) Close() error {
	a.SchedulerService.Stop()

	if a.Provider != nil {
		if err := a.Provider.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close completion provider")
		}
	}

	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
	}

	a.Logger.Info().Msg("Application closed")
	return nil
}
