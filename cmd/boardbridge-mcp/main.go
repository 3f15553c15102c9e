package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"

	"github.com/ternarybob/boardbridge/internal/app"
	"github.com/ternarybob/boardbridge/internal/common"
)

func main() {
	configPath := os.Getenv("BOARDBRIDGE_CONFIG")
	if configPath == "" {
		configPath = "boardbridge.toml"
	}

	var configFiles []string
	if _, err := os.Stat(configPath); err == nil {
		configFiles = append(configFiles, configPath)
	}

	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Minimal console logger so stdio stays clean for the MCP transport
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:       arbor_models.LogWriterTypeConsole,
		TimeFormat: "15:04:05",
	}).WithLevelFromString("warn")

	application, err := app.New(config, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer application.Close()

	mcpServer := server.NewMCPServer(
		"boardbridge",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createGetBoardTool(), handleGetBoard(application, logger))
	mcpServer.AddTool(createGetMappedBoardTool(), handleGetMappedBoard(application, logger))
	mcpServer.AddTool(createSummarizeBoardTool(), handleSummarizeBoard(application, logger))

	// Blocks on stdio
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
