package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/app"
)

// resolveBoardID picks the request's board_id or falls back to the
// configured default board.
func resolveBoardID(request mcp.CallToolRequest, application *app.App) string {
	boardID := request.GetString("board_id", "")
	if boardID == "" {
		boardID = application.Config.Canvas.BoardID
	}
	return boardID
}

func errorResult(format string, args ...interface{}) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(fmt.Sprintf(format, args...)),
		},
	}
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Failed to encode result: %v", err), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(data)),
		},
	}, nil
}

// handleGetBoard implements the get_board tool
func handleGetBoard(application *app.App, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		boardID := resolveBoardID(request, application)
		if boardID == "" {
			return errorResult("Error: board_id parameter is required and no default board is configured"), nil
		}

		b, err := application.BoardService.IngestBoard(ctx, boardID)
		if err != nil {
			logger.Error().Err(err).Str("board_id", boardID).Msg("Board ingestion failed")
			return errorResult("Board retrieval failed: %v", err), nil
		}

		return jsonResult(b)
	}
}

// handleGetMappedBoard implements the get_mapped_board tool
func handleGetMappedBoard(application *app.App, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		boardID := resolveBoardID(request, application)
		if boardID == "" {
			return errorResult("Error: board_id parameter is required and no default board is configured"), nil
		}

		b, err := application.BoardService.IngestBoard(ctx, boardID)
		if err != nil {
			logger.Error().Err(err).Str("board_id", boardID).Msg("Board ingestion failed")
			return errorResult("Board retrieval failed: %v", err), nil
		}

		return jsonResult(application.BoardService.MapBoard(b))
	}
}

// handleSummarizeBoard implements the summarize_board tool
func handleSummarizeBoard(application *app.App, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		boardID := resolveBoardID(request, application)
		if boardID == "" {
			return errorResult("Error: board_id parameter is required and no default board is configured"), nil
		}

		deck, err := application.SlideService.SummarizeBoard(ctx, boardID)
		if err != nil {
			logger.Error().Err(err).Str("board_id", boardID).Msg("Board summarization failed")
			return errorResult("Board summarization failed: %v", err), nil
		}

		return jsonResult(deck)
	}
}
