package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createGetBoardTool returns the get_board tool definition
func createGetBoardTool() mcp.Tool {
	return mcp.NewTool("get_board",
		mcp.WithDescription("Retrieve a whiteboard as a normalized board: frames plus content items with absolute coordinates and canonical colors"),
		mcp.WithString("board_id",
			mcp.Description("Board ID (defaults to the configured default board)"),
		),
	)
}

// createGetMappedBoardTool returns the get_mapped_board tool definition
func createGetMappedBoardTool() mcp.Tool {
	return mcp.NewTool("get_mapped_board",
		mcp.WithDescription("Retrieve a whiteboard with each note assigned to the frame containing its center"),
		mcp.WithString("board_id",
			mcp.Description("Board ID (defaults to the configured default board)"),
		),
	)
}

// createSummarizeBoardTool returns the summarize_board tool definition
func createSummarizeBoardTool() mcp.Tool {
	return mcp.NewTool("summarize_board",
		mcp.WithDescription("Ingest a whiteboard and summarize each frame's notes into slide content (title + bullets)"),
		mcp.WithString("board_id",
			mcp.Description("Board ID (defaults to the configured default board)"),
		),
	)
}
