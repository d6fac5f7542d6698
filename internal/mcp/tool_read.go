package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/loupe-dev/loupe/internal/analyzer"
	"github.com/loupe-dev/loupe/internal/mcputil"
)

// AddReadTool registers the loupe_read tool.
func AddReadTool(s *server.MCPServer, engine *analyzer.Engine) {
	tool := mcp.NewTool(
		"loupe_read",
		mcp.WithDescription("Read an exact line range of a source file, byte for byte. Combine with loupe_outline: outline first, then read just the element you care about instead of the whole file."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("File path, relative to the project root or absolute within it")),
		mcp.WithNumber("start_line",
			mcp.Required(),
			mcp.Description("First line to read, 1-indexed, inclusive")),
		mcp.WithNumber("end_line",
			mcp.Required(),
			mcp.Description("Last line to read, inclusive")),
	)

	s.AddTool(tool, createReadHandler(engine))
}

func createReadHandler(engine *analyzer.Engine) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ReadRequest
		if err := mcputil.BindArguments(&request, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Path == "" {
			return mcp.NewToolResultError("path parameter is required"), nil
		}

		extraction, err := engine.Extract(ctx, args.Path, args.StartLine, args.EndLine)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		payload, err := json.Marshal(&ReadResponse{
			Path:      extraction.Path,
			StartLine: extraction.Position.StartLine,
			EndLine:   extraction.Position.EndLine,
			Content:   extraction.Content,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}
		return mcp.NewToolResultText(string(payload)), nil
	}
}
