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

// AddMeasureTool registers the loupe_measure tool. Registration is
// composable with the other Add*Tool functions.
func AddMeasureTool(s *server.MCPServer, engine *analyzer.Engine) {
	tool := mcp.NewTool(
		"loupe_measure",
		mcp.WithDescription("Measure a source file before reading it: total lines, non-empty lines, approximate comment lines, byte size and detected language. Cheap; use it to decide whether to outline instead of reading the whole file."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("File path, relative to the project root or absolute within it")),
		mcp.WithString("language",
			mcp.Description("Language id override when detection would be wrong (e.g. 'python', 'typescript')")),
	)

	s.AddTool(tool, createMeasureHandler(engine))
}

func createMeasureHandler(engine *analyzer.Engine) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args MeasureRequest
		if err := mcputil.BindArguments(&request, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Path == "" {
			return mcp.NewToolResultError("path parameter is required"), nil
		}

		metrics, err := engine.Measure(ctx, args.Path, args.Language)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		payload, err := json.Marshal(&MeasureResponse{Metrics: metrics})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}
		return mcp.NewToolResultText(string(payload)), nil
	}
}
