package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/loupe-dev/loupe/internal/analyzer"
	"github.com/loupe-dev/loupe/internal/lang"
	"github.com/loupe-dev/loupe/internal/mcputil"
	"github.com/loupe-dev/loupe/internal/structure"
)

// AddOutlineTool registers the loupe_outline tool. Results are cached
// per (path, mtime, size, constructs) so repeated outlines of an
// unchanged file skip the parse.
func AddOutlineTool(s *server.MCPServer, engine *analyzer.Engine, cache *outlineCache, logger *logrus.Logger) {
	tool := mcp.NewTool(
		"loupe_outline",
		mcp.WithDescription("Outline the structure of a source file: classes, functions, methods and other constructs with their exact start and end lines and nesting. Use the line ranges with loupe_read to pull out just the part you need."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("File path, relative to the project root or absolute within it")),
		mcp.WithString("language",
			mcp.Description("Language id override when detection would be wrong")),
		mcp.WithArray("constructs",
			mcp.Description("Construct kinds to include (e.g. ['class', 'method']). Empty means every kind the language supports.")),
	)

	s.AddTool(tool, createOutlineHandler(engine, cache, logger))
}

func createOutlineHandler(engine *analyzer.Engine, cache *outlineCache, logger *logrus.Logger) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args OutlineRequest
		if err := mcputil.BindArguments(&request, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Path == "" {
			return mcp.NewToolResultError("path parameter is required"), nil
		}

		// The cache key needs the resolved path; a resolution failure
		// here surfaces as the same boundary error Analyze would return.
		resolved, err := engine.Boundary().Resolve(args.Path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		key := cache.key(resolved, args.Constructs)
		if analysis, ok := cache.get(key); ok {
			logger.WithField("path", resolved).Debug("outline cache hit")
			return outlineResult(analysis, true)
		}

		constructs := make([]lang.Construct, 0, len(args.Constructs))
		for _, c := range args.Constructs {
			constructs = append(constructs, lang.Construct(c))
		}

		analysis, err := engine.Analyze(ctx, args.Path, args.Language, constructs)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		cache.put(key, analysis)
		return outlineResult(analysis, false)
	}
}

func outlineResult(analysis *structure.Analysis, cached bool) (*mcp.CallToolResult, error) {
	payload, err := json.Marshal(&OutlineResponse{Analysis: analysis, Cached: cached})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}
