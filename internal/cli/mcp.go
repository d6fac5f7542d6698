package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loupe-dev/loupe/internal/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for structural file analysis",
	Long: `Start the Model Context Protocol (MCP) server that lets LLM-powered
coding assistants measure, outline and read source files without
pulling whole files into context.

The MCP server:
- Resolves every path against the detected project root
- Provides the loupe_measure, loupe_outline and loupe_read tools
- Communicates via stdio (standard MCP transport)

Example:
  loupe mcp`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	engine, _, err := buildEngine()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Loupe MCP Server\n")
	fmt.Fprintf(os.Stderr, "Project Root: %s\n\n", engine.Boundary().Root())

	server, err := mcp.NewServer(engine, Version, newLogger())
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer server.Close()

	if err := server.Serve(cmd.Context()); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
