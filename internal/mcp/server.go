// Package mcp exposes the analysis engine over the Model Context
// Protocol on stdio. Three tools mirror the engine operations:
// loupe_measure, loupe_outline and loupe_read.
package mcp

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/loupe-dev/loupe/internal/analyzer"
)

// Server manages the MCP server lifecycle around an analysis engine.
type Server struct {
	engine *analyzer.Engine
	cache  *outlineCache
	logger *logrus.Logger
	mcp    *server.MCPServer
}

// NewServer creates an MCP server wrapping the given engine. The logger
// must write to stderr; stdout carries the protocol.
func NewServer(engine *analyzer.Engine, version string, logger *logrus.Logger) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("analysis engine is required")
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
	}

	cache, err := newOutlineCache()
	if err != nil {
		return nil, fmt.Errorf("failed to create outline cache: %w", err)
	}

	mcpServer := server.NewMCPServer(
		"loupe-mcp",
		version,
		server.WithToolCapabilities(true),
	)

	s := &Server{
		engine: engine,
		cache:  cache,
		logger: logger,
		mcp:    mcpServer,
	}

	AddMeasureTool(mcpServer, engine)
	AddOutlineTool(mcpServer, engine, cache, logger)
	AddReadTool(mcpServer, engine)

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until a shutdown
// signal or a server error.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("root", s.engine.Boundary().Root()).Info("starting MCP server on stdio")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		s.logger.Info("received shutdown signal, stopping")
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases server resources.
func (s *Server) Close() {
	s.cache.Close()
}
