package mcp

import (
	"github.com/loupe-dev/loupe/internal/source"
	"github.com/loupe-dev/loupe/internal/structure"
)

// MeasureRequest is the argument shape of the loupe_measure tool.
type MeasureRequest struct {
	Path     string `json:"path"`
	Language string `json:"language,omitempty"`
}

// OutlineRequest is the argument shape of the loupe_outline tool.
type OutlineRequest struct {
	Path       string   `json:"path"`
	Language   string   `json:"language,omitempty"`
	Constructs []string `json:"constructs,omitempty"`
}

// ReadRequest is the argument shape of the loupe_read tool.
type ReadRequest struct {
	Path      string `json:"path"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
}

// MeasureResponse is the JSON payload returned by loupe_measure.
type MeasureResponse struct {
	*source.Metrics
}

// OutlineResponse is the JSON payload returned by loupe_outline.
type OutlineResponse struct {
	*structure.Analysis
	Cached bool `json:"cached,omitempty"`
}

// ReadResponse is the JSON payload returned by loupe_read.
type ReadResponse struct {
	Path      string `json:"path"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	Content   string `json:"content"`
}
