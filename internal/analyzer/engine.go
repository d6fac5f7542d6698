// Package analyzer ties boundary resolution, language detection, parsing
// and structural assembly into one engine shared by the CLI and the MCP
// server. Every operation resolves its path against the project boundary
// before touching the filesystem.
package analyzer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/loupe-dev/loupe/internal/boundary"
	"github.com/loupe-dev/loupe/internal/lang"
	"github.com/loupe-dev/loupe/internal/source"
	"github.com/loupe-dev/loupe/internal/structure"
)

// FileTooLargeError is returned when a file exceeds the configured size
// limit. Measure still works on such files; parsing operations refuse.
type FileTooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file %s is %d bytes, exceeds limit of %d", e.Path, e.Size, e.Limit)
}

// Extraction is the result of a line-range read: the exact bytes of the
// requested lines plus their resolved position within the file.
type Extraction struct {
	Path     string          `json:"path"`
	Content  string          `json:"content"`
	Position source.Position `json:"position"`
}

// Options configures an Engine.
type Options struct {
	// MaxFileSize caps the size of files the parsing operations will
	// load. Zero means no limit.
	MaxFileSize int64

	// ParseTimeout bounds a single parse. Zero means no timeout.
	ParseTimeout time.Duration

	Logger *logrus.Logger
}

// Engine is the analysis facade. It is safe for concurrent use.
type Engine struct {
	boundary *boundary.Boundary
	registry *lang.Registry
	opts     Options
	logger   *logrus.Logger
}

// New creates an Engine over the given project boundary and language
// registry.
func New(b *boundary.Boundary, registry *lang.Registry, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
	}
	return &Engine{
		boundary: b,
		registry: registry,
		opts:     opts,
		logger:   logger,
	}
}

// Boundary returns the project boundary the engine resolves paths against.
func (e *Engine) Boundary() *boundary.Boundary { return e.boundary }

// Languages returns the ids of all registered language plugins.
func (e *Engine) Languages() []string { return e.registry.Languages() }

// Measure computes cheap size metrics for the file at path. Files in
// unrecognized languages are still measured, with the comment heuristic
// falling back to common prefixes and Language left empty.
func (e *Engine) Measure(ctx context.Context, path, hint string) (*source.Metrics, error) {
	log := e.requestLogger("measure", path)

	resolved, err := e.boundary.Resolve(path)
	if err != nil {
		log.WithError(err).Warn("path rejected")
		return nil, err
	}

	content, err := os.ReadFile(resolved)
	if err != nil {
		return nil, err
	}

	language := ""
	if plugin, err := e.registry.Resolve(hint, resolved, content); err == nil {
		language = plugin.ID()
	} else if hint != "" {
		// An explicit hint that matches nothing is an error; only
		// detection failures degrade to a generic measurement.
		return nil, err
	}

	doc := source.NewDocument(resolved, language, content)
	metrics := source.Measure(doc)
	log.WithFields(logrus.Fields{
		"language": language,
		"lines":    metrics.TotalLines,
	}).Debug("measured file")
	return metrics, nil
}

// Analyze parses the file at path and returns its structural model. An
// empty constructs slice means all constructs the language supports.
func (e *Engine) Analyze(ctx context.Context, path, hint string, constructs []lang.Construct) (*structure.Analysis, error) {
	log := e.requestLogger("analyze", path)

	doc, plugin, err := e.load(path, hint)
	if err != nil {
		log.WithError(err).Warn("analyze failed")
		return nil, err
	}

	if e.opts.ParseTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.ParseTimeout)
		defer cancel()
	}

	tree, err := plugin.Parse(ctx, doc.Content)
	if err != nil {
		log.WithError(err).Warn("parse failed")
		return nil, err
	}
	defer tree.Close()

	analysis := structure.Build(doc, plugin, tree, constructs)
	log.WithFields(logrus.Fields{
		"language": plugin.ID(),
		"elements": len(analysis.Elements),
	}).Debug("analyzed file")
	return analysis, nil
}

// Extract returns the exact bytes of lines startLine through endLine
// (inclusive, 1-indexed) of the file at path.
func (e *Engine) Extract(ctx context.Context, path string, startLine, endLine int) (*Extraction, error) {
	log := e.requestLogger("extract", path)

	resolved, err := e.boundary.Resolve(path)
	if err != nil {
		log.WithError(err).Warn("path rejected")
		return nil, err
	}

	content, err := os.ReadFile(resolved)
	if err != nil {
		return nil, err
	}

	doc := source.NewDocument(resolved, "", content)
	slice, pos, err := doc.ExtractLines(startLine, endLine)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"start_line": pos.StartLine,
		"end_line":   pos.EndLine,
	}).Debug("extracted lines")
	return &Extraction{
		Path:     resolved,
		Content:  string(slice),
		Position: pos,
	}, nil
}

// load resolves, size-checks and reads a file, then picks its plugin.
func (e *Engine) load(path, hint string) (*source.Document, lang.Plugin, error) {
	resolved, err := e.boundary.Resolve(path)
	if err != nil {
		return nil, nil, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, nil, err
	}
	if e.opts.MaxFileSize > 0 && info.Size() > e.opts.MaxFileSize {
		return nil, nil, &FileTooLargeError{Path: resolved, Size: info.Size(), Limit: e.opts.MaxFileSize}
	}

	content, err := os.ReadFile(resolved)
	if err != nil {
		return nil, nil, err
	}

	plugin, err := e.registry.Resolve(hint, resolved, content)
	if err != nil {
		return nil, nil, err
	}

	return source.NewDocument(resolved, plugin.ID(), content), plugin, nil
}

func (e *Engine) requestLogger(op, path string) *logrus.Entry {
	return e.logger.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"op":         op,
		"path":       path,
	})
}
