// Package boundary establishes and enforces the project boundary: the
// root directory beyond which file access is forbidden. Every path the
// analyzer touches must first pass through Boundary.Resolve.
package boundary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoBoundaryFound is returned by DetectRoot when no root marker exists
// between the starting directory and the filesystem root.
var ErrNoBoundaryFound = errors.New("no project root marker found")

// ViolationError indicates a requested path resolves outside the boundary.
type ViolationError struct {
	Path string // path as requested by the caller
	Root string // active boundary root
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("path %q escapes project boundary %q", e.Path, e.Root)
}

// rootMarkers are checked in each ancestor directory when detecting the
// project root. Version control metadata first, then common manifests.
var rootMarkers = []string{
	".git",
	".hg",
	".svn",
	"go.mod",
	"package.json",
	"pyproject.toml",
	"setup.py",
	"Cargo.toml",
	"pom.xml",
	"build.gradle",
	"Gemfile",
	"composer.json",
}

// Boundary is the resolved project root. It is immutable after
// construction and safe to share across concurrent requests.
type Boundary struct {
	root string
}

// Root returns the absolute, symlink-resolved boundary directory.
func (b *Boundary) Root() string {
	return b.root
}

// New creates a boundary rooted at an explicitly chosen directory.
func New(root string) (*Boundary, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving boundary root: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolving boundary root: %w", err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("resolving boundary root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("boundary root %q is not a directory", root)
	}
	return &Boundary{root: resolved}, nil
}

// DetectRoot walks from startDir toward the filesystem root and returns
// a boundary at the first directory containing a recognized root marker.
func DetectRoot(startDir string) (*Boundary, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("detecting project root: %w", err)
	}
	dir, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("detecting project root: %w", err)
	}
	for {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return &Boundary{root: dir}, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNoBoundaryFound
		}
		dir = parent
	}
}

// Resolve normalizes a requested path (relative segments and symlinks)
// and verifies the result lies at or below the boundary root. It returns
// the absolute resolved path, or a ViolationError. Relative paths are
// interpreted against the boundary root.
func (b *Boundary) Resolve(requested string) (string, error) {
	if requested == "" {
		return "", fmt.Errorf("empty path")
	}
	p := requested
	if !filepath.IsAbs(p) {
		p = filepath.Join(b.root, p)
	}
	resolved, err := resolveSymlinks(filepath.Clean(p))
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", requested, err)
	}
	rel, err := filepath.Rel(b.root, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &ViolationError{Path: requested, Root: b.root}
	}
	return resolved, nil
}

// resolveSymlinks is EvalSymlinks that tolerates a not-yet-existing leaf:
// the deepest existing ancestor is resolved so a symlinked parent cannot
// smuggle the target outside the boundary.
func resolveSymlinks(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}
	dir := filepath.Dir(path)
	if dir == path {
		return "", err
	}
	resolvedDir, err := resolveSymlinks(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolvedDir, filepath.Base(path)), nil
}
