package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-dev/loupe/internal/query"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(query.NewCatalog())
}

func TestRegistry_ResolveByExtension(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	cases := []struct {
		path string
		want string
	}{
		{"src/Main.java", "java"},
		{"lib/app.PY", "python"},
		{"web/index.html", "html"},
		{"web/app.tsx", "tsx"},
		{"web/app.ts", "typescript"},
		{"docs/README.md", "markdown"},
		{"style/main.css", "css"},
		{"native/util.h", "c"},
	}
	for _, tc := range cases {
		p, err := r.Resolve("", tc.path, nil)
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.want, p.ID(), tc.path)
	}
}

func TestRegistry_HintBeatsExtension(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	p, err := r.Resolve("python", "script.txt", nil)
	require.NoError(t, err)
	assert.Equal(t, "python", p.ID())

	// Aliases are accepted as hints.
	p, err = r.Resolve("ts", "script", nil)
	require.NoError(t, err)
	assert.Equal(t, "typescript", p.ID())
}

func TestRegistry_SniffFallback(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	cases := []struct {
		content string
		want    string
	}{
		{"#!/usr/bin/env python3\nprint('x')\n", "python"},
		{"#!/usr/bin/env node\nconsole.log(1)\n", "javascript"},
		{"<?php\necho 1;\n", "php"},
		{"<!DOCTYPE html>\n<html></html>\n", "html"},
	}
	for _, tc := range cases {
		p, err := r.Resolve("", "noext", []byte(tc.content))
		require.NoError(t, err, tc.want)
		assert.Equal(t, tc.want, p.ID())
	}
}

func TestRegistry_NoMatchFailsHard(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	_, err := r.Resolve("", "data.bin", []byte{0x00, 0x01})
	var unsupported *UnsupportedLanguageError
	require.ErrorAs(t, err, &unsupported)

	// An unknown hint must not fall through to a guess.
	_, err = r.Resolve("cobol", "prog.java", nil)
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "cobol", unsupported.Hint)
}

func TestRegistry_DisabledLanguage(t *testing.T) {
	t.Parallel()

	r := NewRegistry(query.NewCatalog(), "java")
	_, err := r.Resolve("", "Main.java", nil)
	var unsupported *UnsupportedLanguageError
	require.ErrorAs(t, err, &unsupported)

	assert.NotContains(t, r.Languages(), "java")
	assert.Contains(t, r.Languages(), "python")
}
