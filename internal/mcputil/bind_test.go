package mcputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	args map[string]interface{}
}

func (s *stubSource) GetArguments() map[string]interface{} {
	return s.args
}

type readArgs struct {
	Path      string   `json:"path"`
	StartLine int      `json:"start_line"`
	EndLine   int      `json:"end_line"`
	Kinds     []string `json:"kinds,omitempty"`
	Verbose   bool     `json:"verbose,omitempty"`
}

func TestBindArguments(t *testing.T) {
	t.Parallel()

	t.Run("stringified values", func(t *testing.T) {
		req := &stubSource{args: map[string]interface{}{
			"path":       "src/main.py",
			"start_line": "84",
			"end_line":   "86",
			"kinds":      `["class", "function"]`,
			"verbose":    "true",
		}}

		var out readArgs
		require.NoError(t, BindArguments(req, &out))
		assert.Equal(t, "src/main.py", out.Path)
		assert.Equal(t, 84, out.StartLine)
		assert.Equal(t, 86, out.EndLine)
		assert.Equal(t, []string{"class", "function"}, out.Kinds)
		assert.True(t, out.Verbose)
	})

	t.Run("native values", func(t *testing.T) {
		req := &stubSource{args: map[string]interface{}{
			"path":       "src/main.py",
			"start_line": 84,
			"end_line":   float64(86),
			"kinds":      []string{"class"},
			"verbose":    true,
		}}

		var out readArgs
		require.NoError(t, BindArguments(req, &out))
		assert.Equal(t, 84, out.StartLine)
		assert.Equal(t, 86, out.EndLine)
		assert.Equal(t, []string{"class"}, out.Kinds)
		assert.True(t, out.Verbose)
	})

	t.Run("comma separated slice", func(t *testing.T) {
		req := &stubSource{args: map[string]interface{}{
			"path":  "a.go",
			"kinds": "class,method",
		}}

		var out readArgs
		require.NoError(t, BindArguments(req, &out))
		assert.Equal(t, []string{"class", "method"}, out.Kinds)
	})

	t.Run("empty arguments", func(t *testing.T) {
		req := &stubSource{args: map[string]interface{}{}}
		var out readArgs
		require.NoError(t, BindArguments(req, &out))
		assert.Zero(t, out)
	})
}
