package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		want    int
	}{
		{"empty file", "", 0},
		{"single line no newline", "hello", 1},
		{"single line with newline", "hello\n", 1},
		{"three lines", "a\nb\nc\n", 3},
		{"three lines no trailing newline", "a\nb\nc", 3},
		{"blank lines count", "\n\n\n", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := NewDocument("f.txt", "", []byte(tc.content))
			assert.Equal(t, tc.want, doc.LineCount())
		})
	}
}

func TestLineSpan_TrailingNewlineIncluded(t *testing.T) {
	t.Parallel()

	doc := NewDocument("f.txt", "", []byte("ab\ncd\n"))
	start, end := doc.lineSpan(1)
	assert.Equal(t, "ab\n", string(doc.Content[start:end]))
	start, end = doc.lineSpan(2)
	assert.Equal(t, "cd\n", string(doc.Content[start:end]))
}
