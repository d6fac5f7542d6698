package source

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildNumberedDoc creates a document where line N contains "line N".
func buildNumberedDoc(lines int) *Document {
	var sb strings.Builder
	for i := 1; i <= lines; i++ {
		fmt.Fprintf(&sb, "line %d\n", i)
	}
	return NewDocument("numbered.txt", "", []byte(sb.String()))
}

func TestExtractLines_ExactSlice(t *testing.T) {
	t.Parallel()

	doc := buildNumberedDoc(200)
	content, pos, err := doc.ExtractLines(84, 86)
	require.NoError(t, err)

	assert.Equal(t, "line 84\nline 85\nline 86\n", string(content))
	assert.Equal(t, 84, pos.StartLine)
	assert.Equal(t, 86, pos.EndLine)
	assert.Equal(t, string(doc.Content[pos.StartByte:pos.EndByte]), string(content))
}

func TestExtractLines_LineCountMatchesRange(t *testing.T) {
	t.Parallel()

	doc := buildNumberedDoc(50)
	for _, rng := range [][2]int{{1, 1}, {1, 50}, {10, 20}, {50, 50}} {
		content, _, err := doc.ExtractLines(rng[0], rng[1])
		require.NoError(t, err)
		got := strings.Count(string(content), "\n")
		assert.Equal(t, rng[1]-rng[0]+1, got, "range %v", rng)
	}
}

func TestExtractLines_NoTrailingNewlineOnLastLine(t *testing.T) {
	t.Parallel()

	doc := NewDocument("f.txt", "", []byte("a\nb\nc"))
	content, pos, err := doc.ExtractLines(3, 3)
	require.NoError(t, err)
	assert.Equal(t, "c", string(content))
	assert.Equal(t, 3, pos.StartLine)
	assert.Equal(t, len(doc.Content), pos.EndByte)
}

func TestExtractLines_OutOfBounds(t *testing.T) {
	t.Parallel()

	doc := buildNumberedDoc(10)
	cases := [][2]int{{0, 5}, {-1, 2}, {5, 4}, {1, 11}, {11, 12}}
	for _, rng := range cases {
		_, _, err := doc.ExtractLines(rng[0], rng[1])
		var rangeErr *RangeError
		require.ErrorAs(t, err, &rangeErr, "range %v", rng)
		assert.Equal(t, 10, rangeErr.TotalLines)
	}
}

func TestExtractLines_EmptyFile(t *testing.T) {
	t.Parallel()

	doc := NewDocument("empty.txt", "", nil)
	_, _, err := doc.ExtractLines(1, 1)
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
}
