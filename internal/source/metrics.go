package source

import "bytes"

// Metrics holds cheap file-level measurements. None of them require a
// successful parse, so they are available for any language.
type Metrics struct {
	Path          string `json:"path"`
	Language      string `json:"language,omitempty"`
	TotalLines    int    `json:"total_lines"`
	NonEmptyLines int    `json:"non_empty_lines"`
	CommentLines  int    `json:"comment_lines"`
	ByteSize      int    `json:"byte_size"`
}

// commentPrefixes maps a language id to the line prefixes counted as
// comments. This is a heuristic on trimmed lines, not a parse: block
// comment bodies are approximated by their conventional leader.
var commentPrefixes = map[string][]string{
	"java":       {"//", "/*", "*"},
	"javascript": {"//", "/*", "*"},
	"typescript": {"//", "/*", "*"},
	"tsx":        {"//", "/*", "*"},
	"c":          {"//", "/*", "*"},
	"rust":       {"//", "/*", "*"},
	"php":        {"//", "/*", "*", "#"},
	"python":     {"#"},
	"ruby":       {"#"},
	"css":        {"/*", "*"},
	"html":       {"<!--"},
	"markdown":   {"<!--"},
}

// genericCommentPrefixes is used when the language is unknown, so the
// estimate stays available even without a registered grammar.
var genericCommentPrefixes = []string{"//", "#", "/*", "*", ";", "<!--"}

// Measure computes file-level metrics for a document.
func Measure(d *Document) *Metrics {
	prefixes, ok := commentPrefixes[d.Language]
	if !ok {
		prefixes = genericCommentPrefixes
	}

	m := &Metrics{
		Path:       d.Path,
		Language:   d.Language,
		TotalLines: d.LineCount(),
		ByteSize:   d.ByteSize(),
	}
	for line := 1; line <= d.LineCount(); line++ {
		start, end := d.lineSpan(line)
		trimmed := bytes.TrimSpace(d.Content[start:end])
		if len(trimmed) == 0 {
			continue
		}
		m.NonEmptyLines++
		for _, prefix := range prefixes {
			if bytes.HasPrefix(trimmed, []byte(prefix)) {
				m.CommentLines++
				break
			}
		}
	}
	return m
}
