package lang

import (
	markdown "github.com/tree-sitter-grammars/tree-sitter-markdown/bindings/go"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/loupe-dev/loupe/internal/query"
)

// NewMarkdownPlugin returns the plugin for Markdown documents, using the
// block grammar. Headings and fenced code blocks form the outline.
func NewMarkdownPlugin(catalog *query.Catalog) Plugin {
	return newTreeSitterPlugin(
		"markdown",
		sitter.NewLanguage(markdown.Language()),
		catalog,
		[]string{".md", ".markdown"},
		[]string{"md"},
		[]Construct{ConstructHeading, ConstructCodeBlock},
	)
}
