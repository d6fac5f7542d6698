package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	html "github.com/tree-sitter/tree-sitter-html/bindings/go"

	"github.com/loupe-dev/loupe/internal/query"
)

// NewHTMLPlugin returns the plugin for HTML documents. The outline is
// the element tree itself, nested by containment.
func NewHTMLPlugin(catalog *query.Catalog) Plugin {
	return newTreeSitterPlugin(
		"html",
		sitter.NewLanguage(html.Language()),
		catalog,
		[]string{".html", ".htm"},
		nil,
		[]Construct{ConstructElement},
	)
}
