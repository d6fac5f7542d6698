package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	css "github.com/tree-sitter/tree-sitter-css/bindings/go"

	"github.com/loupe-dev/loupe/internal/query"
)

// NewCSSPlugin returns the plugin for CSS stylesheets.
func NewCSSPlugin(catalog *query.Catalog) Plugin {
	return newTreeSitterPlugin(
		"css",
		sitter.NewLanguage(css.Language()),
		catalog,
		[]string{".css"},
		nil,
		[]Construct{ConstructRule, ConstructMedia},
	)
}
