package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"github.com/loupe-dev/loupe/internal/query"
)

// NewJavaScriptPlugin returns the plugin for JavaScript sources.
func NewJavaScriptPlugin(catalog *query.Catalog) Plugin {
	return newTreeSitterPlugin(
		"javascript",
		sitter.NewLanguage(javascript.Language()),
		catalog,
		[]string{".js", ".mjs", ".cjs", ".jsx"},
		[]string{"js"},
		[]Construct{
			ConstructClass,
			ConstructFunction,
			ConstructMethod,
			ConstructImport,
		},
	)
}
