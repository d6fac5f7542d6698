package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"

	"github.com/loupe-dev/loupe/internal/query"
)

// NewRubyPlugin returns the plugin for Ruby sources.
func NewRubyPlugin(catalog *query.Catalog) Plugin {
	return newTreeSitterPlugin(
		"ruby",
		sitter.NewLanguage(ruby.Language()),
		catalog,
		[]string{".rb", ".rake"},
		[]string{"rb"},
		[]Construct{
			ConstructClass,
			ConstructModule,
			ConstructMethod,
		},
	)
}
