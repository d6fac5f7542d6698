package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/loupe-dev/loupe/internal/query"
)

// NewJavaPlugin returns the plugin for Java sources.
func NewJavaPlugin(catalog *query.Catalog) Plugin {
	return newTreeSitterPlugin(
		"java",
		sitter.NewLanguage(java.Language()),
		catalog,
		[]string{".java"},
		nil,
		[]Construct{
			ConstructClass,
			ConstructInterface,
			ConstructEnum,
			ConstructMethod,
			ConstructField,
			ConstructImport,
		},
	)
}
