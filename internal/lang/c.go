package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"

	"github.com/loupe-dev/loupe/internal/query"
)

// NewCPlugin returns the plugin for C sources and headers.
func NewCPlugin(catalog *query.Catalog) Plugin {
	return newTreeSitterPlugin(
		"c",
		sitter.NewLanguage(c.Language()),
		catalog,
		[]string{".c", ".h"},
		nil,
		[]Construct{
			ConstructFunction,
			ConstructStruct,
			ConstructEnum,
			ConstructImport,
		},
	)
}
