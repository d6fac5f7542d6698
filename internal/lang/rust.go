package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"

	"github.com/loupe-dev/loupe/internal/query"
)

// NewRustPlugin returns the plugin for Rust sources.
func NewRustPlugin(catalog *query.Catalog) Plugin {
	return newTreeSitterPlugin(
		"rust",
		sitter.NewLanguage(rust.Language()),
		catalog,
		[]string{".rs"},
		[]string{"rs"},
		[]Construct{
			ConstructStruct,
			ConstructEnum,
			ConstructTrait,
			ConstructImpl,
			ConstructFunction,
			ConstructImport,
		},
	)
}
