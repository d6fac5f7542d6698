package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/loupe-dev/loupe/internal/query"
)

// NewPythonPlugin returns the plugin for Python sources. Methods surface
// as functions nested inside their class element.
func NewPythonPlugin(catalog *query.Catalog) Plugin {
	return newTreeSitterPlugin(
		"python",
		sitter.NewLanguage(python.Language()),
		catalog,
		[]string{".py", ".pyi"},
		[]string{"py"},
		[]Construct{
			ConstructClass,
			ConstructFunction,
			ConstructImport,
		},
	)
}
