package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"

	"github.com/loupe-dev/loupe/internal/query"
)

// NewPHPPlugin returns the plugin for PHP sources.
func NewPHPPlugin(catalog *query.Catalog) Plugin {
	return newTreeSitterPlugin(
		"php",
		sitter.NewLanguage(php.LanguagePHP()),
		catalog,
		[]string{".php", ".phtml"},
		nil,
		[]Construct{
			ConstructClass,
			ConstructInterface,
			ConstructMethod,
			ConstructFunction,
			ConstructImport,
		},
	)
}
