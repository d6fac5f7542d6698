package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/loupe-dev/loupe/internal/query"
)

var typescriptConstructs = []Construct{
	ConstructClass,
	ConstructInterface,
	ConstructEnum,
	ConstructFunction,
	ConstructMethod,
	ConstructType,
	ConstructImport,
}

// NewTypeScriptPlugin returns the plugin for TypeScript sources.
func NewTypeScriptPlugin(catalog *query.Catalog) Plugin {
	return newTreeSitterPlugin(
		"typescript",
		sitter.NewLanguage(typescript.LanguageTypescript()),
		catalog,
		[]string{".ts", ".mts", ".cts"},
		[]string{"ts"},
		typescriptConstructs,
	)
}

// NewTSXPlugin returns the plugin for TSX sources. It uses the TSX
// grammar but shares the TypeScript query definitions.
func NewTSXPlugin(catalog *query.Catalog) Plugin {
	p := newTreeSitterPlugin(
		"tsx",
		sitter.NewLanguage(typescript.LanguageTSX()),
		catalog,
		[]string{".tsx"},
		nil,
		typescriptConstructs,
	)
	p.queryID = "typescript"
	return p
}
