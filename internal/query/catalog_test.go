package query

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

func javaGrammar() *sitter.Language {
	return sitter.NewLanguage(java.Language())
}

func TestCatalog_GetCompilesAndCaches(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog()
	grammar := javaGrammar()

	def, err := catalog.Get("java", "class", grammar)
	require.NoError(t, err)
	require.NotNil(t, def.Query)
	assert.Equal(t, "java", def.Language)
	assert.Equal(t, "class", def.Construct)

	// Second lookup returns the cached instance.
	again, err := catalog.Get("java", "class", grammar)
	require.NoError(t, err)
	assert.Same(t, def, again)
}

func TestCatalog_CompilesPerGrammar(t *testing.T) {
	t.Parallel()

	// typescript and tsx share the query files under typescript/ but are
	// distinct grammars; a query compiled for one is not valid against
	// the other, so each grammar must get its own compilation.
	catalog := NewCatalog()
	tsGrammar := sitter.NewLanguage(typescript.LanguageTypescript())
	tsxGrammar := sitter.NewLanguage(typescript.LanguageTSX())

	tsxDef, err := catalog.Get("typescript", "class", tsxGrammar)
	require.NoError(t, err)
	require.NotNil(t, tsxDef.Query)

	tsDef, err := catalog.Get("typescript", "class", tsGrammar)
	require.NoError(t, err)
	require.NotNil(t, tsDef.Query)
	assert.NotSame(t, tsxDef, tsDef)
	assert.NotSame(t, tsxDef.Query, tsDef.Query)

	// Repeat lookups still hit the per-grammar cache entries.
	again, err := catalog.Get("typescript", "class", tsxGrammar)
	require.NoError(t, err)
	assert.Same(t, tsxDef, again)
}

func TestCatalog_UnknownConstruct(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog()
	_, err := catalog.Get("java", "nonexistent", javaGrammar())

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "java", notFound.Language)
	assert.Equal(t, "nonexistent", notFound.Construct)
}

func TestCatalog_UnknownLanguage(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog()
	_, err := catalog.Get("cobol", "class", javaGrammar())

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCatalog_WrongGrammarFailsLoad(t *testing.T) {
	t.Parallel()

	// Python query patterns reference node types the Java grammar
	// does not define, so compilation must fail.
	catalog := NewCatalog()
	_, err := catalog.Get("python", "class", javaGrammar())

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestCatalog_ConcurrentGet(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog()
	grammar := javaGrammar()

	var wg sync.WaitGroup
	results := make([]*Definition, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			def, err := catalog.Get("java", "method", grammar)
			assert.NoError(t, err)
			results[i] = def
		}(i)
	}
	wg.Wait()

	for _, def := range results {
		assert.Same(t, results[0], def)
	}
}
