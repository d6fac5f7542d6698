// Package query stores the tree-sitter query definitions used for
// structural extraction, keyed by (language, construct). Definitions are
// embedded at build time, compiled lazily, and cached for the process
// lifetime; they are never mutated after load, so a catalog is safe to
// share across concurrent analyses.
package query

import (
	"embed"
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

//go:embed queries/*/*.scm
var queryFS embed.FS

// NotFoundError indicates no query is registered for the pair.
type NotFoundError struct {
	Language  string
	Construct string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no query registered for %s/%s", e.Language, e.Construct)
}

// LoadError indicates a stored query definition failed to compile.
type LoadError struct {
	Language  string
	Construct string
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading query %s/%s: %v", e.Language, e.Construct, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Definition is one compiled, immutable query.
type Definition struct {
	Language  string
	Construct string
	Query     *sitter.Query
}

// Catalog lazily loads and caches compiled query definitions.
type Catalog struct {
	mu    sync.RWMutex
	cache map[string]*Definition
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{cache: make(map[string]*Definition)}
}

// Get returns the compiled query for (language, construct), loading it on
// first use. A compiled query is bound to the grammar it was compiled
// against (node kind ids differ between grammars), so the cache entry is
// keyed per grammar: plugins sharing one query file over distinct
// grammars, like typescript and tsx, each get their own compilation.
func (c *Catalog) Get(language, construct string, grammar *sitter.Language) (*Definition, error) {
	fileKey := language + "/" + construct
	key := fmt.Sprintf("%s@%p", fileKey, grammar)

	c.mu.RLock()
	def, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return def, nil
	}

	data, err := queryFS.ReadFile("queries/" + fileKey + ".scm")
	if err != nil {
		return nil, &NotFoundError{Language: language, Construct: construct}
	}
	q, qerr := sitter.NewQuery(grammar, string(data))
	if qerr != nil {
		return nil, &LoadError{Language: language, Construct: construct, Err: qerr}
	}
	if q == nil {
		return nil, &LoadError{Language: language, Construct: construct, Err: fmt.Errorf("query compiled to nil")}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.cache[key]; ok {
		// Another request compiled it first; keep the cached instance.
		q.Close()
		return existing, nil
	}
	def = &Definition{Language: language, Construct: construct, Query: q}
	c.cache[key] = def
	return def, nil
}
