package lang

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/loupe-dev/loupe/internal/query"
)

// detector is one language-detection strategy. It returns nil when it
// cannot identify the file; the registry tries detectors in order.
type detector func(hint, path string, content []byte) Plugin

// Registry maps language identifiers to plugins. It is populated once at
// construction and read-only afterward, so it is safe to share across
// concurrent requests.
type Registry struct {
	byID      map[string]Plugin
	byExt     map[string]Plugin
	detectors []detector
}

// NewRegistry builds a registry with every built-in plugin, minus the
// ids listed in disabled. All plugins share one query catalog.
func NewRegistry(catalog *query.Catalog, disabled ...string) *Registry {
	r := &Registry{
		byID:  make(map[string]Plugin),
		byExt: make(map[string]Plugin),
	}

	skip := make(map[string]bool, len(disabled))
	for _, id := range disabled {
		skip[strings.ToLower(id)] = true
	}

	for _, p := range []Plugin{
		NewJavaPlugin(catalog),
		NewPythonPlugin(catalog),
		NewJavaScriptPlugin(catalog),
		NewTypeScriptPlugin(catalog),
		NewTSXPlugin(catalog),
		NewHTMLPlugin(catalog),
		NewCSSPlugin(catalog),
		NewMarkdownPlugin(catalog),
		NewCPlugin(catalog),
		NewPHPPlugin(catalog),
		NewRubyPlugin(catalog),
		NewRustPlugin(catalog),
	} {
		if skip[p.ID()] {
			continue
		}
		r.register(p)
	}

	// Detection precedence: explicit hint, then extension, then content
	// sniffing. No fallback guess: resolution either succeeds here or
	// fails hard.
	r.detectors = []detector{
		r.detectByHint,
		r.detectByExtension,
		r.detectByContent,
	}
	return r
}

func (r *Registry) register(p Plugin) {
	r.byID[p.ID()] = p
	for _, alias := range p.Aliases() {
		r.byID[alias] = p
	}
	for _, ext := range p.Extensions() {
		r.byExt[ext] = p
	}
}

// Resolve picks the plugin for a file. The hint, when non-empty, must
// name a registered language; silent misclassification is worse than an
// error, so an unknown hint fails rather than falling through.
func (r *Registry) Resolve(hint, path string, content []byte) (Plugin, error) {
	if hint != "" {
		if p := r.detectByHint(hint, path, content); p != nil {
			return p, nil
		}
		return nil, &UnsupportedLanguageError{Path: path, Hint: hint}
	}
	for _, detect := range r.detectors {
		if p := detect(hint, path, content); p != nil {
			return p, nil
		}
	}
	return nil, &UnsupportedLanguageError{Path: path, Hint: hint}
}

func (r *Registry) detectByHint(hint, _ string, _ []byte) Plugin {
	if hint == "" {
		return nil
	}
	return r.byID[strings.ToLower(hint)]
}

func (r *Registry) detectByExtension(_, path string, _ []byte) Plugin {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil
	}
	return r.byExt[ext]
}

func (r *Registry) detectByContent(_, _ string, content []byte) Plugin {
	if id := sniffLanguage(content); id != "" {
		return r.byID[id]
	}
	return nil
}

// Languages returns the sorted canonical ids of all registered plugins.
func (r *Registry) Languages() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range r.byID {
		if !seen[p.ID()] {
			seen[p.ID()] = true
			out = append(out, p.ID())
		}
	}
	sort.Strings(out)
	return out
}
