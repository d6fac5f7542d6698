// Package lang implements the language plugin contract and the registry
// that maps a language identifier to a plugin. Each plugin binds one
// tree-sitter grammar and extracts constructs via the query catalog; no
// caller ever branches on a language string.
package lang

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/loupe-dev/loupe/internal/query"
)

// Tree is a concrete syntax tree for one document. It is owned by the
// request that produced it; call Close when structural extraction is done.
type Tree struct {
	inner  *sitter.Tree
	source []byte
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.inner != nil {
		t.inner.Close()
	}
}

// CaptureMatch is one query match: a construct occurrence with its exact
// span and display metadata. Lines and columns are 1-indexed.
type CaptureMatch struct {
	Construct   Construct
	Name        string
	Signature   string
	StartLine   int
	EndLine     int
	StartColumn int
	EndColumn   int
	StartByte   int
	EndByte     int
}

// Plugin parses one language and extracts constructs from its trees.
// Implementations are immutable after construction and safe for
// concurrent use; each Parse call creates its own parser.
type Plugin interface {
	// ID returns the canonical language identifier ("java", "python", ...).
	ID() string

	// Aliases returns alternate hint names accepted for this language.
	Aliases() []string

	// Extensions returns the file extensions (with dot) this plugin claims.
	Extensions() []string

	// SupportedConstructs declares what this plugin can extract.
	SupportedConstructs() []Construct

	// Parse produces a concrete syntax tree for the source bytes.
	Parse(ctx context.Context, source []byte) (*Tree, error)

	// Extract runs the catalog query for one construct against a tree.
	// Matches are ordered by start position. Asking for a construct not
	// in SupportedConstructs fails with UnsupportedConstructError.
	Extract(tree *Tree, construct Construct) ([]CaptureMatch, error)
}

// treeSitterPlugin is the shared implementation behind every grammar.
// Language-specific files only supply the grammar, extensions, and
// construct set.
type treeSitterPlugin struct {
	id         string
	queryID    string // catalog language key, usually == id (tsx reuses typescript)
	aliases    []string
	grammar    *sitter.Language
	extensions []string
	constructs []Construct
	catalog    *query.Catalog
}

func newTreeSitterPlugin(id string, grammar *sitter.Language, catalog *query.Catalog,
	extensions []string, aliases []string, constructs []Construct) *treeSitterPlugin {
	return &treeSitterPlugin{
		id:         id,
		queryID:    id,
		aliases:    aliases,
		grammar:    grammar,
		extensions: extensions,
		constructs: constructs,
		catalog:    catalog,
	}
}

func (p *treeSitterPlugin) ID() string           { return p.id }
func (p *treeSitterPlugin) Aliases() []string    { return p.aliases }
func (p *treeSitterPlugin) Extensions() []string { return p.extensions }

func (p *treeSitterPlugin) SupportedConstructs() []Construct {
	out := make([]Construct, len(p.constructs))
	copy(out, p.constructs)
	return out
}

func (p *treeSitterPlugin) supports(construct Construct) bool {
	for _, c := range p.constructs {
		if c == construct {
			return true
		}
	}
	return false
}

// Parse parses source bytes into a concrete syntax tree. Parsers are not
// shared: each call creates and closes its own. The progress callback
// aborts mid-parse once ctx is done, so a pathological input cannot run
// past its deadline.
func (p *treeSitterPlugin) Parse(ctx context.Context, source []byte) (*Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ParseError{Language: p.id, Err: err}
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(p.grammar)

	tree := parser.ParseWithOptions(func(offset int, _ sitter.Point) []byte {
		if offset < len(source) {
			return source[offset:]
		}
		return nil
	}, nil, &sitter.ParseOptions{
		ProgressCallback: func(sitter.ParseState) bool {
			return ctx.Err() != nil
		},
	})
	if err := ctx.Err(); err != nil {
		if tree != nil {
			tree.Close()
		}
		return nil, &ParseError{Language: p.id, Err: err}
	}
	if tree == nil {
		return nil, &ParseError{Language: p.id}
	}
	return &Tree{inner: tree, source: source}, nil
}

// Extract runs the catalog query for construct and converts every match
// into a CaptureMatch, ordered by start byte (outer before inner for
// identical starts).
func (p *treeSitterPlugin) Extract(tree *Tree, construct Construct) ([]CaptureMatch, error) {
	if !p.supports(construct) {
		return nil, &UnsupportedConstructError{Language: p.id, Construct: construct}
	}
	def, err := p.catalog.Get(p.queryID, string(construct), p.grammar)
	if err != nil {
		return nil, err
	}

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(def.Query, tree.inner.RootNode(), tree.source)
	captureNames := def.Query.CaptureNames()

	var out []CaptureMatch
	for {
		match := matches.Next()
		if match == nil {
			break
		}

		var defNode *sitter.Node
		name := ""
		for _, c := range match.Captures {
			node := c.Node
			switch captureNames[c.Index] {
			case "definition":
				defNode = &node
			case "name":
				name = nodeText(&node, tree.source)
			}
		}
		if defNode == nil {
			continue
		}
		if name == "" {
			name = truncate(collapseWhitespace(nodeText(defNode, tree.source)), 80)
		}

		out = append(out, CaptureMatch{
			Construct:   construct,
			Name:        name,
			Signature:   signatureFor(defNode, tree.source),
			StartLine:   int(defNode.StartPosition().Row) + 1,
			EndLine:     int(defNode.EndPosition().Row) + 1,
			StartColumn: int(defNode.StartPosition().Column) + 1,
			EndColumn:   int(defNode.EndPosition().Column) + 1,
			StartByte:   int(defNode.StartByte()),
			EndByte:     int(defNode.EndByte()),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartByte != out[j].StartByte {
			return out[i].StartByte < out[j].StartByte
		}
		return out[i].EndByte > out[j].EndByte
	})
	return out, nil
}

func nodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

// signatureFor derives a one-line signature from the first line of the
// node, without the opening brace.
func signatureFor(node *sitter.Node, source []byte) string {
	text := nodeText(node, source)
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "{")
	return truncate(collapseWhitespace(text), 160)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate caps s at max bytes, backing up to a rune boundary so the
// result stays valid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
