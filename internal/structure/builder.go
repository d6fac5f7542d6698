package structure

import (
	"sort"

	"github.com/loupe-dev/loupe/internal/lang"
	"github.com/loupe-dev/loupe/internal/source"
)

// Build extracts every requested construct kind from the tree and
// assembles the structural model. When constructs is empty, all of the
// plugin's supported constructs are extracted.
//
// A failing construct (unsupported kind, missing or broken query) is
// recorded as a diagnostic and skipped; one missing capability never
// aborts analysis of the file.
func Build(doc *source.Document, plugin lang.Plugin, tree *lang.Tree, constructs []lang.Construct) *Analysis {
	if len(constructs) == 0 {
		constructs = plugin.SupportedConstructs()
	}

	var matches []lang.CaptureMatch
	var diags []Diagnostic
	for _, construct := range constructs {
		found, err := plugin.Extract(tree, construct)
		if err != nil {
			diags = append(diags, Diagnostic{
				Construct: string(construct),
				Message:   err.Error(),
			})
			continue
		}
		matches = append(matches, found...)
	}

	return &Analysis{
		Path:        doc.Path,
		Language:    doc.Language,
		Elements:    assemble(matches),
		Diagnostics: diags,
	}
}

// assemble orders matches deterministically and computes parent links by
// range containment: an element's parent is the tightest enclosing
// element.
func assemble(matches []lang.CaptureMatch) []Element {
	// Ascending start line; outer before inner on equal starts
	// (descending end line); container kinds before member kinds on
	// identical spans. Stable, so equal matches keep extraction order.
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.StartLine != b.StartLine {
			return a.StartLine < b.StartLine
		}
		if a.EndLine != b.EndLine {
			return a.EndLine > b.EndLine
		}
		return a.Construct.IsContainer() && !b.Construct.IsContainer()
	})

	elements := make([]Element, 0, len(matches))
	var stack []int // indexes of open enclosing elements
	for _, m := range matches {
		for len(stack) > 0 {
			top := elements[stack[len(stack)-1]]
			if top.StartLine <= m.StartLine && m.EndLine <= top.EndLine {
				break
			}
			stack = stack[:len(stack)-1]
		}
		parent := -1
		if len(stack) > 0 {
			parent = stack[len(stack)-1]
		}
		elements = append(elements, Element{
			Kind:      string(m.Construct),
			Name:      m.Name,
			Signature: m.Signature,
			StartLine: m.StartLine,
			EndLine:   m.EndLine,
			Parent:    parent,
		})
		stack = append(stack, len(elements)-1)
	}
	return elements
}
