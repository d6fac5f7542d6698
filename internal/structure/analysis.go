// Package structure turns raw query matches into the unified structural
// model: one ordered element arena per document, with parent indexes
// computed by range containment.
package structure

// Element is one structural unit of a document. Parent is an index into
// the owning Analysis.Elements slice (-1 for top-level elements), a weak
// back-reference rather than an ownership edge, which keeps the model
// trivially serializable.
type Element struct {
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Signature string `json:"signature,omitempty"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	Parent    int    `json:"parent"`
}

// Diagnostic records a per-construct degradation: the construct kind that
// was skipped and why. The rest of the analysis is unaffected.
type Diagnostic struct {
	Construct string `json:"construct"`
	Message   string `json:"message"`
}

// Analysis is the complete structural model for one document. It is
// immutable once produced.
type Analysis struct {
	Path        string       `json:"path"`
	Language    string       `json:"language"`
	Elements    []Element    `json:"elements"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Depth returns the nesting depth of the element at index i (0 for
// top-level elements).
func (a *Analysis) Depth(i int) int {
	depth := 0
	for p := a.Elements[i].Parent; p >= 0; p = a.Elements[p].Parent {
		depth++
	}
	return depth
}

// Children returns the indexes of the direct children of element i, in
// element order. Pass -1 for top-level elements.
func (a *Analysis) Children(i int) []int {
	var out []int
	for j := range a.Elements {
		if a.Elements[j].Parent == i {
			out = append(out, j)
		}
	}
	return out
}
