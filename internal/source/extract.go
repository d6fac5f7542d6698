package source

import "fmt"

// Position describes the exact location of a returned text slice in its
// document, in absolute line numbers and byte offsets.
type Position struct {
	StartLine int `json:"start_line"`
	EndLine   int `json:"end_line"`
	StartByte int `json:"start_byte"`
	EndByte   int `json:"end_byte"`
}

// RangeError indicates a requested line range outside the document.
type RangeError struct {
	StartLine  int
	EndLine    int
	TotalLines int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("line range %d-%d out of bounds (file has %d lines)",
		e.StartLine, e.EndLine, e.TotalLines)
}

// ExtractLines returns the exact bytes of lines startLine through endLine
// (1-indexed, inclusive) plus position metadata. The slice is taken
// directly via the line index, so cost is constant in the file size.
// No reformatting or trimming is applied.
func (d *Document) ExtractLines(startLine, endLine int) ([]byte, Position, error) {
	if startLine < 1 || endLine < startLine || endLine > d.LineCount() {
		return nil, Position{}, &RangeError{
			StartLine:  startLine,
			EndLine:    endLine,
			TotalLines: d.LineCount(),
		}
	}
	start, _ := d.lineSpan(startLine)
	_, end := d.lineSpan(endLine)
	return d.Content[start:end], Position{
		StartLine: startLine,
		EndLine:   endLine,
		StartByte: start,
		EndByte:   end,
	}, nil
}
