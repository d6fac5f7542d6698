package lang

import "fmt"

// ParseError indicates a whole-document parse failure. Byte/line-level
// operations remain available for the same document.
type ParseError struct {
	Language string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing %s source: %v", e.Language, e.Err)
	}
	return fmt.Sprintf("parsing %s source failed", e.Language)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnsupportedConstructError indicates a plugin was asked for a construct
// kind it does not declare. Recoverable within one analysis.
type UnsupportedConstructError struct {
	Language  string
	Construct Construct
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("language %s does not support construct %q", e.Language, e.Construct)
}

// UnsupportedLanguageError indicates no plugin could be resolved for a
// file. Structural analysis is unavailable; measure and extract are not.
type UnsupportedLanguageError struct {
	Path string
	Hint string
}

func (e *UnsupportedLanguageError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("unsupported language %q for %s", e.Hint, e.Path)
	}
	return fmt.Sprintf("could not determine language of %s", e.Path)
}
