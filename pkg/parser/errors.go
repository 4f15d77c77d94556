package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two fatal parse conditions. Malformed node
// lines and missing roots are recoverable and surface as diagnostics on
// the document, never as errors.
var (
	// ErrMalformedLine marks a node line that cannot be parsed. It is
	// returned by ParseNodeLine and recovered by the document parser.
	ErrMalformedLine = errors.New("malformed node line")

	// ErrUnrecognizedFormat is returned when a document contains neither
	// net delimiters nor any parsable node lines, which signals that the
	// wrong file was supplied.
	ErrUnrecognizedFormat = errors.New("unrecognized routing file format")
)

// ParseError provides structured error information for parse failures.
type ParseError struct {
	Op    string // operation that failed, e.g. "open", "read", "parse"
	Line  int    // 1-based input line number, 0 when not line-scoped
	Text  string // offending input text, truncated
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		if e.Text != "" {
			return fmt.Sprintf("%s line %d (%q): %v", e.Op, e.Line, e.Text, e.Cause)
		}
		return fmt.Sprintf("%s line %d: %v", e.Op, e.Line, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches this error's cause.
func (e *ParseError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

const maxErrText = 80

// truncate shortens offending input for error messages.
func truncate(s string) string {
	if len(s) <= maxErrText {
		return s
	}
	return s[:maxErrText] + "..."
}
