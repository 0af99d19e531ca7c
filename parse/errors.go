package parse

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel every ParseError unwraps to.
var ErrSyntax = errors.New("parse: malformed valve description")

// ParseError reports a line that does not describe a valid valve.
type ParseError struct {
	// Line is the 1-based line number; 0 when the error concerns the whole input.
	Line int

	// Text is the offending line with surrounding space trimmed.
	Text string

	// Reason is a short human-readable cause.
	Reason string

	// Err is an optional underlying cause (e.g. a strconv or core error).
	Err error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse: line %d: %s", e.Line, e.Reason)
	if e.Line == 0 {
		msg = "parse: " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Text != "" {
		msg += fmt.Sprintf(" (%q)", e.Text)
	}

	return msg
}

// Unwrap exposes both ErrSyntax and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSyntax}
	}

	return []error{ErrSyntax, e.Err}
}
