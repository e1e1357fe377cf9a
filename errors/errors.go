package errors

import "fmt"

// LexError represents a single lexical error. It includes the position of
// the error.
type LexError struct {
	Message string
	Line    int
	Column  int
}

func (e LexError) Error() string {
	if e.Line == 0 {
		return "nain: lexical error: " + e.Message
	}
	return fmt.Sprintf("nain: lexical error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// LexErrors is a slice of LexError that implements the error interface.
// This allows returning every lexical error in a file at once.
type LexErrors []LexError

func (p LexErrors) Error() string {
	switch len(p) {
	case 0:
		return ""
	case 1:
		return p[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", p[0].Error(), len(p)-1)
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (p LexErrors) Unwrap() []error {
	errs := make([]error, len(p))
	for i, e := range p {
		errs[i] = e
	}
	return errs
}
