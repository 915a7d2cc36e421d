package strukt

import (
	"errors"
	"fmt"
)

// StructError is the single error kind produced by validation. It carries a
// human-readable label for the failed check, the exact offending leaf value,
// and the path from the root input down to that leaf.
type StructError struct {
	Message string
	Input   any
	Path    Path
}

// NewError builds a top-level StructError with an empty path. Enclosing
// combinators localize it later via Prefixed.
func NewError(message string, input any) *StructError {
	return &StructError{Message: message, Input: input}
}

// Prefixed returns a copy of the error with k prepended to its path. The
// receiver is left untouched so sibling validations never observe each
// other's prefixes.
func (e *StructError) Prefixed(k Key) *StructError {
	return &StructError{Message: e.Message, Input: e.Input, Path: e.Path.Prepend(k)}
}

// Error summarizes the failure, e.g. "string at /a/b (got 1)".
func (e *StructError) Error() string {
	return fmt.Sprintf("%s at %s (got %v)", e.Message, e.Path.Pointer(), e.Input)
}

// AsStructError extracts a *StructError from an error chain using errors.As.
func AsStructError(err error) (*StructError, bool) {
	if err == nil {
		return nil, false
	}
	var se *StructError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
