// SPDX-License-Identifier: MIT
//
// errors.go - error types for the converters package.

package converters

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the sentinel every *MalformedInputError unwraps to.
// Usage: if errors.Is(err, ErrMalformedInput) { /* reject the input file */ }.
var ErrMalformedInput = errors.New("converters: malformed input")

// MalformedInputError reports an edge record that cannot be split into
// exactly two non-empty labels. It is fatal to the whole run.
type MalformedInputError struct {
	// Line is the 1-based line number of the record, or 0 when the record
	// did not come from text (e.g. built in code).
	Line int

	// Record is the offending record as read.
	Record string

	// Reason explains which rule the record broke.
	Reason string
}

// Error implements error.
func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("converters: malformed edge on line %d %q: %s", e.Line, e.Record, e.Reason)
	}

	return fmt.Sprintf("converters: malformed edge %q: %s", e.Record, e.Reason)
}

// Unwrap exposes ErrMalformedInput to errors.Is.
func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }
