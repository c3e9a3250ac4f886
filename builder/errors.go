// SPDX-License-Identifier: MIT
// Package: cavewalk/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; context is attached with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrConstructFailed indicates the core graph rejected an arc for a reason
// other than the tolerated duplicate/self-loop cases.
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect wrapped core error */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps an inner message with the given method context.
// It returns an error of the form "<Method>: <formatted message>"; use %w in
// format to keep the cause visible to errors.Is/As.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}
