// SPDX-License-Identifier: MIT
// Package: cavewalk/builder
//
// options.go - functional options for the builder package.
//
// Option constructors VALIDATE and PANIC on meaningless inputs; constructors
// themselves never panic.

package builder

import "github.com/katalvlaran/cavewalk/converters"

// BuilderOption customizes construction by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithTerminals overrides the reserved source and sink labels.
// Panics if either is empty or both are equal.
func WithTerminals(start, end string) BuilderOption {
	if start == "" || end == "" || start == end {
		panic("builder: WithTerminals requires two distinct non-empty labels")
	}
	return func(c *builderConfig) {
		c.startID = start
		c.endID = end
	}
}

// WithOnDuplicate installs a hook called for every record that repeats an
// existing arc. Panics on nil.
func WithOnDuplicate(fn func(rec converters.EdgeRecord)) BuilderOption {
	if fn == nil {
		panic("builder: WithOnDuplicate(nil)")
	}
	return func(c *builderConfig) { c.onDuplicate = fn }
}

// WithOnSelfLoop installs a hook called for every record whose labels are
// equal. Panics on nil.
func WithOnSelfLoop(fn func(rec converters.EdgeRecord)) BuilderOption {
	if fn == nil {
		panic("builder: WithOnSelfLoop(nil)")
	}
	return func(c *builderConfig) { c.onSelfLoop = fn }
}
