// SPDX-License-Identifier: MIT
// Package: cavewalk/builder
//
// config.go - internal configuration and deterministic defaults.

package builder

import (
	"github.com/katalvlaran/cavewalk/converters"
	"github.com/katalvlaran/cavewalk/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	startID string // pure source label
	endID   string // pure sink label

	// Diagnostic hooks; nil means "ignore silently".
	onDuplicate func(rec converters.EdgeRecord)
	onSelfLoop  func(rec converters.EdgeRecord)
}

// newBuilderConfig constructs a config with defaults and applies all
// options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		startID: core.StartID,
		endID:   core.EndID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
