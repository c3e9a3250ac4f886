// SPDX-License-Identifier: MIT
// Package: cavewalk/builder
//
// api.go - thin public entry-points for the builder package.

package builder

import (
	"github.com/katalvlaran/cavewalk/converters"
	"github.com/katalvlaran/cavewalk/core"
)

// Method names used as error prefixes.
const (
	MethodBuildGraph = "BuildGraph"
	MethodCaveEdges  = "CaveEdges"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate early and return errors, never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately. The graph is not frozen here.
//
// Complexity:
//   - O(len(bopts)) for options plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	var (
		con Constructor
		err error
	)
	for _, con = range cons {
		if err = con(g, cfg); err != nil {
			return nil, builderErrorf(MethodBuildGraph, "%w", err)
		}
	}

	return g, nil
}

// CaveGraph builds the frozen adjacency structure searched by dfs.PathFinder
// from parsed edge records.
//
// Implementation:
//   - Stage 1: BuildGraph over a mixed-mode graph with CaveEdges(records).
//   - Stage 2: Freeze the result so no engine ever sees it change.
//
// Errors:
//   - *converters.MalformedInputError (wrapped) for a record with an empty label.
//   - ErrConstructFailed (wrapped) if the core graph rejects an arc.
//
// Complexity:
//   - Time O(R·d) for R records, d = max out-degree (duplicate checks).
func CaveGraph(records []converters.EdgeRecord, opts ...BuilderOption) (*core.Graph, error) {
	g, err := BuildGraph([]core.GraphOption{core.WithMixedEdges()}, opts, CaveEdges(records))
	if err != nil {
		return nil, err
	}
	g.Freeze()

	return g, nil
}

// CaveGraphFromText parses s with converters.ParseEdgeListString and builds
// the result with CaveGraph.
func CaveGraphFromText(s string, opts ...BuilderOption) (*core.Graph, error) {
	records, err := converters.ParseEdgeListString(s)
	if err != nil {
		return nil, err
	}

	return CaveGraph(records, opts...)
}
