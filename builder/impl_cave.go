// SPDX-License-Identifier: MIT
// Package: cavewalk/builder
//
// impl_cave.go - CaveEdges constructor: edge records with start/end boundary rules.

package builder

import (
	"errors"

	"github.com/katalvlaran/cavewalk/converters"
	"github.com/katalvlaran/cavewalk/core"
)

// CaveEdges returns a Constructor inserting one arc set per record.
//
// Rules per record (a, b), first match wins:
//  1. a == start: directed start→b.
//  2. b == start: directed start→a.
//  3. a == end:   directed b→end.
//  4. b == end:   directed a→end.
//  5. otherwise:  undirected a─b.
//
// Self-loops only register the vertex. Records that repeat an existing arc
// are skipped. Requires a mixed-mode graph for the directed arcs.
func CaveEdges(records []converters.EdgeRecord) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		var rec converters.EdgeRecord
		for _, rec = range records {
			if err := rec.Validate(); err != nil {
				return builderErrorf(MethodCaveEdges, "%w", err)
			}
			if err := addCaveEdge(g, cfg, rec); err != nil {
				return err
			}
		}

		return nil
	}
}

func addCaveEdge(g *core.Graph, cfg builderConfig, rec converters.EdgeRecord) error {
	a, b := rec.From, rec.To

	if a == b {
		if err := g.AddVertex(a); err != nil {
			return builderErrorf(MethodCaveEdges, "%s: %w: %w", rec, ErrConstructFailed, err)
		}
		if cfg.onSelfLoop != nil {
			cfg.onSelfLoop(rec)
		}

		return nil
	}

	var (
		from, to string
		opts     []core.EdgeOption
	)
	switch {
	case a == cfg.startID:
		from, to, opts = a, b, directed
	case b == cfg.startID:
		from, to, opts = b, a, directed
	case a == cfg.endID:
		from, to, opts = b, a, directed
	case b == cfg.endID:
		from, to, opts = a, b, directed
	default:
		from, to = a, b
	}

	_, err := g.AddEdge(from, to, opts...)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, core.ErrMultiEdgeNotAllowed):
		if cfg.onDuplicate != nil {
			cfg.onDuplicate(rec)
		}

		return nil
	default:
		return builderErrorf(MethodCaveEdges, "%s: %w: %w", rec, ErrConstructFailed, err)
	}
}

// directed is the per-edge option set for terminal arcs.
var directed = []core.EdgeOption{core.WithEdgeDirected(true)}
