// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/HasEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import "strconv"

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge, optionally directed in a mixed graph, and
// returns its ID. Missing endpoints are registered on the fly.
//
// Steps:
//  1. Validate IDs, loops and per-edge options.
//  2. Ensure endpoints via AddVertex (rejects frozen graphs).
//  3. Lock muEdgeAdj, check the multi-edge constraint.
//  4. Build the Edge with the graph default direction, apply opts.
//  5. Append the arc to adjacency[from]; mirror into adjacency[to] when undirected.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMixedEdgesNotAllowed,
//     ErrMultiEdgeNotAllowed, ErrFrozen.
//
// Complexity: O(d) for the multi-edge check, d = out-degree of from.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}
	if len(opts) > 0 && !g.MixedEdges() {
		return "", ErrMixedEdgesNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	e := &Edge{From: from, To: to, Directed: g.Directed()}
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if hasArc(g, from, to) || (!e.Directed && hasArc(g, to, from)) {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 4) Store and link adjacency
	e.ID = nextEdgeID(g)
	g.edges[e.ID] = e
	g.edgeOrder = append(g.edgeOrder, e.ID)
	g.adjacency[from] = append(g.adjacency[from], e)

	// 5) Mirror undirected
	if !e.Directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], e)
	}

	return e.ID, nil
}

// HasEdge reports whether an arc from→to can be followed, i.e. a directed
// edge from→to or an undirected edge between from and to exists.
// Complexity: O(d), d = out-degree of from.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return hasArc(g, from, to)
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edgeOrder))
	var eid string
	for _, eid = range g.edgeOrder {
		out = append(out, g.edges[eid])
	}

	return out
}

// EdgeCount returns the number of edges in the catalog. An undirected edge
// counts once even though it is reachable from both endpoints.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// hasArc must be called with muEdgeAdj held.
func hasArc(g *Graph, from, to string) bool {
	var e *Edge
	for _, e = range g.adjacency[from] {
		if e.Other(from) == to {
			return true
		}
	}

	return false
}

// nextEdgeID must be called with muEdgeAdj write lock held.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
