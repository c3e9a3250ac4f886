// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: mixed-mode constructor, read-only flag getters,
//       Freeze and the Stats snapshot.

package core

// NewMixedGraph creates a new Graph that allows per-edge directedness
// overrides via WithEdgeDirected.
//
// Implementation:
//   - Stage 1: Prepend WithMixedEdges() to the caller-provided options.
//   - Stage 2: Delegate to NewGraph(...).
//
// The caller's opts slice is not mutated.
//
// Complexity:
//   - Time O(len(opts)), Space O(len(opts)).
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges()) // first option sets mixed-mode flag
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// Directed reports the default directedness applied to newly created edges.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted by policy.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// Freeze makes the graph read-only. Every later AddVertex or AddEdge call
// returns ErrFrozen. Freeze is idempotent.
//
// Once frozen, a graph can be shared by any number of concurrent readers
// (for example one path enumerator per policy) without external locking.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Freeze() {
	g.muVert.Lock()
	g.frozen = true
	g.muVert.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.frozen
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	DirectedDefault bool
	AllowsMulti     bool
	AllowsLoops     bool
	MixedMode       bool
	Frozen          bool

	VertexCount int
	BigCount    int
	SmallCount  int

	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
}

// Stats produces a snapshot of configuration flags and catalog sizes,
// classifying vertices by Kind and edges by their Directed flag.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, snapshot flags and classify vertices.
//   - Stage 2: Under muEdgeAdj.RLock, count and classify edges.
//
// The two locks are never held at the same time.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		Frozen:          g.frozen,
		VertexCount:     len(g.vertices),
	}
	var v *Vertex
	for _, v = range g.vertices {
		if v.Kind == KindBig {
			stats.BigCount++
		} else {
			stats.SmallCount++
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
