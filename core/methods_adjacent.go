// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - All three return arcs in insertion order.
// Concurrency:
//   - muVert read lock, then muEdgeAdj read lock.

package core

// Neighbors returns the arcs leaving the given vertex.
//
// Neighborhood policy:
//   - Directed edges: included only in the bucket of e.From.
//   - Undirected edges: included in the buckets of both endpoints; self-loops once.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Copy the bucket so callers never alias internal storage.
//
// Returns pointers to live catalog edges; treat them as read-only.
//
// Complexity:
//   - Time O(d), Space O(d), d = out-degree.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	bucket := g.adjacency[id]
	out := make([]*Edge, len(bucket))
	copy(out, bucket)

	return out, nil
}

// NeighborIDs returns the IDs reachable from id in one step, in arc
// insertion order. With multi-edges enabled an ID may repeat.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound (as Neighbors).
//
// Complexity:
//   - Time O(d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(nbs))
	for i, e := range nbs {
		out[i] = e.Other(id)
	}

	return out, nil
}

// AdjacencyList returns a snapshot mapping every vertex ID to the ordered
// IDs reachable from it. Vertices without outgoing arcs map to an empty
// slice. The returned slices share no backing storage with the graph.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	var (
		id     string
		bucket []*Edge
	)
	for _, id = range g.vertexOrder {
		bucket = g.adjacency[id]
		ids := make([]string, len(bucket))
		for i, e := range bucket {
			ids[i] = e.Other(id)
		}
		out[id] = ids
	}

	return out
}
