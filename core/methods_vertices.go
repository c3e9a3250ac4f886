// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex registration & queries.
//
// Determinism:
//   - Vertices() returns IDs in registration order.

package core

// AddVertex inserts a vertex if missing (idempotent). The vertex Kind is
// derived from the ID with Classify.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, reject frozen graphs, then register
//     the vertex if it is missing.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap an empty adjacency bucket
//     so neighborhood queries on an isolated vertex succeed.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrFrozen: if the graph was frozen.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{
		ID:       id,
		Kind:     Classify(id),
		Metadata: make(map[string]interface{}),
	}
	g.vertexOrder = append(g.vertexOrder, id)

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the registered vertex with the given ID.
// The returned pointer is live catalog data; treat it as read-only.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertex IDs in registration order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// VertexCount returns the number of registered vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
