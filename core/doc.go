// Package core provides the thread-safe, insertion-ordered graph that the
// path enumerator searches.
//
// A Graph G = (V, E) holds:
//
//   - Vertices identified by string labels, each classified at registration
//     as KindBig (label starts with an uppercase letter, revisitable without
//     limit) or KindSmall (everything else, revisit-limited).
//   - Edges that are either undirected (mirrored in both endpoints'
//     adjacency) or directed arcs, selectable per edge in a mixed graph.
//
// Two labels are reserved: StartID ("start") and EndID ("end").
//
// Determinism:
//
//	Vertices(), Edges(), Neighbors(), NeighborIDs() and AdjacencyList() all
//	report insertion order, so two graphs built from the same input traverse
//	identically.
//
// Concurrency:
//
//	muVert guards the vertex catalog, muEdgeAdj guards edges and adjacency.
//	Freeze() turns the graph read-only; a frozen graph may be shared by any
//	number of concurrent readers.
//
// Errors:
//
//	ErrEmptyVertexID        - vertex ID is the empty string.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrLoopNotAllowed       - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges are disabled.
//	ErrMixedEdgesNotAllowed - per-edge direction outside mixed mode.
//	ErrFrozen               - mutation after Freeze.
//
// Quick example:
//
//	g := core.NewMixedGraph()
//	_, _ = g.AddEdge(core.StartID, "A", core.WithEdgeDirected(true))
//	_, _ = g.AddEdge("A", "b")
//	_, _ = g.AddEdge("A", core.EndID, core.WithEdgeDirected(true))
//	g.Freeze()
package core
