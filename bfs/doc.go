// Package bfs provides breadth-first search over a cave graph, returning
// unweighted shortest-path distances, parent links and visit order, plus
// SurveyCave, a linear-time pre-flight check for path enumeration.
//
// What:
//
//	BFS(g, start, opts...) visits every vertex reachable from start along
//	stored arc directions, in nondecreasing distance. Neighbors are expanded
//	in adjacency (insertion) order, so Order is deterministic.
//
//	SurveyCave(g, start, end) answers three questions before a potentially
//	exponential enumeration starts: is there a start vertex, is end
//	reachable, and can a path cycle forever between two Big caves.
//
// Options:
//
//   - WithContext(ctx)          cancellation, checked once per dequeue.
//   - WithMaxDepth(d)           d > 0 limits depth; d == 0 unlimited.
//   - WithFilterNeighbor(fn)    skip arcs where fn(curr, nbr) is false.
//   - WithOnVisit(fn)           hook; a returned error aborts.
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors.
//
// Complexity:
//
//	Time O(V+E), Space O(V).
package bfs
