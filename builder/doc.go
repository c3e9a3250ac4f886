// Package builder assembles frozen core.Graph values from edge records,
// applying the boundary rules the path enumerator relies on.
//
// Boundary rules, checked per record (a, b) in this order:
//
//	a == start → arc start→b
//	b == start → arc start→a
//	a == end   → arc b→end
//	b == end   → arc a→end
//	otherwise  → undirected edge a─b
//
// so start is a pure source and end a pure sink by construction.
//
// Tolerated input:
//
//   - Self-loops register their vertex but add no arc.
//   - Duplicate records (including b-a after a-b) add no second arc.
//   - Isolated vertices are registered and never reached.
//
// Every graph returned by CaveGraph is frozen.
//
// Errors:
//
//	*converters.MalformedInputError - a record has an empty label.
//	ErrConstructFailed              - the core graph rejected an edge.
package builder
