// Package cavewalk counts and lists every start→end route through a cave
// system whose caves are either big (revisitable without limit) or small
// (revisit-limited).
//
// 🚀 What is cavewalk?
//
//	A small, thread-safe toolkit that brings together:
//		• converters: parse "a-b" edge lists with line-accurate errors
//		• core:       insertion-ordered graph with Big/Small vertex kinds
//		• builder:    turn edge records into a frozen cave graph
//		• bfs:        reachability and a pre-flight SurveyCave check
//		• dfs:        resumable, lazy path enumeration under two policies
//
// Policies:
//
//	strict        no small cave is entered twice.
//	revisit-once  at most one small cave per path is entered twice.
//
// Quick example:
//
//	g, _ := builder.CaveGraphFromText("start-A\nA-b\nA-end\nb-end")
//	n, _ := dfs.CountPaths(g, dfs.WithPolicy(dfs.PolicyRevisitOnce))
//
// The cavewalk command (cmd/cavewalk) wraps the same packages:
//
//	cavewalk count input.txt
//	cavewalk paths --policy strict --limit 5 input.txt
package cavewalk
