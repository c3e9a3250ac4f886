// SPDX-License-Identifier: MIT

package bfs

import (
	"github.com/katalvlaran/cavewalk/core"
)

// Survey summarizes what a path enumeration over a cave graph will face,
// computed in O(V+E) before any path is enumerated.
type Survey struct {
	// HasStart and EndReachable tell whether any start→end path can exist.
	HasStart     bool
	EndReachable bool

	// ShortestPath is one fewest-arcs start→end route, nil if none.
	ShortestPath []string

	// Reachable is the number of vertices reachable from start.
	Reachable int

	// BigPairs lists arcs between two Big vertices reachable from start,
	// as [from, to]. Any such pair lets a path bounce forever, so path
	// enumeration without a depth limit never terminates.
	BigPairs [][2]string
}

// Unbounded reports whether unrestricted enumeration would not terminate.
// A reachable Big pair grows the frontier forever even when end is out of
// reach.
func (s Survey) Unbounded() bool { return len(s.BigPairs) > 0 }

// SurveyCave inspects g from startID towards endID. A missing start is not
// an error; it yields a zero Survey.
//
// Implementation:
//   - Stage 1: BFS from startID, never re-entering startID.
//   - Stage 2: collect Big→Big arcs among reached vertices, in visit order.
//
// Complexity:
//   - Time O(V+E), Space O(V).
func SurveyCave(g Graph, startID, endID string, opts ...Option) (Survey, error) {
	var s Survey
	if isNilGraph(g) {
		return s, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return s, nil
	}
	s.HasStart = true

	opts = append(opts, WithFilterNeighbor(func(_, nbr string) bool { return nbr != startID }))
	res, err := BFS(g, startID, opts...)
	if err != nil {
		return s, err
	}
	s.Reachable = len(res.Order)
	if res.Reached(endID) {
		s.EndReachable = true
		if s.ShortestPath, err = res.PathTo(endID); err != nil {
			return s, err
		}
	}

	var nbs []string
	for _, id := range res.Order {
		if core.Classify(id) != core.KindBig {
			continue
		}
		if nbs, err = g.NeighborIDs(id); err != nil {
			return s, err
		}
		for _, nbr := range nbs {
			if core.Classify(nbr) == core.KindBig {
				s.BigPairs = append(s.BigPairs, [2]string{id, nbr})
			}
		}
	}

	return s, nil
}
