// SPDX-License-Identifier: MIT

// Package dfs implements a resumable depth-first path enumerator over a
// core.Graph. Each call to Next yields at most one start→end path; the
// frontier between calls lives in the PathFinder, so enumeration can be
// paused, resumed or abandoned without recursion.
//
// Options:
//
//   - WithPolicy(p)          strict or revisit-once admissibility.
//   - WithContext(ctx)       cancellation, checked once per pop.
//   - WithMaxDepth(limit)    stop expanding paths of limit arcs (>=0).
//   - WithOnPop(fn)          hook on every popped path; error aborts.
//   - WithTerminals(s, e)    override the reserved start/end labels.
//
// Errors (reported by Err after Next returns false):
//
//   - ErrInconsistentGraph   a popped label has no adjacency entry.
//   - context.Canceled       if ctx is done.
//   - any error returned by OnPop.
package dfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/cavewalk/core"
)

// Graph is the read-only adjacency surface a PathFinder needs.
// *core.Graph satisfies it.
type Graph interface {
	HasVertex(id string) bool
	NeighborIDs(id string) ([]string, error)
}

// isNilGraph catches both a nil interface and a typed-nil *core.Graph.
func isNilGraph(g Graph) bool {
	if g == nil {
		return true
	}
	cg, ok := g.(*core.Graph)

	return ok && cg == nil
}

// PathFinder enumerates start→end paths lazily.
//
// A PathFinder owns its frontier and only reads the graph, so several
// finders may share one frozen graph concurrently. A single PathFinder is
// not safe for concurrent use.
type PathFinder struct {
	graph    Graph   // borrowed, read-only
	opts     Options // resolved options
	frontier []Path  // LIFO stack of in-progress paths
	current  Path    // last yielded path
	err      error   // abort reason
	done     bool    // frontier drained
	stats    Stats   // diagnostics
}

// NewPathFinder prepares an enumerator over g. The frontier starts with the
// single path [start]; if g has no start vertex the frontier starts empty
// and the first Next reports exhaustion.
//
// Errors:
//   - ErrGraphNil if g is nil (including a typed-nil *core.Graph).
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func NewPathFinder(g Graph, opts ...Option) (*PathFinder, error) {
	if isNilGraph(g) {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	pf := &PathFinder{graph: g, opts: o}
	if g.HasVertex(o.StartID) {
		pf.push(Path{Vertices: []string{o.StartID}})
	}

	return pf, nil
}

// Next advances to the next start→end path and reports whether one was
// found. After Next returns false, Err distinguishes exhaustion (nil) from
// an abort.
//
// Implementation (one call):
//  1. Pop the most recently pushed path p.
//  2. If p already ends at end, yield it.
//  3. Otherwise extend p by every admissible neighbor of its last label, in
//     adjacency order. The first extension reaching end is held for this
//     call; every other extension is pushed.
//  4. Yield the held extension if there is one, else repeat from 1.
//  5. An empty frontier means exhaustion.
//
// Complexity:
//   - Amortised O(d·L) per pop, d = out-degree, L = path length (the
//     membership test is linear in the path).
func (pf *PathFinder) Next() bool {
	if pf.done || pf.err != nil {
		return false
	}
	pf.current = Path{}

	var (
		p    Path
		held Path
		ok   bool
		err  error
	)
	for len(pf.frontier) > 0 {
		// 1. Cancellation check
		if err = pf.opts.Ctx.Err(); err != nil {
			pf.err = err

			return false
		}

		p = pf.pop()

		// 2. Pre-expansion hook
		if pf.opts.OnPop != nil {
			if err = pf.opts.OnPop(p); err != nil {
				pf.err = fmt.Errorf("dfs: OnPop hook for %q: %w", p.String(), err)

				return false
			}
		}

		// 3. Paths queued behind an earlier end arc of the same pop
		if p.Last() == pf.opts.EndID {
			pf.yield(p)

			return true
		}

		// 4. Depth limit
		if pf.opts.MaxDepth >= 0 && p.Len() >= pf.opts.MaxDepth {
			pf.stats.Truncated++
			continue
		}

		// 5. Expand
		if held, ok, err = pf.expand(p); err != nil {
			pf.err = err

			return false
		}
		if ok {
			pf.yield(held)

			return true
		}
	}
	pf.done = true

	return false
}

// Path returns the path found by the last successful Next. The caller owns
// the returned value.
func (pf *PathFinder) Path() Path { return pf.current }

// Err returns the reason enumeration stopped early, or nil on exhaustion.
func (pf *PathFinder) Err() error { return pf.err }

// Pending returns the number of paths waiting on the frontier.
func (pf *PathFinder) Pending() int { return len(pf.frontier) }

// Stats returns a snapshot of the enumerator diagnostics.
func (pf *PathFinder) Stats() Stats { return pf.stats }

// Policy returns the admissibility policy in use.
func (pf *PathFinder) Policy() Policy { return pf.opts.Policy }

// All adapts Next/Path to a range-over-func iterator. Breaking out of the
// loop leaves the frontier intact, so enumeration may be resumed with Next
// or another All. Check Err after the loop.
func (pf *PathFinder) All() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		for pf.Next() {
			if !yield(pf.Path()) {
				return
			}
		}
	}
}

// expand pushes every admissible extension of p except the first one
// reaching end, which it returns.
func (pf *PathFinder) expand(p Path) (Path, bool, error) {
	last := p.Last()
	nbs, err := pf.graph.NeighborIDs(last)
	if err != nil {
		return Path{}, false, fmt.Errorf("%w: NeighborIDs(%q): %w", ErrInconsistentGraph, last, err)
	}

	var (
		held    Path
		holding bool
		next    Path
		ok      bool
		nid     string
	)
	for _, nid = range nbs {
		if next, ok = pf.admit(p, nid); !ok {
			pf.stats.Rejected++
			continue
		}
		if nid == pf.opts.EndID && !holding {
			held, holding = next, true
			continue
		}
		pf.push(next)
	}

	return held, holding, nil
}

// admit applies the active policy to neighbor nid of p and returns the
// extended path when nid is admissible.
func (pf *PathFinder) admit(p Path, nid string) (Path, bool) {
	// start is a pure source under both policies
	if nid == pf.opts.StartID {
		return Path{}, false
	}
	if core.Classify(nid) == core.KindBig || !p.Contains(nid) {
		return p.extend(nid, p.Revisited), true
	}
	// nid is Small and already on the path: spend the one-time allowance
	if pf.opts.Policy == PolicyRevisitOnce && !p.Revisited {
		return p.extend(nid, true), true
	}

	return Path{}, false
}

func (pf *PathFinder) push(p Path) {
	pf.frontier = append(pf.frontier, p)
	pf.stats.Pushes++
}

func (pf *PathFinder) pop() Path {
	last := len(pf.frontier) - 1
	p := pf.frontier[last]
	pf.frontier[last] = Path{} // release labels for GC
	pf.frontier = pf.frontier[:last]
	pf.stats.Pops++

	return p
}

func (pf *PathFinder) yield(p Path) {
	pf.current = p
	pf.stats.Yields++
}
