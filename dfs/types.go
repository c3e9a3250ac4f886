// SPDX-License-Identifier: MIT

// Package dfs defines the policy, path, option and diagnostic types used by
// the resumable path enumerator.
package dfs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/cavewalk/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to NewPathFinder
	// or one of the counting helpers.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrInconsistentGraph indicates the adjacency structure referenced a
	// vertex it cannot resolve. It is an internal-consistency fault, never a
	// user input error.
	ErrInconsistentGraph = errors.New("dfs: inconsistent adjacency structure")

	// ErrUnknownPolicy is returned by ParsePolicy for an unrecognised name.
	ErrUnknownPolicy = errors.New("dfs: unknown revisit policy")
)

// Policy selects which neighbors are admissible for an in-progress path.
type Policy uint8

const (
	// PolicyStrict admits a Big vertex always and a Small vertex only if the
	// path has not visited it yet.
	PolicyStrict Policy = iota

	// PolicyRevisitOnce additionally admits one already-visited Small vertex
	// per path; after that the path behaves as under PolicyStrict.
	PolicyRevisitOnce
)

// String returns "strict" or "revisit-once".
func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyRevisitOnce:
		return "revisit-once"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// Policies lists every policy in declaration order.
func Policies() []Policy { return []Policy{PolicyStrict, PolicyRevisitOnce} }

// ParsePolicy maps a policy name to its Policy. It accepts the String()
// forms plus the short aliases "a" and "b", case-insensitively.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "strict", "a":
		return PolicyStrict, nil
	case "revisit-once", "b":
		return PolicyRevisitOnce, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Path is an ordered sequence of vertex labels plus the revisit bit.
//
// Paths handed out by a PathFinder own their label slice; extending a path
// always copies, so no two frontier entries share storage.
type Path struct {
	// Vertices lists the labels from the start vertex onwards.
	Vertices []string

	// Revisited is true once a Small vertex has been entered a second time.
	Revisited bool
}

// Last returns the final label, or "" for an empty path.
func (p Path) Last() string {
	if len(p.Vertices) == 0 {
		return ""
	}

	return p.Vertices[len(p.Vertices)-1]
}

// Len returns the number of arcs walked (labels minus one, never negative).
func (p Path) Len() int {
	if len(p.Vertices) == 0 {
		return 0
	}

	return len(p.Vertices) - 1
}

// Contains reports whether id occurs anywhere in the path.
// Time Complexity: O(n).
func (p Path) Contains(id string) bool { return indexOf(p.Vertices, id) >= 0 }

// String joins the labels with commas.
func (p Path) String() string { return strings.Join(p.Vertices, ",") }

// extend returns p + [id] with its own backing array.
func (p Path) extend(id string, revisited bool) Path {
	vs := make([]string, len(p.Vertices), len(p.Vertices)+1)
	copy(vs, p.Vertices)

	return Path{Vertices: append(vs, id), Revisited: revisited}
}

// indexOf returns the first index of val in s, or -1 if not found.
func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// Option configures optional behavior of a PathFinder.
// Use with NewPathFinder(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation; checked once per frontier pop.
	// Defaults to context.Background().
	Ctx context.Context

	// Policy selects the admissibility rule. Default is PolicyStrict.
	Policy Policy

	// StartID and EndID name the source and sink. Defaults are
	// core.StartID and core.EndID.
	StartID string
	EndID   string

	// MaxDepth, if non-negative, stops expanding paths that already walked
	// MaxDepth arcs. Default is -1 (no limit).
	MaxDepth int

	// OnPop, if non-nil, is invoked with every path popped from the frontier
	// before it is expanded or yielded. Returning an error aborts the
	// enumeration; the error is reported by Err().
	OnPop func(p Path) error
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - PolicyStrict
//   - core.StartID / core.EndID terminals
//   - No depth limit (MaxDepth = -1)
//   - No pop hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Policy:   PolicyStrict,
		StartID:  core.StartID,
		EndID:    core.EndID,
		MaxDepth: -1,
		OnPop:    nil,
	}
}

// WithContext sets the Context for enumeration.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPolicy selects the revisit policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithTerminals overrides the source and sink labels.
// Empty values keep the defaults.
func WithTerminals(start, end string) Option {
	return func(o *Options) {
		if start != "" {
			o.StartID = start
		}
		if end != "" {
			o.EndID = end
		}
	}
}

// WithMaxDepth limits path length to limit arcs; negative means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithOnPop installs fn as a pre-expansion hook.
func WithOnPop(fn func(p Path) error) Option {
	return func(o *Options) {
		o.OnPop = fn
	}
}

// Stats reports what a PathFinder has done so far.
type Stats struct {
	// Pops counts paths taken off the frontier.
	Pops int

	// Pushes counts paths put onto the frontier, including the initial one.
	Pushes int

	// Yields counts paths handed to the caller.
	Yields int

	// Rejected counts neighbors refused by the policy.
	Rejected int

	// Truncated counts paths not expanded because of MaxDepth.
	Truncated int
}

// Counts holds the number of paths found under each policy.
type Counts struct {
	Strict      int
	RevisitOnce int
}

// Get returns the count recorded for p.
func (c Counts) Get(p Policy) int {
	if p == PolicyRevisitOnce {
		return c.RevisitOnce
	}

	return c.Strict
}
