// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Kind and Graph declarations, sentinel errors, options
//       and the NewGraph constructor.
// Concurrency:
//   - muVert guards vertices, vertexOrder and the frozen flag.
//   - muEdgeAdj guards edges, edgeOrder and adjacency.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Reserved vertex labels. Both classify as KindSmall.
const (
	// StartID is the label every enumerated path begins with.
	StartID = "start"

	// EndID is the label every enumerated path ends with.
	EndID = "end"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override when mixed-edges are disabled.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")

	// ErrFrozen indicates a mutation was attempted on a graph after Freeze.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Kind classifies a vertex by its revisit allowance.
type Kind uint8

const (
	// KindSmall vertices may be revisited only as a path policy allows.
	KindSmall Kind = iota

	// KindBig vertices may be revisited without limit.
	KindBig
)

// String returns "small" or "big".
func (k Kind) String() string {
	if k == KindBig {
		return "big"
	}

	return "small"
}

// Classify derives the Kind of a vertex from its label: a label whose first
// rune is an uppercase letter is KindBig, everything else (including the
// empty label) is KindSmall.
// Complexity: O(1).
func Classify(id string) Kind {
	r, _ := utf8.DecodeRuneInString(id)
	if r != utf8.RuneError && unicode.IsUpper(r) {
		return KindBig
	}

	return KindSmall
}

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph; Kind is derived from
// the ID by Classify when the vertex is registered.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Kind is the revisit classification of this Vertex.
	Kind Kind

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// A directed edge is a single arc From→To. An undirected edge is stored once
// in the catalog and mirrored in the adjacency of both endpoints.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed marks a one-way arc.
	Directed bool
}

// Other returns the endpoint of e opposite to id.
// For a directed edge seen from its source this is always To.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges.
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is the in-memory adjacency structure searched by the dfs package.
//
// Unlike a hash-ordered adjacency, every outgoing arc list keeps insertion
// order, so traversals over a graph built from the same input always visit
// neighbors in the same sequence.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, vertexOrder, frozen
	muEdgeAdj sync.RWMutex // guards edges, edgeOrder, adjacency

	// Configuration flags
	directed   bool // default directedness
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	allowMixed bool // allow per-edge direction
	frozen     bool // reject all mutations once set

	// Storage
	nextEdgeID  uint64             // edge ID generator
	vertices    map[string]*Vertex // vertex ID → Vertex
	vertexOrder []string           // registration order
	edges       map[string]*Edge   // edge ID → Edge
	edgeOrder   []string           // insertion order

	// adjacency[v] lists the arcs leaving v, in insertion order.
	// An undirected edge appears in the buckets of both endpoints.
	adjacency map[string][]*Edge
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, no loops, no multi-edges, no mixed mode.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
