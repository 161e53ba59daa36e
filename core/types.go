// SPDX-License-Identifier: MIT
// Package core defines the Edge and Graph types used by the generator,
// and provides thread-safe primitives for building and querying simple
// undirected graphs over integer vertices.
//
// This file declares Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound      - an endpoint lies outside [0, VertexCount()).
//	ErrLoopNotAllowed      - both endpoints are the same vertex.
//	ErrMultiEdgeNotAllowed - the unordered pair is already present.
package core

import (
	"errors"
	"strconv"
	"sync"

	"gonum.org/v1/gonum/stat/combin"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex outside [0,n).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a duplicate unordered pair was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an unordered vertex pair stored canonically with V1 < V2.
//
// Edge is comparable and is used directly as a set key.
type Edge struct {
	// V1 is the smaller endpoint.
	V1 int

	// V2 is the larger endpoint.
	V2 int
}

// NewEdge returns the canonical form of the pair (a, b): (min, max).
// It does not reject a == b; Graph.AddEdge does.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{V1: a, V2: b}
}

// String renders the edge as "v1 v2", the layout of an edge line on disk.
func (e Edge) String() string {
	return strconv.Itoa(e.V1) + " " + strconv.Itoa(e.V2)
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithEdgeCapacity pre-sizes the edge catalog for m edges.
// Negative values are ignored.
func WithEdgeCapacity(m int) GraphOption {
	return func(g *Graph) {
		if m > 0 {
			g.capHint = m
		}
	}
}

// Graph is a simple undirected graph on the vertex set [0, n).
//
// Edges are kept twice: a slice in insertion order (the order in which
// they are serialized) and a set keyed by canonical Edge for O(1)
// duplicate checks. mu guards both, plus the per-vertex degree counters.
type Graph struct {
	mu sync.RWMutex

	n       int // vertex count, fixed at construction
	capHint int // initial capacity for the edge catalog

	edges  []Edge            // insertion order
	index  map[Edge]struct{} // canonical pair set
	degree []int             // degree[v] for v in [0,n)
}

// NewGraph creates an edgeless Graph with vertices 0..n-1.
// A negative n is treated as zero.
// Complexity: O(n) for the degree table.
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{n: n}
	for _, opt := range opts {
		opt(g)
	}
	g.edges = make([]Edge, 0, g.capHint)
	g.index = make(map[Edge]struct{}, g.capHint)
	g.degree = make([]int, n)

	return g
}

// MaxEdges reports how many distinct unordered pairs exist on n vertices,
// n*(n-1)/2, computed with gonum's binomial coefficient. It returns 0 for n < 2.
func MaxEdges(n int) int {
	if n < 2 {
		return 0
	}

	return combin.Binomial(n, 2)
}
