// SPDX-License-Identifier: MIT
// Package: misgen/core
//
// api.go - read-only diagnostics over a Graph.

package core

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	MaxEdges    int // n*(n-1)/2

	// Density is EdgeCount/MaxEdges, 0 when MaxEdges is 0.
	Density float64

	MinDegree  int
	MaxDegree  int
	MeanDegree float64

	IsolatedVertices int
	Components       int // connected components, isolated vertices included
}

// Stats produces a deterministic snapshot of the graph's size, degree
// distribution and connectivity.
//
// Implementation:
//   - Stage 1: under mu.RLock copy the degree table and the edge list.
//   - Stage 2: outside the lock, mirror the graph into a gonum
//     simple.UndirectedGraph and count components with topo.ConnectedComponents.
//
// Complexity:
//   - Time O(V+E), Space O(V+E) for the gonum mirror.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	degree := make([]int, len(g.degree))
	copy(degree, g.degree)
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	g.mu.RUnlock()

	st := GraphStats{
		VertexCount: g.n,
		EdgeCount:   len(edges),
		MaxEdges:    MaxEdges(g.n),
	}
	if st.MaxEdges > 0 {
		st.Density = float64(st.EdgeCount) / float64(st.MaxEdges)
	}
	if g.n == 0 {
		return &st
	}

	st.MinDegree = degree[0]
	sum := 0
	for _, d := range degree {
		if d < st.MinDegree {
			st.MinDegree = d
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
		if d == 0 {
			st.IsolatedVertices++
		}
		sum += d
	}
	st.MeanDegree = float64(sum) / float64(g.n)

	ug := simple.NewUndirectedGraph()
	for v := 0; v < g.n; v++ {
		ug.AddNode(simple.Node(v))
	}
	for _, e := range edges {
		ug.SetEdge(ug.NewEdge(simple.Node(e.V1), simple.Node(e.V2)))
	}
	st.Components = len(topo.ConnectedComponents(ug))

	return &st
}
