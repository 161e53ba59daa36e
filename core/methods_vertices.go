// File: methods_vertices.go
// Role: Vertex queries: VertexCount/HasVertex/Degree/NeighborIDs.
// The vertex set is fixed to [0, n) at construction, so there is no
// vertex mutation API.

package core

import (
	"fmt"
	"sort"
)

// VertexCount returns n, the size of the vertex set [0, n).
func (g *Graph) VertexCount() int {
	return g.n
}

// HasVertex reports whether id lies in [0, n).
func (g *Graph) HasVertex(id int) bool {
	return id >= 0 && id < g.n
}

// Degree returns the number of edges incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasVertex(id) {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.degree[id], nil
}

// NeighborIDs returns the vertices adjacent to id, sorted ascending.
// Complexity: O(E) scan of the edge catalog; the graph keeps no adjacency lists.
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", id, ErrVertexNotFound)
	}

	g.mu.RLock()
	out := make([]int, 0, g.degree[id])
	for _, e := range g.edges {
		switch id {
		case e.V1:
			out = append(out, e.V2)
		case e.V2:
			out = append(out, e.V1)
		}
	}
	g.mu.RUnlock()

	sort.Ints(out)

	return out, nil
}
