// Package core provides the in-memory graph that the generator fills and
// the file codec serializes.
//
// A Graph G = (V,E) here is always simple and undirected:
//
//   - V is the fixed integer range [0, n), set by NewGraph(n).
//   - Every Edge is stored canonically with V1 < V2 (NewEdge).
//   - AddEdge rejects out-of-range endpoints (ErrVertexNotFound),
//     self-loops (ErrLoopNotAllowed) and duplicate pairs (ErrMultiEdgeNotAllowed).
//   - Edges() returns edges in insertion order, so a graph built from a
//     seeded source serializes byte-for-byte identically on every run.
//
// Core Methods:
//
//	AddEdge(a, b int) error          // O(1) amortized
//	HasEdge(a, b int) bool           // O(1)
//	Edges() []Edge                   // O(E) copy
//	EdgeCount() int                  // O(1)
//	VertexCount() int                // O(1)
//	Degree(id int) (int, error)      // O(1)
//	NeighborIDs(id int) ([]int, error) // O(E)
//	Stats() *GraphStats              // O(V+E)
//
// MaxEdges(n) gives n*(n-1)/2, the largest edge count a simple graph on n
// vertices can hold; generators check requests against it before sampling.
//
// All methods are safe for concurrent use; a single sync.RWMutex guards
// the edge catalog and degree table.
package core
