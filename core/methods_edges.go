// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import "fmt"

// AddEdge inserts the unordered pair {a, b}, stored canonically as (min, max).
//
// Steps:
//  1. Validate both endpoints lie in [0, n).
//  2. Reject a == b (ErrLoopNotAllowed).
//  3. Lock mu, reject an existing pair (ErrMultiEdgeNotAllowed).
//  4. Append to the ordered catalog, record in the set, bump both degrees.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b int) error {
	if a < 0 || a >= g.n {
		return fmt.Errorf("AddEdge(%d,%d): vertex %d: %w", a, b, a, ErrVertexNotFound)
	}
	if b < 0 || b >= g.n {
		return fmt.Errorf("AddEdge(%d,%d): vertex %d: %w", a, b, b, ErrVertexNotFound)
	}
	if a == b {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrLoopNotAllowed)
	}

	e := NewEdge(a, b)

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.index[e]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrMultiEdgeNotAllowed)
	}
	g.edges = append(g.edges, e)
	g.index[e] = struct{}{}
	g.degree[e.V1]++
	g.degree[e.V2]++

	return nil
}

// HasEdge reports whether the unordered pair {a, b} is present.
// Out-of-range endpoints simply report false.
func (g *Graph) HasEdge(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[NewEdge(a, b)]

	return ok
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
