// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an error wrapping a package sentinel
// when its precondition is violated.
package builder

import (
	"fmt"

	"github.com/katalvlaran/misgen/core"
)

// validateMin ensures that got ≥ min, otherwise ErrTooFewVertices.
//
// Parameters:
//   - method: constructor name constant, e.g. MethodExhaustive.
//   - param:  parameter label used in the message ("n", "m").
//   - got:    actual value supplied by the user.
//   - min:    minimal acceptable value.
//
// Complexity: O(1) time and space.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateFeasible ensures m more edges fit next to the existing ones,
// i.e. existing+m ≤ n*(n-1)/2, otherwise ErrInfeasible.
// Complexity: O(1).
func validateFeasible(method string, n, existing, m int) error {
	if free := core.MaxEdges(n) - existing; m > free {
		return fmt.Errorf("%s: m=%d exceeds %d free pairs on n=%d vertices: %w",
			method, m, free, n, ErrInfeasible)
	}

	return nil
}

// validateEdgeRequest runs the shared checks for the sampling constructors:
// the graph's vertex count, the edge count, feasibility against the pairs
// still free in g, then the RNG.
// An empty request (m == 0) still needs no RNG.
func validateEdgeRequest(method string, g *core.Graph, m int, cfg builderConfig) error {
	n := g.VertexCount()
	if err := validateMin(method, "n", n, MinVertices); err != nil {
		return err
	}
	if err := validateMin(method, "m", m, MinEdges); err != nil {
		return err
	}
	if err := validateFeasible(method, n, g.EdgeCount(), m); err != nil {
		return err
	}
	if cfg.rng == nil && m > 0 {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}
