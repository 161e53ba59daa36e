// SPDX-License-Identifier: MIT
// Package: misgen/builder
//
// impl_rejection.go - implementation of Rejection(m) constructor.
//
// Canonical model:
//   - Repeatedly draw two independent uniform indices u, v in [0,n).
//   - Discard u == v; canonicalize (min,max); discard pairs already in g.
//   - Stop once m new edges have been inserted.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), m ≥ 0 (else ErrTooFewVertices).
//   - m ≤ free pairs = n*(n-1)/2 - g.EdgeCount() (else ErrInfeasible). This
//     check is what guarantees termination.
//   - cfg.rng must be non-nil when m > 0 (else ErrNeedRandSource).
//   - With WithMaxDraws(k), k > 0, at most k pair draws are made; running out
//     yields ErrConstructFailed and g keeps the edges inserted so far.
//
// Complexity:
//   - Expected draws: Σ_{i<m} M/(M-i) · n/(n-1) with M = free pairs, i.e. O(m)
//     while m ≪ M and O(M log M) for the complete graph.
//   - Space: O(m) in the core graph's edge set.
//
// Determinism:
//   - Edges are inserted in first-accepted order; the core graph keeps that
//     order, so output is identical for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/misgen/core"
)

// Rejection returns a Constructor that adds m new edges by rejection sampling
// uniform vertex pairs.
func Rejection(m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate (feasibility makes the loop below terminate with probability 1).
		if err := validateEdgeRequest(MethodRejection, g, m, cfg); err != nil {
			return err
		}

		n := g.VertexCount()
		rng := cfg.rng
		limit := cfg.maxDraws

		// 2) Draw until m new pairs are accepted or the draw budget is spent.
		added, draws := 0, 0
		for added < m {
			if limit > 0 && draws >= limit {
				return fmt.Errorf("%s: accepted %d of %d edges within %d draws: %w",
					MethodRejection, added, m, limit, ErrConstructFailed)
			}
			draws++

			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue // self-loop
			}
			if g.HasEdge(u, v) {
				continue // repeat
			}
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: %w", MethodRejection, err)
			}
			added++
		}

		return nil
	}
}
