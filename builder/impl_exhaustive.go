// SPDX-License-Identifier: MIT
// Package: misgen/builder
//
// impl_exhaustive.go - implementation of Exhaustive(m) constructor.
//
// Canonical model:
//   - Enumerate all C(n,2) unordered pairs (i,j), i<j, in lexicographic order
//     (gonum combin.Combinations).
//   - Permute the full list with cfg.rng.Shuffle and keep the first m that
//     are not already edges of g.
//   - On an edgeless graph the result is a uniformly random m-subset of pairs,
//     drawn without replacement.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), m ≥ 0 (else ErrTooFewVertices).
//   - m ≤ free pairs = n*(n-1)/2 - g.EdgeCount() (else ErrInfeasible); checked before enumeration.
//   - cfg.rng must be non-nil when m > 0 (else ErrNeedRandSource).
//   - Edges are added in shuffled order; that is the order they serialize in.
//
// Complexity:
//   - Time: O(n²) to enumerate and shuffle, O(m) to insert.
//   - Space: O(n²) for the pair list, independent of m.
//
// Determinism:
//   - Fixed enumeration order + seeded Fisher-Yates ⇒ identical edges for a fixed seed.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/misgen/core"
)

// pairSize is the k of C(n,k): edges are 2-subsets of the vertex set.
const pairSize = 2

// Exhaustive returns a Constructor that adds m new edges chosen uniformly at
// random, without replacement, from the unordered pairs of g's vertices.
func Exhaustive(m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate (fail fast, zero side-effects on invalid input).
		if err := validateEdgeRequest(MethodExhaustive, g, m, cfg); err != nil {
			return err
		}
		if m == 0 {
			return nil
		}

		// 2) Enumerate every pair in lexicographic order: (0,1),(0,2),...,(n-2,n-1).
		pairs := combin.Combinations(g.VertexCount(), pairSize)

		// 3) Permute the whole list; deterministic per RNG state.
		cfg.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

		// 4) Take pairs in shuffled order, skipping ones g already holds.
		added := 0
		for _, p := range pairs {
			if added == m {
				break
			}
			if g.HasEdge(p[0], p[1]) {
				continue
			}
			if err := g.AddEdge(p[0], p[1]); err != nil {
				return fmt.Errorf("%s: %w", MethodExhaustive, err)
			}
			added++
		}

		// 5) Post-condition: exactly m edges, never a silent under-delivery.
		if added != m {
			return fmt.Errorf("%s: produced %d edges, want %d: %w", MethodExhaustive, added, m, ErrConstructFailed)
		}

		return nil
	}
}
