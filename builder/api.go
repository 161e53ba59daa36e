// SPDX-License-Identifier: MIT
// Package: misgen/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Generate(n, m, strategy, opts...) is the one-call form used by the CLI.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/misgen/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before the first RNG draw and return sentinel errors (no panics).
//   - Leave g untouched when validation fails.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph on n vertices, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrTooFewVertices if n < MinVertices.
//   - ErrConstructFailed on a nil constructor.
//   - Any constructor error, wrapped via %w.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	return buildGraph(n, 0, bopts, cons...)
}

// Generate builds a simple undirected graph with n vertices and exactly m
// edges using the sampling strategy s.
//
// Typical use:
//
//	g, err := builder.Generate(100, 250, builder.StrategyRejection, builder.WithSeed(0))
//
// Errors: ErrUnknownStrategy, ErrTooFewVertices, ErrInfeasible, ErrNeedRandSource,
// ErrConstructFailed (each wrapped with context).
func Generate(n, m int, s Strategy, opts ...BuilderOption) (*core.Graph, error) {
	con, err := s.Constructor(m)
	if err != nil {
		return nil, err
	}

	return buildGraph(n, m, opts, con)
}

// buildGraph is BuildGraph with an edge-capacity hint for the core graph.
func buildGraph(n, capHint int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if err := validateMin(MethodBuildGraph, "n", n, MinVertices); err != nil {
		return nil, err
	}

	g := core.NewGraph(n, core.WithEdgeCapacity(capHint))
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}
