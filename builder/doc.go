// Package builder turns a vertex count and an edge count into a random
// simple undirected graph, using functional-options-style building blocks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:   creates a core.Graph on n vertices and applies Constructors in order.
//     – Generate:     one-call form taking a Strategy.
//   - Sampling constructors (Constructor implementations):
//     – Exhaustive:   enumerate all pairs, shuffle, keep the first m.
//     – Rejection:    draw random pairs, drop loops and repeats, stop at m.
//   - Strategy enum:  StrategyExhaustive, StrategyRejection (+ ParseStrategy, flag.Value).
//   - Options:        WithSeed, WithRand, WithMaxDraws.
//
// Guarantees:
//
//   - Feasibility first: a request for more edges than free vertex pairs fails
//     with ErrInfeasible before any sampling, so Rejection always terminates.
//   - Determinism: the same seed, n, m and Strategy give the same edges in the
//     same order.
//   - No global random state: the RNG comes only from WithSeed/WithRand.
//   - Constructors never panic; option constructors panic on nonsense input.
package builder
