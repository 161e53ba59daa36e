// SPDX-License-Identifier: MIT
// Package: misgen/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w: "<Method>: <detail>: %w".
//   - Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (vertex count, edge count)
// is below the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInfeasible indicates that the requested edge count exceeds the number of
// distinct unordered pairs, n*(n-1)/2, so no simple graph can satisfy it.
// Usage: if errors.Is(err, ErrInfeasible) { /* lower m or raise n */ }.
var ErrInfeasible = errors.New("builder: infeasible edge count")

// ErrNeedRandSource indicates that a stochastic constructor was run without a
// *rand.Rand in the resolved config (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its permitted
// attempts (WithMaxDraws for Rejection) or was handed a nil constructor.
// Usage: if errors.Is(err, ErrConstructFailed) { /* retry with another seed */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownStrategy indicates a Strategy value or name outside the supported set.
var ErrUnknownStrategy = errors.New("builder: unknown strategy")

// --- Implementation Notes ----------------------------------------------------
//
// Priority when several validations fail:
//   - ErrTooFewVertices  (n < 1, m < 0)
//   - ErrInfeasible      (m > n*(n-1)/2)
//   - ErrNeedRandSource  (stochastic path without rng)
//   - ErrConstructFailed (only after the draw budget is spent)
//
// Tests assert with errors.Is; error strings are not part of the contract.
