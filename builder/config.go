// SPDX-License-Identifier: MIT
// Package: misgen/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   - rng      = nil             (stochastic constructors fail with ErrNeedRandSource)
//   - maxDraws = UnlimitedDraws  (Rejection keeps drawing until m edges exist)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand

	// Upper bound on vertex-pair draws in Rejection; <= 0 means unbounded.
	maxDraws int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		maxDraws: UnlimitedDraws,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
