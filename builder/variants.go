// Package builder defines the selectable edge-sampling strategies.
package builder

import (
	"fmt"
	"strings"
)

// Strategy enumerates the interchangeable ways of choosing m distinct
// unordered pairs out of the n*(n-1)/2 available.
type Strategy int

const (
	// StrategyExhaustive enumerates every pair, shuffles, and keeps the first m.
	// Complexity: O(n²) time and space regardless of m.
	StrategyExhaustive Strategy = iota

	// StrategyRejection draws random pairs and discards loops and repeats
	// until m distinct edges exist.
	// Complexity: expected O(m) draws while m is well below n*(n-1)/2,
	// approaching O(M log M) for the complete graph (M = n*(n-1)/2).
	StrategyRejection
)

// strategyNames maps each Strategy to its flag/CLI spelling.
var strategyNames = map[Strategy]string{
	StrategyExhaustive: "exhaustive",
	StrategyRejection:  "rejection",
}

// Strategies returns all supported strategies in declaration order.
func Strategies() []Strategy {
	return []Strategy{StrategyExhaustive, StrategyRejection}
}

// String returns the lowercase name ("exhaustive", "rejection"), or
// "Strategy(<n>)" for values outside the enum.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a name (case-insensitive, surrounding spaces ignored)
// back to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if strategyNames[s] == key {
			return s, nil
		}
	}

	return 0, fmt.Errorf("ParseStrategy(%q): want one of %s: %w", name, strategyList(), ErrUnknownStrategy)
}

// Constructor returns the Constructor implementing s for m edges.
func (s Strategy) Constructor(m int) (Constructor, error) {
	switch s {
	case StrategyExhaustive:
		return Exhaustive(m), nil
	case StrategyRejection:
		return Rejection(m), nil
	default:
		return nil, fmt.Errorf("%s: %w", s, ErrUnknownStrategy)
	}
}

// Set implements flag.Value so a Strategy can be bound with flag.Var.
func (s *Strategy) Set(name string) error {
	v, err := ParseStrategy(name)
	if err != nil {
		return err
	}
	*s = v

	return nil
}

func strategyList() string {
	names := make([]string, 0, len(strategyNames))
	for _, s := range Strategies() {
		names = append(names, strategyNames[s])
	}

	return strings.Join(names, "|")
}
