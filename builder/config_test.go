// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, UnlimitedDraws, cfg.maxDraws)
}

func TestRNGOptions(t *testing.T) {
	exp := rand.New(rand.NewSource(123))
	cfg := newBuilderConfig(WithRand(exp))
	assert.Same(t, exp, cfg.rng)

	// WithSeed gives reproducible streams.
	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	// Last option wins.
	c := newBuilderConfig(WithRand(exp), WithSeed(1))
	assert.NotSame(t, exp, c.rng)
}

func TestWithMaxDraws(t *testing.T) {
	assert.Equal(t, 17, newBuilderConfig(WithMaxDraws(17)).maxDraws)
	assert.Equal(t, UnlimitedDraws, newBuilderConfig(WithMaxDraws(17), WithMaxDraws(0)).maxDraws)
}
