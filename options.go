package misgen

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/misgen/builder"
)

// Option customizes a Generate call.
type Option func(*config)

// config is the resolved Generate configuration.
type config struct {
	strategy builder.Strategy
	seed     int64
	maxDraws int
	logger   zerolog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		strategy: builder.StrategyExhaustive,
		seed:     builder.DefaultSeed,
		maxDraws: builder.UnlimitedDraws,
		logger:   zerolog.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// builderOptions translates cfg into builder options.
func (c config) builderOptions() []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithSeed(c.seed),
		builder.WithMaxDraws(c.maxDraws),
	}
}

// WithStrategy selects the edge-sampling strategy (default StrategyExhaustive).
func WithStrategy(s builder.Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// WithSeed sets the RNG seed (default builder.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithMaxDraws bounds the Rejection strategy's pair draws; 0 means unbounded.
// Panics if k < 0.
func WithMaxDraws(k int) Option {
	if k < 0 {
		panic("misgen: WithMaxDraws(k<0)")
	}
	return func(c *config) { c.maxDraws = k }
}

// WithLogger routes status lines to l. Without it Generate is silent.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}
