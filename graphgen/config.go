package graphgen

import "math/rand"

// Config aggregates the knobs every constructor in this package accepts.
// It is resolved from zero or more Options and passed by value internally.
type Config[T any] struct {
	withReverse bool
	rng         *rand.Rand
	weightFn    func(*rand.Rand) T
}

// Option configures a graphgen constructor.
type Option[T any] func(*Config[T])

// WithReverseAdjacency makes the constructed Digraph build its reverse
// adjacency, so the result is usable directly with bidijkstra.New.
func WithReverseAdjacency[T any]() Option[T] {
	return func(c *Config[T]) { c.withReverse = true }
}

// WithRand supplies the random source for stochastic constructors
// (RandomSparse) and for WithWeightFunc generators that sample a weight.
func WithRand[T any](rng *rand.Rand) Option[T] {
	return func(c *Config[T]) { c.rng = rng }
}

// WithWeightFunc overrides the per-arc weight generator. The default
// generator returns T's zero value for every arc.
func WithWeightFunc[T any](f func(*rand.Rand) T) Option[T] {
	return func(c *Config[T]) { c.weightFn = f }
}

func newConfig[T any](opts ...Option[T]) Config[T] {
	var zero T
	cfg := Config[T]{weightFn: func(*rand.Rand) T { return zero }}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
