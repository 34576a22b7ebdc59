// impl_random_sparse.go — RandomSparse(n, p) samples an Erdos-Renyi-like
// directed graph over n vertices with independent arc probability p.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - WithRand is required whenever 0 < p < 1 (else ErrNeedRandSource);
//     p in {0,1} is deterministic and needs no RNG.
//   - Considers all ordered pairs (i,j), i != j, in row-major order.
//
// Complexity: O(n) vertices, O(n^2) Bernoulli trials.
package graphgen

import (
	"fmt"

	"github.com/galactic-beyond/melon/graph"
	"github.com/galactic-beyond/melon/graph/csr"
)

const (
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples a directed graph over n vertices with independent
// arc inclusion probability p.
func RandomSparse[T any](n int, p float64, opts ...Option[T]) (*csr.Digraph, *graph.DenseArcMap[T], error) {
	if n < minRandomSparseVertices {
		return nil, nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, nil, fmt.Errorf("RandomSparse: p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && p > 0.0 && p < 1.0 {
		return nil, nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
	}

	b := csr.NewBuilder[T](n, cfg.withReverse)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			include := p == 1.0
			if cfg.rng != nil && p > 0.0 && p < 1.0 {
				include = cfg.rng.Float64() <= p
			}
			if !include {
				continue
			}
			w := cfg.weightFn(cfg.rng)
			if err := b.AddArc(graph.Vertex(i), graph.Vertex(j), w); err != nil {
				return nil, nil, fmt.Errorf("RandomSparse: AddArc(%d->%d): %w", i, j, err)
			}
		}
	}

	d, weights := b.Build()
	return d, weights, nil
}
