// impl_cycle.go — Cycle(n) builds a directed n-cycle 0 -> 1 -> ... -> n-1 -> 0.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Emits arcs i -> (i+1)%n for i=0..n-1 in increasing i order.
//
// Complexity: O(n) vertices, O(n) arcs.
package graphgen

import (
	"fmt"

	"github.com/galactic-beyond/melon/graph"
	"github.com/galactic-beyond/melon/graph/csr"
)

const minCycleVertices = 3

// Cycle builds a directed n-vertex cycle.
func Cycle[T any](n int, opts ...Option[T]) (*csr.Digraph, *graph.DenseArcMap[T], error) {
	if n < minCycleVertices {
		return nil, nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	b := csr.NewBuilder[T](n, cfg.withReverse)
	for i := 0; i < n; i++ {
		w := cfg.weightFn(cfg.rng)
		if err := b.AddArc(graph.Vertex(i), graph.Vertex((i+1)%n), w); err != nil {
			return nil, nil, fmt.Errorf("Cycle: AddArc(%d->%d): %w", i, (i+1)%n, err)
		}
	}

	d, weights := b.Build()
	return d, weights, nil
}
