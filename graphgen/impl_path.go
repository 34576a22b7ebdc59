// impl_path.go — Path(n) builds a simple directed path 0 -> 1 -> ... -> n-1.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Emits arcs (i-1) -> i for i=1..n-1 in increasing i order.
//
// Complexity: O(n) vertices, O(n-1) arcs.
package graphgen

import (
	"fmt"

	"github.com/galactic-beyond/melon/graph"
	"github.com/galactic-beyond/melon/graph/csr"
)

const minPathVertices = 2

// Path builds a directed path over n vertices.
func Path[T any](n int, opts ...Option[T]) (*csr.Digraph, *graph.DenseArcMap[T], error) {
	if n < minPathVertices {
		return nil, nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathVertices, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	b := csr.NewBuilder[T](n, cfg.withReverse)
	for i := 1; i < n; i++ {
		w := cfg.weightFn(cfg.rng)
		if err := b.AddArc(graph.Vertex(i-1), graph.Vertex(i), w); err != nil {
			return nil, nil, fmt.Errorf("Path: AddArc(%d->%d): %w", i-1, i, err)
		}
	}

	d, weights := b.Build()
	return d, weights, nil
}
