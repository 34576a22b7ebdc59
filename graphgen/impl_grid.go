// impl_grid.go — Grid(rows, cols) builds an orthogonal 4-neighborhood grid.
//
// Canonical model:
//   - Vertex at (r,c) gets id r*cols+c, row-major.
//   - Arcs to right (r,c+1) and bottom (r+1,c) neighbors, both directions,
//     so the result behaves like an undirected grid under the directed
//     graph.Digraph abstraction every engine in this module is written
//     against.
//
// Contract:
//   - rows >= 1 and cols >= 1 (else ErrTooFewVertices).
//
// Complexity: O(rows*cols) vertices and arcs.
package graphgen

import (
	"fmt"

	"github.com/galactic-beyond/melon/graph"
	"github.com/galactic-beyond/melon/graph/csr"
)

const minGridDim = 1

// Grid builds a rows x cols orthogonal grid, arcs in both directions.
func Grid[T any](rows, cols int, opts ...Option[T]) (*csr.Digraph, *graph.DenseArcMap[T], error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be >= %d): %w", rows, cols, minGridDim, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	id := func(r, c int) graph.Vertex { return graph.Vertex(r*cols + c) }

	b := csr.NewBuilder[T](rows*cols, cfg.withReverse)
	addBoth := func(u, v graph.Vertex) error {
		w := cfg.weightFn(cfg.rng)
		if err := b.AddArc(u, v, w); err != nil {
			return err
		}
		return b.AddArc(v, u, w)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := id(r, c)
			if c+1 < cols {
				if err := addBoth(u, id(r, c+1)); err != nil {
					return nil, nil, fmt.Errorf("Grid: AddArc right of (%d,%d): %w", r, c, err)
				}
			}
			if r+1 < rows {
				if err := addBoth(u, id(r+1, c)); err != nil {
					return nil, nil, fmt.Errorf("Grid: AddArc below (%d,%d): %w", r, c, err)
				}
			}
		}
	}

	d, weights := b.Build()
	return d, weights, nil
}
