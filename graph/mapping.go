package graph

// VertexMap is a read-only lookup vertex -> T. Implementations must be
// side-effect-free and deterministic.
type VertexMap[T any] interface {
	At(v Vertex) T
}

// ArcMap is a read-only lookup arc -> T. The length mapping every search
// engine borrows is an ArcMap[T] for the engine's distance type T.
type ArcMap[T any] interface {
	At(a Arc) T
}

// DenseVertexMap is a dense, slice-backed VertexMap[T]: a fixed-size
// contiguous mapping from vertex id to value. It is the concrete type the
// engines allocate internally for status/predecessor/distance bookkeeping,
// and it is equally usable by callers as a plain length/weight map.
type DenseVertexMap[T any] struct {
	data []T
}

// NewDenseVertexMap allocates a map of size n with each entry zero-valued.
func NewDenseVertexMap[T any](n int) *DenseVertexMap[T] {
	return &DenseVertexMap[T]{data: make([]T, n)}
}

// NewDenseVertexMapFilled allocates a map of size n with every entry set
// to init.
func NewDenseVertexMapFilled[T any](n int, init T) *DenseVertexMap[T] {
	m := NewDenseVertexMap[T](n)
	for i := range m.data {
		m.data[i] = init
	}
	return m
}

// At returns the value stored for v. Out-of-range v is a contract
// violation (it panics via the slice bounds check, same as any other
// dense-map misuse in this module).
func (m *DenseVertexMap[T]) At(v Vertex) T { return m.data[v] }

// Set stores value for v.
func (m *DenseVertexMap[T]) Set(v Vertex, value T) { m.data[v] = value }

// Len reports the map's fixed size.
func (m *DenseVertexMap[T]) Len() int { return len(m.data) }

// Fill resets every entry to value, without reallocating — the backing
// for Dijkstra.Reset() and BidirectionalDijkstra.Reset(), which reuse their
// allocations across runs rather than freeing them.
func (m *DenseVertexMap[T]) Fill(value T) {
	for i := range m.data {
		m.data[i] = value
	}
}

// DenseArcMap is a dense, slice-backed ArcMap[T], the arc-indexed
// counterpart of DenseVertexMap.
type DenseArcMap[T any] struct {
	data []T
}

// NewDenseArcMap allocates a map of size n with each entry zero-valued.
func NewDenseArcMap[T any](n int) *DenseArcMap[T] {
	return &DenseArcMap[T]{data: make([]T, n)}
}

// NewDenseArcMapFromSlice wraps an existing slice (e.g. a builder's sorted
// property output) as an ArcMap without copying.
func NewDenseArcMapFromSlice[T any](data []T) *DenseArcMap[T] {
	return &DenseArcMap[T]{data: data}
}

// At returns the value stored for a.
func (m *DenseArcMap[T]) At(a Arc) T { return m.data[a] }

// Set stores value for a.
func (m *DenseArcMap[T]) Set(a Arc, value T) { m.data[a] = value }

// Len reports the map's fixed size.
func (m *DenseArcMap[T]) Len() int { return len(m.data) }

// ConstArcMap is an ArcMap[T] returning the same value for every arc —
// useful for unweighted (hop-count) traversals without materializing a
// slice of identical weights.
type ConstArcMap[T any] struct{ Value T }

// At returns the constant value, ignoring a.
func (m ConstArcMap[T]) At(Arc) T { return m.Value }

// FuncArcMap adapts a plain function to the ArcMap[T] interface, letting
// callers compute weights on the fly (e.g. from an externally-owned
// property array) without committing to DenseArcMap's storage.
type FuncArcMap[T any] func(Arc) T

// At evaluates the wrapped function.
func (f FuncArcMap[T]) At(a Arc) T { return f(a) }
