package csr

import (
	"fmt"
	"sort"

	"github.com/galactic-beyond/melon/graph"
)

// ErrVertexOutOfRange is returned by Builder.AddArc when either endpoint
// falls outside [0, nbVertices). This is the one genuine input-validation
// boundary in this package: arcs are supplied by a caller assembling a
// graph from arbitrary outside data, unlike the already-validated internal
// calls the rest of this module makes to each other.
type ErrVertexOutOfRange struct {
	Vertex     graph.Vertex
	NbVertices int
}

func (e *ErrVertexOutOfRange) Error() string {
	return fmt.Sprintf("csr: vertex %d is out of range [0, %d)", e.Vertex, e.NbVertices)
}

// Builder accumulates arcs with an attached property of type P and produces
// an immutable Digraph plus the arcs' properties, sorted and reindexed into
// the same arc-id order as the Digraph.
//
// The single type parameter P covers the common case of one property per
// arc (typically a weight). Go generics carry no variadic type parameter,
// so a caller needing several independent properties per arc (weight and
// capacity, say) declares a struct for P and carries both fields through.
type Builder[P any] struct {
	nbVertices int
	withReverse bool
	sources    []graph.Vertex
	targets    []graph.Vertex
	props      []P
}

// NewBuilder starts a Builder for a graph with nbVertices vertices.
// withReverse controls whether Build also derives in-adjacency, matching
// the corresponding Digraph construction flag.
func NewBuilder[P any](nbVertices int, withReverse bool) *Builder[P] {
	return &Builder[P]{nbVertices: nbVertices, withReverse: withReverse}
}

// AddArc queues an arc from u to v carrying property p. The arc's eventual
// id is determined by Build's stable sort, not by call order: callers that
// need to recover "the arc I just added" must do so via the property they
// attached to it, or by re-deriving it from the built ArcMap.
func (b *Builder[P]) AddArc(u, v graph.Vertex, p P) error {
	if int(u) >= b.nbVertices || u < 0 {
		return &ErrVertexOutOfRange{Vertex: u, NbVertices: b.nbVertices}
	}
	if int(v) >= b.nbVertices || v < 0 {
		return &ErrVertexOutOfRange{Vertex: v, NbVertices: b.nbVertices}
	}
	b.sources = append(b.sources, u)
	b.targets = append(b.targets, v)
	b.props = append(b.props, p)
	return nil
}

// NbArcsSoFar reports how many arcs have been queued.
func (b *Builder[P]) NbArcsSoFar() int { return len(b.sources) }

// Build stably sorts the queued arcs by (source, target) (ties broken by
// insertion order, so parallel arcs keep a deterministic relative position)
// and returns the resulting Digraph together with the properties reindexed
// into the same order, as a DenseArcMap.
func (b *Builder[P]) Build() (*Digraph, *graph.DenseArcMap[P]) {
	n := len(b.sources)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		si, sj := b.sources[order[i]], b.sources[order[j]]
		if si != sj {
			return si < sj
		}
		return b.targets[order[i]] < b.targets[order[j]]
	})

	sortedSources := make([]graph.Vertex, n)
	sortedTargets := make([]graph.Vertex, n)
	sortedProps := make([]P, n)
	for newID, oldID := range order {
		sortedSources[newID] = b.sources[oldID]
		sortedTargets[newID] = b.targets[oldID]
		sortedProps[newID] = b.props[oldID]
	}

	d := NewDigraph(b.nbVertices, sortedSources, sortedTargets, b.withReverse)
	return d, graph.NewDenseArcMapFromSlice(sortedProps)
}
