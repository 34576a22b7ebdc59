// Package csr implements the static compressed-sparse-row digraph that
// backs every search engine in this module, plus the Builder that
// constructs one from an unordered arc stream.
//
// Digraph is immutable once built: there is no add/remove. Every search
// engine in this module assumes the graph it searches does not change
// mid-search.
package csr

import (
	"fmt"
	"iter"

	"github.com/galactic-beyond/melon/graph"
)

// ContractError marks a precondition violation. At construction it reports
// malformed input to the low-level NewDigraph constructor (unequal slice
// lengths, an out-of-range vertex, or unsorted sources); Builder always
// produces valid sorted input, so callers that go through Builder never see
// these. NewDigraph is exposed for callers who already have CSR-shaped,
// sorted data (e.g. loaded from elsewhere) and want to skip the builder's
// sort. The query methods also panic with it, on an out-of-range vertex or
// arc, or on InArcs/InNeighbors when reverse adjacency was not built.
type ContractError struct {
	Op     string
	Detail string
}

func (e *ContractError) Error() string {
	return "csr: " + e.Op + ": " + e.Detail
}

func contractViolation(op, detail string) {
	panic(&ContractError{Op: op, Detail: detail})
}

// Digraph is the immutable CSR structure. It satisfies graph.Digraph.
type Digraph struct {
	nbVertices int

	outBegin  []int32      // len nbVertices+1
	arcTarget []graph.Vertex // len nbArcs
	arcSource []graph.Vertex // len nbArcs, redundant with outBegin but gives O(1) Source(a)

	inBegin     []int32      // len nbVertices+1, nil if reverse adjacency was not requested
	inArcID     []graph.Arc    // len nbArcs: reverse position -> canonical arc id
	inArcSource []graph.Vertex // len nbArcs: source vertex at each reverse position
}

// NewDigraph builds a Digraph directly from parallel sources/targets slices
// of equal length |A|. Precondition: sources is sorted non-decreasing and
// every source/target is < nbVertices; violating either panics, since this
// is the low-level constructor that Builder.Build uses internally once it
// has already sorted and validated the arcs (see builder.go).
//
// withReverse controls whether the in-adjacency (in_begin/in_arc_id) is
// derived; omit it when only forward traversal (plain Dijkstra) is needed.
func NewDigraph(nbVertices int, sources, targets []graph.Vertex, withReverse bool) *Digraph {
	if len(sources) != len(targets) {
		contractViolation("NewDigraph", "sources and targets must have equal length")
	}
	nbArcs := len(sources)
	for i, s := range sources {
		if int(s) >= nbVertices || s < 0 {
			contractViolation("NewDigraph", fmt.Sprintf("source %d of arc %d is out of range", s, i))
		}
		if int(targets[i]) >= nbVertices || targets[i] < 0 {
			contractViolation("NewDigraph", fmt.Sprintf("target %d of arc %d is out of range", targets[i], i))
		}
		if i > 0 && sources[i-1] > s {
			contractViolation("NewDigraph", "sources must be sorted non-decreasing")
		}
	}

	outBegin := make([]int32, nbVertices+1)
	for _, s := range sources {
		outBegin[s+1]++
	}
	for i := 0; i < nbVertices; i++ {
		outBegin[i+1] += outBegin[i]
	}

	arcTarget := make([]graph.Vertex, nbArcs)
	copy(arcTarget, targets)
	arcSource := make([]graph.Vertex, nbArcs)
	copy(arcSource, sources)

	d := &Digraph{
		nbVertices: nbVertices,
		outBegin:   outBegin,
		arcTarget:  arcTarget,
		arcSource:  arcSource,
	}
	if withReverse {
		d.buildReverse()
	}
	return d
}

func (d *Digraph) buildReverse() {
	nbArcs := len(d.arcTarget)
	inBegin := make([]int32, d.nbVertices+1)
	for _, t := range d.arcTarget {
		inBegin[t+1]++
	}
	for i := 0; i < d.nbVertices; i++ {
		inBegin[i+1] += inBegin[i]
	}

	inArcID := make([]graph.Arc, nbArcs)
	inArcSource := make([]graph.Vertex, nbArcs)
	cursor := make([]int32, d.nbVertices)
	for a := 0; a < nbArcs; a++ {
		t := d.arcTarget[a]
		pos := inBegin[t] + cursor[t]
		cursor[t]++
		inArcID[pos] = graph.Arc(a)
		inArcSource[pos] = d.arcSource[a]
	}

	d.inBegin = inBegin
	d.inArcID = inArcID
	d.inArcSource = inArcSource
}

// NbVertices reports |V|.
func (d *Digraph) NbVertices() int { return d.nbVertices }

// NbArcs reports |A|.
func (d *Digraph) NbArcs() int { return len(d.arcTarget) }

// Vertices iterates [0, NbVertices) in order.
func (d *Digraph) Vertices() iter.Seq[graph.Vertex] {
	return func(yield func(graph.Vertex) bool) {
		for v := 0; v < d.nbVertices; v++ {
			if !yield(graph.Vertex(v)) {
				return
			}
		}
	}
}

// Arcs iterates [0, NbArcs) in order.
func (d *Digraph) Arcs() iter.Seq[graph.Arc] {
	return func(yield func(graph.Arc) bool) {
		for a := 0; a < len(d.arcTarget); a++ {
			if !yield(graph.Arc(a)) {
				return
			}
		}
	}
}

// OutArcs returns the arc ids leaving u, in source-major order.
func (d *Digraph) OutArcs(u graph.Vertex) []graph.Arc {
	d.mustBeValidVertex("OutArcs", u)
	begin, end := d.outBegin[u], d.outBegin[u+1]
	arcs := make([]graph.Arc, end-begin)
	for i := range arcs {
		arcs[i] = graph.Arc(begin) + graph.Arc(i)
	}
	return arcs
}

// InArcs returns the arc ids entering v. Precondition: the Digraph was
// built withReverse=true.
func (d *Digraph) InArcs(v graph.Vertex) []graph.Arc {
	d.mustBeValidVertex("InArcs", v)
	if d.inBegin == nil {
		contractViolation("InArcs", "reverse adjacency was not built")
	}
	begin, end := d.inBegin[v], d.inBegin[v+1]
	return d.inArcID[begin:end]
}

// Source returns the tail of a.
func (d *Digraph) Source(a graph.Arc) graph.Vertex {
	d.mustBeValidArc("Source", a)
	return d.arcSource[a]
}

// Target returns the head of a.
func (d *Digraph) Target(a graph.Arc) graph.Vertex {
	d.mustBeValidArc("Target", a)
	return d.arcTarget[a]
}

// SourcesMap returns a mapping view equivalent to Source.
func (d *Digraph) SourcesMap() graph.ArcMap[graph.Vertex] {
	return graph.FuncArcMap[graph.Vertex](d.Source)
}

// TargetsMap returns a mapping view equivalent to Target.
func (d *Digraph) TargetsMap() graph.ArcMap[graph.Vertex] {
	return graph.FuncArcMap[graph.Vertex](d.Target)
}

// OutNeighbors returns the targets of OutArcs(u).
func (d *Digraph) OutNeighbors(u graph.Vertex) []graph.Vertex {
	d.mustBeValidVertex("OutNeighbors", u)
	begin, end := d.outBegin[u], d.outBegin[u+1]
	return d.arcTarget[begin:end]
}

// InNeighbors returns the sources of InArcs(v). Precondition: the Digraph
// was built withReverse=true.
func (d *Digraph) InNeighbors(v graph.Vertex) []graph.Vertex {
	d.mustBeValidVertex("InNeighbors", v)
	if d.inBegin == nil {
		contractViolation("InNeighbors", "reverse adjacency was not built")
	}
	begin, end := d.inBegin[v], d.inBegin[v+1]
	return d.inArcSource[begin:end]
}

// IsValidVertex reports whether u is in [0, NbVertices).
func (d *Digraph) IsValidVertex(u graph.Vertex) bool {
	return u >= 0 && int(u) < d.nbVertices
}

// IsValidArc reports whether a is in [0, NbArcs).
func (d *Digraph) IsValidArc(a graph.Arc) bool {
	return a >= 0 && int(a) < len(d.arcTarget)
}

func (d *Digraph) mustBeValidVertex(op string, u graph.Vertex) {
	if !d.IsValidVertex(u) {
		contractViolation(op, fmt.Sprintf("vertex %d is out of range [0, %d)", u, d.nbVertices))
	}
}

func (d *Digraph) mustBeValidArc(op string, a graph.Arc) {
	if !d.IsValidArc(a) {
		contractViolation(op, fmt.Sprintf("arc %d is out of range [0, %d)", a, len(d.arcTarget)))
	}
}
