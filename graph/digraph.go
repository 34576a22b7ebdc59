package graph

import "iter"

// Digraph is the capability surface every search engine in this module is
// written against. graph/csr.Digraph is the sole implementation, but the
// engines depend on this interface rather than the concrete type.
type Digraph interface {
	// NbVertices reports |V|.
	NbVertices() int
	// NbArcs reports |A|.
	NbArcs() int

	// Vertices iterates [0, NbVertices) in order.
	Vertices() iter.Seq[Vertex]
	// Arcs iterates [0, NbArcs) in order.
	Arcs() iter.Seq[Arc]

	// OutArcs returns the arc ids leaving u, in source-major order.
	OutArcs(u Vertex) []Arc
	// InArcs returns the arc ids entering v.
	InArcs(v Vertex) []Arc

	// Source returns the tail of a.
	Source(a Arc) Vertex
	// Target returns the head of a.
	Target(a Arc) Vertex

	// SourcesMap returns a mapping view equivalent to Source.
	SourcesMap() ArcMap[Vertex]
	// TargetsMap returns a mapping view equivalent to Target.
	TargetsMap() ArcMap[Vertex]

	// OutNeighbors returns the targets of OutArcs(u).
	OutNeighbors(u Vertex) []Vertex
	// InNeighbors returns the sources of InArcs(v).
	InNeighbors(v Vertex) []Vertex

	// IsValidVertex reports whether u is in [0, NbVertices).
	IsValidVertex(u Vertex) bool
	// IsValidArc reports whether a is in [0, NbArcs).
	IsValidArc(a Arc) bool
}
