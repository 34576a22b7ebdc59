// Package graph defines the capability abstraction shared by every shortest-path
// engine in this module: the dense Vertex/Arc id space, the read-only Digraph
// and mapping interfaces the engines are written against, and the vertex-status
// enum the traversal state machines drive.
//
// Nothing in this package mutates a graph. The sole concrete Digraph in scope
// is the immutable CSR structure in graph/csr; this package only fixes the
// vocabulary ("what is a graph" / "what is a mapping") that csr.Digraph and
// the engines in dijkstra/bidijkstra agree on.
package graph

// Vertex is a dense, non-negative vertex identifier in [0, NbVertices).
type Vertex int32

// Arc is a dense, non-negative arc identifier in [0, NbArcs).
type Arc int32

// NoVertex is the "none" sentinel for optional vertex fields (e.g. an
// unset bidirectional-search midpoint).
const NoVertex Vertex = -1

// NoArc is the "none" sentinel for optional arc fields (e.g. a source
// vertex's own predecessor arc).
const NoArc Arc = -1

// VertexStatus tags where a vertex sits in a single-direction traversal.
//
// Lifecycle: PreHeap -> InHeap on first relaxation, InHeap -> PostHeap when
// settled (popped). A vertex never returns to an earlier status.
type VertexStatus int8

const (
	// PreHeap is the initial status: the vertex has never been relaxed.
	PreHeap VertexStatus = iota
	// InHeap marks a vertex with a tentative distance sitting in the heap.
	InHeap
	// PostHeap marks a vertex whose shortest distance is final.
	PostHeap
)

func (s VertexStatus) String() string {
	switch s {
	case PreHeap:
		return "PreHeap"
	case InHeap:
		return "InHeap"
	case PostHeap:
		return "PostHeap"
	default:
		return "VertexStatus(?)"
	}
}
