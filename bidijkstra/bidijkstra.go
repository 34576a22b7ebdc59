// Package bidijkstra implements point-to-point shortest-path search via two
// simultaneous Dijkstra-style half-searches, one following out-arcs from
// the sources, one following in-arcs from the targets, meeting in the
// middle.
//
// The half-searches share the same graph and length mapping and only
// communicate through two pieces of state: mu, the best s-t distance found
// so far, and the meeting vertex where that distance was last improved.
// Because the reverse half walks in-arcs, BidirectionalDijkstra requires a
// graph.Digraph built with reverse adjacency (see graph/csr's withReverse
// flag); calling InArcs on a Digraph built without it panics.
package bidijkstra

import (
	"iter"

	"github.com/galactic-beyond/melon/container/dheap"
	"github.com/galactic-beyond/melon/graph"
	"github.com/galactic-beyond/melon/internal/iterutil"
	"github.com/galactic-beyond/melon/semiring"
)

// ContractError marks a precondition violation: adding a source or target
// already in its half's heap, or asking for Path when no meeting vertex has
// been recorded.
type ContractError struct {
	Op     string
	Detail string
}

func (e *ContractError) Error() string { return "bidijkstra: " + e.Op + ": " + e.Detail }

func contractViolation(op, detail string) {
	panic(&ContractError{Op: op, Detail: detail})
}

const heapBranchingFactor = 4

// half is one direction's traversal state: its own heap, status map, and
// (when the engine was configured to store a path) predecessor bookkeeping.
type half[T any] struct {
	status *graph.DenseVertexMap[graph.VertexStatus]
	heap   *dheap.Heap[graph.Vertex, T]

	predVertices *graph.DenseVertexMap[graph.Vertex]
	predArcs     *graph.DenseVertexMap[graph.Arc]
}

func newHalf[T any](n int, less func(a, b T) bool, storePath bool) *half[T] {
	h := &half[T]{
		status: graph.NewDenseVertexMap[graph.VertexStatus](n),
		heap:   dheap.New[graph.Vertex, T](heapBranchingFactor, n, func(v graph.Vertex) int { return int(v) }, less),
	}
	if storePath {
		h.predVertices = graph.NewDenseVertexMapFilled(n, graph.NoVertex)
		h.predArcs = graph.NewDenseVertexMapFilled(n, graph.NoArc)
	}
	return h
}

func (h *half[T]) reset() {
	h.heap.Clear()
	h.status.Fill(graph.PreHeap)
	if h.predVertices != nil {
		h.predVertices.Fill(graph.NoVertex)
	}
	if h.predArcs != nil {
		h.predArcs.Fill(graph.NoArc)
	}
}

func (h *half[T]) recordPred(w, u graph.Vertex, a graph.Arc) {
	if h.predVertices != nil {
		h.predVertices.Set(w, u)
	}
	if h.predArcs != nil {
		h.predArcs.Set(w, a)
	}
}

// BidirectionalDijkstra is a point-to-point shortest-path engine over a
// digraph g with arc lengths length, combined through the semiring sr. The
// zero value is not usable; construct with New.
type BidirectionalDijkstra[T any] struct {
	g      graph.Digraph
	length graph.ArcMap[T]
	sr     semiring.Semiring[T]
	opts   Options

	fwd, rev *half[T]

	mu      T
	meeting graph.Vertex
}

// New builds a BidirectionalDijkstra engine bound to g and length. g must
// have been built with reverse adjacency. Call AddSource and AddTarget
// before Run.
func New[T any](g graph.Digraph, length graph.ArcMap[T], sr semiring.Semiring[T], opts ...Option) *BidirectionalDijkstra[T] {
	cfg := Options{StorePath: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.NbVertices()
	return &BidirectionalDijkstra[T]{
		g:       g,
		length:  length,
		sr:      sr,
		opts:    cfg,
		fwd:     newHalf[T](n, sr.Less, cfg.StorePath),
		rev:     newHalf[T](n, sr.Less, cfg.StorePath),
		mu:      sr.Infty(),
		meeting: graph.NoVertex,
	}
}

// AddSource pushes s as a forward search source. dist defaults to the
// semiring's Zero. Precondition: s is not currently InHeap in the forward
// half.
func (bd *BidirectionalDijkstra[T]) AddSource(s graph.Vertex, dist ...T) {
	bd.addTo(bd.fwd, "AddSource", s, dist)
}

// AddTarget pushes t as a reverse search target. dist defaults to the
// semiring's Zero. Precondition: t is not currently InHeap in the reverse
// half.
func (bd *BidirectionalDijkstra[T]) AddTarget(t graph.Vertex, dist ...T) {
	bd.addTo(bd.rev, "AddTarget", t, dist)
}

func (bd *BidirectionalDijkstra[T]) addTo(h *half[T], op string, v graph.Vertex, dist []T) {
	if len(dist) > 1 {
		contractViolation(op, "at most one initial distance may be supplied")
	}
	if h.status.At(v) == graph.InHeap {
		contractViolation(op, "vertex is already in the heap")
	}
	initial := bd.sr.Zero()
	if len(dist) == 1 {
		initial = dist[0]
	}
	h.heap.Push(v, initial)
	h.status.Set(v, graph.InHeap)
	h.recordPred(v, v, graph.NoArc)
}

// Reset clears both halves and the shared mu/meeting state, without
// freeing capacity. The bound graph, length mapping, and semiring are
// unchanged.
func (bd *BidirectionalDijkstra[T]) Reset() {
	bd.fwd.reset()
	bd.rev.reset()
	bd.mu = bd.sr.Infty()
	bd.meeting = graph.NoVertex
}

// Run executes the main loop: while both heaps are non-empty and no
// termination is reached, pick the direction with the smaller top distance
// (reverse wins ties) and relax it. Returns the final mu, which is
// sr.Infty() if no s-t path exists.
func (bd *BidirectionalDijkstra[T]) Run() T {
	for !bd.fwd.heap.Empty() && !bd.rev.heap.Empty() {
		_, d1 := bd.fwd.heap.Top()
		_, d2 := bd.rev.heap.Top()

		if bd.sr.Less(bd.mu, bd.sr.Plus(d1, d2)) {
			break
		}

		if bd.sr.Less(d1, d2) {
			bd.relaxForward()
		} else {
			bd.relaxReverse()
		}
	}
	return bd.mu
}

func (bd *BidirectionalDijkstra[T]) relaxForward() {
	u, du := bd.fwd.heap.Pop()
	bd.fwd.status.Set(u, graph.PostHeap)

	for _, a := range bd.g.OutArcs(u) {
		w := bd.g.Target(a)
		bd.relaxArc(bd.fwd, bd.rev, u, w, a, du)
	}
}

func (bd *BidirectionalDijkstra[T]) relaxReverse() {
	u, du := bd.rev.heap.Pop()
	bd.rev.status.Set(u, graph.PostHeap)

	for _, a := range bd.g.InArcs(u) {
		w := bd.g.Source(a)
		bd.relaxArc(bd.rev, bd.fwd, u, w, a, du)
	}
}

// relaxArc relaxes arc a (linking the just-popped vertex u to candidate w)
// within same's half, then checks whether w is also live in opposite's
// half to update the shared meeting state.
func (bd *BidirectionalDijkstra[T]) relaxArc(same, opposite *half[T], u, w graph.Vertex, a graph.Arc, du T) {
	nd := bd.sr.Plus(du, bd.length.At(a))

	improved := false
	switch same.status.At(w) {
	case graph.InHeap:
		if bd.sr.Less(nd, same.heap.Priority(w)) {
			same.heap.Promote(w, nd)
			same.recordPred(w, u, a)
			improved = true
		}
	case graph.PreHeap:
		same.heap.Push(w, nd)
		same.status.Set(w, graph.InHeap)
		same.recordPred(w, u, a)
		improved = true
	}

	if !improved {
		return
	}
	if opposite.status.At(w) == graph.InHeap {
		nst := bd.sr.Plus(nd, opposite.heap.Priority(w))
		if bd.sr.Less(nst, bd.mu) {
			bd.mu = nst
			bd.meeting = w
		}
	}
}

// PathFound reports whether a meeting vertex has been recorded.
func (bd *BidirectionalDijkstra[T]) PathFound() bool { return bd.meeting != graph.NoVertex }

// PredArc returns the recorded forward-half predecessor arc of u.
func (bd *BidirectionalDijkstra[T]) PredArc(u graph.Vertex) (graph.Arc, bool) {
	if bd.fwd.predArcs == nil {
		contractViolation("PredArc", "engine was constructed WithoutPath")
	}
	a := bd.fwd.predArcs.At(u)
	return a, a != graph.NoArc
}

// SuccArc returns the recorded reverse-half predecessor arc of u (the arc
// taken from u toward the targets).
func (bd *BidirectionalDijkstra[T]) SuccArc(u graph.Vertex) (graph.Arc, bool) {
	if bd.rev.predArcs == nil {
		contractViolation("SuccArc", "engine was constructed WithoutPath")
	}
	a := bd.rev.predArcs.At(u)
	return a, a != graph.NoArc
}

// Path returns the full s-t arc walk through the recorded meeting vertex,
// in source-to-target order. Precondition: PathFound is true and the
// engine was not constructed WithoutPath.
func (bd *BidirectionalDijkstra[T]) Path() iter.Seq[graph.Arc] {
	if bd.fwd.predArcs == nil {
		contractViolation("Path", "engine was constructed WithoutPath")
	}
	if !bd.PathFound() {
		contractViolation("Path", "no meeting vertex has been recorded")
	}
	return iterutil.Concat(bd.forwardLegReversed(), bd.reverseLeg())
}

// forwardLegReversed walks pred arcs from the meeting vertex back to a
// source, then yields them source-to-meeting.
func (bd *BidirectionalDijkstra[T]) forwardLegReversed() iter.Seq[graph.Arc] {
	return func(yield func(graph.Arc) bool) {
		var arcs []graph.Arc
		a := bd.fwd.predArcs.At(bd.meeting)
		for a != graph.NoArc {
			arcs = append(arcs, a)
			a = bd.fwd.predArcs.At(bd.g.Source(a))
		}
		for i := len(arcs) - 1; i >= 0; i-- {
			if !yield(arcs[i]) {
				return
			}
		}
	}
}

// reverseLeg walks succ arcs from the meeting vertex forward to a target.
func (bd *BidirectionalDijkstra[T]) reverseLeg() iter.Seq[graph.Arc] {
	return func(yield func(graph.Arc) bool) {
		a := bd.rev.predArcs.At(bd.meeting)
		for a != graph.NoArc {
			if !yield(a) {
				return
			}
			a = bd.rev.predArcs.At(bd.g.Target(a))
		}
	}
}
