package dijkstra

import (
	"iter"

	"github.com/galactic-beyond/melon/container/dheap"
	"github.com/galactic-beyond/melon/graph"
	"github.com/galactic-beyond/melon/semiring"
)

// ContractError marks a precondition violation: adding a source already in
// the heap, popping an empty queue, or reading an accessor whose backing
// map was never requested via the corresponding Option.
type ContractError struct {
	Op     string
	Detail string
}

func (e *ContractError) Error() string { return "dijkstra: " + e.Op + ": " + e.Detail }

func contractViolation(op, detail string) {
	panic(&ContractError{Op: op, Detail: detail})
}

const heapBranchingFactor = 4

// Dijkstra is a single-source shortest-path engine over a digraph g with
// arc lengths drawn from length and combined through the semiring sr. The
// zero value is not usable; construct with New.
type Dijkstra[T any] struct {
	g      graph.Digraph
	length graph.ArcMap[T]
	sr     semiring.Semiring[T]
	opts   Options

	status *graph.DenseVertexMap[graph.VertexStatus]
	heap   *dheap.Heap[graph.Vertex, T]

	predVertices *graph.DenseVertexMap[graph.Vertex]
	predArcs     *graph.DenseVertexMap[graph.Arc]
	distances    *graph.DenseVertexMap[T]
}

// New builds a Dijkstra engine bound to g and length, combining distances
// through sr. The engine starts with an empty heap; call AddSource before
// NextEntry/Run.
func New[T any](g graph.Digraph, length graph.ArcMap[T], sr semiring.Semiring[T], opts ...Option) *Dijkstra[T] {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.NbVertices()
	d := &Dijkstra[T]{
		g:      g,
		length: length,
		sr:     sr,
		opts:   cfg,
		status: graph.NewDenseVertexMap[graph.VertexStatus](n),
		heap:   dheap.New[graph.Vertex, T](heapBranchingFactor, n, func(v graph.Vertex) int { return int(v) }, sr.Less),
	}
	if cfg.StorePredVertices {
		d.predVertices = graph.NewDenseVertexMapFilled(n, graph.NoVertex)
	}
	if cfg.StorePredArcs {
		d.predArcs = graph.NewDenseVertexMapFilled(n, graph.NoArc)
	}
	if cfg.StoreDistances {
		d.distances = graph.NewDenseVertexMapFilled(n, sr.Infty())
	}
	return d
}

// AddSource pushes s as a traversal source. dist defaults to the semiring's
// Zero when omitted; passing more than one value is a contract violation.
// Precondition: s is not currently InHeap.
func (d *Dijkstra[T]) AddSource(s graph.Vertex, dist ...T) {
	if len(dist) > 1 {
		contractViolation("AddSource", "at most one initial distance may be supplied")
	}
	if d.status.At(s) == graph.InHeap {
		contractViolation("AddSource", "vertex is already in the heap")
	}

	initial := d.sr.Zero()
	if len(dist) == 1 {
		initial = dist[0]
	}

	d.heap.Push(s, initial)
	d.status.Set(s, graph.InHeap)
	if d.predVertices != nil {
		d.predVertices.Set(s, s)
	}
	if d.predArcs != nil {
		d.predArcs.Set(s, graph.NoArc)
	}
}

// Reset empties the heap, returns every vertex to PreHeap, and clears any
// tracked predecessor/distance maps, without freeing their capacity. The
// bound graph, length mapping, and semiring are unchanged.
func (d *Dijkstra[T]) Reset() {
	d.heap.Clear()
	d.status.Fill(graph.PreHeap)
	if d.predVertices != nil {
		d.predVertices.Fill(graph.NoVertex)
	}
	if d.predArcs != nil {
		d.predArcs.Fill(graph.NoArc)
	}
	if d.distances != nil {
		d.distances.Fill(d.sr.Infty())
	}
}

// EmptyQueue reports whether the heap holds no pending vertices.
func (d *Dijkstra[T]) EmptyQueue() bool { return d.heap.Empty() }

// NextEntry pops the minimum-distance vertex, settles it, and relaxes its
// out-arcs. Precondition: the heap is non-empty.
func (d *Dijkstra[T]) NextEntry() (graph.Vertex, T) {
	if d.heap.Empty() {
		contractViolation("NextEntry", "heap is empty")
	}
	u, du := d.heap.Pop()
	d.status.Set(u, graph.PostHeap)
	if d.distances != nil {
		d.distances.Set(u, du)
	}

	for _, a := range d.g.OutArcs(u) {
		w := d.g.Target(a)
		nd := d.sr.Plus(du, d.length.At(a))

		switch d.status.At(w) {
		case graph.PreHeap:
			d.heap.Push(w, nd)
			d.status.Set(w, graph.InHeap)
			d.recordPred(w, u, a)
		case graph.InHeap:
			if d.sr.Less(nd, d.heap.Priority(w)) {
				d.heap.Promote(w, nd)
				d.recordPred(w, u, a)
			}
		}
	}

	return u, du
}

func (d *Dijkstra[T]) recordPred(w, u graph.Vertex, a graph.Arc) {
	if d.predVertices != nil {
		d.predVertices.Set(w, u)
	}
	if d.predArcs != nil {
		d.predArcs.Set(w, a)
	}
}

// Run repeatedly calls NextEntry until the heap is empty.
func (d *Dijkstra[T]) Run() {
	for !d.EmptyQueue() {
		d.NextEntry()
	}
}

// Entries yields settled (vertex, distance) pairs in non-decreasing
// distance order by repeatedly calling NextEntry, stopping early if the
// consumer breaks out of the range loop.
func (d *Dijkstra[T]) Entries() iter.Seq2[graph.Vertex, T] {
	return func(yield func(graph.Vertex, T) bool) {
		for !d.EmptyQueue() {
			u, du := d.NextEntry()
			if !yield(u, du) {
				return
			}
		}
	}
}

// Distance returns the settled distance of v. Precondition: the engine was
// constructed WithDistances and v has been settled.
func (d *Dijkstra[T]) Distance(v graph.Vertex) T {
	if d.distances == nil {
		contractViolation("Distance", "engine was not constructed with WithDistances")
	}
	return d.distances.At(v)
}

// PredVertex returns the predecessor vertex of v and whether one is
// recorded. Precondition: the engine was constructed WithPredecessorVertices.
func (d *Dijkstra[T]) PredVertex(v graph.Vertex) (graph.Vertex, bool) {
	if d.predVertices == nil {
		contractViolation("PredVertex", "engine was not constructed with WithPredecessorVertices")
	}
	p := d.predVertices.At(v)
	return p, p != graph.NoVertex
}

// PredArc returns the predecessor arc of v and whether one is recorded.
// Precondition: the engine was constructed WithPredecessorArcs.
func (d *Dijkstra[T]) PredArc(v graph.Vertex) (graph.Arc, bool) {
	if d.predArcs == nil {
		contractViolation("PredArc", "engine was not constructed with WithPredecessorArcs")
	}
	p := d.predArcs.At(v)
	return p, p != graph.NoArc
}

// Status reports where v currently sits in the traversal automaton.
func (d *Dijkstra[T]) Status(v graph.Vertex) graph.VertexStatus { return d.status.At(v) }
