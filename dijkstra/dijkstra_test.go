package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galactic-beyond/melon/dijkstra"
	"github.com/galactic-beyond/melon/graph"
	"github.com/galactic-beyond/melon/graph/csr"
	"github.com/galactic-beyond/melon/semiring"
)

func starGraph(t *testing.T) (*csr.Digraph, *graph.DenseArcMap[int64]) {
	t.Helper()
	b := csr.NewBuilder[int64](5, false)
	// 0 -> 1 (1), 0 -> 2 (4), 1 -> 2 (1), 1 -> 3 (5), 2 -> 3 (1), 3 -> 4 (2)
	require.NoError(t, b.AddArc(0, 1, 1))
	require.NoError(t, b.AddArc(0, 2, 4))
	require.NoError(t, b.AddArc(1, 2, 1))
	require.NoError(t, b.AddArc(1, 3, 5))
	require.NoError(t, b.AddArc(2, 3, 1))
	require.NoError(t, b.AddArc(3, 4, 2))
	d, weights := b.Build()
	return d, weights
}

func TestDijkstraSettlesInNonDecreasingDistanceOrder(t *testing.T) {
	g, weights := starGraph(t)
	sr := semiring.NewShortestPath[int64](math.MaxInt64)
	eng := dijkstra.New[int64](g, weights, sr)
	eng.AddSource(0)

	var dists []int64
	for _, d := range eng.Entries() {
		dists = append(dists, d)
	}
	for i := 1; i < len(dists); i++ {
		assert.LessOrEqual(t, dists[i-1], dists[i])
	}
	require.Len(t, dists, 5)
}

func TestDijkstraComputesShortestDistances(t *testing.T) {
	g, weights := starGraph(t)
	sr := semiring.NewShortestPath[int64](math.MaxInt64)
	eng := dijkstra.New[int64](g, weights, sr, dijkstra.WithDistances())
	eng.AddSource(0)
	eng.Run()

	assert.Equal(t, int64(0), eng.Distance(0))
	assert.Equal(t, int64(1), eng.Distance(1))
	assert.Equal(t, int64(2), eng.Distance(2))
	assert.Equal(t, int64(3), eng.Distance(3))
	assert.Equal(t, int64(5), eng.Distance(4))
}

func TestDijkstraPredecessorVerticesReconstructPath(t *testing.T) {
	g, weights := starGraph(t)
	sr := semiring.NewShortestPath[int64](math.MaxInt64)
	eng := dijkstra.New[int64](g, weights, sr, dijkstra.WithPredecessorVertices(), dijkstra.WithDistances())
	eng.AddSource(0)
	eng.Run()

	var walk []graph.Vertex
	v := graph.Vertex(4)
	for {
		walk = append(walk, v)
		p, ok := eng.PredVertex(v)
		if !ok || p == v {
			break
		}
		v = p
	}
	// walk is 4 -> 3 -> 2 -> 1 -> 0 in reverse
	assert.Equal(t, []graph.Vertex{4, 3, 2, 1, 0}, walk)
}

func TestDijkstraPredecessorArcsSumToDistance(t *testing.T) {
	g, weights := starGraph(t)
	sr := semiring.NewShortestPath[int64](math.MaxInt64)
	eng := dijkstra.New[int64](g, weights, sr, dijkstra.WithPredecessorArcs(), dijkstra.WithDistances())
	eng.AddSource(0)
	eng.Run()

	var total int64
	v := graph.Vertex(4)
	for {
		a, ok := eng.PredArc(v)
		if !ok {
			break
		}
		total += weights.At(a)
		v = g.Source(a)
	}
	assert.Equal(t, eng.Distance(4), total)
}

func TestDijkstraUnreachableVertexIsNeverSettled(t *testing.T) {
	b := csr.NewBuilder[int64](3, false)
	require.NoError(t, b.AddArc(0, 1, 1))
	g, weights := b.Build()

	sr := semiring.NewShortestPath[int64](math.MaxInt64)
	eng := dijkstra.New[int64](g, weights, sr)
	eng.AddSource(0)
	eng.Run()

	assert.Equal(t, graph.PreHeap, eng.Status(2))
}

func TestDijkstraReset(t *testing.T) {
	g, weights := starGraph(t)
	sr := semiring.NewShortestPath[int64](math.MaxInt64)
	eng := dijkstra.New[int64](g, weights, sr, dijkstra.WithDistances())
	eng.AddSource(0)
	eng.Run()

	eng.Reset()
	assert.True(t, eng.EmptyQueue())
	assert.Equal(t, graph.PreHeap, eng.Status(1))

	eng.AddSource(0)
	eng.Run()
	assert.Equal(t, int64(1), eng.Distance(1))
}

func TestDijkstraAddSourceAlreadyInHeapPanics(t *testing.T) {
	g, weights := starGraph(t)
	sr := semiring.NewShortestPath[int64](math.MaxInt64)
	eng := dijkstra.New[int64](g, weights, sr)
	eng.AddSource(0)
	assert.Panics(t, func() { eng.AddSource(0) })
}

func TestDijkstraNextEntryOnEmptyQueuePanics(t *testing.T) {
	g, weights := starGraph(t)
	sr := semiring.NewShortestPath[int64](math.MaxInt64)
	eng := dijkstra.New[int64](g, weights, sr)
	assert.Panics(t, func() { eng.NextEntry() })
}

func TestDijkstraDistanceWithoutOptionPanics(t *testing.T) {
	g, weights := starGraph(t)
	sr := semiring.NewShortestPath[int64](math.MaxInt64)
	eng := dijkstra.New[int64](g, weights, sr)
	assert.Panics(t, func() { eng.Distance(0) })
}

func TestDijkstraMultipleSourcesTakeTheMinimum(t *testing.T) {
	g, weights := starGraph(t)
	sr := semiring.NewShortestPath[int64](math.MaxInt64)
	eng := dijkstra.New[int64](g, weights, sr, dijkstra.WithDistances())
	eng.AddSource(0)
	eng.AddSource(2, 0)
	eng.Run()

	// From source 2 directly, vertex 3 costs 1; cheaper than 0->1->2->3 = 3.
	assert.Equal(t, int64(1), eng.Distance(3))
}
