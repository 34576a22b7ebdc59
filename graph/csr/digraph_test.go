package csr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galactic-beyond/melon/graph"
	"github.com/galactic-beyond/melon/graph/csr"
)

func buildSimple(t *testing.T, withReverse bool) *csr.Digraph {
	t.Helper()
	// 0 -> 1, 0 -> 2, 1 -> 2, 2 -> 0
	sources := []graph.Vertex{0, 0, 1, 2}
	targets := []graph.Vertex{1, 2, 2, 0}
	return csr.NewDigraph(3, sources, targets, withReverse)
}

func TestDigraphBasics(t *testing.T) {
	d := buildSimple(t, false)

	assert.Equal(t, 3, d.NbVertices())
	assert.Equal(t, 4, d.NbArcs())

	var vs []graph.Vertex
	for v := range d.Vertices() {
		vs = append(vs, v)
	}
	assert.Equal(t, []graph.Vertex{0, 1, 2}, vs)

	out0 := d.OutArcs(0)
	require.Len(t, out0, 2)
	assert.Equal(t, graph.Vertex(0), d.Source(out0[0]))
	assert.ElementsMatch(t, []graph.Vertex{1, 2}, d.OutNeighbors(0))

	out2 := d.OutArcs(2)
	require.Len(t, out2, 1)
	assert.Equal(t, graph.Vertex(0), d.Target(out2[0]))
}

func TestDigraphReverseAdjacency(t *testing.T) {
	d := buildSimple(t, true)

	assert.ElementsMatch(t, []graph.Vertex{0, 1}, d.InNeighbors(2))
	in0 := d.InArcs(0)
	require.Len(t, in0, 1)
	assert.Equal(t, graph.Vertex(2), d.Source(in0[0]))
}

func TestDigraphInArcsWithoutReversePanics(t *testing.T) {
	d := buildSimple(t, false)
	assert.Panics(t, func() { d.InArcs(0) })
}

func TestDigraphValidity(t *testing.T) {
	d := buildSimple(t, false)
	assert.True(t, d.IsValidVertex(2))
	assert.False(t, d.IsValidVertex(3))
	assert.True(t, d.IsValidArc(3))
	assert.False(t, d.IsValidArc(4))
}

func TestDigraphSourcesMapTargetsMap(t *testing.T) {
	d := buildSimple(t, false)
	sm := d.SourcesMap()
	tm := d.TargetsMap()
	for a := range d.Arcs() {
		assert.Equal(t, d.Source(a), sm.At(a))
		assert.Equal(t, d.Target(a), tm.At(a))
	}
}

func TestNewDigraphRejectsUnsortedSources(t *testing.T) {
	sources := []graph.Vertex{1, 0}
	targets := []graph.Vertex{0, 1}
	assert.Panics(t, func() { csr.NewDigraph(2, sources, targets, false) })
}

func TestNewDigraphRejectsOutOfRangeVertex(t *testing.T) {
	sources := []graph.Vertex{0}
	targets := []graph.Vertex{5}
	assert.Panics(t, func() { csr.NewDigraph(2, sources, targets, false) })
}
