package semiring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galactic-beyond/melon/semiring"
)

func TestShortestPathIdentities(t *testing.T) {
	sr := semiring.NewShortestPath[int64](math.MaxInt64)

	assert.Equal(t, int64(0), sr.Zero())
	assert.Equal(t, int64(math.MaxInt64), sr.Infty())
	assert.Equal(t, int64(5), sr.Plus(sr.Zero(), 5))
	assert.Equal(t, sr.Infty(), sr.Plus(sr.Infty(), 5))
	assert.True(t, sr.Less(sr.Zero(), sr.Infty()))
	assert.False(t, sr.Less(sr.Infty(), sr.Zero()))
}

func TestShortestPathSaturatesOnOverflow(t *testing.T) {
	sr := semiring.NewShortestPath[int64](math.MaxInt64)

	require.Equal(t, sr.Infty(), sr.Plus(math.MaxInt64-1, 5))
	require.Equal(t, sr.Infty(), sr.Plus(math.MaxInt64/2+1, math.MaxInt64/2+1))
}

func TestShortestPathSaturatesAtConfiguredCeiling(t *testing.T) {
	sr := semiring.NewShortestPath[int64](100)

	assert.Equal(t, int64(100), sr.Infty())
	assert.Equal(t, int64(60), sr.Plus(30, 30))
	assert.Equal(t, int64(100), sr.Plus(60, 60))
}

func TestShortestPathFloat(t *testing.T) {
	sr := semiring.NewShortestPath[float64](math.Inf(1))

	assert.InDelta(t, 7.5, sr.Plus(3.25, 4.25), 1e-9)
	assert.Equal(t, math.Inf(1), sr.Plus(math.Inf(1), 1.0))
	assert.True(t, sr.Less(1.0, 2.0))
}

func TestLexicographicOrdersPrimaryThenSecondary(t *testing.T) {
	lex := semiring.Lexicographic[int64, int64]{
		Primary:   semiring.NewShortestPath[int64](math.MaxInt64),
		Secondary: semiring.NewShortestPath[int64](math.MaxInt64),
	}

	short := semiring.Pair[int64, int64]{Primary: 5, Secondary: 3}
	shortFewerHops := semiring.Pair[int64, int64]{Primary: 5, Secondary: 1}
	long := semiring.Pair[int64, int64]{Primary: 6, Secondary: 0}

	assert.True(t, lex.Less(shortFewerHops, short))
	assert.True(t, lex.Less(short, long))
	assert.False(t, lex.Less(long, short))

	sum := lex.Plus(short, semiring.Pair[int64, int64]{Primary: 1, Secondary: 1})
	assert.Equal(t, semiring.Pair[int64, int64]{Primary: 6, Secondary: 4}, sum)
}
