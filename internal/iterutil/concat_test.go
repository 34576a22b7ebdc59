package iterutil_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galactic-beyond/melon/internal/iterutil"
)

func seqOf(vs ...int) func(yield func(int) bool) {
	return func(yield func(int) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

func TestConcatYieldsAllSequencesInOrder(t *testing.T) {
	got := slices.Collect(iterutil.Concat(seqOf(1, 2), seqOf(3), seqOf(4, 5)))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestConcatStopsWhenConsumerBreaks(t *testing.T) {
	var got []int
	for v := range iterutil.Concat(seqOf(1, 2), seqOf(3, 4)) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestConcatOfEmptySequences(t *testing.T) {
	got := slices.Collect(iterutil.Concat(seqOf(), seqOf()))
	assert.Empty(t, got)
}
