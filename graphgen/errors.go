package graphgen

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the minimum the requested topology needs.
var ErrTooFewVertices = errors.New("graphgen: parameter too small")

// ErrInvalidProbability indicates a probability parameter outside [0,1].
var ErrInvalidProbability = errors.New("graphgen: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was invoked with a
// probability requiring genuine sampling but no *rand.Rand was supplied via
// WithRand.
var ErrNeedRandSource = errors.New("graphgen: rng is required")
