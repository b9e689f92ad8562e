package gen

import "errors"

// Sentinel errors for schema generation, following the teacher's
// builder.ErrTooFewVertices-style validation convention.
var (
	// ErrTooFewAttributes indicates n is smaller than the allowed minimum.
	ErrTooFewAttributes = errors.New("gen: attribute count too small")

	// ErrInvalidProbability indicates fdProbability is outside [0,1].
	ErrInvalidProbability = errors.New("gen: probability out of range")

	// ErrNeedRandSource indicates RandomSchema was called without WithRand.
	ErrNeedRandSource = errors.New("gen: random source required")
)
