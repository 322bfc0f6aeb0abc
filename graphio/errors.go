package graphio

import "errors"

var (
	// ErrMissingVertexCount indicates empty input or a first token that is
	// not an integer: the stream must open with the number of vertices.
	ErrMissingVertexCount = errors.New("graphio: first item in the input should be the number of vertices")
	// ErrBadVertexCount indicates a vertex count that parsed but is not positive.
	ErrBadVertexCount = errors.New("graphio: vertex count must be positive")
	// ErrBadWeight indicates a weight token that is neither '*' nor a
	// non-negative integer.
	ErrBadWeight = errors.New("graphio: malformed weight token")
	// ErrTooManyWeights indicates more weight tokens than NV×NV.
	ErrTooManyWeights = errors.New("graphio: too many weights")
	// ErrTooFewWeights indicates fewer weight tokens than NV×NV at end of input.
	ErrTooFewWeights = errors.New("graphio: too few weights")
)
