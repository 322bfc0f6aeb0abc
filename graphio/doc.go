// Package graphio implements the textual graph format shared by the
// shortest-path engine and the random graph generator, plus the distance
// reporters used by the command-line front end.
//
// Format:
//
//   - A stream of whitespace-separated tokens.
//   - The first token is the vertex count NV (a positive integer).
//   - Exactly NV×NV tokens follow, row-major: each is a non-negative integer
//     edge weight or the literal character '*' meaning "no edge".
//
// Reading is fail-fast. Each malformed-input class has its own sentinel error
// so operators get a distinct exit status per failure:
//
//   - ErrMissingVertexCount: empty input or a non-numeric first token.
//   - ErrBadVertexCount:     NV parsed but not positive.
//   - ErrBadWeight:          a weight token that is neither '*' nor a
//     non-negative integer.
//   - ErrTooManyWeights:     more than NV×NV weight tokens.
//   - ErrTooFewWeights:      the stream ended before NV×NV tokens arrived.
//
// All parse errors carry "line N" context and remain matchable with
// errors.Is. Write emits a matrix in the same format, one row per line, and
// round-trips losslessly through Read.
package graphio
