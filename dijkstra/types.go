// Package dijkstra defines the types, sentinel errors and configuration
// options for the sequential single-source shortest-path engine.
//
// The engine computes minimum distances from a fixed source vertex (index 0)
// to all other vertices of a directed, non-negatively weighted graph given as
// an adjacency matrix. It is intentionally the O(V²) textbook variant: vertex
// selection is a linear scan, there is no priority queue and no parallelism.
//
// Options:
//
//	– WithTarget(v): single-target mode; the run stops as soon as the distance
//	  to v is final, and only dist[v] is guaranteed meaningful.
//
// Errors (sentinel):
//
//	– ErrNilMatrix     if the provided matrix pointer is nil.
//	– ErrInvalidVertex if the requested target lies outside [0, NV).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathfind/adjacency"
)

// Source is the fixed source vertex from which all distances are measured.
const Source adjacency.VertexID = 0

// Unreachable marks a vertex with no path from the source. Like
// adjacency.NoEdge it is an identity marker, never an operand: the engine
// skips absent edges before any addition, so Unreachable cannot overflow
// into a plausible distance.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by the engine.
var (
	// ErrNilMatrix indicates that a nil *adjacency.Matrix was passed to Distances.
	ErrNilMatrix = errors.New("dijkstra: matrix is nil")

	// ErrInvalidVertex indicates that the requested target vertex does not
	// exist in the matrix. It is reported before any computation starts.
	ErrInvalidVertex = errors.New("dijkstra: target vertex out of range")
)

// Options configures a single run of the engine.
//
// target       – destination vertex for single-target mode.
// singleTarget – if true, stop as soon as target is finalized.
type Options struct {
	target       adjacency.VertexID // destination vertex (single-target mode only)
	singleTarget bool               // whether to stop once target is finalized
}

// Option represents a functional option for configuring Distances.
type Option func(*Options)

// WithTarget switches the engine to single-target mode: the run terminates as
// soon as the shortest distance to v is final, leaving the remaining entries
// of the result at whatever tentative values they held.
//
// The index is validated by Distances, not here: an out-of-range v yields
// ErrInvalidVertex before any computation, since the value typically comes
// straight from operator input.
func WithTarget(v adjacency.VertexID) Option {
	return func(o *Options) {
		o.target = v
		o.singleTarget = true
	}
}

// DefaultOptions returns the Options for a full all-vertices run.
func DefaultOptions() Options {
	return Options{}
}
