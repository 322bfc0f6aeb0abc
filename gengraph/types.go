// Package gengraph defines the configuration surface of the random graph
// generator: functional options, documented defaults and sentinel errors.
package gengraph

import "errors"

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultMaxWeight is the largest edge weight generated when the caller
	// does not override it.
	DefaultMaxWeight int64 = 10

	// DefaultSeed feeds the pseudorandom source when no seed is given.
	// Seed 0 also maps here, so a zero-valued configuration stays reproducible.
	DefaultSeed int64 = 1

	// DefaultNoEdgeProbability keeps the generator's historical behavior:
	// every off-diagonal cell receives a real edge. See the package
	// documentation for the known-limitation note.
	DefaultNoEdgeProbability = 0.0
)

// Probability domain bounds.
const (
	probMin = 0.0
	probMax = 1.0
)

// Sentinel errors returned by Generate.
var (
	// ErrBadVertexCount indicates a vertex count below 1.
	ErrBadVertexCount = errors.New("gengraph: vertex count must be at least 1")
	// ErrBadMaxWeight indicates a maximum edge weight below 1.
	ErrBadMaxWeight = errors.New("gengraph: max weight must be at least 1")
	// ErrBadProbability indicates a no-edge probability outside [0, 1].
	ErrBadProbability = errors.New("gengraph: no-edge probability must be in [0,1]")
)

// Options configures one generation run. All fields are validated by
// Generate, not by the option constructors: every value typically arrives
// straight from the command line.
type Options struct {
	vertices  int     // NV; must be >= 1
	maxWeight int64   // weights drawn uniformly from [1, maxWeight]
	seed      int64   // pseudorandom seed; 0 maps to DefaultSeed
	noEdgeP   float64 // probability an off-diagonal cell gets no edge
}

// Option represents a functional option for configuring Generate.
type Option func(*Options)

// WithVertices sets the number of vertices. Required; Generate rejects runs
// where it was never set or set below 1 (ErrBadVertexCount).
func WithVertices(n int) Option {
	return func(o *Options) {
		o.vertices = n
	}
}

// WithMaxWeight caps generated edge weights; weights are drawn uniformly from
// [1, w]. Must be at least 1 (ErrBadMaxWeight).
func WithMaxWeight(w int64) Option {
	return func(o *Options) {
		o.maxWeight = w
	}
}

// WithSeed fixes the pseudorandom seed. The same seed always reproduces the
// same matrix for a given configuration. Seed 0 maps to DefaultSeed.
func WithSeed(s int64) Option {
	return func(o *Options) {
		o.seed = s
	}
}

// WithNoEdgeProbability makes the generator drop off-diagonal edges with
// probability p, producing graphs with unreachable vertices. p must lie in
// [0, 1] (ErrBadProbability). The default 0 preserves the historical
// always-connected output.
func WithNoEdgeProbability(p float64) Option {
	return func(o *Options) {
		o.noEdgeP = p
	}
}

// DefaultOptions returns an Options with the documented defaults applied and
// no vertex count set.
func DefaultOptions() Options {
	return Options{
		maxWeight: DefaultMaxWeight,
		seed:      DefaultSeed,
		noEdgeP:   DefaultNoEdgeProbability,
	}
}
