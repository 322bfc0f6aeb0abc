// Package gengraph generates random directed weight matrices in the loader's
// data model, for exercising the shortest-path engine.
//
// Determinism:
//   - A single math/rand source seeded from Options.seed; no time-based
//     sources anywhere.
//   - Fixed row-major trial order: for each row i ascending, each column j
//     ascending. The diagonal consumes no randomness, so inserting or
//     removing self-loop handling cannot shift the sequence.
//   - Same seed and options ⇒ identical matrix, on every run of this
//     implementation. Bit parity with generators built on other random
//     algorithms is out of scope.
//
// Known limitation (kept deliberately): with the default configuration the
// generator never emits a no-edge cell off the diagonal, so every vertex is
// reachable in one hop. WithNoEdgeProbability is the explicit opt-in for
// sparse graphs; the default stays dense to match the historical output.
package gengraph

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathfind/adjacency"
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Generate produces an NV×NV weight matrix: diagonal cells always hold
// adjacency.NoEdge; each off-diagonal cell holds a weight drawn uniformly
// from [1, maxWeight], or NoEdge with the configured no-edge probability.
//
// Validation (in order): vertex count ≥ 1 (ErrBadVertexCount), max weight
// ≥ 1 (ErrBadMaxWeight), probability in [0,1] (ErrBadProbability). Only
// sentinel errors are returned; Generate never panics.
//
// Complexity: O(NV²) time and space.
func Generate(opts ...Option) (*adjacency.Matrix, error) {
	// 1) Build and validate Options (fail fast, no side effects on invalid input).
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.vertices < 1 {
		return nil, fmt.Errorf("n=%d: %w", cfg.vertices, ErrBadVertexCount)
	}
	if cfg.maxWeight < 1 {
		return nil, fmt.Errorf("maxWeight=%d: %w", cfg.maxWeight, ErrBadMaxWeight)
	}
	if cfg.noEdgeP < probMin || cfg.noEdgeP > probMax {
		return nil, fmt.Errorf("p=%.6f not in [%.1f,%.1f]: %w", cfg.noEdgeP, probMin, probMax, ErrBadProbability)
	}

	b, err := adjacency.NewBuilder(cfg.vertices)
	if err != nil {
		return nil, err
	}

	// 2) Fill cells in the fixed row-major trial order.
	rng := rngFromSeed(cfg.seed)
	for i := 0; i < cfg.vertices; i++ {
		for j := 0; j < cfg.vertices; j++ {
			// Self-loops carry NoEdge; the builder already initialized the
			// diagonal that way and no randomness is consumed for it.
			if i == j {
				continue
			}
			if cfg.noEdgeP > 0 && rng.Float64() < cfg.noEdgeP {
				continue
			}
			// Uniform in [1, maxWeight]; weights are strictly positive.
			w := rng.Int63n(cfg.maxWeight) + 1
			if err = b.SetWeight(i, j, w); err != nil {
				return nil, err
			}
		}
	}

	return b.Freeze(), nil
}
