// SPDX-License-Identifier: MIT

// Package adjacency - row-major weight storage and safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula from*nv + to.
//   - Guarantee safety at the public surface: Weight returns errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration anywhere).
//   - Support a no-copy row view (Row) for hot relaxation loops.
package adjacency

import (
	"fmt"
	"math"
)

// VertexID identifies a vertex by its index in [0, NV).
type VertexID = int

// NoEdge marks the absence of a directed edge between two vertices.
// It is an identity marker: never add to it, never treat it as a weight.
const NoEdge int64 = math.MaxInt64

// Matrix is an immutable NV×NV directed weight matrix.
// The zero value is not usable; obtain a Matrix from Builder.Freeze.
type Matrix struct {
	nv      int     // vertex count (> 0)
	weights []int64 // flat row-major buffer, len == nv*nv
}

// NumVertices returns NV, the number of vertices.
// Complexity: O(1).
func (m *Matrix) NumVertices() int { return m.nv }

// Weight returns the weight of the edge from→to, or NoEdge if the edge is
// absent. Returns ErrVertexRange (wrapped with the offending indices) when
// either index lies outside [0, NV).
// Complexity: O(1).
func (m *Matrix) Weight(from, to VertexID) (int64, error) {
	if from < 0 || from >= m.nv || to < 0 || to >= m.nv {
		return 0, fmt.Errorf("Matrix.Weight(%d,%d): nv=%d: %w", from, to, m.nv, ErrVertexRange)
	}

	return m.weights[from*m.nv+to], nil
}

// HasEdge reports whether a directed edge from→to exists.
// Out-of-range indices report false.
// Complexity: O(1).
func (m *Matrix) HasEdge(from, to VertexID) bool {
	if from < 0 || from >= m.nv || to < 0 || to >= m.nv {
		return false
	}

	return m.weights[from*m.nv+to] != NoEdge
}

// Row returns a no-copy view of the outgoing-edge weights of vertex from,
// indexed by destination vertex. The slice aliases the matrix's backing
// buffer: callers must treat it as read-only or the immutability contract is
// broken. Intended for hot loops that have already validated from.
// Complexity: O(1).
func (m *Matrix) Row(from VertexID) []int64 {
	return m.weights[from*m.nv : (from+1)*m.nv]
}

// Builder accumulates edge weights cell by cell and seals them into an
// immutable Matrix. A zero Builder is not usable; call NewBuilder.
type Builder struct {
	nv      int
	weights []int64
	frozen  bool
}

// NewBuilder returns a Builder for an nv×nv matrix with every cell set to
// NoEdge. Returns ErrBadVertexCount if nv <= 0.
// Complexity: O(nv²).
func NewBuilder(nv int) (*Builder, error) {
	if nv <= 0 {
		return nil, fmt.Errorf("NewBuilder(%d): %w", nv, ErrBadVertexCount)
	}

	w := make([]int64, nv*nv)
	for i := range w {
		w[i] = NoEdge
	}

	return &Builder{nv: nv, weights: w}, nil
}

// SetWeight records the weight of the directed edge from→to. Passing NoEdge
// erases the edge. Returns ErrVertexRange for out-of-range indices,
// ErrNegativeWeight for weights < 0, and ErrFrozenBuilder after Freeze.
// Complexity: O(1).
func (b *Builder) SetWeight(from, to VertexID, weight int64) error {
	if b.frozen {
		return ErrFrozenBuilder
	}
	if from < 0 || from >= b.nv || to < 0 || to >= b.nv {
		return fmt.Errorf("Builder.SetWeight(%d,%d): nv=%d: %w", from, to, b.nv, ErrVertexRange)
	}
	if weight < 0 {
		return fmt.Errorf("Builder.SetWeight(%d,%d): weight=%d: %w", from, to, weight, ErrNegativeWeight)
	}

	b.weights[from*b.nv+to] = weight

	return nil
}

// Freeze seals the builder and returns the immutable Matrix. The backing
// buffer is transferred, not copied; the Builder rejects further mutation.
// Complexity: O(1).
func (b *Builder) Freeze() *Matrix {
	b.frozen = true

	return &Matrix{nv: b.nv, weights: b.weights}
}
