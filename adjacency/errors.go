// SPDX-License-Identifier: MIT

// Package adjacency: sentinel error set.
// All public constructors and accessors return these sentinels (optionally
// wrapped with fmt.Errorf("...: %w", ...) for context); callers match them via
// errors.Is. Panics are reserved for programmer errors in private helpers.
package adjacency

import "errors"

var (
	// ErrBadVertexCount is returned when a requested vertex count is not positive.
	ErrBadVertexCount = errors.New("adjacency: vertex count must be positive")

	// ErrVertexRange is returned when a vertex index lies outside [0, NV).
	ErrVertexRange = errors.New("adjacency: vertex index out of range")

	// ErrNegativeWeight is returned when a negative edge weight is supplied.
	// The shortest-path engine requires non-negative weights, so the matrix
	// rejects them at ingestion.
	ErrNegativeWeight = errors.New("adjacency: negative edge weight")

	// ErrFrozenBuilder is returned when a Builder is used after Freeze.
	ErrFrozenBuilder = errors.New("adjacency: builder already frozen")
)
