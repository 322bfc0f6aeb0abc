// SPDX-License-Identifier: MIT

// Package adjacency provides the immutable NV×NV weight matrix that backs the
// shortest-path engine and its companion tools.
//
// Model:
//
//   - Vertices are integer indices in [0, NV); there is no identity beyond the index.
//   - The cell (from, to) holds the weight of the directed edge from→to as a
//     non-negative int64, or the NoEdge sentinel when no such edge exists.
//   - Storage is a flat row-major buffer with the explicit index formula
//     from*nv + to, exposed only through 2-argument accessors.
//
// Construction and immutability:
//
//   - A Builder accumulates cells (all initialized to NoEdge) and is sealed with
//     Freeze(), which yields a *Matrix. After Freeze the matrix never changes;
//     every consumer may share it freely.
//   - The Builder validates shape and weights up front: NV must be positive,
//     indices must be in range, weights must be non-negative. Only sentinel
//     errors are returned; the package never panics on user input.
//
// NoEdge discipline:
//
//   - NoEdge is math.MaxInt64. It is a marker, not a number: no code in this
//     module may add to it or compare it against real path lengths other than
//     by identity. Algorithms skip absent edges before any arithmetic, so the
//     sentinel can never overflow into a plausible distance.
//
// Self-loops conventionally hold NoEdge. The matrix records whatever it is
// given; the text loader and the random generator enforce the convention.
//
// Complexity quicksheet:
//
//   - NewBuilder: O(NV²) sentinel-fill; SetWeight/Weight/HasEdge: O(1);
//     Freeze: O(1) (ownership transfer, no copy).
package adjacency
