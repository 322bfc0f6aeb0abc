// Package dijkstra provides the sequential (non-parallel, non-heap) variant
// of Dijkstra's shortest-path algorithm over an immutable adjacency matrix.
//
// Overview:
//
//   - Distances computes the minimum path cost from a fixed source vertex
//     (index 0) to every vertex of a directed graph with non-negative integer
//     edge weights, in O(V²) time and O(V) space.
//   - Vertex selection is a linear minimum scan over the non-finalized
//     vertices with a lowest-index tie-break, making every run deterministic.
//   - Single-target mode (WithTarget) stops the run the moment the target's
//     distance is final, which on average halves the work for near vertices.
//
// When to use:
//
//   - Dense graphs given as adjacency matrices, where V² cells exist anyway
//     and a heap buys nothing over the linear scan.
//   - As the reference baseline for checking optimized or parallel variants.
//
// Unreachability:
//
//   - Vertices with no path from the source keep the Unreachable sentinel.
//     The sentinel is compared by identity only and never enters arithmetic:
//     relaxation skips absent edges before the addition, so no overflow guard
//     is needed anywhere.
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix:     a nil *adjacency.Matrix was passed to Distances.
//   - ErrInvalidVertex: the requested target lies outside [0, NV); reported
//     before any computation starts, with no partial output.
//
// API reference:
//
//	func Distances(m *adjacency.Matrix, opts ...Option) ([]int64, error)
//
//	  - m:    the immutable weight matrix (see package adjacency).
//	  - opts: zero or one WithTarget(v) for single-target mode.
//	  - The result slice is indexed by vertex; entry v is the shortest
//	    distance from vertex 0 to v, or Unreachable.
//
// Concurrency:
//
//   - A run is single-threaded and synchronous with no suspension points.
//     The matrix is shared read-only input; the working tables are owned by
//     the run and discarded afterwards. Concurrent runs over the same matrix
//     are safe because nothing mutates it.
//
// See also:
//
//   - adjacency.Builder / graphio.Read: ways to obtain a Matrix.
//   - gengraph.Generate: seeded random matrices for testing.
package dijkstra
