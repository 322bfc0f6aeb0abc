// Package pathfind computes single-source shortest paths in directed,
// positively-weighted graphs with the classical sequential Dijkstra
// algorithm, and generates random test graphs in a shared text format.
//
// 🚀 What is pathfind?
//
//	A small, deterministic toolkit built around one data format:
//		• adjacency/ — immutable NV×NV weight matrices with a NoEdge sentinel
//		• graphio/   — the text codec (loader, writer, distance reporters)
//		• dijkstra/  — the sequential O(V²) engine, fixed source at vertex 0
//		• gengraph/  — seeded random graph generation for testing the engine
//		• cmd/       — the pathfind and gengraph executables
//
// Control flow: graphio.Read → dijkstra.Distances → graphio.WriteDistances.
// The generator is an independent producer of loader-compatible input.
//
// Design guarantees:
//
//   - Deterministic: lowest-index tie-break in selection, fixed trial order
//     in generation, seeded randomness only.
//   - Sentinel-safe: NoEdge/Unreachable are identity markers, never operands;
//     nothing in the module performs arithmetic on them.
//   - Sentinel errors per package, matched with errors.Is; the executables
//     map each failure class to a distinct exit status.
//
// Non-goals, by design: negative weights, priority-queue asymptotics,
// parallelism. This is the sequential baseline, kept simple on purpose.
package pathfind
