// Package dijkstra implements the sequential variant of Dijkstra's
// shortest-path algorithm over an immutable adjacency matrix.
//
// Complexity:
//
//   - Time:  O(V²)
//   - At most V selection steps; each step scans all V vertices for the
//     minimum tentative distance, then relaxes up to V outgoing edges.
//   - Space: O(V) for the distance table and the done set.
//
// Notes on implementation choices:
//
//   - Selection ties break toward the lowest vertex index, so output is fully
//     deterministic for a given matrix.
//   - Absent edges (adjacency.NoEdge) are skipped before any addition; the
//     Unreachable sentinel therefore never enters arithmetic and cannot wrap.
//   - The run terminates early when the minimum tentative distance among
//     non-finalized vertices is Unreachable: no remaining vertex has a path.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathfind/adjacency"
)

// Distances computes the minimum distance from the source (vertex 0) to every
// vertex of m. The result is indexed by vertex; entries with no path from the
// source hold Unreachable.
//
// In single-target mode (WithTarget) the run stops as soon as the target's
// distance is final; only the target's entry is then guaranteed meaningful.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMatrix).
//  2. The target, if any, must lie in [0, NV) (ErrInvalidVertex).
//
// Guarantees:
//
//   - Every finalized distance equals the true shortest-path length; once a
//     vertex is finalized its distance never changes.
//   - dist[Source] is always 0.
//   - Repeated runs over the same matrix yield identical results.
//
// Complexity: O(V²) time, O(V) space.
func Distances(m *adjacency.Matrix, opts ...Option) ([]int64, error) {
	// 1) Build Options from the functional-option list.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the matrix.
	if m == nil {
		return nil, ErrNilMatrix
	}

	// 3) Validate the target before any computation.
	nv := m.NumVertices()
	if cfg.singleTarget && (cfg.target < 0 || cfg.target >= nv) {
		return nil, fmt.Errorf("%w: target=%d nv=%d", ErrInvalidVertex, cfg.target, nv)
	}

	// 4) Set up the runner state and execute the main loop.
	r := &runner{
		m:       m,
		options: cfg,
		dist:    make([]int64, nv),
		done:    make([]bool, nv),
	}
	r.init()
	r.process()

	return r.dist, nil
}

// runner holds the mutable state for a single execution. The matrix is
// read-only input owned by the caller; dist and done are owned exclusively by
// the runner and become the result (dist) or are discarded (done).
type runner struct {
	m       *adjacency.Matrix // the input graph; never mutated
	options Options           // run configuration (target mode)
	dist    []int64           // vertex → best-known distance from Source
	done    []bool            // vertex → distance finalized
}

// init fills the distance table with Unreachable and anchors the source at 0.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
	}
	r.dist[Source] = 0
}

// process is the main loop: select the closest non-finalized vertex, finalize
// it, relax its outgoing edges. Runs at most NV steps.
//
// Termination conditions:
//
//   - All NV vertices have been finalized.
//   - The selection scan finds only Unreachable vertices (no paths remain).
//   - Single-target mode selected the target (its distance is final).
func (r *runner) process() {
	nv := r.m.NumVertices()

	var cur adjacency.VertexID
	var curDist int64
	for step := 0; step < nv; step++ {
		// 1) Select. The first step always picks the source at distance 0;
		//    later steps scan for the minimum tentative distance.
		if step == 0 {
			cur, curDist = Source, 0
		} else {
			cur, curDist = r.selectMin()
		}

		// 2) Terminate once nothing reachable remains: every non-finalized
		//    vertex keeps Unreachable for good.
		if curDist == Unreachable {
			break
		}

		// 3) Early exit in single-target mode: the selected vertex's distance
		//    is final the moment it wins the selection scan.
		if r.options.singleTarget && cur == r.options.target {
			break
		}

		// 4) Finalize, then relax all edges out of cur.
		r.done[cur] = true
		r.relax(cur, curDist)
	}
	// The last step of a full run relaxes nothing new; it exists so that the
	// loop bound alone proves termination.
}

// selectMin returns the non-finalized vertex with the minimum tentative
// distance, lowest index first on ties. When every candidate is Unreachable
// the returned distance is Unreachable and the vertex index is meaningless.
//
// Complexity: O(V).
func (r *runner) selectMin() (adjacency.VertexID, int64) {
	best := Source
	bestDist := Unreachable
	for v, d := range r.dist {
		// Strict < keeps the lowest-index winner among equal distances.
		if !r.done[v] && d < bestDist {
			best, bestDist = v, d
		}
	}

	return best, bestDist
}

// relax offers every non-finalized vertex the path through cur: if
// curDist + weight(cur→v) beats its tentative distance, the table is updated.
// Absent edges are skipped before the addition, so the NoEdge sentinel never
// participates in arithmetic. Edges back into the source or cur itself need
// no special case: the source is finalized at step 0 and cur was just
// finalized, so both fail the done check.
//
// Complexity: O(V).
func (r *runner) relax(cur adjacency.VertexID, curDist int64) {
	row := r.m.Row(cur)
	for v, w := range row {
		if r.done[v] || w == adjacency.NoEdge {
			continue
		}
		// Saturate: a candidate at or beyond Unreachable can improve nothing,
		// and skipping it keeps curDist+w from overflowing.
		if w >= Unreachable-curDist {
			continue
		}
		if alt := curDist + w; alt < r.dist[v] {
			r.dist[v] = alt
		}
	}
}
