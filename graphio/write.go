// Package graphio - writing the textual graph format and reporting distances.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/pathfind/adjacency"
	"github.com/katalvlaran/pathfind/dijkstra"
)

// Write emits m in the textual graph format: NV on the first line, then one
// matrix row per line with '*' marking absent edges. The output round-trips
// losslessly through Read. m must be non-nil.
//
// Complexity: O(NV²).
func Write(w io.Writer, m *adjacency.Matrix) error {
	bw := bufio.NewWriter(w)

	nv := m.NumVertices()
	if _, err := fmt.Fprintf(bw, "%d\n", nv); err != nil {
		return fmt.Errorf("graphio: write: %w", err)
	}

	for i := 0; i < nv; i++ {
		row := m.Row(i)
		for j, weight := range row {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return fmt.Errorf("graphio: write: %w", err)
				}
			}
			tok := noEdgeToken
			if weight != adjacency.NoEdge {
				tok = strconv.FormatInt(weight, 10)
			}
			if _, err := bw.WriteString(tok); err != nil {
				return fmt.Errorf("graphio: write: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("graphio: write: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write: %w", err)
	}

	return nil
}

// WriteDistances reports a full engine result, one line per vertex, as
// "<vertex>:<distance>", with '*' in place of the distance for vertices the
// source cannot reach.
func WriteDistances(w io.Writer, dist []int64) error {
	bw := bufio.NewWriter(w)

	for v, d := range dist {
		var err error
		if d == dijkstra.Unreachable {
			_, err = fmt.Fprintf(bw, "%d:%s\n", v, noEdgeToken)
		} else {
			_, err = fmt.Fprintf(bw, "%d:%d\n", v, d)
		}
		if err != nil {
			return fmt.Errorf("graphio: write distances: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write distances: %w", err)
	}

	return nil
}

// FormatDistance renders a single-target engine result as the one-line report
// the command-line front end prints.
func FormatDistance(target adjacency.VertexID, d int64) string {
	if d == dijkstra.Unreachable {
		return fmt.Sprintf("no path to vertex %d", target)
	}

	return fmt.Sprintf("distance from 0 to %d is %d", target, d)
}
