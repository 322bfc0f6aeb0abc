// Package dijkstra_test provides examples demonstrating how to use the engine.
// Each example is runnable via “go test -run Example”, showing both code and
// expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/adjacency"
	"github.com/katalvlaran/pathfind/dijkstra"
)

// ExampleDistances computes all distances on the canonical four-vertex graph.
// Complexity: O(V²) selection/relaxation over the adjacency matrix.
func ExampleDistances() {
	// 1) Build the matrix: 0→1=1, 0→2=4, 1→2=2, 1→3=7, 2→3=1.
	b, err := adjacency.NewBuilder(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = b.SetWeight(0, 1, 1)
	_ = b.SetWeight(0, 2, 4)
	_ = b.SetWeight(1, 2, 2)
	_ = b.SetWeight(1, 3, 7)
	_ = b.SetWeight(2, 3, 1)
	m := b.Freeze()

	// 2) Compute distances from the fixed source, vertex 0.
	dist, err := dijkstra.Distances(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The shortest path to 3 is 0→1→2→3 with total cost 4.
	fmt.Println(dist)
	// Output: [0 1 3 4]
}

// ExampleDistances_withTarget stops the run as soon as the target's distance
// is final; only that entry of the result is guaranteed meaningful.
func ExampleDistances_withTarget() {
	b, err := adjacency.NewBuilder(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = b.SetWeight(0, 1, 1)
	_ = b.SetWeight(1, 2, 2)
	m := b.Freeze()

	dist, err := dijkstra.Distances(m, dijkstra.WithTarget(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(dist[2])
	// Output: 3
}

// ExampleDistances_unreachable shows the Unreachable marker on a vertex with
// no incoming edges.
func ExampleDistances_unreachable() {
	b, err := adjacency.NewBuilder(2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m := b.Freeze() // no edges at all

	dist, err := dijkstra.Distances(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(dist[1] == dijkstra.Unreachable)
	// Output: true
}
