// Package closeness_test provides runnable examples for the centrality API.
package closeness_test

import (
	"fmt"
	"sort"

	"github.com/graphsna/centrality/closeness"
	"github.com/graphsna/centrality/core"
)

// ExampleCloseness demonstrates centrality on a unit-weight path graph.
func ExampleCloseness() {
	// 1) Build the path 1—2—3 with unit weights.
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)

	// 2) Compute closeness with the default (dijkstra) oracle.
	scores, err := closeness.Closeness(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// 3) Print scores in node order. The middle node is the most central.
	nodes := make([]int64, 0, len(scores))
	for node := range scores {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	for _, node := range nodes {
		fmt.Printf("closeness(%d) = %.4f\n", node, scores[node])
	}

	// Output:
	// closeness(1) = 0.6667
	// closeness(2) = 1.0000
	// closeness(3) = 0.6667
}

// ExampleCloseness_disconnected shows that one unreachable destination
// pins every score at zero.
func ExampleCloseness_disconnected() {
	// Two components: 1—2 and 3—4.
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge(1, 2, 1)
	g.AddEdge(3, 4, 1)

	scores, _ := closeness.Closeness(g)
	fmt.Printf("closeness(1) = %.0f, closeness(3) = %.0f\n", scores[1], scores[3])
	// Output: closeness(1) = 0, closeness(3) = 0
}

// ExampleCloseness_workers runs the same computation with a worker pool;
// the mapping is identical to the sequential result.
func ExampleCloseness_workers() {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 1, 1)

	scores, _ := closeness.Closeness(g, closeness.WithWorkers(3))
	fmt.Printf("closeness(1) = %.0f\n", scores[1])
	// Output: closeness(1) = 1
}

// ExampleNodeSet shows edge-endpoint node discovery.
func ExampleNodeSet() {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge(5, 3, 1)
	g.AddEdge(3, 8, 1)
	g.AddVertex(42) // isolated: not an edge endpoint

	nodes, _ := closeness.NodeSet(g)
	fmt.Println(nodes)
	// Output: [3 5 8]
}
