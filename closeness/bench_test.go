package closeness_test

import (
	"testing"

	"github.com/graphsna/centrality/closeness"
	"github.com/graphsna/centrality/core"
)

// cycleGraph builds a unit-weight cycle of n vertices.
func cycleGraph(n int64) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for i := int64(0); i < n; i++ {
		_, _ = g.AddEdge(i, (i+1)%n, 1)
	}

	return g
}

// BenchmarkCloseness_Cycle measures the sequential all-pairs loop on a
// 64-vertex cycle (64 sources × 63 point-to-point queries each).
func BenchmarkCloseness_Cycle(b *testing.B) {
	g := cycleGraph(64)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := closeness.Closeness(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCloseness_CycleParallel measures the same workload fanned out
// to 4 workers, each with its own oracle.
func BenchmarkCloseness_CycleParallel(b *testing.B) {
	g := cycleGraph(64)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := closeness.Closeness(g, closeness.WithWorkers(4)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNodeSet measures endpoint extraction on a 1024-edge cycle.
func BenchmarkNodeSet(b *testing.B) {
	g := cycleGraph(1024)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := closeness.NodeSet(g); err != nil {
			b.Fatal(err)
		}
	}
}
