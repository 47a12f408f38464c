// Package bfs provides a hop-count shortest-path oracle for unweighted graphs.
//
// Overview:
//
//   - An Oracle is constructed once against an unweighted core.Graph and
//     answers ShortestPath(source, target) queries, where the distance is the
//     minimum number of edges between the two vertices.
//   - Breadth-first search explores vertices in increasing hop distance and
//     stops as soon as the target is dequeued.
//   - Like its weighted counterpart in package dijkstra, the Oracle keeps
//     search state between calls: Reset clears it, and callers MUST call
//     Reset between queries with different sources. Repeated queries from the
//     same source reuse finalized distances.
//   - Reachability is reported by an explicit boolean, never encoded in the
//     distance value.
//
// Complexity:
//
//   - Time:  O(V + E) per query, less with the target cutoff.
//   - Space: O(V) retained between Reset calls.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph passed to New.
//   - ErrWeightedGraph:  the graph carries weights; use the dijkstra oracle instead.
//   - ErrVertexNotFound: a query names a source or target absent from the graph.
//
// Thread safety:
//
//   - An Oracle is stateful and NOT safe for concurrent use. Allocate one
//     Oracle per goroutine for parallel workloads.
package bfs
