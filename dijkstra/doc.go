// Package dijkstra provides a stateful point-to-point shortest-path oracle
// for weighted graphs with non-negative edge weights.
//
// Overview:
//
//   - An Oracle is constructed once against a core.Graph and answers
//     ShortestPath(source, target) queries one pair at a time.
//   - Each query runs Dijkstra's algorithm from the source and stops as soon
//     as the target's distance is finalized, so a query touches only the part
//     of the graph closer to the source than the target.
//   - The Oracle keeps its search state (distances, visited set, heap)
//     between calls. Reset clears that state; callers MUST call Reset between
//     queries with different sources, or results of one query leak into the next.
//     Queries repeated from the same source without Reset reuse the finalized
//     distances and are answered in O(1).
//   - Reachability is reported by an explicit boolean, never encoded in the
//     distance value: a zero distance with reachable=true is a genuine
//     zero-length path, and reachable=false means no path exists.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) per query, often far less due to target cutoff.
//   - Each vertex is extracted at most once from the priority queue.
//   - Each edge relaxation may push one new entry (lazy decrease-key).
//   - Space: O(V + E) retained between Reset calls.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph passed to New.
//   - ErrUnweightedGraph: the graph was not built with core.WithWeighted().
//   - ErrNegativeWeight:  a negative edge weight exists (detected by an O(E)
//     pre-scan in New, and re-checked during relaxation).
//   - ErrVertexNotFound:  a query names a source or target absent from the graph.
//   - ErrBadMaxDistance:  (via panic) WithMaxDistance given a negative value.
//   - ErrBadInfThreshold: (via panic) WithInfEdgeThreshold given a non-positive value.
//
// API reference:
//
//	func New(g *core.Graph, opts ...Option) (*Oracle, error)
//	func (o *Oracle) Reset()
//	func (o *Oracle) ShortestPath(source, target int64) (distance float64, reachable bool, err error)
//
// Thread safety:
//
//   - An Oracle is stateful and NOT safe for concurrent use. Allocate one
//     Oracle per goroutine (e.g. via a factory) for parallel workloads.
//
// See also:
//
//   - bfs.Oracle: the hop-count counterpart for unweighted graphs.
//   - closeness.Closeness: consumes any conforming oracle for centrality.
package dijkstra
