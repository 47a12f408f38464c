// Package closeness computes Freeman's closeness centrality for every node
// of a graph.
//
// Freeman, Linton, A set of measures of centrality based upon betweenness,
// Sociometry 40: 35–41, 1977.
//
// Overview:
//
//   - For each node s, the farness of s is the sum of shortest-path distances
//     from s to every other node under analysis. The closeness centrality of
//     s is (n−1)/farness, the reciprocal of its average distance to the rest
//     of the graph.
//   - One unreachable destination makes farness infinite and pins the score
//     at exactly 0; the computation stops iterating further destinations for
//     that source as soon as this happens, since finite distances summed
//     afterward could never change the outcome.
//   - Shortest-path queries are delegated to a pluggable Oracle capability
//     (Reset + ShortestPath). Any conforming single-source shortest-path
//     implementation can be substituted; the default factory picks the
//     dijkstra oracle for weighted graphs and the bfs oracle for unweighted
//     ones.
//   - Unreachability is a value, not an error: the oracle reports it through
//     an explicit boolean flag, and a genuine zero-length path (reachable,
//     distance 0) contributes 0 to farness. The two cases are never conflated.
//
// Node set policy:
//
//   - NodeSet discovers nodes by enumerating edge endpoints, so vertices with
//     no incident edges are not part of the analysis. This is the package's
//     documented default. WithAllVertices() switches to the graph's full
//     vertex list instead, in which case isolated vertices participate and
//     score 0 (every other node is unreachable from them).
//
// Edge cases:
//
//   - A node set of size ≤ 1 yields an empty (non-nil) result: there are no
//     pairs to measure.
//   - A farness of exactly 0 with n > 1 (every other node reachable at zero
//     distance) yields +Inf under IEEE division; such graphs are degenerate
//     (all-zero-weight components) and are not special-cased.
//
// Observability:
//
//   - The computation itself never prints or logs. WithOnNode installs a hook
//     invoked once per source node with its ID, final score and wall-clock
//     duration. In parallel mode hook invocations are serialized, so the
//     hook needs no internal locking.
//
// Concurrency:
//
//   - Sequential by default. WithWorkers(k) fans source nodes out to k
//     workers, each holding its own oracle built by the factory (oracles are
//     stateful and must never be shared across goroutines). The result is
//     identical to the sequential one regardless of completion order.
//
// Error handling:
//
//   - Oracle construction or query failures are fatal for the whole run: no
//     partial result is returned and no node is silently skipped.
//
// API reference:
//
//	func NodeSet(g *core.Graph) ([]int64, error)
//	func Closeness(g *core.Graph, opts ...Option) (map[int64]float64, error)
//
// Example:
//
//	g := core.NewGraph(core.WithWeighted())
//	g.AddEdge(1, 2, 1)
//	g.AddEdge(2, 3, 1)
//	scores, err := closeness.Closeness(g)
//	// scores[2] == 1.0, scores[1] == scores[3] == 2.0/3.0
package closeness
