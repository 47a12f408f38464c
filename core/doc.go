// Package core provides a thread-safe in-memory Graph implementation
// with a minimal, composable API surface.
//
// The Graph G = (V,E) identifies vertices by non-negative int64 IDs and
// supports a mix of behaviors:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - A single sync.RWMutex guarding vertices, edges and adjacency
//
// Why use core.Graph?
//
//   - Single type, composable flags — no explosion of separate graph types.
//   - Deterministic iteration — Vertices(), Edges(), Neighbors() all return sorted results.
//   - Restartable enumeration — Edges() returns a fresh snapshot on every call,
//     so consumers may re-enumerate without side effects.
//   - Clone support — deep copy of vertices, edges and adjacency.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Sets the orientation of new edges.
//	    • Directed graphs store only “from→to” pointers.
//	    • Undirected graphs mirror edges in adjacency[to][from].
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int64) error          // O(1)
//	HasVertex(id int64) bool           // O(1)
//	RemoveVertex(id int64) error       // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to int64, weight float64) (edgeID string, err error) // O(1) amortized
//	RemoveEdge(edgeID string) error    // O(1)
//	HasEdge(from, to int64) bool       // O(1)
//
//	// Query
//	Neighbors(id int64) ([]*Edge, error) // O(d·log d), loops appear once, multi-edges repeated
//	Vertices() []int64                   // O(V·log V), sorted ascending
//	Edges() []*Edge                      // O(E·log E), sorted by Edge.ID
//	VertexCount() int                    // O(1)
//	EdgeCount() int                      // O(1)
//
//	// Cloning & maintenance
//	Clone() *Graph                       // O(V+E): deep copy
//	Clear()                              // O(1): reset storage; preserve flags
//
// Edge struct fields:
//
//	ID       string   // “e1”, “e2”, …
//	From     int64    // source vertex ID
//	To       int64    // destination vertex ID
//	Weight   float64  // cost (zero in unweighted graphs), finite and non-NaN
//	Directed bool     // true=one-way, false=bidirectional
//
// Errors:
//
//	ErrBadVertexID         – negative vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph, NaN or negative infinity
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
