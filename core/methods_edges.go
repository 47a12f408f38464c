// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/
//       Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by numeric Edge.ID suffix asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock; read queries under mu read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for generated edge identifiers,
// producing stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = "e"

// AddEdge creates a new edge from→to with the given weight, implicitly
// creating missing endpoint vertices.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock mu, check multi-edge constraint.
//  4. Generate eid atomically, build the Edge with the graph's
//     directedness, store it and link adjacency.
//  5. If the edge is undirected and not a loop, mirror adjacency to→from.
//
// Errors:
//   - ErrBadVertexID if from or to is negative.
//   - ErrBadWeight if weight is non-zero on an unweighted graph,
//     NaN, or negative infinity.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if (from,to) already has an edge and
//     multi-edges are disabled.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to int64, weight float64) (string, error) {
	// 1) Input validation.
	if from < 0 || to < 0 {
		return "", ErrBadVertexID
	}
	// NaN never compares equal, and -Inf would break any distance sum;
	// +Inf is allowed and behaves as an impassable edge.
	if math.IsNaN(weight) || math.IsInf(weight, -1) {
		return "", ErrBadWeight
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist.
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock.
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti {
		if inner := g.adjacency[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 4) Generate a unique edge ID and store the edge.
	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacency[from][to][eid] = struct{}{}

	// 5) Mirror undirected.
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its undirected mirror.
//
// Returns ErrEdgeNotFound if no edge with the given ID exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(edgeID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	removeAdjacency(g, e)
	delete(g.edges, edgeID)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// For undirected edges the mirrored direction is found as well.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge is shared; callers must not mutate it.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns a fresh snapshot of all edges, sorted by the numeric
// suffix of Edge.ID ascending (insertion order). Each call re-enumerates
// from scratch, so the sequence is finite and restartable.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		return edgeIDSeq(list[i].ID) < edgeIDSeq(list[j].ID)
	})

	return list
}

// EdgeCount returns the number of stored edges
// (an undirected edge counts once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID atomically generates the next edge identifier.
func nextEdgeID(g *Graph) string {
	seq := atomic.AddUint64(&g.nextEdgeID, 1)

	return edgeIDPrefix + strconv.FormatUint(seq, 10)
}

// edgeIDSeq extracts the numeric suffix of a generated edge ID for
// stable insertion-order sorting. Malformed IDs sort first.
func edgeIDSeq(id string) uint64 {
	if len(id) <= len(edgeIDPrefix) {
		return 0
	}
	seq, err := strconv.ParseUint(id[len(edgeIDPrefix):], 10, 64)
	if err != nil {
		return 0
	}

	return seq
}
