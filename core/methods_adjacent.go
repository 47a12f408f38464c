// File: methods_adjacent.go
// Role: Adjacency queries and internal adjacency maintenance:
//       Neighbors, ensureAdjacency, removeAdjacency.
// Determinism:
//   - Neighbors() returns edges sorted by numeric Edge.ID suffix asc.
// Concurrency:
//   - Read queries under mu read lock; helpers assume mu is held for write.

package core

import "sort"

// Neighbors returns every edge incident to the given vertex:
// all edges e with e.From == id, plus undirected edges with e.To == id
// (via the mirrored adjacency entry). A self-loop appears once;
// parallel edges appear once each.
//
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(d log d) where d = deg(id).
func (g *Graph) Neighbors(id int64) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return edgeIDSeq(out[i].ID) < edgeIDSeq(out[j].ID)
	})

	return out, nil
}

// ensureAdjacency creates the nested adjacency buckets for from→to.
// Caller must hold mu for write.
func ensureAdjacency(g *Graph, from, to int64) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[int64]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks an edge from the adjacency index, including
// the undirected mirror, and prunes empty buckets.
// Caller must hold mu for write.
func removeAdjacency(g *Graph, e *Edge) {
	unlink := func(from, to int64) {
		if bucket := g.adjacency[from][to]; bucket != nil {
			delete(bucket, e.ID)
			if len(bucket) == 0 {
				delete(g.adjacency[from], to)
			}
		}
		if len(g.adjacency[from]) == 0 {
			delete(g.adjacency, from)
		}
	}

	unlink(e.From, e.To)
	if !e.Directed && e.From != e.To {
		unlink(e.To, e.From)
	}
}
