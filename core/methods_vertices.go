// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/RemoveVertex,
//       Vertices/VertexCount.
// Determinism:
//   - Vertices() returns vertex IDs sorted ascending.
// Concurrency:
//   - Mutations under mu write lock; read queries under mu read lock.

package core

import "sort"

// AddVertex inserts a vertex with the given ID.
// Adding an existing vertex is a no-op.
//
// Returns ErrBadVertexID if id is negative.
// Complexity: O(1).
func (g *Graph) AddVertex(id int64) error {
	if id < 0 {
		return ErrBadVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = &Vertex{ID: id}
	}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and every edge incident to it.
//
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(v)) plus adjacency cleanup.
func (g *Graph) RemoveVertex(id int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	// Collect the IDs of all incident edges first: mutating g.edges while
	// ranging over it is not safe.
	var doomed []string
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			doomed = append(doomed, eid)
		}
	}
	for _, eid := range doomed {
		removeAdjacency(g, g.edges[eid])
		delete(g.edges, eid)
	}

	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// The returned slice is a fresh snapshot; callers may mutate it freely.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
