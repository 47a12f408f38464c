// File: methods_clone.go
// Role: Deep cloning and bulk reset: Clone, Clear.
// Concurrency:
//   - Clone holds the source's read lock for the whole copy; the clone
//     starts with a fresh, uncontended mutex.

package core

// Clone returns a deep copy of the graph: flags, vertices, edges and
// adjacency are all duplicated, so mutations of the clone never touch
// the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[int64]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[int64]map[int64]map[string]struct{}, len(g.adjacency)),
	}

	for id := range g.vertices {
		c.vertices[id] = &Vertex{ID: id}
	}
	for eid, e := range g.edges {
		dup := *e
		c.edges[eid] = &dup
	}
	for from, buckets := range g.adjacency {
		c.adjacency[from] = make(map[int64]map[string]struct{}, len(buckets))
		for to, bucket := range buckets {
			inner := make(map[string]struct{}, len(bucket))
			for eid := range bucket {
				inner[eid] = struct{}{}
			}
			c.adjacency[from][to] = inner
		}
	}

	return c
}

// Clear removes all vertices and edges, resets the edge ID counter,
// and preserves the configuration flags.
// Complexity: O(1) (old maps are released to the GC).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextEdgeID = 0
	g.vertices = make(map[int64]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[int64]map[int64]map[string]struct{})
}
