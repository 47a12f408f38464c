// File: nodeset.go
// Role: Node discovery: extract the distinct set of node IDs appearing as
//       edge endpoints, the package's default analysis population.
// Determinism:
//   - NodeSet returns IDs sorted ascending; same graph state ⇒ same set.

package closeness

import (
	"sort"

	"github.com/graphsna/centrality/core"
)

// NodeSet returns every distinct vertex ID that appears as the source or
// destination of at least one edge, sorted ascending.
//
// Vertices with no incident edges are not discovered by this method; that
// is the package's documented policy, not an oversight — use
// WithAllVertices() on Closeness to include them. The graph is never
// mutated; edge enumeration is a fresh snapshot on every call.
//
// Returns ErrNilGraph for a nil graph.
// Complexity: O(E + V log V).
func NodeSet(g *core.Graph) ([]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	seen := make(map[int64]struct{})
	for _, e := range g.Edges() {
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
	}

	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}
