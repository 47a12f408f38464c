// Package dijkstra implements a stateful point-to-point shortest-path oracle
// over weighted graphs with non-negative edge weights.
//
// The oracle processes vertices in order of increasing distance using a
// min-heap priority queue with a “lazy” decrease-key strategy (duplicates are
// pushed and stale entries ignored), and stops as soon as the target vertex
// is finalized.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/graphsna/centrality/core"
)

// Oracle answers point-to-point shortest-path queries against one graph.
//
// An Oracle retains its search state between calls; Reset clears it.
// Query isolation is the caller's responsibility: call Reset before each
// query unless the source is unchanged. Not safe for concurrent use.
type Oracle struct {
	g       *core.Graph       // The input graph; read-only within the oracle.
	opts    Options           // Configuration options (thresholds).
	dist    map[int64]float64 // Vertex ID → current best distance from the seeded source.
	visited map[int64]bool    // Tracks if a vertex's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for the lazy priority queue.
	seeded  bool              // Whether a source has been seeded since the last Reset.
}

// New constructs an Oracle bound to g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must be weighted (ErrUnweightedGraph).
//  3. No edge in g can have negative weight (ErrNegativeWeight);
//     an upfront O(E) scan fails fast.
//
// Complexity: O(E) for the pre-scan.
func New(g *core.Graph, opts ...Option) (*Oracle, error) {
	// 1) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Validate graph supports weights.
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}

	// 3) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 4) Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s %d→%d weight=%g", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
	}

	V := g.VertexCount()

	return &Oracle{
		g:       g,
		opts:    cfg,
		dist:    make(map[int64]float64, V),
		visited: make(map[int64]bool, V),
		pq:      make(nodePQ, 0, V),
	}, nil
}

// Reset clears all per-query state (distances, visited set, heap), so the
// next ShortestPath call starts a fresh search. The graph binding and
// options are preserved.
//
// Complexity: O(state size) to release entries; allocations are reused.
func (o *Oracle) Reset() {
	clear(o.dist)
	clear(o.visited)
	o.pq = o.pq[:0]
	o.seeded = false
}

// ShortestPath returns the shortest distance from source to target, with an
// explicit reachability flag.
//
// Returns:
//
//   - distance:  the minimal path cost; 0 when source == target.
//   - reachable: false when no path exists within the configured thresholds.
//     The distance value is meaningless (zero) in that case.
//   - err:       ErrVertexNotFound (wrapped, naming the missing endpoint) if
//     source or target is absent; relaxation failures propagate.
//
// State contract: the first call after a Reset seeds the search at source.
// Subsequent calls without Reset reuse the finalized distances, which is
// correct only while the source stays the same — calling with a different
// source on dirty state answers from the previously seeded source.
// Call Reset between queries to guarantee isolation.
//
// Complexity: O((V + E) log V) worst case; a repeated query from the same
// source for an already-finalized target is O(1).
func (o *Oracle) ShortestPath(source, target int64) (float64, bool, error) {
	// 1) Validate both endpoints exist.
	if !o.g.HasVertex(source) {
		return 0, false, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}
	if !o.g.HasVertex(target) {
		return 0, false, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}

	// 2) Seed the search on first use after Reset.
	if !o.seeded {
		o.dist[source] = 0
		heap.Push(&o.pq, &nodeItem{id: source, dist: 0})
		o.seeded = true
	}

	// 3) Already finalized (e.g. repeated query from the same source)?
	if o.visited[target] {
		return o.dist[target], true, nil
	}

	// 4) Main loop: pop the closest vertex, finalize it, relax outward.
	for o.pq.Len() > 0 {
		item := heap.Pop(&o.pq).(*nodeItem)

		// Skip stale heap entries (lazy decrease-key).
		if o.visited[item.id] {
			continue
		}

		// Beyond the exploration cap: everything left is farther still.
		if item.dist > o.opts.MaxDistance {
			break
		}

		// Finalize; item.dist is now the true shortest distance.
		o.visited[item.id] = true

		if item.id == target {
			return item.dist, true, nil
		}

		if err := o.relax(item.id); err != nil {
			return 0, false, err
		}
	}

	// 5) Heap exhausted (or cap hit) without reaching target: unreachable.
	return 0, false, nil
}

// relax examines each edge outgoing from vertex u and attempts to improve
// distances to its neighbors, respecting InfEdgeThreshold and MaxDistance.
//
// Assumes o.dist[u] is finalized before the call.
func (o *Oracle) relax(u int64) error {
	neighbors, err := o.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	du := o.dist[u]
	for _, e := range neighbors {
		// Filter out directed edges that do not originate from u, so we never
		// walk backwards along a one-way edge surfaced by the adjacency mirror.
		if e.Directed && e.From != u {
			continue
		}

		// Resolve the far endpoint; undirected edges surface in both directions.
		v := e.To
		if v == u && !e.Directed {
			v = e.From
		}

		w := e.Weight

		// Skip any edge marked impassable by InfEdgeThreshold.
		if w >= o.opts.InfEdgeThreshold {
			continue
		}

		// Safety check: the pre-scan should make this unreachable.
		if w < 0 {
			return fmt.Errorf("%w: edge %s %d→%d weight=%g", ErrNegativeWeight, e.ID, e.From, e.To, w)
		}

		newDist := du + w

		if newDist > o.opts.MaxDistance {
			continue
		}

		// Strictly-better check; missing entries count as +∞.
		if cur, ok := o.dist[v]; ok && newDist >= cur {
			continue
		}

		o.dist[v] = newDist

		// Lazy decrease-key: push a duplicate, ignore the stale one on pop.
		heap.Push(&o.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   int64   // vertex ID
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
