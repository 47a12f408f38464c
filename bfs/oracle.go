// Package bfs implements a stateful hop-count shortest-path oracle
// over unweighted graphs.
package bfs

import (
	"errors"
	"fmt"

	"github.com/graphsna/centrality/core"
)

// Sentinel errors for the BFS oracle.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed to New.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrWeightedGraph is returned when the oracle is built over a weighted graph.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

	// ErrVertexNotFound is returned when a queried vertex is absent.
	ErrVertexNotFound = errors.New("bfs: vertex not found in graph")
)

// queueItem pairs a vertex ID with its BFS depth from the seeded source.
type queueItem struct {
	id    int64
	depth int
}

// Oracle answers point-to-point hop-count queries against one graph.
//
// An Oracle retains its search state between calls; Reset clears it.
// Query isolation is the caller's responsibility: call Reset before each
// query unless the source is unchanged. Not safe for concurrent use.
type Oracle struct {
	g       *core.Graph   // The input graph; read-only within the oracle.
	queue   []queueItem   // Pending frontier of the current search.
	depth   map[int64]int // Vertex ID → finalized hop distance from the seeded source.
	visited map[int64]bool
	seeded  bool // Whether a source has been seeded since the last Reset.
}

// New constructs an Oracle bound to g.
//
// Returns ErrNilGraph for a nil graph and ErrWeightedGraph for a weighted
// one: hop counts are only meaningful when every edge costs the same.
func New(g *core.Graph) (*Oracle, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	V := g.VertexCount()

	return &Oracle{
		g:       g,
		queue:   make([]queueItem, 0, V),
		depth:   make(map[int64]int, V),
		visited: make(map[int64]bool, V),
	}, nil
}

// Reset clears all per-query state so the next ShortestPath call starts a
// fresh search. The graph binding is preserved.
func (o *Oracle) Reset() {
	o.queue = o.queue[:0]
	clear(o.depth)
	clear(o.visited)
	o.seeded = false
}

// ShortestPath returns the hop-count distance from source to target, with
// an explicit reachability flag.
//
// State contract: identical to the dijkstra oracle — the first call after a
// Reset seeds the search at source; later calls without Reset are correct
// only while the source stays the same.
//
// Complexity: O(V + E) worst case per search; a repeated query from the
// same source for an already-visited target is O(1).
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
		o.visited[source] = true
		o.depth[source] = 0
		o.queue = append(o.queue, queueItem{id: source, depth: 0})
		o.seeded = true
	}

	// 3) Already finalized?
	if o.visited[target] {
		return float64(o.depth[target]), true, nil
	}

	// 4) Main loop: pop the frontier head, stop once target is marked.
	for len(o.queue) > 0 {
		item := o.queue[0]
		o.queue = o.queue[1:]

		neighbors, err := o.g.Neighbors(item.id)
		if err != nil {
			return 0, false, fmt.Errorf("bfs: failed to get neighbors of %d: %w", item.id, err)
		}

		for _, e := range neighbors {
			// Never walk backwards along a directed edge surfaced by the
			// adjacency mirror.
			if e.Directed && e.From != item.id {
				continue
			}
			v := e.To
			if v == item.id && !e.Directed {
				v = e.From
			}
			if o.visited[v] {
				continue
			}
			o.visited[v] = true
			o.depth[v] = item.depth + 1
			o.queue = append(o.queue, queueItem{id: v, depth: item.depth + 1})
		}

		// BFS guarantees the first time target is marked its depth is minimal.
		if o.visited[target] {
			return float64(o.depth[target]), true, nil
		}
	}

	// 5) Queue exhausted without reaching target: unreachable.
	return 0, false, nil
}
