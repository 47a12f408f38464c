// File: closeness.go
// Role: The centrality calculator: per-source farness accumulation over a
//       shortest-path oracle, farness → closeness conversion, sequential
//       and worker-pool execution.
// Determinism:
//   - The result mapping is identical for any worker count; only wall-clock
//     time and hook invocation order vary.

package closeness

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/graphsna/centrality/core"
)

// Closeness computes the closeness centrality of every node under
// analysis and returns a mapping node ID → score with exactly one entry
// per node.
//
// Algorithm:
//  1. Discover the node set (edge endpoints by default, or the full
//     vertex list under WithAllVertices). Let n be its size. If n ≤ 1
//     there are no pairs to measure and the result is empty.
//  2. For each source node s: reset the oracle before every query, sum
//     the distances to all other nodes into farness, and break out of the
//     destination loop as soon as farness becomes infinite (one
//     unreachable destination already pins the score at 0).
//  3. Score s as 0 when farness is infinite, else (n−1)/farness. The
//     infinite case is checked explicitly rather than leaning on
//     floating-point division semantics.
//
// Any oracle construction or query failure aborts the whole run: no
// partial mapping is returned and no node is silently skipped.
//
// Complexity: n point-to-point queries per source node; with the default
// dijkstra oracle this is O(n·(V+E) log V) overall.
func Closeness(g *core.Graph, opts ...Option) (map[int64]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 1) Discover the analysis population.
	var nodes []int64
	if cfg.AllVertices {
		nodes = g.Vertices()
	} else {
		var err error
		if nodes, err = NodeSet(g); err != nil {
			return nil, err
		}
	}

	n := len(nodes)
	result := make(map[int64]float64, n)

	// 2) No pairs to measure.
	if n <= 1 {
		return result, nil
	}

	if cfg.Workers <= 1 {
		if err := runSequential(g, cfg, nodes, result); err != nil {
			return nil, err
		}

		return result, nil
	}

	if err := runParallel(g, cfg, nodes, result); err != nil {
		return nil, err
	}

	return result, nil
}

// runSequential walks all source nodes with a single oracle instance.
func runSequential(g *core.Graph, cfg Options, nodes []int64, result map[int64]float64) error {
	oracle, err := cfg.Factory(g)
	if err != nil {
		return fmt.Errorf("closeness: build oracle: %w", err)
	}
	if oracle == nil {
		return ErrNilOracleFactory
	}

	for _, source := range nodes {
		start := time.Now()
		score, cErr := sourceCloseness(oracle, source, nodes)
		if cErr != nil {
			return cErr
		}
		result[source] = score
		cfg.OnNode(NodeResult{Node: source, Score: score, Elapsed: time.Since(start)})
	}

	return nil
}

// runParallel fans source nodes out to cfg.Workers goroutines, each with
// its own oracle. Writes to the result map and hook invocations are
// serialized under one mutex, so scores land race-free and user hooks
// need no internal locking.
func runParallel(g *core.Graph, cfg Options, nodes []int64, result map[int64]float64) error {
	// Build one oracle per worker up front, so factory errors surface
	// before any computation starts.
	oracles := make([]Oracle, cfg.Workers)
	for i := range oracles {
		oracle, err := cfg.Factory(g)
		if err != nil {
			return fmt.Errorf("closeness: build oracle for worker %d: %w", i, err)
		}
		if oracle == nil {
			return ErrNilOracleFactory
		}
		oracles[i] = oracle
	}

	var (
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)
	sourceC := make(chan int64)

	for _, oracle := range oracles {
		wg.Add(1)
		go func(oracle Oracle) {
			defer wg.Done()
			for source := range sourceC {
				start := time.Now()
				score, err := sourceCloseness(oracle, source, nodes)

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()

					continue
				}
				result[source] = score
				cfg.OnNode(NodeResult{Node: source, Score: score, Elapsed: time.Since(start)})
				mu.Unlock()
			}
		}(oracle)
	}

	for _, source := range nodes {
		sourceC <- source
	}
	close(sourceC)
	wg.Wait()

	return firstErr
}

// sourceCloseness computes one source node's closeness score: the farness
// accumulation over all other nodes, with early exit once farness is
// infinite, followed by the (n−1)/farness conversion.
func sourceCloseness(oracle Oracle, source int64, nodes []int64) (float64, error) {
	farness := 0.0

	for _, target := range nodes {
		// Skip reflexiveness: the distance of a node to itself is not part
		// of farness.
		if target == source {
			continue
		}

		// Guarantee query isolation; the oracle may retain visited-state
		// from the previous query.
		oracle.Reset()

		dist, reachable, err := oracle.ShortestPath(source, target)
		if err != nil {
			return 0, fmt.Errorf("closeness: query %d→%d: %w", source, target, err)
		}

		// No path means the target is infinitely far away. The distance
		// value is ignored; a reachable zero-length path adds 0.
		if !reachable {
			farness = math.Inf(1)
		} else {
			farness += dist
		}

		// Once farness is infinite the score is 0 regardless of the
		// remaining destinations.
		if math.IsInf(farness, 1) {
			break
		}
	}

	// Explicit infinite check: do not rely on (n−1)/∞ == 0.
	if math.IsInf(farness, 1) {
		return 0, nil
	}

	return float64(len(nodes)-1) / farness, nil
}
