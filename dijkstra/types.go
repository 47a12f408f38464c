// Package dijkstra defines configuration options and error values
// for the point-to-point shortest-path oracle.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the oracle.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted
	// but Dijkstra requires non-negative weights to compute shortest paths.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrVertexNotFound indicates that a queried source or target vertex
	// does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the oracle.
//
// MaxDistance      – cap on distances to explore; a target farther than this
//
//	is reported unreachable. Must be ≥ 0. Default +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default +Inf (no obstacles).
type Options struct {
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring the oracle.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored,
// and targets beyond it are reported unreachable.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - MaxDistance:      +Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
