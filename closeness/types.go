// Package closeness defines the oracle capability, tunable options and
// error values for the closeness centrality computation.
package closeness

import (
	"errors"
	"fmt"
	"time"

	"github.com/graphsna/centrality/bfs"
	"github.com/graphsna/centrality/core"
	"github.com/graphsna/centrality/dijkstra"
)

// Sentinel errors for the centrality computation.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("closeness: graph is nil")

	// ErrNilOracleFactory is returned when a nil factory is supplied.
	ErrNilOracleFactory = errors.New("closeness: oracle factory is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("closeness: invalid option supplied")
)

// Oracle is the shortest-path capability consumed by the calculator.
//
// Reset clears any internal per-query state so results of successive
// queries do not leak into each other; the calculator calls it before
// every query. ShortestPath reports the distance from source to target
// together with an explicit reachability flag — implementations must
// never encode "no path" in the distance value.
//
// Oracles are stateful; one Oracle must not be shared across goroutines.
type Oracle interface {
	Reset()
	ShortestPath(source, target int64) (distance float64, reachable bool, err error)
}

// OracleFactory yields a ready-to-use Oracle bound to g. In parallel mode
// the factory is invoked once per worker.
type OracleFactory func(g *core.Graph) (Oracle, error)

// DefaultOracleFactory builds a dijkstra oracle for weighted graphs and a
// bfs oracle for unweighted ones.
func DefaultOracleFactory(g *core.Graph) (Oracle, error) {
	if g.Weighted() {
		orc, err := dijkstra.New(g)
		if err != nil {
			return nil, err
		}

		return orc, nil
	}

	orc, err := bfs.New(g)
	if err != nil {
		return nil, err
	}

	return orc, nil
}

// NodeResult carries per-source-node observability data to the OnNode hook.
type NodeResult struct {
	// Node is the source node the score belongs to.
	Node int64

	// Score is the node's closeness centrality.
	Score float64

	// Elapsed is the wall-clock time spent on this node's destination loop.
	Elapsed time.Duration
}

// Option configures the computation via functional arguments.
// If an Option is invalid (e.g. a non-positive worker count), it is
// recorded internally and surfaced as ErrOptionViolation when Closeness
// is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the computation.
type Options struct {
	// Factory builds the shortest-path oracle(s). Defaults to
	// DefaultOracleFactory.
	Factory OracleFactory

	// Workers is the number of concurrent workers; 1 means sequential.
	Workers int

	// OnNode is called once per source node with its final score and timing.
	OnNode func(NodeResult)

	// AllVertices switches node discovery from edge endpoints to the
	// graph's full vertex list, including isolated vertices.
	AllVertices bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - DefaultOracleFactory
//   - sequential execution (Workers == 1)
//   - a no-op OnNode hook
//   - edge-endpoint node discovery.
func DefaultOptions() Options {
	return Options{
		Factory: DefaultOracleFactory,
		Workers: 1,
		OnNode:  func(NodeResult) {},
	}
}

// WithOracleFactory substitutes the shortest-path engine. Supplying nil
// is recorded and surfaced as ErrNilOracleFactory.
func WithOracleFactory(f OracleFactory) Option {
	return func(o *Options) {
		if f == nil {
			o.err = ErrNilOracleFactory

			return
		}
		o.Factory = f
	}
}

// WithWorkers enables parallel execution with n workers, each holding its
// own oracle instance. n must be ≥ 1; other values are recorded and
// surfaced as ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1, got %d", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}

// WithOnNode installs an observability hook invoked once per source node.
// A nil hook is ignored, keeping the default no-op.
func WithOnNode(hook func(NodeResult)) Option {
	return func(o *Options) {
		if hook != nil {
			o.OnNode = hook
		}
	}
}

// WithAllVertices includes isolated vertices in the analysis by reading
// the graph's vertex list instead of enumerating edge endpoints.
func WithAllVertices() Option {
	return func(o *Options) {
		o.AllVertices = true
	}
}
