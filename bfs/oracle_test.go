// Package bfs_test contains unit tests for the hop-count oracle:
// validation, distance correctness, directedness, the Reset contract,
// and unreachable targets.
package bfs_test

import (
	"errors"
	"testing"

	"github.com/graphsna/centrality/bfs"
	"github.com/graphsna/centrality/core"
)

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestNew_NilGraph(t *testing.T) {
	_, err := bfs.New(nil)
	if !errors.Is(err, bfs.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestNew_WeightedGraphRejected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := bfs.New(g)
	if !errors.Is(err, bfs.ErrWeightedGraph) {
		t.Fatalf("Expected ErrWeightedGraph, got %v", err)
	}
}

func TestShortestPath_VertexNotFound(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, 0)
	o, err := bfs.New(g)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err = o.ShortestPath(5, 1); !errors.Is(err, bfs.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound for missing source, got %v", err)
	}
	if _, _, err = o.ShortestPath(1, 5); !errors.Is(err, bfs.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound for missing target, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Hop distances.
// ------------------------------------------------------------------------

func TestShortestPath_Chain(t *testing.T) {
	// 1—2—3—4: dist(1,4) = 3 hops.
	g := core.NewGraph()
	g.AddEdge(1, 2, 0)
	g.AddEdge(2, 3, 0)
	g.AddEdge(3, 4, 0)

	o, err := bfs.New(g)
	if err != nil {
		t.Fatal(err)
	}

	d, ok, err := o.ShortestPath(1, 4)
	if err != nil || !ok || d != 3 {
		t.Fatalf("dist(1,4) = (%g,%v,%v); want (3,true,nil)", d, ok, err)
	}
}

func TestShortestPath_PrefersFewerHops(t *testing.T) {
	// Cycle 1—2—3—4—1: dist(1,3) = 2 through either side.
	g := core.NewGraph()
	g.AddEdge(1, 2, 0)
	g.AddEdge(2, 3, 0)
	g.AddEdge(3, 4, 0)
	g.AddEdge(4, 1, 0)

	o, err := bfs.New(g)
	if err != nil {
		t.Fatal(err)
	}

	d, ok, err := o.ShortestPath(1, 3)
	if err != nil || !ok || d != 2 {
		t.Fatalf("dist(1,3) = (%g,%v,%v); want (2,true,nil)", d, ok, err)
	}
}

func TestShortestPath_SelfQueryIsZero(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, 0)

	o, err := bfs.New(g)
	if err != nil {
		t.Fatal(err)
	}

	d, ok, err := o.ShortestPath(2, 2)
	if err != nil || !ok || d != 0 {
		t.Fatalf("dist(2,2) = (%g,%v,%v); want (0,true,nil)", d, ok, err)
	}
}

func TestShortestPath_DirectedRespectsOrientation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge(1, 2, 0)

	o, err := bfs.New(g)
	if err != nil {
		t.Fatal(err)
	}

	_, ok, err := o.ShortestPath(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected 1 to be unreachable from 2 along a directed edge")
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, 0)
	g.AddEdge(3, 4, 0)

	o, err := bfs.New(g)
	if err != nil {
		t.Fatal(err)
	}

	_, ok, err := o.ShortestPath(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected disconnected component to be unreachable")
	}
}

// ------------------------------------------------------------------------
// 3. Reset contract.
// ------------------------------------------------------------------------

func TestOracle_ResetIsolatesQueries(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, 0)
	g.AddEdge(2, 3, 0)

	o, err := bfs.New(g)
	if err != nil {
		t.Fatal(err)
	}

	d, ok, err := o.ShortestPath(1, 3)
	if err != nil || !ok || d != 2 {
		t.Fatalf("dist(1,3) = (%g,%v,%v); want (2,true,nil)", d, ok, err)
	}

	o.Reset()
	d, ok, err = o.ShortestPath(2, 1)
	if err != nil || !ok || d != 1 {
		t.Fatalf("after Reset, dist(2,1) = (%g,%v,%v); want (1,true,nil)", d, ok, err)
	}
}

func TestOracle_SameSourceReuseWithoutReset(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, 0)
	g.AddEdge(2, 3, 0)
	g.AddEdge(3, 4, 0)

	o, err := bfs.New(g)
	if err != nil {
		t.Fatal(err)
	}

	for i, want := range map[int64]float64{2: 1, 3: 2, 4: 3} {
		d, ok, qErr := o.ShortestPath(1, i)
		if qErr != nil || !ok || d != want {
			t.Fatalf("dist(1,%d) = (%g,%v,%v); want (%g,true,nil)", i, d, ok, qErr, want)
		}
	}
}
