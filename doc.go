// Package centrality is a small, thread-safe toolkit for social network
// analysis on in-memory graphs, built around Freeman's closeness centrality.
//
// What's inside?
//
//	A pure-Go library that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Shortest-path oracles: point-to-point Dijkstra (weighted) and BFS (unweighted)
//		• Centrality: Freeman's closeness centrality over any conforming oracle
//
// Why choose centrality?
//
//   - Minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, explicit reachability signalling
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – plug in your own shortest-path oracle, observe progress via hooks
//
// Under the hood, everything is organized under four subpackages:
//
//	core/      — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	dijkstra/  — stateful point-to-point shortest-path oracle for weighted graphs
//	bfs/       — hop-count shortest-path oracle for unweighted graphs
//	closeness/ — node-set extraction & Freeman's closeness centrality
//
// Quick ASCII example:
//
//	    A───B───C
//
//	a path of three vertices: closeness(B) = 1.0, closeness(A) = closeness(C) = 2/3.
//
// Dive into the per-package docs for full examples and the oracle contract.
//
//	go get github.com/graphsna/centrality
package centrality
