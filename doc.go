// Package digraph is your in-memory toolkit for building, querying and
// analyzing directed weighted graphs, safely, from many goroutines at once.
//
// 🚀 What is digraph?
//
//	A modern, thread-safe, generics-first graph engine that brings together:
//		• Core primitives: vertices & edges over any ordered label type, mutated under locks
//		• Frozen snapshots: O(V+E) copies every algorithm reads for consistent answers
//		• Views: clone, transpose, symmetric closure, induced subgraph
//		• Shortest paths: Dijkstra & BFS through one priority-first engine
//		• Structure: DFS forests, topological order, components, transitive closure
//		• Classification: completeness, bipartiteness, planarity
//		• Matrices: gonum-backed adjacency view, Floyd–Warshall, reachability
//		• Fixtures: deterministic complete/bipartite/path/cycle/star generators
//
// ✨ Why choose digraph?
//
//   - Deterministic by construction: every enumeration comes back sorted
//   - Rock-solid guarantees: R/W locks on the live graph, immutable snapshots below
//   - Generic labels: strings, ints, any cmp.Ordered key, no adapters
//   - Context-aware: long runs cancel cleanly through WithContext options
//
// Under the hood, everything is organized under seven subpackages:
//
//	core/     — Graph, Vertex, Edge, snapshots, views & JSON codec
//	dheap/    — d-ary min-heap backing the search frontier
//	search/   — unified Dijkstra/BFS engine with pluggable queues
//	dfs/      — depth-first walks, topological sort, components, closure
//	classify/ — completeness, bipartiteness & planarity predicates
//	matrix/   — dense adjacency over gonum, Floyd–Warshall, reachability
//	builder/  — deterministic graph fixtures for tests and benchmarks
//
// Quick ASCII example:
//
//	    A──▶B
//	    │   │
//	    ▼   ▼
//	    C──▶D
//
//	a directed diamond: two routes from A to D, and Dijkstra picks the
//	cheaper one.
//
// Dive into the per-package docs for contracts, complexity tables and
// runnable examples.
//
//	go get github.com/katalvlaran/digraph
package digraph
