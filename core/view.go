package core

import (
	"cmp"
	"fmt"
)

// Derived views. Each returns a fresh Graph built under one read-lock
// acquisition on the source, so the result reflects a single consistent
// state and the source is never mutated. Construction writes the new
// graph's internals directly: endpoints are known-valid, so routing the
// copies through AddEdge would only add failure paths that cannot fire.

// Clone returns a deep copy of the graph.
//
// Complexity: O(V + E).
func (g *Graph[K]) Clone() *Graph[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneLocked()
}

// Transpose returns a new graph with every edge reversed and the same
// vertex set: u→v (w) becomes v→u (w). A second transpose restores the
// original edge set.
//
// Complexity: O(V + E).
func (g *Graph[K]) Transpose() *Graph[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph[K]()
	g.verts.Scan(func(v Vertex[K]) bool {
		out.verts.Set(v)

		return true
	})
	for from, row := range g.adj {
		for to, w := range row {
			setEdgeRaw(out, to, from, w)
		}
	}

	return out
}

// SymmetricClosure returns a new graph that adds, for every edge (u,v), the
// reverse edge (v,u) with the same weight when it is absent. Existing
// reverse edges keep their own weights; a self-loop is its own reverse.
//
// Complexity: O(V + E).
func (g *Graph[K]) SymmetricClosure() *Graph[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.cloneLocked()
	for from, row := range g.adj {
		for to, w := range row {
			if _, ok := out.adj[to][from]; !ok {
				setEdgeRaw(out, to, from, w)
			}
		}
	}

	return out
}

// InducedSubgraph returns a new graph containing exactly the vertices in
// labels and every edge whose endpoints are both in labels. Each label must
// key a vertex of the receiver, otherwise the call fails with ErrNotInGraph
// wrapping the first offending label. Duplicate labels are tolerated.
//
// Complexity: O(V + E).
func (g *Graph[K]) InducedSubgraph(labels []K) (*Graph[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keep := make(map[K]bool, len(labels))
	for _, l := range labels {
		if !g.hasVertexLocked(l) {
			return nil, fmt.Errorf("%w: %v", ErrNotInGraph, l)
		}
		keep[l] = true
	}

	out := NewGraph[K]()
	g.verts.Scan(func(v Vertex[K]) bool {
		if keep[v.Label] {
			out.verts.Set(v)
		}

		return true
	})
	for from, row := range g.adj {
		if !keep[from] {
			continue
		}
		for to, w := range row {
			if keep[to] {
				setEdgeRaw(out, from, to, w)
			}
		}
	}

	return out, nil
}

// cloneLocked deep-copies catalog and adjacency; callers hold g.mu.
func (g *Graph[K]) cloneLocked() *Graph[K] {
	out := NewGraph[K]()
	g.verts.Scan(func(v Vertex[K]) bool {
		out.verts.Set(v)

		return true
	})
	for from, row := range g.adj {
		nrow := make(map[K]float64, len(row))
		for to, w := range row {
			nrow[to] = w
		}
		out.adj[from] = nrow
	}
	out.nEdges = g.nEdges

	return out
}

// setEdgeRaw writes an edge into a graph under construction, bypassing
// endpoint validation. Only view builders may call it, and only on graphs
// not yet published to other goroutines.
func setEdgeRaw[K cmp.Ordered](out *Graph[K], from, to K, w float64) {
	row := out.adj[from]
	if row == nil {
		row = make(map[K]float64)
		out.adj[from] = row
	}
	if _, ok := row[to]; !ok {
		out.nEdges++
	}
	row[to] = w
}
