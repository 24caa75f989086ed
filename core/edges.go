package core

import (
	"cmp"
	"fmt"
	"slices"
)

// Edge lifecycle and queries. Edges live in nested adjacency maps
// from→to→weight; a row is created lazily on the first out-edge of a
// vertex, and an absent row simply means "no out-edges".

// AddEdge inserts the edge from→to or overwrites the weight of an existing
// slot. The weight defaults to DefaultEdgeWeight and can be set with
// WithEdgeWeight. Self-loops are permitted. It returns true iff an existing
// slot was overwritten.
//
// Both endpoints must already exist: the destination is checked first, then
// the source, and either failure wraps ErrUnknownVertex with the offending
// label. ErrBadWeight is returned for a NaN or infinite weight.
//
// Complexity: O(log V).
func (g *Graph[K]) AddEdge(from, to K, opts ...EdgeOption) (bool, error) {
	cfg := edgeConfig{weight: DefaultEdgeWeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return false, cfg.err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertexLocked(to) {
		return false, fmt.Errorf("%w: destination %v", ErrUnknownVertex, to)
	}
	if !g.hasVertexLocked(from) {
		return false, fmt.Errorf("%w: source %v", ErrUnknownVertex, from)
	}

	row := g.adj[from]
	if row == nil {
		row = make(map[K]float64)
		g.adj[from] = row
	}
	_, overwrote := row[to]
	row[to] = cfg.weight
	if !overwrote {
		g.nEdges++
	}

	return overwrote, nil
}

// GetEdge returns the edge from→to and whether it exists.
// Absence is a normal outcome, not an error.
//
// Complexity: O(1).
func (g *Graph[K]) GetEdge(from, to K) (Edge[K], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adj[from][to]
	if !ok {
		return Edge[K]{}, false
	}

	return Edge[K]{From: from, To: to, Weight: w}, true
}

// HasEdge reports whether the edge from→to exists.
//
// Complexity: O(1).
func (g *Graph[K]) HasEdge(from, to K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[from][to]

	return ok
}

// RemoveEdge deletes the edge from→to and returns the removed value, or
// (zero, false) when the slot does not exist.
//
// Complexity: O(1).
func (g *Graph[K]) RemoveEdge(from, to K) (Edge[K], bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	row := g.adj[from]
	w, ok := row[to]
	if !ok {
		return Edge[K]{}, false
	}
	delete(row, to)
	if len(row) == 0 {
		delete(g.adj, from)
	}
	g.nEdges--

	return Edge[K]{From: from, To: to, Weight: w}, true
}

// Edges returns every edge sorted by (From, To) ascending.
//
// Complexity: O(V + E log d), d = max out-degree.
func (g *Graph[K]) Edges() []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

// EdgeCount returns the number of edges, loops included.
//
// Complexity: O(1).
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nEdges
}

// SimpleEdges returns every non-loop edge sorted by (From, To) ascending.
// Structural predicates count these: a loop never contributes to
// completeness or bipartiteness.
//
// Complexity: O(V + E log d).
func (g *Graph[K]) SimpleEdges() []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	all := g.edgesLocked()
	out := make([]Edge[K], 0, len(all))
	for _, e := range all {
		if !e.IsLoop() {
			out = append(out, e)
		}
	}

	return out
}

// SimpleEdgeCount returns the number of non-loop edges.
//
// Complexity: O(V).
func (g *Graph[K]) SimpleEdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := g.nEdges
	for src, row := range g.adj {
		if _, loop := row[src]; loop {
			n--
		}
	}

	return n
}

// EdgesFrom returns the out-edges of src sorted by destination ascending.
// An absent src yields nil, matching the empty-result policy for reads.
//
// Complexity: O(d log d), d = out-degree of src.
func (g *Graph[K]) EdgesFrom(src K) []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row := g.adj[src]
	if len(row) == 0 {
		return nil
	}
	out := make([]Edge[K], 0, len(row))
	for _, to := range sortedKeys(row) {
		out = append(out, Edge[K]{From: src, To: to, Weight: row[to]})
	}

	return out
}

// EdgesTo returns the in-edges of dst sorted by source ascending.
// An absent dst yields nil. Edges are indexed by source only, so this scans
// every adjacency row.
//
// Complexity: O(V).
func (g *Graph[K]) EdgesTo(dst K) []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge[K]
	g.verts.Scan(func(v Vertex[K]) bool {
		if w, ok := g.adj[v.Label][dst]; ok {
			out = append(out, Edge[K]{From: v.Label, To: dst, Weight: w})
		}

		return true
	})

	return out
}

// edgesLocked snapshots all edges sorted by (From, To); callers hold g.mu.
func (g *Graph[K]) edgesLocked() []Edge[K] {
	out := make([]Edge[K], 0, g.nEdges)
	g.verts.Scan(func(v Vertex[K]) bool {
		row := g.adj[v.Label]
		if len(row) == 0 {
			return true
		}
		for _, to := range sortedKeys(row) {
			out = append(out, Edge[K]{From: v.Label, To: to, Weight: row[to]})
		}

		return true
	})

	return out
}

// sortedKeys returns the keys of row in ascending order.
func sortedKeys[K cmp.Ordered, V any](row map[K]V) []K {
	keys := make([]K, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
