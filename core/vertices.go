package core

// Vertex lifecycle and catalog queries. The catalog is a label-ordered
// B-tree, so enumeration is sorted without a per-call sort and membership
// checks stay O(log V).

// AddVertex inserts a vertex or overwrites an existing one with the same
// label. The stored weight defaults to DefaultVertexWeight and can be set
// with WithVertexWeight. Overwriting updates the weight only; edges
// incident to the label are untouched, because adjacency belongs to the
// Graph rather than to the vertex record.
//
// Returns ErrBadWeight if the supplied weight is NaN or ±Inf.
//
// Complexity: O(log V).
func (g *Graph[K]) AddVertex(label K, opts ...VertexOption) error {
	cfg := vertexConfig{weight: DefaultVertexWeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg.err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.verts.Set(Vertex[K]{Label: label, Weight: cfg.weight})

	return nil
}

// GetVertex returns the vertex record for label and whether it exists.
// Absence is a normal outcome, not an error.
//
// Complexity: O(log V).
func (g *Graph[K]) GetVertex(label K) (Vertex[K], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.verts.Get(Vertex[K]{Label: label})
}

// HasVertex reports whether label keys a vertex in the graph.
//
// Complexity: O(log V).
func (g *Graph[K]) HasVertex(label K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertexLocked(label)
}

// RemoveVertex deletes the vertex and every incident edge, in-edges
// included, restoring referential integrity before the record disappears.
// It returns the removed record, or (zero, false) when the label is absent.
//
// Complexity: O(V + E): every remaining adjacency row is inspected because
// edges are stored on their source only and there is no reverse index.
func (g *Graph[K]) RemoveVertex(label K) (Vertex[K], bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.verts.Delete(Vertex[K]{Label: label})
	if !ok {
		return Vertex[K]{}, false
	}

	// Strip in-edges from every other vertex. The label's own row is
	// skipped here so a self-loop is only counted once, by the row drop.
	for src, row := range g.adj {
		if src == label {
			continue
		}
		if _, hit := row[label]; hit {
			delete(row, label)
			g.nEdges--
		}
	}

	// Drop the out-adjacency row wholesale.
	g.nEdges -= len(g.adj[label])
	delete(g.adj, label)

	return v, true
}

// Vertices returns all vertex records sorted by label ascending.
//
// Complexity: O(V).
func (g *Graph[K]) Vertices() []Vertex[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.verticesLocked()
}

// Labels returns all vertex labels sorted ascending.
//
// Complexity: O(V).
func (g *Graph[K]) Labels() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]K, 0, g.verts.Len())
	g.verts.Scan(func(v Vertex[K]) bool {
		out = append(out, v.Label)

		return true
	})

	return out
}

// VertexCount returns the number of vertices.
//
// Complexity: O(1).
func (g *Graph[K]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.verts.Len()
}

// hasVertexLocked reports membership; callers hold g.mu.
func (g *Graph[K]) hasVertexLocked(label K) bool {
	_, ok := g.verts.Get(Vertex[K]{Label: label})

	return ok
}

// verticesLocked snapshots the catalog in label order; callers hold g.mu.
func (g *Graph[K]) verticesLocked() []Vertex[K] {
	out := make([]Vertex[K], 0, g.verts.Len())
	g.verts.Scan(func(v Vertex[K]) bool {
		out = append(out, v)

		return true
	})

	return out
}
