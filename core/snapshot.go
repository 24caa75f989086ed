package core

import "cmp"

// Snapshot is an immutable copy of a graph's topology taken under a single
// read-lock acquisition. Algorithm packages iterate snapshots instead of
// live graphs: the writer is blocked only for the O(V+E) copy, yet the
// whole algorithm observes one consistent state.
//
// Accessors returning slices share the snapshot's backing arrays; treat
// them as read-only.
type Snapshot[K cmp.Ordered] struct {
	verts   []Vertex[K]
	index   map[K]int
	out     map[K][]Edge[K]
	rows    map[K]map[K]float64
	nEdges  int
	nSimple int
}

// Snapshot copies the graph's vertices and edges into an immutable view.
//
// Complexity: O(V + E log d), d = max out-degree.
func (g *Graph[K]) Snapshot() *Snapshot[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot[K]{
		verts:  g.verticesLocked(),
		index:  make(map[K]int, g.verts.Len()),
		out:    make(map[K][]Edge[K], len(g.adj)),
		rows:   make(map[K]map[K]float64, len(g.adj)),
		nEdges: g.nEdges,
	}
	for i, v := range s.verts {
		s.index[v.Label] = i
	}
	for from, row := range g.adj {
		nrow := make(map[K]float64, len(row))
		edges := make([]Edge[K], 0, len(row))
		for _, to := range sortedKeys(row) {
			w := row[to]
			nrow[to] = w
			edges = append(edges, Edge[K]{From: from, To: to, Weight: w})
			if from != to {
				s.nSimple++
			}
		}
		s.rows[from] = nrow
		s.out[from] = edges
	}

	return s
}

// VertexCount returns the number of vertices in the snapshot.
func (s *Snapshot[K]) VertexCount() int { return len(s.verts) }

// EdgeCount returns the number of edges, loops included.
func (s *Snapshot[K]) EdgeCount() int { return s.nEdges }

// SimpleEdgeCount returns the number of non-loop edges.
func (s *Snapshot[K]) SimpleEdgeCount() int { return s.nSimple }

// Has reports whether label keys a vertex of the snapshot.
func (s *Snapshot[K]) Has(label K) bool {
	_, ok := s.index[label]

	return ok
}

// Vertex returns the vertex record for label and whether it exists.
func (s *Snapshot[K]) Vertex(label K) (Vertex[K], bool) {
	i, ok := s.index[label]
	if !ok {
		return Vertex[K]{}, false
	}

	return s.verts[i], true
}

// Vertices returns the vertex records sorted by label ascending.
func (s *Snapshot[K]) Vertices() []Vertex[K] { return s.verts }

// Labels returns a fresh slice of all labels sorted ascending.
func (s *Snapshot[K]) Labels() []K {
	out := make([]K, len(s.verts))
	for i, v := range s.verts {
		out[i] = v.Label
	}

	return out
}

// Out returns the out-edges of label sorted by destination ascending,
// or nil when the vertex has none.
func (s *Snapshot[K]) Out(label K) []Edge[K] { return s.out[label] }

// Edge returns the edge from→to and whether it exists.
func (s *Snapshot[K]) Edge(from, to K) (Edge[K], bool) {
	w, ok := s.rows[from][to]
	if !ok {
		return Edge[K]{}, false
	}

	return Edge[K]{From: from, To: to, Weight: w}, true
}

// Edges returns a fresh slice of every edge sorted by (From, To) ascending.
func (s *Snapshot[K]) Edges() []Edge[K] {
	out := make([]Edge[K], 0, s.nEdges)
	for _, v := range s.verts {
		out = append(out, s.out[v.Label]...)
	}

	return out
}
