package classify

import (
	"cmp"

	"github.com/katalvlaran/digraph/core"
)

// IsComplete reports whether every ordered pair of distinct vertices
// carries an edge; loops are ignored. Graphs with fewer than two
// vertices are trivially complete.
func IsComplete[K cmp.Ordered](g *core.Graph[K]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	snap := g.Snapshot()
	n := snap.VertexCount()
	return snap.SimpleEdgeCount() == n*(n-1), nil
}

// Bipartition two-colors the undirected reading of g starting from the
// smallest label. ok is false when the graph has fewer than two
// vertices, is disconnected, or holds a same-colored adjacency (odd
// cycle or loop). On success parts[0] is the class containing the
// smallest label; both classes are sorted ascending.
func Bipartition[K cmp.Ordered](g *core.Graph[K]) (parts [2][]K, ok bool, err error) {
	if g == nil {
		return parts, false, ErrGraphNil
	}
	parts, ok = bipartition(g.Snapshot())
	return parts, ok, nil
}

// IsBipartite reports whether the undirected reading of g is connected
// and 2-colorable; see Bipartition for the exact rules.
func IsBipartite[K cmp.Ordered](g *core.Graph[K]) (bool, error) {
	_, ok, err := Bipartition(g)
	return ok, err
}

// IsCompleteBipartite reports whether g is bipartite and its non-loop
// directed edge count equals 2·|P0|·|P1|, i.e. both directions of every
// cross pair are stored.
func IsCompleteBipartite[K cmp.Ordered](g *core.Graph[K]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	snap := g.Snapshot()
	parts, ok := bipartition(snap)
	if !ok {
		return false, nil
	}
	return snap.SimpleEdgeCount() == 2*len(parts[0])*len(parts[1]), nil
}

// bipartition runs the 2-coloring scan over one snapshot's undirected
// adjacency. The scan starts at the smallest label with color 0, so the
// first class always holds it; a visited count short of the vertex
// total means the graph is disconnected.
func bipartition[K cmp.Ordered](snap *core.Snapshot[K]) (parts [2][]K, ok bool) {
	labels := snap.Labels()
	if len(labels) < 2 {
		return parts, false
	}
	adj := undirected(snap, labels)

	colors := make(map[K]uint8, len(labels))
	colors[labels[0]] = 0
	queue := []K{labels[0]}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		cu := colors[u]
		for _, v := range adj[u] {
			cv, seen := colors[v]
			if !seen {
				colors[v] = 1 - cu
				queue = append(queue, v)
				continue
			}
			if cv == cu {
				// same-colored adjacency: odd cycle or loop
				return parts, false
			}
		}
	}
	if len(colors) != len(labels) {
		// the scan never left the first component
		return parts, false
	}

	for _, l := range labels {
		parts[colors[l]] = append(parts[colors[l]], l)
	}
	return parts, true
}

// undirected derives both-ways adjacency lists from one snapshot.
// Entries may repeat when both directions are stored; the coloring scan
// tolerates that.
func undirected[K cmp.Ordered](snap *core.Snapshot[K], labels []K) map[K][]K {
	adj := make(map[K][]K, len(labels))
	for _, u := range labels {
		for _, e := range snap.Out(u) {
			adj[u] = append(adj[u], e.To)
			if e.To != u {
				adj[e.To] = append(adj[e.To], u)
			}
		}
	}
	return adj
}
