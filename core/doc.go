// Package core provides a thread-safe, in-memory directed weighted graph
// generic over its vertex label type.
//
// The Graph G = (V, E) is always directed and always weighted:
//
//   - Vertices are flat (Label, Weight) records kept in an ordered catalog,
//     so every enumeration surface is sorted by label ascending.
//   - Edges are (From, To, Weight) values; the pair (From, To) identifies the
//     edge slot, and re-adding an existing pair overwrites its weight in
//     place rather than creating a parallel edge.
//   - Self-loops are permitted; SimpleEdges()/SimpleEdgeCount() expose the
//     non-loop subset used by structural predicates.
//   - Adjacency is owned by the Graph itself (nested maps from→to→weight),
//     never by vertex objects, so one lock guards the whole structure and no
//     mutable handle can escape its scope.
//
// Referential integrity is the central invariant: every stored edge's
// endpoints key a live vertex. AddEdge enforces it at insertion time
// (destination checked first, then source; both failures wrap
// ErrUnknownVertex) and RemoveVertex maintains it on deletion by stripping
// every in-edge of the removed label before dropping the record.
//
// Concurrency model:
//
//   - One sync.RWMutex per Graph. Reads (lookups, enumerations, views,
//     Snapshot) take the read lock; structural mutations (AddVertex,
//     RemoveVertex, AddEdge, RemoveEdge) take the write lock.
//   - Algorithm packages do not iterate a live Graph: they call Snapshot(),
//     an O(V+E) immutable copy taken under one read-lock acquisition, and
//     run on that. Writers are blocked only for the copy, yet every
//     algorithm observes a single consistent state.
//
// Label genericity:
//
//	Any K satisfying cmp.Ordered (strings, integers, floats) can serve as
//	the label type. Ordering gives deterministic output; comparability
//	gives O(1) adjacency lookups.
//
// Construction:
//
//	g := core.NewGraph[string]()
//	g.AddVertex("A")
//	g.AddVertex("B", core.WithVertexWeight(2))
//	overwrote, err := g.AddEdge("A", "B", core.WithEdgeWeight(4))
//
// or pre-populated from a snapshot of records:
//
//	g, err := core.NewGraphFrom(vertices, edges)
//
// Derived views (Transpose, SymmetricClosure, InducedSubgraph, Clone)
// return fresh graphs built under one read lock; the receiver is never
// mutated. MarshalJSON/UnmarshalJSON round-trip the whole graph as
// {"vertices":[{label,weight}],"edges":[{source,destination,weight}]}.
//
// Errors (sentinel):
//
//   - ErrBadWeight      if a vertex or edge weight is NaN or ±Inf.
//   - ErrUnknownVertex  if an edge references an absent endpoint.
//   - ErrNotInGraph     if InducedSubgraph receives an absent label.
//
// Complexity: AddVertex/AddEdge/RemoveEdge and all single-key lookups are
// O(log V) or better; RemoveVertex is O(V + E), since without a reverse
// index every adjacency row is scanned for in-edges; enumerations are
// O(V + E) already sorted.
package core
