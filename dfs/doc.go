// Package dfs implements depth-first structure analysis on core graphs:
// topological ordering, cycle detection, strongly and weakly connected
// components, and the transitive closure.
//
// Overview:
//
//   - Every operation freezes the graph into one core.Snapshot and
//     derives forward, reverse, and undirected adjacency lists from it,
//     so multi-pass algorithms (Kosaraju) see a single consistent state.
//   - The walk itself is an explicit-stack traversal: each vertex is
//     pushed twice, and the second pop assigns its exit index, counted
//     down from |V|. Ascending exit index is a topological order on
//     acyclic inputs, and a neighbor met in the gray state is a back
//     edge, which proves a cycle.
//   - Roots are scanned in ascending label order and neighbors pop in
//     ascending label order; the same input always yields the same
//     forest.
//
// Operations:
//
//   - Walk: the raw forest (discovery order, exit indexes, parents,
//     roots, cyclicity) for callers that want the structure itself.
//   - TopologicalSort / IsAcyclic: dependency ordering plus the guard
//     that makes it trustworthy; the order returned for a cyclic graph
//     is advisory only.
//   - StronglyConnectedComponents / IsStronglyConnected: Kosaraju's
//     two passes, run as transpose-then-original; components of size
//     one are not reported.
//   - ConnectedComponents / IsConnected: the same walk over the
//     undirected reading of the graph, with the same size-one
//     exclusion.
//   - TransitiveClosure: a new graph holding an edge (u,v) for every
//     ordered pair where v is reachable from u; per-source reachability
//     fans out across the CPUs with errgroup.
//
// Complexity:
//
//   - Walks and component passes: O(V + E) time, O(V) extra space.
//   - TransitiveClosure: O(V · (V + E)) time; the output itself may
//     hold up to V² edges.
//
// Errors:
//
//   - ErrGraphNil: a nil *core.Graph was supplied.
//   - context.Canceled / context.DeadlineExceeded: the run was stopped
//     through WithContext.
//
// See also:
//
//   - search: cost-ordered traversal (BFS, Dijkstra).
//   - matrix.Reachability: the dense Floyd–Warshall counterpart of
//     TransitiveClosure.
package dfs
