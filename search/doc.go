// Package search provides the unified priority-first traversal engine for
// core graphs: Dijkstra's algorithm under stored edge weights, BFS as the
// unit-cost special case, and arbitrary non-negative cost functions in
// between.
//
// Overview:
//
//   - Search expands vertices in ascending order of tentative cost from a
//     single source, using a duplicate-tolerant min-queue (lazy
//     decrease-key: improvements push fresh entries, stale pops are
//     filtered against a finalized set).
//   - Every run begins by freezing the graph into a core.Snapshot, so a
//     traversal observes one consistent state no matter how the live
//     graph is mutated meanwhile.
//   - BFS is Dijkstra with UnitCost: one hop per edge. The two share the
//     engine, the options, and the result types.
//
// When to use:
//
//   - Dijkstra / DijkstraPath for exact cheapest routes on non-negative
//     weights.
//   - BFS / BFSPath for fewest-hops reachability and level structure.
//   - Search with a custom CostFunc when the metric lives outside the
//     stored weight (composite costs, scaled weights, capped hops).
//
// Key features:
//
//   - Functional options tune a run without changing the API: WithContext
//     for cancellation, WithQueue to substitute any conforming frontier,
//     WithBranching to widen the default d-ary heap.
//   - Tree captures the whole exploration (Dist, Prev, Order) and
//     reconstructs any path in O(path length) via PathTo.
//   - Results fans path assembly out across the CPUs with errgroup when
//     a query wants one Result per vertex of the frozen graph.
//   - Unreachability is an answer, not a failure: path queries and
//     Results report it as +Inf distance with a nil path.
//
// Performance and complexity:
//
//   - Time:  O((V + E) · log V) with the default binary heap.
//   - Space: O(V + E); lazy decrease-key keeps up to E entries enqueued.
//   - The negative-cost guard adds one O(E) pre-scan per run.
//
// Error handling (sentinel errors):
//
//   - ErrGraphNil: a nil *core.Graph was supplied.
//   - ErrCostNil: a nil CostFunc was supplied.
//   - ErrSourceNotFound / ErrDestinationNotFound: an endpoint label is
//     absent from the snapshot the run froze.
//   - ErrNegativeCost: the pre-scan priced some edge negative or NaN.
//   - ErrNoPath: Tree.PathTo was asked for a vertex the run never
//     reached.
//   - ErrOptionViolation: an option recorded an invalid setting.
//
// Thread safety:
//
//   - Safe to call concurrently on a shared graph: each run reads one
//     snapshot and touches no live state afterwards.
//
// See also:
//
//   - dheap: the default frontier implementation.
//   - dfs: depth-first structure (ordering, components, cycles).
//
// Thanks for choosing digraph! We aim to provide rock-solid graph algorithms
// that blend mathematical rigor, performance, and clarity. If you spot any
// issue or have suggestions, please open an issue or PR on GitHub.
package search
