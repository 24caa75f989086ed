// Package classify answers structural yes/no questions about core
// graphs: completeness, bipartiteness with partition extraction,
// complete-bipartiteness, and planarity.
//
// Overview:
//
//   - Every predicate freezes the graph into one core.Snapshot, so a
//     multi-step check (bipartition plus edge counting, planarity over
//     many derived subgraphs) judges a single consistent state.
//   - Directionality: completeness and complete-bipartiteness count the
//     stored directed edges (a complete graph holds both directions of
//     every pair), while bipartiteness and planarity read the graph
//     undirected through its symmetric closure.
//
// Operations:
//
//   - IsComplete: every ordered pair of distinct vertices carries an
//     edge; loops are ignored.
//   - Bipartition / IsBipartite: two-colors the symmetric closure from
//     the smallest label. The graph must be connected and have at least
//     two vertices; part 0 is the class holding the smallest label and
//     both classes come back sorted.
//   - IsCompleteBipartite: bipartite, and the non-loop directed edge
//     count equals 2·|P0|·|P1|.
//   - IsPlanar: Kuratowski-style exhaustive test over the symmetric
//     closure, component by component. Small and sparse components pass
//     cheap screens (n < 5, m > 3n−6, complete, complete-bipartite with
//     both sides ≥ 3); everything else recurses over vertex-deleted and
//     canonical edge-removed reductions. The search is exponential, so
//     inputs above PlanarSizeLimit (vertices plus undirected edges) are
//     refused with ErrTooLarge; K5 and K3,3 sit exactly at the limit
//     and are still accepted.
//
// Errors:
//
//   - ErrGraphNil: a nil *core.Graph was supplied.
//   - ErrTooLarge: the planarity input exceeds PlanarSizeLimit.
//   - context.Canceled / context.DeadlineExceeded: the run was stopped
//     through WithContext.
//
// See also:
//
//   - dfs.ConnectedComponents: the component split planarity builds on.
package classify
