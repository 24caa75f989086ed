// Package matrix exposes dense numeric views of core graphs for
// linear-algebra-style consumers, backed by gonum's mat.Dense.
//
// Overview:
//
//   - NewAdjacency freezes a graph into one core.Snapshot and lays its
//     weights out as an n×n matrix. Rows and columns follow the sorted
//     vertex labels, +Inf marks a missing edge off the diagonal, and
//     the diagonal reads 0 unless a self-loop stores another weight.
//   - The view is immutable once built. Dense hands out a copy, so the
//     result can feed any gonum routine without disturbing the
//     label↔index mapping.
//
// Operations:
//
//   - FloydWarshall: all-pairs shortest-path distances over the view,
//     relaxed in fixed k → i → j order with strict improvement. The
//     result diagonal is 0: a vertex reaches itself over the empty
//     path, and self-loop weights do not contribute. Weights may be
//     negative; negative cycles are not detected.
//   - Reachability: boolean transitive closure of the edge relation,
//     1 where a path of at least one edge leads from row to column.
//     The diagonal is 1 only for vertices on a cycle. This is the
//     matrix-space companion of dfs.TransitiveClosure.
//
// Errors:
//
//   - ErrGraphNil: a nil graph or nil view was supplied.
//   - ErrEmptyGraph: the graph holds no vertices.
//   - ErrUnknownLabel: a label or index outside the view.
//
// See also:
//
//   - dfs.TransitiveClosure: the same closure materialized as a graph.
//   - search.Dijkstra: single-source distances without the dense cost.
package matrix
