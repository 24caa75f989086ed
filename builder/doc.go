// Package builder generates small deterministic graph fixtures:
// complete graphs, complete bipartite graphs, paths, cycles and stars.
//
// Overview:
//
//   - Every generator validates its labels first and then emits
//     vertices and edges in the order given, so the same call always
//     produces the same graph.
//   - Edges carry core.DefaultEdgeWeight and vertices carry
//     core.DefaultVertexWeight; callers needing other weights mutate
//     the result afterwards.
//   - Directionality: Complete and CompleteBipartite store both
//     directions of every pair, so their results satisfy the classify
//     predicates. Path, Cycle and Star store one direction following
//     the label order.
//
// Operations:
//
//   - Complete(labels): an edge for every ordered pair of distinct
//     labels.
//   - CompleteBipartite(left, right): both directions of every cross
//     pair, no edges inside a side.
//   - Path(labels): labels[0]→labels[1]→…→labels[n-1].
//   - Cycle(labels): the path plus the closing edge back to labels[0].
//   - Star(center, leaves): center→leaf for every leaf.
//
// Errors:
//
//   - ErrTooFewVertices: not enough labels for the requested shape.
//   - ErrDuplicateLabel: a label appears twice in one call.
//
// See also:
//
//   - classify: the predicates the Complete and CompleteBipartite
//     outputs are built to satisfy.
package builder
