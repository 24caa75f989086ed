package matrix

import (
	"cmp"
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph or a nil
	// *Adjacency view is supplied.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrEmptyGraph is returned when the graph holds no vertices; a
	// 0×0 adjacency has no meaningful layout.
	ErrEmptyGraph = errors.New("matrix: graph has no vertices")

	// ErrUnknownLabel is returned when a label or matrix index falls
	// outside the view.
	ErrUnknownLabel = errors.New("matrix: unknown label")
)

// Adjacency is a dense numeric view of one graph snapshot. Matrix
// index i corresponds to the i-th smallest vertex label; entry (i, j)
// holds the stored weight of the edge label(i)→label(j), +Inf when the
// graph holds no such edge, and 0 on the diagonal unless a self-loop
// stores another weight.
//
// The view never changes after NewAdjacency returns, no matter what
// happens to the source graph.
type Adjacency[K cmp.Ordered] struct {
	labels []K        // index → label, ascending
	index  map[K]int  // label → index
	loops  []bool     // loops[i] marks a stored self-loop on labels[i]
	dense  *mat.Dense // n×n weight layout
}
