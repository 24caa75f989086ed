package matrix

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/digraph/core"
)

// NewAdjacency freezes g into a dense n×n weight matrix.
//
// The layout is taken from a single core.Snapshot: a graph mutated
// concurrently yields a consistent view of one moment, and later
// mutations never show through. Runs in O(V²+E) time and O(V²) space.
func NewAdjacency[K cmp.Ordered](g *core.Graph[K]) (*Adjacency[K], error) {
	// 1. Validate the input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Freeze one consistent state.
	snap := g.Snapshot()
	n := snap.VertexCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	// 3. Map sorted labels onto matrix indices.
	labels := snap.Labels()
	index := make(map[K]int, n)
	for i, l := range labels {
		index[l] = i
	}

	// 4. Lay out the defaults: zero diagonal, +Inf elsewhere.
	data := make([]float64, n*n)
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				data[i*n+j] = inf
			}
		}
	}

	// 5. Write the stored edges over the defaults.
	loops := make([]bool, n)
	for _, e := range snap.Edges() {
		i, j := index[e.From], index[e.To]
		data[i*n+j] = e.Weight
		if i == j {
			loops[i] = true
		}
	}

	return &Adjacency[K]{
		labels: labels,
		index:  index,
		loops:  loops,
		dense:  mat.NewDense(n, n, data),
	}, nil
}

// Order returns the matrix dimension, the snapshot's vertex count.
func (a *Adjacency[K]) Order() int { return len(a.labels) }

// Labels returns the vertex labels in index order, ascending.
func (a *Adjacency[K]) Labels() []K { return slices.Clone(a.labels) }

// Index returns the matrix row and column assigned to label.
func (a *Adjacency[K]) Index(label K) (int, error) {
	i, ok := a.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownLabel, label)
	}

	return i, nil
}

// Label returns the vertex label stored at matrix index i.
func (a *Adjacency[K]) Label(i int) (K, error) {
	if i < 0 || i >= len(a.labels) {
		var zero K
		return zero, fmt.Errorf("%w: index %d outside [0, %d)", ErrUnknownLabel, i, len(a.labels))
	}

	return a.labels[i], nil
}

// At returns the stored weight of the edge u→v, +Inf when the graph
// holds no such edge, and 0 for u == v without a self-loop.
func (a *Adjacency[K]) At(u, v K) (float64, error) {
	i, err := a.Index(u)
	if err != nil {
		return 0, err
	}
	j, err := a.Index(v)
	if err != nil {
		return 0, err
	}

	return a.dense.At(i, j), nil
}

// Dense returns a copy of the underlying matrix, safe to mutate and to
// hand to any gonum routine.
func (a *Adjacency[K]) Dense() *mat.Dense { return mat.DenseCopyOf(a.dense) }
