package matrix

import (
	"cmp"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FloydWarshall computes all-pairs shortest-path distances over the
// view and returns them as a fresh n×n matrix; the view itself is left
// untouched. Entry (i, j) is the cheapest total weight of any path
// label(i)→label(j), +Inf when no path exists, and 0 on the diagonal:
// a vertex reaches itself over the empty path, so self-loop weights do
// not contribute. Weights may be negative; negative cycles are not
// detected.
//
// Relaxation runs in fixed k → i → j order with strict improvement,
// which makes the accumulation deterministic. O(V³) time, O(V²) space.
func FloydWarshall[K cmp.Ordered](a *Adjacency[K]) (*mat.Dense, error) {
	// 1. Validate the input view.
	if a == nil {
		return nil, ErrGraphNil
	}

	// 2. Copy the adjacency into a distance matrix. Travelling nowhere
	//    costs nothing, so the diagonal resets to zero regardless of
	//    stored self-loops.
	d := mat.DenseCopyOf(a.dense)
	raw := d.RawMatrix()
	data, stride := raw.Data, raw.Stride
	n := len(a.labels)
	for i := 0; i < n; i++ {
		data[i*stride+i] = 0
	}

	// 3. Relax through every intermediate vertex.
	for k := 0; k < n; k++ {
		baseK := k * stride
		for i := 0; i < n; i++ {
			ik := data[i*stride+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k, nothing routes via k
			}
			baseI := i * stride
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return d, nil
}

// Reachability computes the boolean transitive closure of the edge
// relation: entry (i, j) is 1 when a path of at least one edge leads
// from label(i) to label(j) and 0 otherwise. The diagonal is 1 only
// for vertices on a cycle, self-loops included. Edge weights play no
// role. O(V³) time, O(V²) space.
func Reachability[K cmp.Ordered](a *Adjacency[K]) (*mat.Dense, error) {
	// 1. Validate the input view.
	if a == nil {
		return nil, ErrGraphNil
	}

	// 2. Seed the relation with the stored edges. The adjacency keeps
	//    a zero diagonal whether or not a loop exists, so loop facts
	//    come from the view's own record.
	n := len(a.labels)
	src := a.dense.RawMatrix()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		if a.loops[i] {
			data[i*n+i] = 1
		}
		for j := 0; j < n; j++ {
			if i != j && !math.IsInf(src.Data[i*src.Stride+j], 1) {
				data[i*n+j] = 1
			}
		}
	}

	// 3. Close the relation: i reaches j whenever i reaches k and k
	//    reaches j, in the same fixed k → i → j order.
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			baseI := i * n
			if data[baseI+k] == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				if data[baseK+j] == 1 {
					data[baseI+j] = 1
				}
			}
		}
	}

	return mat.NewDense(n, n, data), nil
}
