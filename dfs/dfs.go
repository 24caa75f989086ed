package dfs

import (
	"cmp"
	"context"

	"github.com/katalvlaran/digraph/core"
)

// Walk runs a full depth-first pass over g, opening a new tree at every
// still-unvisited vertex in ascending label order, and returns the
// resulting Forest.
func Walk[K cmp.Ordered](g *core.Graph[K], opt ...Option) (*Forest[K], error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	opts := DefaultOptions()
	for _, fn := range opt {
		fn(&opts)
	}

	// 3. Freeze the graph and derive its adjacency lists.
	ls := newLists(g.Snapshot())

	// 4. Traverse every tree.
	w := newWalker(ls.fwd, len(ls.labels))
	if err := w.walkAll(opts.Ctx, ls.labels); err != nil {
		return nil, err
	}

	// 5. Package the forest.
	return &Forest[K]{
		Order:  w.order,
		Exit:   w.exit,
		Parent: w.parent,
		Roots:  w.roots,
		Cyclic: w.cyclic,
	}, nil
}

// lists holds the per-snapshot adjacency lists every operation in this
// package walks over. All lists are sorted ascending.
type lists[K cmp.Ordered] struct {
	labels []K
	fwd    map[K][]K
	rev    map[K][]K
	union  map[K][]K
}

// newLists derives forward and reverse lists from one snapshot.
// The label scan is ascending and each Out list is sorted, so the rev
// lists arrive sorted without an extra pass.
func newLists[K cmp.Ordered](snap *core.Snapshot[K]) *lists[K] {
	n := snap.VertexCount()
	ls := &lists[K]{
		labels: snap.Labels(),
		fwd:    make(map[K][]K, n),
		rev:    make(map[K][]K, n),
	}
	for _, u := range ls.labels {
		for _, e := range snap.Out(u) {
			ls.fwd[u] = append(ls.fwd[u], e.To)
			ls.rev[e.To] = append(ls.rev[e.To], u)
		}
	}
	return ls
}

// unionLists merges fwd and rev into the undirected reading of the
// snapshot, built once on first use.
func (l *lists[K]) unionLists() map[K][]K {
	if l.union != nil {
		return l.union
	}
	l.union = make(map[K][]K, len(l.labels))
	for _, v := range l.labels {
		l.union[v] = mergeSorted(l.fwd[v], l.rev[v])
	}
	return l.union
}

// mergeSorted merges two sorted duplicate-free slices into one.
func mergeSorted[K cmp.Ordered](a, b []K) []K {
	out := make([]K, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case cmp.Less(a[i], b[j]):
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Visitation states of the walk.
type color uint8

const (
	white color = iota // undiscovered
	gray               // discovered, subtree still open
	black              // finished
)

// frame is one stack entry; each vertex passes through the stack twice.
type frame[K cmp.Ordered] struct {
	label   K
	exiting bool
}

// walker carries the mutable state of one depth-first pass over a fixed
// set of adjacency lists.
type walker[K cmp.Ordered] struct {
	out    map[K][]K
	color  map[K]color
	exit   map[K]int
	parent map[K]K
	order  []K
	roots  []K
	clock  int
	cyclic bool
}

func newWalker[K cmp.Ordered](out map[K][]K, n int) *walker[K] {
	return &walker[K]{
		out:    out,
		color:  make(map[K]color, n),
		exit:   make(map[K]int, n),
		parent: make(map[K]K, n),
		order:  make([]K, 0, n),
		clock:  n,
	}
}

// walkAll opens a tree at every still-white label, in the given order.
func (w *walker[K]) walkAll(ctx context.Context, labels []K) error {
	for _, root := range labels {
		if w.color[root] != white {
			continue
		}
		w.roots = append(w.roots, root)
		if err := w.walkFrom(ctx, root); err != nil {
			return err
		}
	}
	return nil
}

// walkFrom explores one tree. Every vertex is pushed twice: the first
// pop discovers it, the second assigns its exit index from the falling
// clock. Neighbors are pushed in reverse so they pop ascending.
func (w *walker[K]) walkFrom(ctx context.Context, root K) error {
	stack := []frame[K]{{label: root}}
	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.exiting {
			w.clock--
			w.exit[f.label] = w.clock
			w.color[f.label] = black
			continue
		}
		if w.color[f.label] != white {
			// duplicate discovery frame from an earlier push
			continue
		}
		w.color[f.label] = gray
		w.order = append(w.order, f.label)
		stack = append(stack, frame[K]{label: f.label, exiting: true})

		nbs := w.out[f.label]
		for i := len(nbs) - 1; i >= 0; i-- {
			switch v := nbs[i]; w.color[v] {
			case white:
				w.parent[v] = f.label
				stack = append(stack, frame[K]{label: v})
			case gray:
				// back edge: v is still open on the current path
				w.cyclic = true
			}
		}
	}
	return nil
}
