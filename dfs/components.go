package dfs

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/digraph/core"
)

// StronglyConnectedComponents returns the strongly connected components
// of g via Kosaraju's two passes: a first walk over the transpose fixes
// the processing order, and each tree of the second walk over the
// original graph is one component. Components of size one are not
// reported; each reported component is sorted ascending.
func StronglyConnectedComponents[K cmp.Ordered](g *core.Graph[K], opt ...Option) ([][]K, error) {
	comps, _, err := components(g, true, opt)
	return comps, err
}

// ConnectedComponents returns the connected components of the
// undirected reading of g (each edge taken both ways). Components of
// size one are not reported; each reported component is sorted
// ascending.
func ConnectedComponents[K cmp.Ordered](g *core.Graph[K], opt ...Option) ([][]K, error) {
	comps, _, err := components(g, false, opt)
	return comps, err
}

// IsConnected reports whether the undirected reading of g is a single
// component covering every vertex. Empty and one-vertex graphs report
// false, consistent with the size-one exclusion rule.
func IsConnected[K cmp.Ordered](g *core.Graph[K], opt ...Option) (bool, error) {
	comps, n, err := components(g, false, opt)
	if err != nil {
		return false, err
	}
	return len(comps) == 1 && len(comps[0]) == n, nil
}

// IsStronglyConnected reports whether g consists of exactly one strongly
// connected component covering every vertex.
func IsStronglyConnected[K cmp.Ordered](g *core.Graph[K], opt ...Option) (bool, error) {
	comps, n, err := components(g, true, opt)
	if err != nil {
		return false, err
	}
	return len(comps) == 1 && len(comps[0]) == n, nil
}

// components is the shared engine behind the four public component
// operations. strong selects Kosaraju over the directed lists; otherwise
// one walk over the undirected reading suffices. The returned count is
// the snapshot's vertex total, so callers compare against the same state
// the walk saw.
func components[K cmp.Ordered](g *core.Graph[K], strong bool, opt []Option) ([][]K, int, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, 0, ErrGraphNil
	}

	// 2. Apply options.
	opts := DefaultOptions()
	for _, fn := range opt {
		fn(&opts)
	}

	// 3. Freeze the graph; both passes read these lists.
	ls := newLists(g.Snapshot())
	n := len(ls.labels)

	// 4. Fix the scan order and the lists of the collecting pass.
	order := ls.labels
	out := ls.unionLists()
	if strong {
		// Pass 1: exit numbering of the transpose; ascending exit is
		// the processing order for the collecting pass.
		pre := newWalker(ls.rev, n)
		if err := pre.walkAll(opts.Ctx, ls.labels); err != nil {
			return nil, 0, err
		}
		byExit := make([]K, n)
		for _, v := range pre.order {
			byExit[pre.exit[v]] = v
		}
		order = byExit
		out = ls.fwd
	}

	// 5. Collecting pass: every tree is one component.
	w := newWalker(out, n)
	var comps [][]K
	for _, root := range order {
		if w.color[root] != white {
			continue
		}
		mark := len(w.order)
		if err := w.walkFrom(opts.Ctx, root); err != nil {
			return nil, 0, err
		}
		comp := slices.Clone(w.order[mark:])
		if len(comp) < 2 {
			// size-one components are not reported
			continue
		}
		slices.Sort(comp)
		comps = append(comps, comp)
	}
	return comps, n, nil
}
