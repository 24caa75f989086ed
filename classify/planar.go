package classify

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dfs"
)

// IsPlanar reports whether the undirected reading of g can be drawn in
// the plane without edge crossings, by exhaustive Kuratowski-style
// reduction over the symmetric closure. Inputs whose vertex count plus
// undirected edge count exceed PlanarSizeLimit are refused with
// ErrTooLarge.
func IsPlanar[K cmp.Ordered](g *core.Graph[K], opt ...Option) (bool, error) {
	// 1. Validate input graph.
	if g == nil {
		return false, ErrGraphNil
	}

	// 2. Apply options.
	opts := DefaultOptions()
	for _, fn := range opt {
		fn(&opts)
	}

	// 3. Freeze the graph and build the scratch closure every
	//    reduction below mutates and restores. Loops never affect
	//    drawability and are dropped up front.
	snap := g.Snapshot()
	all := snap.Edges()
	flat := make([]core.Edge[K], 0, len(all))
	for _, e := range all {
		if !e.IsLoop() {
			flat = append(flat, e)
		}
	}
	base, err := core.NewGraphFrom(snap.Vertices(), flat)
	if err != nil {
		return false, err
	}
	clos := base.SymmetricClosure()

	// 4. Enforce the size ceiling on the undirected reading.
	n := clos.VertexCount()
	m := clos.SimpleEdgeCount() / 2
	if n+m > PlanarSizeLimit {
		return false, fmt.Errorf("%w: %d vertices + %d edges exceed %d", ErrTooLarge, n, m, PlanarSizeLimit)
	}

	// 5. Planar iff every connected component is planar.
	return planarGraph(opts.Ctx, clos)
}

// planarGraph splits the closure into connected components and tests
// each; isolated vertices are trivially planar and never reported by
// the component split.
func planarGraph[K cmp.Ordered](ctx context.Context, clos *core.Graph[K]) (bool, error) {
	comps, err := dfs.ConnectedComponents(clos, dfs.WithContext(ctx))
	if err != nil {
		return false, err
	}
	for _, comp := range comps {
		ok, err := planarComponent(ctx, clos, comp)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// planarComponent tests one connected component of the closure.
// Cheap screens settle the common shapes; everything else recurses over
// every vertex-deleted subgraph and every canonical edge removal, and
// the component is planar only when all reductions are.
func planarComponent[K cmp.Ordered](ctx context.Context, clos *core.Graph[K], comp []K) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	// 1. Fewer than five vertices can always be drawn flat.
	n := len(comp)
	if n < 5 {
		return true, nil
	}

	sub, err := clos.InducedSubgraph(comp)
	if err != nil {
		return false, err
	}
	m := sub.SimpleEdgeCount() / 2

	// 2. Euler bound: a planar graph holds at most 3n−6 edges.
	if m > 3*n-6 {
		return false, nil
	}

	// 3. A complete component on n ≥ 5 vertices contains K5.
	if sub.SimpleEdgeCount() == n*(n-1) {
		return false, nil
	}

	// 4. A complete bipartite component with both sides ≥ 3 contains K3,3.
	if parts, ok := bipartition(sub.Snapshot()); ok {
		p0, p1 := len(parts[0]), len(parts[1])
		if p0 >= 3 && p1 >= 3 && m >= p0*p1 {
			return false, nil
		}
	}

	// 5. Vertex-deleted reductions.
	for skip := range comp {
		kept := make([]K, 0, n-1)
		kept = append(kept, comp[:skip]...)
		kept = append(kept, comp[skip+1:]...)
		vd, err := sub.InducedSubgraph(kept)
		if err != nil {
			return false, err
		}
		ok, err := planarGraph(ctx, vd)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	// 6. Edge-removed reductions, one per canonical orientation.
	//    Both directions leave and return together so the scratch stays
	//    a symmetric closure.
	for _, e := range sub.SimpleEdges() {
		if !cmp.Less(e.From, e.To) {
			continue
		}
		fwd, _ := sub.RemoveEdge(e.From, e.To)
		rev, hadRev := sub.RemoveEdge(e.To, e.From)

		ok, err := planarGraph(ctx, sub)

		if _, addErr := sub.AddEdge(fwd.From, fwd.To, core.WithEdgeWeight(fwd.Weight)); addErr != nil {
			return false, addErr
		}
		if hadRev {
			if _, addErr := sub.AddEdge(rev.From, rev.To, core.WithEdgeWeight(rev.Weight)); addErr != nil {
				return false, addErr
			}
		}
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
