package dfs

import (
	"cmp"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/digraph/core"
)

// TransitiveClosure returns a new graph over the same vertices holding
// an edge (u,v) for every ordered pair with u ≠ v where v is reachable
// from u. Edges already present keep their weights; synthesized edges
// carry core.DefaultEdgeWeight. Per-source reachability runs across the
// CPUs under errgroup; ctx cancels the fan-out.
func TransitiveClosure[K cmp.Ordered](g *core.Graph[K], opt ...Option) (*core.Graph[K], error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	opts := DefaultOptions()
	for _, fn := range opt {
		fn(&opts)
	}

	// 3. Freeze the graph once; the result and every reachability scan
	//    derive from this snapshot.
	snap := g.Snapshot()
	ls := newLists(snap)
	n := len(ls.labels)

	out, err := core.NewGraphFrom(snap.Vertices(), snap.Edges())
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return out, nil
	}

	// 4. Fan reachability scans out in label chunks. Each chunk owns a
	//    disjoint slot of missing, so no synchronization is needed.
	eg, ctx := errgroup.WithContext(opts.Ctx)
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	missing := make([][]core.Edge[K], (n+chunk-1)/chunk)

	for slot, lo := 0, 0; lo < n; slot, lo = slot+1, lo+chunk {
		slot, lo := slot, lo // pin per-iteration copies for the closure (pre-go1.22 loop scoping)
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			var pairs []core.Edge[K]
			for i := lo; i < hi; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				u := ls.labels[i]
				seen := reachFrom(ls.fwd, u)
				for _, v := range ls.labels {
					if v == u || !seen[v] {
						continue
					}
					if _, ok := snap.Edge(u, v); ok {
						continue
					}
					pairs = append(pairs, core.Edge[K]{From: u, To: v, Weight: core.DefaultEdgeWeight})
				}
			}
			missing[slot] = pairs
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 5. Materialize the synthesized edges.
	for _, pairs := range missing {
		for _, e := range pairs {
			if _, err := out.AddEdge(e.From, e.To, core.WithEdgeWeight(e.Weight)); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// reachFrom collects every vertex reachable from src over the given
// lists, src included.
func reachFrom[K cmp.Ordered](out map[K][]K, src K) map[K]bool {
	seen := map[K]bool{src: true}
	stack := []K{src}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range out[u] {
			if !seen[v] {
				seen[v] = true
				stack = append(stack, v)
			}
		}
	}
	return seen
}
