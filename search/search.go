package search

import (
	"cmp"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/digraph/core"
)

// Search explores the whole graph from source under the supplied cost
// function and returns the full shortest-path tree.
func Search[K cmp.Ordered](g *core.Graph[K], source K, cost CostFunc[K], opt ...Option[K]) (*Tree[K], error) {
	return run(g, source, nil, cost, opt)
}

// Dijkstra explores from source under the stored edge weights.
func Dijkstra[K cmp.Ordered](g *core.Graph[K], source K, opt ...Option[K]) (*Tree[K], error) {
	return run(g, source, nil, WeightCost[K](), opt)
}

// BFS explores from source counting every edge as one hop.
func BFS[K cmp.Ordered](g *core.Graph[K], source K, opt ...Option[K]) (*Tree[K], error) {
	return run(g, source, nil, UnitCost[K](), opt)
}

// DijkstraPath returns the cheapest path source→dest under the stored
// edge weights, stopping the exploration as soon as dest is finalized.
// An unreachable dest is a normal outcome: +Inf distance, nil path.
func DijkstraPath[K cmp.Ordered](g *core.Graph[K], source, dest K, opt ...Option[K]) (*Result[K], error) {
	return pathBetween(g, source, dest, WeightCost[K](), opt)
}

// BFSPath returns the fewest-hops path source→dest, stopping the
// exploration as soon as dest is finalized.
// An unreachable dest is a normal outcome: +Inf distance, nil path.
func BFSPath[K cmp.Ordered](g *core.Graph[K], source, dest K, opt ...Option[K]) (*Result[K], error) {
	return pathBetween(g, source, dest, UnitCost[K](), opt)
}

// pathBetween runs the engine with an early-termination target and
// condenses the outcome into a single Result.
func pathBetween[K cmp.Ordered](g *core.Graph[K], source, dest K, cost CostFunc[K], opt []Option[K]) (*Result[K], error) {
	t, err := run(g, source, &dest, cost, opt)
	if err != nil {
		return nil, err
	}
	if _, reached := t.Dist[dest]; !reached {
		return &Result[K]{Source: source, Destination: dest, Dist: math.Inf(1)}, nil
	}
	path, err := t.PathTo(dest)
	if err != nil {
		return nil, err
	}
	return &Result[K]{Source: source, Destination: dest, Dist: t.Dist[dest], Path: path}, nil
}

// run is the shared engine. A nil target means full exploration;
// otherwise the run stops once *target is finalized.
func run[K cmp.Ordered](g *core.Graph[K], source K, target *K, cost CostFunc[K], opt []Option[K]) (*Tree[K], error) {
	// 1) Fold options and surface any recorded violation.
	opts := DefaultOptions[K]()
	for _, o := range opt {
		o(&opts)
	}
	if opts.err != nil {
		return nil, opts.err
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	if cost == nil {
		return nil, ErrCostNil
	}

	// 3) Freeze the graph; the whole run reads this one snapshot.
	snap := g.Snapshot()
	if !snap.Has(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	if target != nil && !snap.Has(*target) {
		return nil, fmt.Errorf("%w: %v", ErrDestinationNotFound, *target)
	}

	// 4) Pre-scan every edge cost; greedy finalization needs all of them
	//    non-negative.
	for _, e := range snap.Edges() {
		if c := cost(e); c < 0 || math.IsNaN(c) {
			return nil, fmt.Errorf("%w: edge %v->%v costs %v", ErrNegativeCost, e.From, e.To, c)
		}
	}

	// 5) Explore.
	r := &runner[K]{
		snap:   snap,
		cost:   cost,
		queue:  opts.NewQueue(),
		dist:   make(map[K]float64, snap.VertexCount()),
		prev:   make(map[K]K),
		done:   make(map[K]bool, snap.VertexCount()),
		target: target,
	}
	if err := r.run(opts.Ctx, source); err != nil {
		return nil, err
	}

	return &Tree[K]{
		Source: source,
		Dist:   r.dist,
		Prev:   r.prev,
		Order:  r.order,
		snap:   snap,
	}, nil
}

// runner carries the mutable state of one exploration.
type runner[K cmp.Ordered] struct {
	snap   *core.Snapshot[K]
	cost   CostFunc[K]
	queue  Queue[K]
	dist   map[K]float64
	prev   map[K]K
	done   map[K]bool
	order  []K
	target *K
}

// run drains the frontier until exhaustion or until the target falls.
func (r *runner[K]) run(ctx context.Context, source K) error {
	r.dist[source] = 0
	r.queue.Push(source, 0)

	for r.queue.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		u, _, ok := r.queue.PopMin()
		if !ok || r.done[u] {
			// stale duplicate left behind by lazy decrease-key
			continue
		}
		r.done[u] = true
		r.order = append(r.order, u)

		if r.target != nil && u == *r.target {
			return nil
		}
		r.relax(u)
	}
	return nil
}

// relax offers u's outgoing edges to the frontier; only strict
// improvements are recorded and enqueued.
func (r *runner[K]) relax(u K) {
	du := r.dist[u]
	for _, e := range r.snap.Out(u) {
		alt := du + r.cost(e)
		if best, seen := r.dist[e.To]; seen && alt >= best {
			continue
		}
		r.dist[e.To] = alt
		r.prev[e.To] = u
		r.queue.Push(e.To, alt)
	}
}
