package search

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/digraph/core"
)

// PathTo reconstructs the edges of the cheapest path from the tree's
// Source to dest in O(path length). A destination the run never reached
// yields ErrNoPath; the path for dest == Source is empty and non-nil.
func (t *Tree[K]) PathTo(dest K) ([]core.Edge[K], error) {
	if _, ok := t.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}

	// Walk predecessors back to the source, then reverse.
	path := []core.Edge[K]{}
	for cur := dest; ; {
		prev, ok := t.Prev[cur]
		if !ok {
			break
		}
		e, _ := t.snap.Edge(prev, cur)
		path = append(path, e)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Results expands the tree into one Result per vertex of the frozen
// graph, in ascending label order; a vertex the run never reached
// carries +Inf distance and a nil path. Path assembly is independent
// per vertex, so it is fanned out across the CPUs; ctx cancels the
// expansion.
func (t *Tree[K]) Results(ctx context.Context) ([]Result[K], error) {
	labels := t.snap.Labels()
	out := make([]Result[K], len(labels))
	if len(labels) == 0 {
		return out, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	workers := runtime.NumCPU()
	if workers > len(labels) {
		workers = len(labels)
	}
	chunk := (len(labels) + workers - 1) / workers

	for lo := 0; lo < len(labels); lo += chunk {
		lo := lo // pin a per-iteration copy for the closure (pre-go1.22 loop scoping)
		hi := min(lo+chunk, len(labels))
		eg.Go(func() error {
			// Chunks own disjoint index ranges of out; no further
			// synchronization is needed.
			for i := lo; i < hi; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				dest := labels[i]
				if _, reached := t.Dist[dest]; !reached {
					out[i] = Result[K]{Source: t.Source, Destination: dest, Dist: math.Inf(1)}
					continue
				}
				path, err := t.PathTo(dest)
				if err != nil {
					return err
				}
				out[i] = Result[K]{
					Source:      t.Source,
					Destination: dest,
					Dist:        t.Dist[dest],
					Path:        path,
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
