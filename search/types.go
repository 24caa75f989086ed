package search

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dheap"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrCostNil is returned if a nil cost function is passed.
	ErrCostNil = errors.New("search: cost function is nil")

	// ErrSourceNotFound is returned when the source label is absent.
	ErrSourceNotFound = errors.New("search: source vertex not found")

	// ErrDestinationNotFound is returned when the destination label is absent.
	ErrDestinationNotFound = errors.New("search: destination vertex not found")

	// ErrNegativeCost is returned when the pre-scan prices an edge
	// negative or NaN; the greedy finalization invariant breaks there.
	ErrNegativeCost = errors.New("search: negative or NaN edge cost")

	// ErrNoPath is returned by Tree.PathTo when the destination was
	// never reached. The path-query functions do not use it: they
	// report unreachable destinations as +Inf distance with nil path.
	ErrNoPath = errors.New("search: no path to destination")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// CostFunc prices one edge for the traversal. It must stay non-negative
// and NaN-free over every edge of the graph; Search verifies that up
// front and refuses the run otherwise.
type CostFunc[K cmp.Ordered] func(core.Edge[K]) float64

// UnitCost prices every edge at one hop, turning Search into BFS.
func UnitCost[K cmp.Ordered]() CostFunc[K] {
	return func(core.Edge[K]) float64 { return 1 }
}

// WeightCost prices every edge at its stored weight, turning Search into
// Dijkstra.
func WeightCost[K cmp.Ordered]() CostFunc[K] {
	return func(e core.Edge[K]) float64 { return e.Weight }
}

// Queue is the frontier contract: a duplicate-tolerant min-queue keyed
// by float64 priorities. *dheap.Heap satisfies it; any conforming
// implementation can be substituted via WithQueue.
type Queue[K cmp.Ordered] interface {
	// Push inserts label under the given key; duplicates are expected.
	Push(label K, key float64)
	// PopMin removes the entry with the smallest key; ok is false when empty.
	PopMin() (label K, key float64, ok bool)
	// Len reports the number of stored entries.
	Len() int
}

// Option configures search behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the search is invoked.
type Option[K cmp.Ordered] func(*Options[K])

// Options holds the parameters customizing one search run.
type Options[K cmp.Ordered] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// NewQueue builds the frontier for one run.
	NewQueue func() Queue[K]

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - a binary dheap.Heap frontier.
func DefaultOptions[K cmp.Ordered]() Options[K] {
	return Options[K]{
		Ctx:      context.Background(),
		NewQueue: func() Queue[K] { return dheap.New[K]() },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K cmp.Ordered](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithQueue substitutes the frontier implementation.
func WithQueue[K cmp.Ordered](factory func() Queue[K]) Option[K] {
	return func(o *Options[K]) {
		if factory == nil {
			o.err = fmt.Errorf("%w: nil queue factory", ErrOptionViolation)
			return
		}
		o.NewQueue = factory
	}
}

// WithBranching keeps the default d-ary heap but widens it to d children
// per node. d outside [dheap.MinBranching, dheap.MaxBranching] is an
// invalid option.
func WithBranching[K cmp.Ordered](d int) Option[K] {
	return func(o *Options[K]) {
		if d < dheap.MinBranching || d > dheap.MaxBranching {
			o.err = fmt.Errorf("%w: branching %d not in [%d, %d]",
				ErrOptionViolation, d, dheap.MinBranching, dheap.MaxBranching)
			return
		}
		o.NewQueue = func() Queue[K] {
			h, _ := dheap.NewWithBranching[K](d)
			return h
		}
	}
}

// Tree holds the outcome of one exploration rooted at Source:
//   - Dist: cheapest known cost per reached vertex; absent = unreachable.
//   - Prev: predecessor on that cheapest path; the source has no entry.
//   - Order: vertices in finalization sequence, source first.
//
// Dist is measured in the run's cost metric; the edges PathTo returns
// carry their stored graph weights regardless of the metric.
type Tree[K cmp.Ordered] struct {
	Source K
	Dist   map[K]float64
	Prev   map[K]K
	Order  []K

	snap *core.Snapshot[K]
}

// Result condenses one source→destination query. An unreachable
// Destination carries Dist +Inf and a nil Path.
type Result[K cmp.Ordered] struct {
	Source      K
	Destination K
	Dist        float64
	Path        []core.Edge[K]
}
