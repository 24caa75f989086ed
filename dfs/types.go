package dfs

import (
	"cmp"
	"context"
	"errors"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures traversal behavior via functional arguments.
type Option func(*Options)

// Options holds the parameters customizing one operation.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// DefaultOptions returns Options with a Background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Forest is the outcome of one full depth-first walk:
//   - Order: vertices in discovery sequence.
//   - Exit: exit index per vertex, counted down from |V|; ascending
//     exit is a topological order when Cyclic is false.
//   - Parent: tree parent per vertex; roots have no entry.
//   - Roots: the first vertex of each tree, in scan order.
//   - Cyclic: whether any back edge was observed.
type Forest[K cmp.Ordered] struct {
	Order  []K
	Exit   map[K]int
	Parent map[K]K
	Roots  []K
	Cyclic bool
}
