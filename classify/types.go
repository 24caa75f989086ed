package classify

import (
	"context"
	"errors"
)

// PlanarSizeLimit caps the planarity test: vertices plus undirected
// edges beyond this bound are refused. The bound admits K5 (5+10) and
// K3,3 (6+9) exactly.
const PlanarSizeLimit = 15

// Sentinel errors for classification.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("classify: graph is nil")

	// ErrTooLarge is returned when the planarity input exceeds
	// PlanarSizeLimit; the exhaustive search is exponential beyond it.
	ErrTooLarge = errors.New("classify: graph too large for planarity test")
)

// Option configures classification behavior via functional arguments.
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
