package builder

import "errors"

var (
	// ErrTooFewVertices is returned when a generator receives fewer
	// labels than its shape needs.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrDuplicateLabel is returned when a label appears twice in one
	// call; generators never merge vertices silently.
	ErrDuplicateLabel = errors.New("builder: duplicate label")
)
