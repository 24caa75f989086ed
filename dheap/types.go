package dheap

import "errors"

const (
	// MinBranching is the smallest accepted branching factor (a binary heap).
	MinBranching = 2
	// MaxBranching caps the branching factor; beyond ten children the
	// widened PopMin scan costs more than the shallower tree saves.
	MaxBranching = 10
	// DefaultBranching is the factor used by New.
	DefaultBranching = 2
)

// ErrBranching reports a branching factor outside [MinBranching, MaxBranching].
var ErrBranching = errors.New("dheap: branching factor out of range")

// entry pairs a payload with its priority key.
type entry[T any] struct {
	item T
	key  float64
}

// Heap is a d-ary min-heap of entries ordered by key.
// The zero value is not usable; construct with New or NewWithBranching.
type Heap[T any] struct {
	d     int
	items []entry[T]
}
