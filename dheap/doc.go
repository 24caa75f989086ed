// Package dheap provides a d-ary min-heap keyed by float64 priorities,
// the default frontier behind the search package.
//
// # Overview
//
// A d-ary heap generalizes the binary heap: every node has up to d
// children, so the tree is shallower and Push performs fewer levels of
// sift-up at the cost of a wider comparison fan during PopMin. For
// graph search workloads, where pushes outnumber pops whenever edges
// outnumber vertices, a modest d often wins.
//
// The heap is duplicate-tolerant: the same item may be pushed many
// times under different keys. Consumers that need decrease-key
// semantics push a fresh entry with the improved key and discard stale
// entries as they surface, which is exactly how the search engine uses
// it.
//
// # Complexity
//
//	Push:   O(log_d n)
//	PopMin: O(d · log_d n)
//	Peek:   O(1)
//	Len:    O(1)
//
// # Errors
//
//   - ErrBranching: NewWithBranching received a factor outside [MinBranching, MaxBranching].
//
// # Usage
//
//	h := dheap.New[string]()
//	h.Push("B", 2.0)
//	h.Push("A", 1.0)
//	item, key, ok := h.PopMin() // "A", 1.0, true
//
// Ties between equal keys surface in unspecified order; callers that
// need determinism must disambiguate keys themselves.
package dheap
