package dheap

import "fmt"

// New returns an empty heap with DefaultBranching children per node.
func New[T any]() *Heap[T] {
	h, _ := NewWithBranching[T](DefaultBranching)
	return h
}

// NewWithBranching returns an empty heap where every node has up to d
// children. d must lie in [MinBranching, MaxBranching].
func NewWithBranching[T any](d int) (*Heap[T], error) {
	if d < MinBranching || d > MaxBranching {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrBranching, d, MinBranching, MaxBranching)
	}
	return &Heap[T]{d: d}, nil
}

// Len reports the number of stored entries.
func (h *Heap[T]) Len() int { return len(h.items) }

// Push inserts item under the given priority key. Duplicate items are
// kept as independent entries.
func (h *Heap[T]) Push(item T, key float64) {
	h.items = append(h.items, entry[T]{item: item, key: key})
	h.siftUp(len(h.items) - 1)
}

// Peek returns the minimum entry without removing it.
// ok is false when the heap is empty.
func (h *Heap[T]) Peek() (item T, key float64, ok bool) {
	if len(h.items) == 0 {
		return item, 0, false
	}
	root := h.items[0]
	return root.item, root.key, true
}

// PopMin removes and returns the entry with the smallest key.
// ok is false when the heap is empty.
func (h *Heap[T]) PopMin() (item T, key float64, ok bool) {
	n := len(h.items)
	if n == 0 {
		return item, 0, false
	}
	root := h.items[0]
	h.items[0] = h.items[n-1]
	var zero entry[T]
	h.items[n-1] = zero // release the payload reference
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return root.item, root.key, true
}

// siftUp restores the heap property from index i toward the root.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / h.d
		if h.items[parent].key <= h.items[i].key {
			return
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

// siftDown restores the heap property from index i toward the leaves.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		first := h.d*i + 1
		last := first + h.d
		if last > n {
			last = n
		}
		for c := first; c < last; c++ {
			if h.items[c].key < h.items[smallest].key {
				smallest = c
			}
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
