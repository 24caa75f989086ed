package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Minimum label counts per shape.
const (
	minComplete  = 1
	minPath      = 2
	minCycle     = 3
	minPartition = 1
	minLeaves    = 1
)

// Complete returns the graph holding every ordered pair of distinct
// labels as an edge, n·(n−1) edges in total. Needs at least one label.
func Complete[K cmp.Ordered](labels []K) (*core.Graph[K], error) {
	if len(labels) < minComplete {
		return nil, fmt.Errorf("%w: Complete needs at least %d label, got %d", ErrTooFewVertices, minComplete, len(labels))
	}
	g, err := seed(labels)
	if err != nil {
		return nil, err
	}
	for _, u := range labels {
		for _, v := range labels {
			if u == v {
				continue
			}
			if _, err := g.AddEdge(u, v); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// CompleteBipartite returns the graph joining every left label with
// every right label in both directions, with no edges inside a side.
// Needs at least one label per side; the sides must be disjoint.
func CompleteBipartite[K cmp.Ordered](left, right []K) (*core.Graph[K], error) {
	if len(left) < minPartition || len(right) < minPartition {
		return nil, fmt.Errorf("%w: CompleteBipartite needs %d label per side, got %d and %d", ErrTooFewVertices, minPartition, len(left), len(right))
	}
	g, err := seed(left, right)
	if err != nil {
		return nil, err
	}
	for _, u := range left {
		for _, v := range right {
			if _, err := g.AddEdge(u, v); err != nil {
				return nil, err
			}
			if _, err := g.AddEdge(v, u); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Path returns the chain labels[0]→labels[1]→…→labels[n-1]. Needs at
// least two labels.
func Path[K cmp.Ordered](labels []K) (*core.Graph[K], error) {
	if len(labels) < minPath {
		return nil, fmt.Errorf("%w: Path needs at least %d labels, got %d", ErrTooFewVertices, minPath, len(labels))
	}
	g, err := seed(labels)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(labels); i++ {
		if _, err := g.AddEdge(labels[i], labels[i+1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle returns the ring following the label order, closed by the edge
// labels[n-1]→labels[0]. Needs at least three labels.
func Cycle[K cmp.Ordered](labels []K) (*core.Graph[K], error) {
	if len(labels) < minCycle {
		return nil, fmt.Errorf("%w: Cycle needs at least %d labels, got %d", ErrTooFewVertices, minCycle, len(labels))
	}
	g, err := seed(labels)
	if err != nil {
		return nil, err
	}
	for i := range labels {
		if _, err := g.AddEdge(labels[i], labels[(i+1)%len(labels)]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Star returns the fan center→leaf for every leaf. Needs at least one
// leaf; the center must not appear among the leaves.
func Star[K cmp.Ordered](center K, leaves []K) (*core.Graph[K], error) {
	if len(leaves) < minLeaves {
		return nil, fmt.Errorf("%w: Star needs at least %d leaf, got %d", ErrTooFewVertices, minLeaves, len(leaves))
	}
	g, err := seed([]K{center}, leaves)
	if err != nil {
		return nil, err
	}
	for _, leaf := range leaves {
		if _, err := g.AddEdge(center, leaf); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// seed creates a graph holding every given label once, rejecting
// duplicates across all groups.
func seed[K cmp.Ordered](groups ...[]K) (*core.Graph[K], error) {
	g := core.NewGraph[K]()
	seen := make(map[K]struct{})
	for _, group := range groups {
		for _, l := range group {
			if _, dup := seen[l]; dup {
				return nil, fmt.Errorf("%w: %v", ErrDuplicateLabel, l)
			}
			seen[l] = struct{}{}
			if err := g.AddVertex(l); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
