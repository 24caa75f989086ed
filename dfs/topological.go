package dfs

import (
	"cmp"

	"github.com/katalvlaran/digraph/core"
)

// TopologicalSort returns every vertex of g ordered by ascending exit
// index, so that for each edge u→v of an acyclic graph, u precedes v.
// On cyclic graphs the returned order is advisory only; call IsAcyclic
// first when that matters.
func TopologicalSort[K cmp.Ordered](g *core.Graph[K], opt ...Option) ([]K, error) {
	f, err := Walk(g, opt...)
	if err != nil {
		return nil, err
	}

	// Exit indexes form the exact range [0, |V|); place directly.
	out := make([]K, len(f.Order))
	for _, v := range f.Order {
		out[f.Exit[v]] = v
	}
	return out, nil
}

// IsAcyclic reports whether g contains no directed cycle.
func IsAcyclic[K cmp.Ordered](g *core.Graph[K], opt ...Option) (bool, error) {
	f, err := Walk(g, opt...)
	if err != nil {
		return false, err
	}
	return !f.Cyclic, nil
}
