package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/classify"
	"github.com/katalvlaran/digraph/core"
)

// complete returns a graph with both directions of every distinct pair.
func complete(tb testing.TB, labels []string) *core.Graph[string] {
	tb.Helper()
	g := core.NewGraph[string]()
	for _, l := range labels {
		require.NoError(tb, g.AddVertex(l))
	}
	for _, u := range labels {
		for _, v := range labels {
			if u == v {
				continue
			}
			_, err := g.AddEdge(u, v)
			require.NoError(tb, err)
		}
	}
	return g
}

// biclique returns a complete bipartite graph across left × right,
// storing both directions of every cross pair.
func biclique(tb testing.TB, left, right []string) *core.Graph[string] {
	tb.Helper()
	g := core.NewGraph[string]()
	for _, l := range append(append([]string{}, left...), right...) {
		require.NoError(tb, g.AddVertex(l))
	}
	for _, u := range left {
		for _, v := range right {
			_, err := g.AddEdge(u, v)
			require.NoError(tb, err)
			_, err = g.AddEdge(v, u)
			require.NoError(tb, err)
		}
	}
	return g
}

// TestIsComplete covers both-ways cliques, one missing arc, and the
// trivial sizes.
func TestIsComplete(t *testing.T) {
	k3 := complete(t, []string{"A", "B", "C"})
	ok, err := classify.IsComplete(k3)
	require.NoError(t, err)
	assert.True(t, ok)

	// Dropping one direction breaks completeness.
	_, removed := k3.RemoveEdge("B", "A")
	require.True(t, removed)
	ok, err = classify.IsComplete(k3)
	require.NoError(t, err)
	assert.False(t, ok)

	// A loop neither helps nor hurts.
	k2 := complete(t, []string{"A", "B"})
	_, err = k2.AddEdge("A", "A")
	require.NoError(t, err)
	ok, err = classify.IsComplete(k2)
	require.NoError(t, err)
	assert.True(t, ok)

	single := core.NewGraph[string]()
	require.NoError(t, single.AddVertex("A"))
	ok, err = classify.IsComplete(single)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = classify.IsComplete(core.NewGraph[string]())
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestBipartition_Square splits an undirected 4-cycle into its two
// sides, smallest label first.
func TestBipartition_Square(t *testing.T) {
	g := core.NewGraph[string]()
	for _, l := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(l))
	}
	// One stored direction per pair; the undirected reading supplies the rest.
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	parts, ok, err := classify.Bipartition(g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C"}, parts[0])
	assert.Equal(t, []string{"B", "D"}, parts[1])
}

// TestBipartition_OddCycle rejects the triangle.
func TestBipartition_OddCycle(t *testing.T) {
	g := complete(t, []string{"A", "B", "C"})

	_, ok, err := classify.Bipartition(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestBipartition_Disconnected reports false even when every component
// is individually two-colorable.
func TestBipartition_Disconnected(t *testing.T) {
	g := core.NewGraph[string]()
	for _, l := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(l))
	}
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("C", "D")
	require.NoError(t, err)

	_, ok, err := classify.Bipartition(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestBipartition_Trivial rejects graphs below two vertices and loops.
func TestBipartition_Trivial(t *testing.T) {
	_, ok, err := classify.Bipartition(core.NewGraph[string]())
	require.NoError(t, err)
	assert.False(t, ok)

	single := core.NewGraph[string]()
	require.NoError(t, single.AddVertex("A"))
	_, ok, err = classify.Bipartition(single)
	require.NoError(t, err)
	assert.False(t, ok)

	looped := core.NewGraph[string]()
	require.NoError(t, looped.AddVertex("A"))
	require.NoError(t, looped.AddVertex("B"))
	_, err = looped.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = looped.AddEdge("A", "A")
	require.NoError(t, err)
	_, ok, err = classify.Bipartition(looped)
	require.NoError(t, err)
	assert.False(t, ok, "a loop colors a vertex against itself")
}

// TestIsCompleteBipartite demands both directions of every cross pair.
func TestIsCompleteBipartite(t *testing.T) {
	k23 := biclique(t, []string{"L1", "L2"}, []string{"R1", "R2", "R3"})
	ok, err := classify.IsCompleteBipartite(k23)
	require.NoError(t, err)
	assert.True(t, ok)

	// Removing one direction of one pair leaves it bipartite but short.
	_, removed := k23.RemoveEdge("L1", "R1")
	require.True(t, removed)
	bip, err := classify.IsBipartite(k23)
	require.NoError(t, err)
	assert.True(t, bip)
	ok, err = classify.IsCompleteBipartite(k23)
	require.NoError(t, err)
	assert.False(t, ok)

	// A one-directional biclique is bipartite but not complete-bipartite.
	one := core.NewGraph[string]()
	for _, l := range []string{"L1", "L2", "R1", "R2", "R3"} {
		require.NoError(t, one.AddVertex(l))
	}
	for _, u := range []string{"L1", "L2"} {
		for _, v := range []string{"R1", "R2", "R3"} {
			_, err := one.AddEdge(u, v)
			require.NoError(t, err)
		}
	}
	bip, err = classify.IsBipartite(one)
	require.NoError(t, err)
	assert.True(t, bip)
	ok, err = classify.IsCompleteBipartite(one)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestClassify_NilGraph covers the fail-fast sentinel across the surface.
func TestClassify_NilGraph(t *testing.T) {
	_, err := classify.IsComplete[string](nil)
	assert.ErrorIs(t, err, classify.ErrGraphNil)

	_, _, err = classify.Bipartition[string](nil)
	assert.ErrorIs(t, err, classify.ErrGraphNil)

	_, err = classify.IsBipartite[string](nil)
	assert.ErrorIs(t, err, classify.ErrGraphNil)

	_, err = classify.IsCompleteBipartite[string](nil)
	assert.ErrorIs(t, err, classify.ErrGraphNil)

	_, err = classify.IsPlanar[string](nil)
	assert.ErrorIs(t, err, classify.ErrGraphNil)
}
