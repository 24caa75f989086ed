package search_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dheap"
	"github.com/katalvlaran/digraph/search"
)

// buildWeighted returns A→B(1), B→C(2), A→C(5), C→D(1) plus isolated X.
func buildWeighted(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	for _, l := range []string{"A", "B", "C", "D", "X"} {
		require.NoError(t, g.AddVertex(l))
	}
	addEdge(t, g, "A", "B", 1)
	addEdge(t, g, "B", "C", 2)
	addEdge(t, g, "A", "C", 5)
	addEdge(t, g, "C", "D", 1)
	return g
}

func addEdge(t *testing.T, g *core.Graph[string], from, to string, w float64) {
	t.Helper()
	_, err := g.AddEdge(from, to, core.WithEdgeWeight(w))
	require.NoError(t, err)
}

// TestDijkstra_Distances checks the classic diamond: the two-hop route
// through B undercuts the direct A→C edge.
func TestDijkstra_Distances(t *testing.T) {
	g := buildWeighted(t)

	tree, err := search.Dijkstra(g, "A")
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3, "D": 4}, tree.Dist)
	assert.Equal(t, []string{"A", "B", "C", "D"}, tree.Order)
	_, reached := tree.Dist["X"]
	assert.False(t, reached, "the isolated vertex must stay unreported")
}

// TestDijkstra_PathTo reconstructs the cheapest route edge by edge.
func TestDijkstra_PathTo(t *testing.T) {
	g := buildWeighted(t)

	tree, err := search.Dijkstra(g, "A")
	require.NoError(t, err)

	path, err := tree.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge[string]{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "C", To: "D", Weight: 1},
	}, path)

	// The source's own path is empty but present.
	self, err := tree.PathTo("A")
	require.NoError(t, err)
	assert.NotNil(t, self)
	assert.Empty(t, self)

	// Unreached vertices yield ErrNoPath.
	_, err = tree.PathTo("X")
	assert.ErrorIs(t, err, search.ErrNoPath)
}

// TestDijkstra_DecreaseKey forces an improvement after the first push:
// B is seen at cost 5, then improved to 2 through C.
func TestDijkstra_DecreaseKey(t *testing.T) {
	g := core.NewGraph[string]()
	for _, l := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(l))
	}
	addEdge(t, g, "A", "B", 5)
	addEdge(t, g, "A", "C", 1)
	addEdge(t, g, "C", "B", 1)

	tree, err := search.Dijkstra(g, "A")
	require.NoError(t, err)

	assert.Equal(t, 2.0, tree.Dist["B"])
	assert.Equal(t, "C", tree.Prev["B"])
	assert.Equal(t, []string{"A", "C", "B"}, tree.Order)
}

// TestBFS_HopCounts ignores weights and counts edges.
func TestBFS_HopCounts(t *testing.T) {
	g := buildWeighted(t)

	tree, err := search.BFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 1, "D": 2}, tree.Dist)
	assert.Equal(t, "A", tree.Order[0])
	assert.Equal(t, "D", tree.Order[len(tree.Order)-1])
}

// TestBFS_EqualsDijkstraOnUnitWeights checks the defining property: on a
// graph whose weights are all one, the two searches agree everywhere.
func TestBFS_EqualsDijkstraOnUnitWeights(t *testing.T) {
	g := core.NewGraph[int]()
	const n = 60
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			_, err := g.AddEdge(i, rng.Intn(n))
			require.NoError(t, err)
		}
	}

	bfs, err := search.BFS(g, 0)
	require.NoError(t, err)
	dij, err := search.Dijkstra(g, 0)
	require.NoError(t, err)

	assert.Equal(t, dij.Dist, bfs.Dist)
}

// TestDijkstra_PathWeightsSumToDistance checks, on a seeded random
// graph, that every reconstructed path adds up to the reported
// distance.
func TestDijkstra_PathWeightsSumToDistance(t *testing.T) {
	g := core.NewGraph[int]()
	const n = 50
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			_, err := g.AddEdge(i, rng.Intn(n), core.WithEdgeWeight(1+rng.Float64()*9))
			require.NoError(t, err)
		}
	}

	tree, err := search.Dijkstra(g, 0)
	require.NoError(t, err)

	for _, dest := range tree.Order {
		path, err := tree.PathTo(dest)
		require.NoError(t, err)
		var sum float64
		for _, e := range path {
			sum += e.Weight
		}
		assert.InDelta(t, tree.Dist[dest], sum, 1e-9, "destination %d", dest)
	}
}

// TestSearch_CustomCost runs the engine under a doubled metric.
func TestSearch_CustomCost(t *testing.T) {
	g := buildWeighted(t)

	double := func(e core.Edge[string]) float64 { return 2 * e.Weight }
	tree, err := search.Search(g, "A", double)
	require.NoError(t, err)

	assert.Equal(t, 8.0, tree.Dist["D"])
}

// TestDijkstraPath_EarlyStop answers a point query without demanding the
// full tree.
func TestDijkstraPath_EarlyStop(t *testing.T) {
	g := buildWeighted(t)

	res, err := search.DijkstraPath(g, "A", "D")
	require.NoError(t, err)

	assert.Equal(t, "A", res.Source)
	assert.Equal(t, "D", res.Destination)
	assert.Equal(t, 4.0, res.Dist)
	require.Len(t, res.Path, 3)
	assert.Equal(t, "A", res.Path[0].From)
	assert.Equal(t, "D", res.Path[2].To)

	// The isolated X is an answer, not an error.
	res, err = search.DijkstraPath(g, "A", "X")
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Dist, 1))
	assert.Nil(t, res.Path)
}

// TestBFSPath returns the fewest-hops route even when it is weight-heavy.
func TestBFSPath(t *testing.T) {
	g := buildWeighted(t)

	res, err := search.BFSPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Dist)
	require.Len(t, res.Path, 1)
	assert.Equal(t, 5.0, res.Path[0].Weight, "path edges keep their stored weights")
}

// TestSearch_InputValidation covers the fail-fast sentinels.
func TestSearch_InputValidation(t *testing.T) {
	g := buildWeighted(t)

	_, err := search.Dijkstra[string](nil, "A")
	assert.ErrorIs(t, err, search.ErrGraphNil)

	_, err = search.Search(g, "A", nil)
	assert.ErrorIs(t, err, search.ErrCostNil)

	_, err = search.Dijkstra(g, "ghost")
	assert.ErrorIs(t, err, search.ErrSourceNotFound)

	_, err = search.DijkstraPath(g, "A", "ghost")
	assert.ErrorIs(t, err, search.ErrDestinationNotFound)
}

// TestSearch_NegativeCost rejects the run during the pre-scan.
func TestSearch_NegativeCost(t *testing.T) {
	g := buildWeighted(t)
	addEdge(t, g, "D", "A", -2)

	_, err := search.Dijkstra(g, "A")
	assert.ErrorIs(t, err, search.ErrNegativeCost)

	// A custom metric can poison a clean graph just the same.
	g2 := buildWeighted(t)
	_, err = search.Search(g2, "A", func(e core.Edge[string]) float64 { return e.Weight - 2 })
	assert.ErrorIs(t, err, search.ErrNegativeCost)
}

// TestSearch_OptionViolation surfaces bad options before any work.
func TestSearch_OptionViolation(t *testing.T) {
	g := buildWeighted(t)

	_, err := search.Dijkstra(g, "A", search.WithBranching[string](1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Dijkstra(g, "A", search.WithQueue[string](nil))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestSearch_ContextCancel stops a run through its context.
func TestSearch_ContextCancel(t *testing.T) {
	g := buildWeighted(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Dijkstra(g, "A", search.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSearch_BranchingSweep expects identical distances for every legal
// branching factor.
func TestSearch_BranchingSweep(t *testing.T) {
	g := core.NewGraph[int]()
	const n = 80
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < n; i++ {
		for k := 0; k < 4; k++ {
			_, err := g.AddEdge(i, rng.Intn(n), core.WithEdgeWeight(1+rng.Float64()*9))
			require.NoError(t, err)
		}
	}

	want, err := search.Dijkstra(g, 0)
	require.NoError(t, err)

	for d := dheap.MinBranching; d <= dheap.MaxBranching; d++ {
		got, err := search.Dijkstra(g, 0, search.WithBranching[int](d))
		require.NoError(t, err)
		assert.Equal(t, want.Dist, got.Dist, "branching %d", d)
	}
}

// sliceQueue is a deliberately naive O(n) frontier used to prove the
// Queue contract is all the engine relies on.
type sliceQueue struct {
	labels []string
	keys   []float64
}

func (q *sliceQueue) Push(label string, key float64) {
	q.labels = append(q.labels, label)
	q.keys = append(q.keys, key)
}

func (q *sliceQueue) PopMin() (string, float64, bool) {
	if len(q.labels) == 0 {
		return "", 0, false
	}
	at := 0
	for i, k := range q.keys {
		if k < q.keys[at] {
			at = i
		}
	}
	label, key := q.labels[at], q.keys[at]
	q.labels = append(q.labels[:at], q.labels[at+1:]...)
	q.keys = append(q.keys[:at], q.keys[at+1:]...)
	return label, key, true
}

func (q *sliceQueue) Len() int { return len(q.labels) }

// TestSearch_SubstituteQueue swaps the frontier and expects identical
// results.
func TestSearch_SubstituteQueue(t *testing.T) {
	g := buildWeighted(t)

	tree, err := search.Dijkstra(g, "A",
		search.WithQueue(func() search.Queue[string] { return &sliceQueue{} }))
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3, "D": 4}, tree.Dist)
}

// TestSearch_SnapshotIsolation keeps a finished tree usable while the
// live graph moves on.
func TestSearch_SnapshotIsolation(t *testing.T) {
	g := buildWeighted(t)

	tree, err := search.Dijkstra(g, "A")
	require.NoError(t, err)

	_, ok := g.RemoveVertex("C")
	require.True(t, ok)

	path, err := tree.PathTo("D")
	require.NoError(t, err)
	assert.Len(t, path, 3, "the tree answers from its own snapshot")
}

// TestSearch_Deterministic repeats a run and expects identical output.
func TestSearch_Deterministic(t *testing.T) {
	g := buildWeighted(t)

	a, err := search.Dijkstra(g, "A")
	require.NoError(t, err)
	b, err := search.Dijkstra(g, "A")
	require.NoError(t, err)

	assert.Equal(t, a.Order, b.Order)
	assert.Equal(t, a.Dist, b.Dist)
	assert.Equal(t, a.Prev, b.Prev)
}

// TestResults_FanOut expands the tree into one result per vertex,
// unreached ones included.
func TestResults_FanOut(t *testing.T) {
	g := buildWeighted(t)

	tree, err := search.Dijkstra(g, "A")
	require.NoError(t, err)

	results, err := tree.Results(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 5)

	labels := g.Labels()
	byDest := make(map[string]search.Result[string], len(results))
	for i, r := range results {
		assert.Equal(t, labels[i], r.Destination, "results follow label order")
		assert.Equal(t, "A", r.Source)
		byDest[r.Destination] = r
	}
	assert.Equal(t, 4.0, byDest["D"].Dist)
	assert.Len(t, byDest["D"].Path, 3)
	assert.Empty(t, byDest["A"].Path)

	assert.True(t, math.IsInf(byDest["X"].Dist, 1), "unreached vertices report +Inf")
	assert.Nil(t, byDest["X"].Path)
}

// TestResults_Cancelled propagates context cancellation out of the fan-out.
func TestResults_Cancelled(t *testing.T) {
	g := buildWeighted(t)

	tree, err := search.Dijkstra(g, "A")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = tree.Results(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
