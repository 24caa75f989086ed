package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/core"
)

// TestSnapshot_Counts checks that a snapshot reports the same totals as the
// live graph it was taken from.
func TestSnapshot_Counts(t *testing.T) {
	g := buildDiamond(t)
	s := g.Snapshot()

	assert.Equal(t, g.VertexCount(), s.VertexCount())
	assert.Equal(t, g.EdgeCount(), s.EdgeCount())
	assert.Equal(t, g.SimpleEdgeCount(), s.SimpleEdgeCount())
	assert.Equal(t, g.Labels(), s.Labels())
	assert.Equal(t, g.Edges(), s.Edges())
}

// TestSnapshot_Lookups exercises the point accessors.
func TestSnapshot_Lookups(t *testing.T) {
	g := buildDiamond(t)
	s := g.Snapshot()

	assert.True(t, s.Has("A"))
	assert.False(t, s.Has("ghost"))

	v, ok := s.Vertex("B")
	require.True(t, ok)
	assert.Equal(t, "B", v.Label)

	e, ok := s.Edge("A", "C")
	require.True(t, ok)
	assert.Equal(t, 3.0, e.Weight)

	_, ok = s.Edge("C", "A")
	assert.False(t, ok)

	out := s.Out("A")
	require.Len(t, out, 2)
	assert.Equal(t, "B", out[0].To)
	assert.Equal(t, "C", out[1].To)
	assert.Nil(t, s.Out("ghost"))
}

// TestSnapshot_Immutable checks that later graph mutation does not leak
// into an already-taken snapshot.
func TestSnapshot_Immutable(t *testing.T) {
	g := buildDiamond(t)
	s := g.Snapshot()

	_, ok := g.RemoveVertex("A")
	require.True(t, ok)
	mustEdgeW(t, g, "B", "D", 9)

	assert.True(t, s.Has("A"))
	_, ok = s.Edge("B", "D")
	assert.False(t, ok)
	assert.Equal(t, 4, s.VertexCount())
	assert.Equal(t, 5, s.EdgeCount())
}

// TestSnapshot_Empty covers the zero-vertex graph.
func TestSnapshot_Empty(t *testing.T) {
	s := core.NewGraph[int]().Snapshot()

	assert.Equal(t, 0, s.VertexCount())
	assert.Equal(t, 0, s.EdgeCount())
	assert.Empty(t, s.Vertices())
	assert.Empty(t, s.Edges())
}
