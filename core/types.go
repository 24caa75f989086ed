// Package core defines the central Graph, Vertex, and Edge types and
// provides thread-safe primitives for building, querying, and deriving
// directed weighted graphs.
//
// This file declares Vertex, Edge, Graph, the per-call option types,
// sentinel errors, and the NewGraph/NewGraphFrom constructors.
//
// Errors:
//
//	ErrBadWeight     - weight is NaN or ±Inf.
//	ErrUnknownVertex - edge endpoint does not exist in the graph.
//	ErrNotInGraph    - induced-subgraph label set references an absent vertex.
package core

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/tidwall/btree"
)

// Default weights applied when the corresponding option is omitted.
const (
	// DefaultVertexWeight is assigned by AddVertex without WithVertexWeight.
	DefaultVertexWeight float64 = 0

	// DefaultEdgeWeight is assigned by AddEdge without WithEdgeWeight.
	DefaultEdgeWeight float64 = 1
)

// Sentinel errors for core graph operations.
var (
	// ErrBadWeight indicates a NaN or infinite weight; weights must be finite
	// because +Inf is reserved for "unreachable" in derived results.
	ErrBadWeight = errors.New("core: weight must be finite")

	// ErrUnknownVertex indicates an edge operation referenced an endpoint
	// that is not present in the graph.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrNotInGraph indicates InducedSubgraph received a label that does not
	// key any vertex of the source graph.
	ErrNotInGraph = errors.New("core: label not in graph")
)

// Vertex is a flat value record for a node: its unique label and a weight.
// Vertices carry no adjacency; the owning Graph stores all edges, so a
// Vertex can be copied and retained freely without locking concerns.
type Vertex[K cmp.Ordered] struct {
	// Label uniquely identifies this vertex within its Graph.
	Label K

	// Weight is an arbitrary finite value attached to the vertex.
	// It is stored and serialized but not consulted by the algorithms.
	Weight float64
}

// Edge is an immutable connection From→To with a finite Weight.
// The (From, To) pair identifies the edge slot: adding an edge for an
// existing pair overwrites the weight rather than creating a parallel edge.
type Edge[K cmp.Ordered] struct {
	// From is the source vertex label.
	From K

	// To is the destination vertex label.
	To K

	// Weight is the cost of traversing the edge.
	Weight float64
}

// IsLoop reports whether the edge starts and ends at the same vertex.
func (e Edge[K]) IsLoop() bool { return e.From == e.To }

// VertexOption configures a single AddVertex call.
type VertexOption func(*vertexConfig)

// vertexConfig accumulates AddVertex options; invalid values are recorded
// and surfaced by AddVertex itself.
type vertexConfig struct {
	weight float64
	err    error
}

// WithVertexWeight sets the vertex weight. NaN or ±Inf is rejected with
// ErrBadWeight when AddVertex is invoked.
func WithVertexWeight(w float64) VertexOption {
	return func(c *vertexConfig) {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			c.err = fmt.Errorf("%w: vertex weight %v", ErrBadWeight, w)
			return
		}
		c.weight = w
	}
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

// edgeConfig accumulates AddEdge options; invalid values are recorded
// and surfaced by AddEdge itself.
type edgeConfig struct {
	weight float64
	err    error
}

// WithEdgeWeight sets the edge weight. NaN or ±Inf is rejected with
// ErrBadWeight when AddEdge is invoked.
func WithEdgeWeight(w float64) EdgeOption {
	return func(c *edgeConfig) {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			c.err = fmt.Errorf("%w: edge weight %v", ErrBadWeight, w)
			return
		}
		c.weight = w
	}
}

// Graph is a mutable directed weighted graph keyed by labels of type K.
//
// Internals:
//   - verts: ordered catalog of Vertex records (sorted by label), giving
//     O(log V) membership and O(V) sorted enumeration without re-sorting.
//   - adj:   nested adjacency maps from→to→weight; rows are created lazily.
//   - mu:    single RWMutex guarding catalog, adjacency, and counters.
//
// The zero value is not usable; construct with NewGraph or NewGraphFrom.
type Graph[K cmp.Ordered] struct {
	mu     sync.RWMutex
	verts  *btree.BTreeG[Vertex[K]]
	adj    map[K]map[K]float64
	nEdges int
}

// NewGraph returns an empty Graph keyed by K.
func NewGraph[K cmp.Ordered]() *Graph[K] {
	return &Graph[K]{
		verts: btree.NewBTreeG[Vertex[K]](func(a, b Vertex[K]) bool {
			return cmp.Less(a.Label, b.Label)
		}),
		adj: make(map[K]map[K]float64),
	}
}

// NewGraphFrom builds a Graph pre-populated from vertex and edge records.
// Duplicate vertex labels follow AddVertex overwrite semantics (last one
// wins); duplicate edge slots follow AddEdge overwrite semantics. Any edge
// referencing a label absent from vertices fails with ErrUnknownVertex, and
// non-finite weights fail with ErrBadWeight.
func NewGraphFrom[K cmp.Ordered](vertices []Vertex[K], edges []Edge[K]) (*Graph[K], error) {
	g := NewGraph[K]()
	for _, v := range vertices {
		if err := g.AddVertex(v.Label, WithVertexWeight(v.Weight)); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.From, e.To, WithEdgeWeight(e.Weight)); err != nil {
			return nil, err
		}
	}

	return g, nil
}
