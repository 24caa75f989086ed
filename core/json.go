package core

import (
	"cmp"
	"encoding/json"
	"fmt"
)

// JSON codec for whole graphs. The wire shape mirrors the data model:
//
//	{"vertices":[{"label":…,"weight":…}],
//	 "edges":[{"source":…,"destination":…,"weight":…}]}
//
// Vertices and edges are emitted in sorted order, so equal graphs marshal
// to identical documents. Labels must themselves be JSON-representable
// (strings and numbers are).

type graphDoc[K cmp.Ordered] struct {
	Vertices []vertexDoc[K] `json:"vertices"`
	Edges    []edgeDoc[K]   `json:"edges"`
}

type vertexDoc[K cmp.Ordered] struct {
	Label  K       `json:"label"`
	Weight float64 `json:"weight"`
}

type edgeDoc[K cmp.Ordered] struct {
	Source      K       `json:"source"`
	Destination K       `json:"destination"`
	Weight      float64 `json:"weight"`
}

// MarshalJSON encodes the whole graph under one read-lock acquisition.
func (g *Graph[K]) MarshalJSON() ([]byte, error) {
	g.mu.RLock()
	verts := g.verticesLocked()
	edges := g.edgesLocked()
	g.mu.RUnlock()

	doc := graphDoc[K]{
		Vertices: make([]vertexDoc[K], len(verts)),
		Edges:    make([]edgeDoc[K], len(edges)),
	}
	for i, v := range verts {
		doc.Vertices[i] = vertexDoc[K]{Label: v.Label, Weight: v.Weight}
	}
	for i, e := range edges {
		doc.Edges[i] = edgeDoc[K]{Source: e.From, Destination: e.To, Weight: e.Weight}
	}

	return json.Marshal(doc)
}

// UnmarshalJSON decodes a graph document and replaces the receiver's
// contents atomically. The document is validated as a whole first: an edge
// referencing a label absent from the vertex list fails with
// ErrUnknownVertex and leaves the receiver untouched.
func (g *Graph[K]) UnmarshalJSON(data []byte) error {
	var doc graphDoc[K]
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("core: decode graph: %w", err)
	}

	verts := make([]Vertex[K], len(doc.Vertices))
	for i, v := range doc.Vertices {
		verts[i] = Vertex[K]{Label: v.Label, Weight: v.Weight}
	}
	edges := make([]Edge[K], len(doc.Edges))
	for i, e := range doc.Edges {
		edges[i] = Edge[K]{From: e.Source, To: e.Destination, Weight: e.Weight}
	}

	fresh, err := NewGraphFrom(verts, edges)
	if err != nil {
		return err
	}

	g.mu.Lock()
	g.verts = fresh.verts
	g.adj = fresh.adj
	g.nEdges = fresh.nEdges
	g.mu.Unlock()

	return nil
}
