// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns keys in the graph's key order (the less function).
//   - Incident()/Neighbors() follow incidence insertion order.
package core

import (
	"fmt"
	"slices"
)

// AddVertex inserts v with an empty incidence list if it is missing.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex is a no-op.
//
// Complexity:
//   - Time O(log V), Space O(1) amortized.
func (g *Graph[V, E]) AddVertex(v V) {
	if _, exists := g.incidence[v]; exists {
		return
	}
	g.incidence[v] = nil
	g.order.ReplaceOrInsert(v)
}

// HasVertex reports whether v is a vertex of the graph.
// Complexity: O(1)
func (g *Graph[V, E]) HasVertex(v V) bool {
	_, ok := g.incidence[v]

	return ok
}

// RemoveVertex deletes v and every edge incident to it.
//
// Implementation:
//   - Stage 1: Return if v is absent (no error, no mutation).
//   - Stage 2: For each edge in v's list, strip it from the opposite endpoint's list.
//   - Stage 3: Drop v from the incidence map and the key order.
//
// Complexity:
//   - Time O(deg(v) · d_max + log V), where d_max bounds the neighbors' list lengths.
func (g *Graph[V, E]) RemoveVertex(v V) {
	edges, exists := g.incidence[v]
	if !exists {
		return
	}

	var other V
	for _, e := range edges {
		other = e.Other(v)
		if other != v {
			g.incidence[other] = dropEdge(g.incidence[other], e)
		}
		g.edgeCount--
	}

	delete(g.incidence, v)
	g.order.Delete(v)
}

// Vertices returns every vertex key in the graph's key order.
// Complexity: O(V)
func (g *Graph[V, E]) Vertices() []V {
	out := make([]V, 0, g.order.Len())
	g.order.Ascend(func(v V) bool {
		out = append(out, v)

		return true
	})

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph[V, E]) VertexCount() int { return len(g.incidence) }

// Incident returns a copy of v's incidence list in insertion order.
//
// Errors:
//   - ErrVertexNotFound: v is not a vertex.
//
// Complexity: O(deg(v))
func (g *Graph[V, E]) Incident(v V) ([]*Edge[V, E], error) {
	edges, ok := g.incidence[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, any(v))
	}

	return slices.Clone(edges), nil
}

// Neighbors returns the endpoint opposite to v for each incident edge, in incidence order.
// A self-loop contributes v itself.
//
// Errors:
//   - ErrVertexNotFound: v is not a vertex.
func (g *Graph[V, E]) Neighbors(v V) ([]V, error) {
	edges, ok := g.incidence[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, any(v))
	}
	out := make([]V, len(edges))
	for i, e := range edges {
		out[i] = e.Other(v)
	}

	return out, nil
}

// Degree returns the length of v's incidence list (a self-loop counts once).
//
// Errors:
//   - ErrVertexNotFound: v is not a vertex.
func (g *Graph[V, E]) Degree(v V) (int, error) {
	edges, ok := g.incidence[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, any(v))
	}

	return len(edges), nil
}
