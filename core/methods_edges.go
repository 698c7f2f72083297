// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Policy:
//   - One edge per unordered vertex pair; PutEdge on an existing pair relabels it.
//   - Lookups match the unordered pair, so (u,v) and (v,u) are interchangeable.
//   - Only RemoveEdge reports unknown vertices as an error; the queries treat them as "no edge".
package core

import (
	"fmt"
)

// PutEdge connects u and v with label and returns label.
//
// Implementation:
//   - Stage 1: Insert whichever endpoints are missing.
//   - Stage 2: If an edge {u,v} exists (either orientation), overwrite its label in place.
//   - Stage 3: Otherwise append a new edge to u's list and, unless u == v, to v's list.
//
// Behavior highlights:
//   - The stored orientation of an existing edge is preserved on relabel.
//   - A self-loop appears once in its vertex's incidence list.
//
// Complexity:
//   - Time O(deg(u) + log V), Space O(1) amortized.
func (g *Graph[V, E]) PutEdge(u, v V, label E) E {
	g.AddVertex(u)
	g.AddVertex(v)

	if e := g.find(u, v); e != nil {
		e.label = label

		return e.label
	}

	e := &Edge[V, E]{u: u, v: v, label: label}
	g.incidence[u] = append(g.incidence[u], e)
	if u != v {
		g.incidence[v] = append(g.incidence[v], e)
	}
	g.edgeCount++

	return e.label
}

// Label returns the label of edge {u,v}.
// The second result is false when u is unknown or no such edge exists.
// Complexity: O(deg(u))
func (g *Graph[V, E]) Label(u, v V) (E, bool) {
	if e := g.find(u, v); e != nil {
		return e.label, true
	}
	var zero E

	return zero, false
}

// HasEdge reports whether an edge {u,v} exists. Unknown vertices yield false.
// Complexity: O(deg(u))
func (g *Graph[V, E]) HasEdge(u, v V) bool {
	return g.find(u, v) != nil
}

// RemoveEdge deletes edge {u,v} and returns its former label.
//
// Returns:
//   - (label, true, nil) when the edge existed and was removed.
//   - (zero, false, nil) when both vertices exist but are not adjacent; nothing changes.
//
// Errors:
//   - ErrVertexNotFound: u or v is not a vertex. Checked before any mutation.
//
// Complexity: O(deg(u) + deg(v))
func (g *Graph[V, E]) RemoveEdge(u, v V) (E, bool, error) {
	var zero E
	if !g.HasVertex(u) {
		return zero, false, fmt.Errorf("%w: %v", ErrVertexNotFound, any(u))
	}
	if !g.HasVertex(v) {
		return zero, false, fmt.Errorf("%w: %v", ErrVertexNotFound, any(v))
	}

	e := g.find(u, v)
	if e == nil {
		return zero, false, nil
	}
	g.incidence[u] = dropEdge(g.incidence[u], e)
	if u != v {
		g.incidence[v] = dropEdge(g.incidence[v], e)
	}
	g.edgeCount--

	return e.label, true, nil
}

// Weight returns the weight of edge {u,v}.
//
// Returns 0 with a nil error when there is no such edge, unknown vertices included.
//
// Errors:
//   - ErrUnweightedLabel: the edge exists but its label carries no weight.
//
// Complexity: O(deg(u))
func (g *Graph[V, E]) Weight(u, v V) (float64, error) {
	e := g.find(u, v)
	if e == nil {
		return 0, nil
	}

	return e.Weight()
}

// Edges returns every edge once. Vertices are scanned in key order and each
// edge is reported from the first list that holds it, in incidence order.
// Complexity: O(V + E)
func (g *Graph[V, E]) Edges() []*Edge[V, E] {
	out := make([]*Edge[V, E], 0, g.edgeCount)
	seen := make(map[*Edge[V, E]]struct{}, g.edgeCount)
	g.order.Ascend(func(v V) bool {
		for _, e := range g.incidence[v] {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}

		return true
	})

	return out
}

// EdgeCount returns the number of distinct edges.
func (g *Graph[V, E]) EdgeCount() int { return g.edgeCount }

// find scans u's incidence list for the edge joining u and v.
func (g *Graph[V, E]) find(u, v V) *Edge[V, E] {
	for _, e := range g.incidence[u] {
		if e.Connects(u, v) {
			return e
		}
	}

	return nil
}

// dropEdge removes e from list, preserving the order of the remaining edges.
func dropEdge[V comparable, E any](list []*Edge[V, E], e *Edge[V, E]) []*Edge[V, E] {
	for i, x := range list {
		if x == e {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil

			return list[:len(list)-1]
		}
	}

	return list
}
