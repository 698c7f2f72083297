// File: edge.go
// Role: Read-only accessors and rendering for Edge.
//
// Edges are owned by their Graph; callers only ever see them through these accessors,
// so labels change exclusively via Graph.PutEdge.
package core

import (
	"fmt"
	"strings"
)

// Endpoints returns the two endpoints in the orientation used on insertion.
func (e *Edge[V, E]) Endpoints() (V, V) { return e.u, e.v }

// Label returns the label attached to the edge.
func (e *Edge[V, E]) Label() E { return e.label }

// Other returns the endpoint opposite to x. For a self-loop it returns x.
// The result is unspecified when x is not an endpoint of e.
func (e *Edge[V, E]) Other(x V) V {
	if e.u == x {
		return e.v
	}

	return e.u
}

// Connects reports whether e joins a and b, in either orientation.
func (e *Edge[V, E]) Connects(a, b V) bool {
	return (e.u == a && e.v == b) || (e.u == b && e.v == a)
}

// Touches reports whether x is one of the endpoints of e.
func (e *Edge[V, E]) Touches(x V) bool {
	return e.u == x || e.v == x
}

// IsLoop reports whether both endpoints are the same vertex.
func (e *Edge[V, E]) IsLoop() bool { return e.u == e.v }

// Weighted reports whether the label can be read as a weight.
func (e *Edge[V, E]) Weighted() bool {
	_, ok := WeightOf(e.label)

	return ok
}

// Weight returns the weight carried by the label.
//
// Errors:
//   - ErrUnweightedLabel: the label is neither numeric nor Weighted.
func (e *Edge[V, E]) Weight() (float64, error) {
	w, ok := WeightOf(e.label)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnweightedLabel, any(e.label))
	}

	return w, nil
}

// String renders the edge as "{u,v}" followed by "(weight)" when weighted.
func (e *Edge[V, E]) String() string {
	var sb strings.Builder
	e.writeTo(&sb)

	return sb.String()
}

func (e *Edge[V, E]) writeTo(sb *strings.Builder) {
	sb.WriteByte('{')
	sb.WriteString(formatKey(e.u))
	sb.WriteByte(',')
	sb.WriteString(formatKey(e.v))
	sb.WriteByte('}')
	if w, ok := WeightOf(e.label); ok {
		sb.WriteByte('(')
		sb.WriteString(formatWeight(w))
		sb.WriteByte(')')
	}
}
