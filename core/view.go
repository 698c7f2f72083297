// File: view.go
// Role: Textual views of a Graph.
//
// Determinism:
//   - Both forms walk vertices in key order and edges in incidence order.

package core

import "strings"

// String renders the vertex keys in key order joined by commas, e.g. "A,B,C".
// An empty graph renders as "".
//
// Complexity: O(V)
func (g *Graph[V, E]) String() string {
	var sb strings.Builder
	first := true
	g.order.Ascend(func(v V) bool {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(formatKey(v))

		return true
	})

	return sb.String()
}

// StringExtended renders one line per vertex in key order: the key, a colon, and
// its incident edges in insertion order joined by commas. Lines are separated by
// "\n" with no trailing separator. For example:
//
//	A:{A,B}(2.5)
//	B:{A,B}(2.5)
//	C:{C,D}(4.5)
//	D:{C,D}(4.5)
//
// Complexity: O(V + E)
func (g *Graph[V, E]) StringExtended() string {
	var sb strings.Builder
	first := true
	g.order.Ascend(func(v V) bool {
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		sb.WriteString(formatKey(v))
		sb.WriteByte(':')
		for i, e := range g.incidence[v] {
			if i > 0 {
				sb.WriteByte(',')
			}
			e.writeTo(&sb)
		}

		return true
	})

	return sb.String()
}
