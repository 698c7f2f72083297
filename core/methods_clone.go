// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone reproduces every incidence list in the same order, so traversals of the
//     clone visit vertices exactly as traversals of the source do.

package core

// CloneEmpty returns a new Graph with the same key order and vertices, but no edges.
//
// Complexity: O(V log V)
func (g *Graph[V, E]) CloneEmpty() *Graph[V, E] {
	clone := NewGraphFunc[V, E](g.less)
	g.order.Ascend(func(v V) bool {
		clone.AddVertex(v)

		return true
	})

	return clone
}

// Clone returns a deep copy of the Graph structure: vertices, edges and incidence order.
// Labels are copied by value; labels holding references still share them.
//
// Complexity: O(V log V + E)
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	clone := g.CloneEmpty()
	copied := make(map[*Edge[V, E]]*Edge[V, E], g.edgeCount)

	var (
		ne *Edge[V, E]
		ok bool
	)
	g.order.Ascend(func(v V) bool {
		list := make([]*Edge[V, E], 0, len(g.incidence[v]))
		for _, e := range g.incidence[v] {
			if ne, ok = copied[e]; !ok {
				ne = &Edge[V, E]{u: e.u, v: e.v, label: e.label}
				copied[e] = ne
			}
			list = append(list, ne)
		}
		clone.incidence[v] = list

		return true
	})
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear removes every vertex and edge while keeping the key order function.
//
// Complexity: O(1) for map reallocation; no iteration over existing entries.
func (g *Graph[V, E]) Clear() {
	g.order.Clear(false)
	g.incidence = make(map[V][]*Edge[V, E])
	g.edgeCount = 0
}
