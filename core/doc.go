// Package core provides a generic, undirected, labeled in-memory Graph with a
// small, deterministic API surface.
//
// The Graph G = (V,E) has these properties:
//
//   - Undirected: an edge joins an unordered pair {u,v}; (u,v) and (v,u) name the same edge.
//   - Simple in pairs: at most one edge per pair; PutEdge on an existing pair relabels it.
//   - Self-loops allowed: a loop appears once in its vertex's incidence list.
//   - Labeled: every edge carries one label of type E. A label is weighted when it
//     implements Weighted or is numeric (see WeightOf).
//   - Ordered keys: vertices are kept in a B-tree ordered by the graph's less function;
//     Vertices(), String(), StringExtended() and whole-graph traversals follow that order.
//   - Insertion-ordered incidence: each vertex lists its edges in the order they were added;
//     Incident() and Neighbors() preserve that order, which makes BFS and DFS reproducible.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V)                          // O(log V), idempotent
//	HasVertex(v V) bool                     // O(1)
//	RemoveVertex(v V)                       // O(deg(v)·d), no-op if absent
//
//	// Edge lifecycle
//	PutEdge(u, v V, label E) E              // O(deg(u)), auto-adds endpoints
//	Label(u, v V) (E, bool)                 // O(deg(u))
//	HasEdge(u, v V) bool                    // O(deg(u))
//	RemoveEdge(u, v V) (E, bool, error)     // O(deg(u)+deg(v))
//	Weight(u, v V) (float64, error)         // O(deg(u))
//
//	// Query
//	Vertices() []V                          // O(V), key order
//	Edges() []*Edge[V,E]                    // O(V+E)
//	Incident(v V) ([]*Edge[V,E], error)     // O(deg(v)), insertion order
//	Neighbors(v V) ([]V, error)             // O(deg(v)), insertion order
//	Degree(v V) (int, error)                // O(1)
//	VertexCount() int, EdgeCount() int      // O(1)
//
//	// Rendering
//	String() string                         // "A,B,C"
//	StringExtended() string                 // "A:{A,B}(2.5)\nB:{A,B}(2.5)"
//
//	// Cloning
//	CloneEmpty(), Clone(), Clear()
//
// Errors:
//
//	ErrVertexNotFound  – RemoveEdge, Incident, Neighbors, Degree on an unknown vertex
//	ErrUnweightedLabel – Weight on an edge whose label carries no weight
//
// Label, HasEdge and Weight never report unknown vertices as errors; they answer
// "no edge" instead.
//
// A Graph is not safe for concurrent use.
package core
