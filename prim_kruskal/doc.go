// Package prim_kruskal computes Minimum Spanning Trees (MST) of undirected
// core.Graphs with Prim's and Kruskal's algorithms.
//
// An MST of a connected graph G = (V, E) is a subset T ⊆ E of |V|-1 edges that
// connects every vertex with the least total weight.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]*core.Edge[V,E], float64, error)
//     Sort all edges by weight and merge components with union-find.
//     O(E log E). Ties keep g.Edges() order (stable sort).
//
//   - Prim(g, root) ([]*core.Edge[V,E], float64, error)
//     Grow one tree from root with a min-heap of leaving edges.
//     O(E log E). Ties pop in push order, which follows incidence order.
//
//   - Compute(g, opts...) dispatches on WithMethod(MethodKruskal|MethodPrim)
//     and WithRoot(v); Prim defaults to the first vertex in key order.
//
// Weights are read through core.WeightOf: every label must be numeric or
// implement core.Weighted, otherwise the error wraps core.ErrUnweightedLabel.
// Negative weights are fine; NaN is rejected with ErrInvalidWeight.
// Self-loops never join a tree. The returned edges are the graph's own
// *core.Edge values, so Edge.String renders them as in StringExtended.
//
// Errors: ErrInvalidGraph, ErrDisconnected, ErrInvalidWeight, ErrUnknownMethod,
// ErrRootNotFound.
package prim_kruskal
