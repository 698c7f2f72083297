// Package dfs implements depth-first search traversal, connected components
// and cycle detection on an undirected core.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. By default it covers the whole graph,
//     rooting a new tree at every unvisited vertex in key order. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Single-source mode (WithStart)
//   - Components: groups vertices into connected components, each listed
//     in DFS pre-order.
//   - FindCycle: returns the first cycle met by the whole-graph DFS, using
//     vertex coloring (White, Gray, Black) and back-edge detection.
//
// Determinism:
//
//	Roots are taken in vertex key order and the incident edges of each vertex
//	are explored in insertion order. The walk uses an explicit stack, so deep
//	graphs do not grow the goroutine stack, yet the pre-order it produces is
//	exactly that of the recursive formulation.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers used by FindCycle
//   - Option: functional options for DFS behavior
//   - Options: holds Context, hooks, MaxDepth, FilterNeighbor, Start
//   - Result: collects pre-order, post-order, Depth, Parent, Visited, Roots
//
// Usage:
//
//	res, err := dfs.DFS(g)
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ctx error, or hook error
//	}
//	fmt.Println(res.Order)
//
//	// one component only, stop below depth 3:
//	res, err = dfs.DFS(g, dfs.WithStart("A"), dfs.WithMaxDepth[string](3))
//
//	comps, _ := dfs.Components(g)
//	cycle, ok, _ := dfs.FindCycle(g)
//
// Complexity:
//
//   - DFS, Components, FindCycle: O(V + E) time, O(V) memory.
package dfs
