// Package bfs provides breadth-first search over a core.Graph, returning the
// visit order together with unweighted distances and parent links.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a source vertex.
//   - Returns a Result containing:
//   - Order: visit sequence (the source first, then level by level)
//   - Depth: map from vertex → distance (edges) from the source
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex is discovered and enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	core.Graph keeps every incidence list in edge insertion order, and BFS
//	enqueues the neighbors of a dequeued vertex in exactly that order. The visit
//	sequence therefore depends only on the order edges were added, not on key order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	// Basic BFS with no options:
//	result, err := bfs.BFS(g, "A")
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx error, or hook error
//	}
//	fmt.Println(result.Order)
//
//	// With functional options (value-free options need the key type spelled out):
//	result, err := bfs.BFS(
//		g, "A",
//		bfs.WithContext[string](ctx),
//		bfs.WithMaxDepth[string](3),
//		bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "skip" }),
//		bfs.WithOnVisit(func(v string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the source vertex does not exist (also matches core.ErrVertexNotFound).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
