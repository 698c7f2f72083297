// Package dijkstra provides Dijkstra's shortest-path algorithm on a core.Graph
// whose edge labels carry non-negative weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Weights come from the edge labels through core.WeightOf: plain numbers,
//     named numeric types, or any label implementing core.Weighted.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//   - Result.PathTo rebuilds a shortest path from the predecessor map.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph to Dijkstra.
//   - ErrVertexNotFound:
//     Returned if the source vertex does not exist in the graph (matches core.ErrVertexNotFound).
//   - core.ErrUnweightedLabel:
//     Returned if some edge label cannot be read as a weight.
//   - ErrNegativeWeight:
//     Returned if any edge in the graph has a negative weight (detected by a fast O(E) pre-scan).
//   - ErrBadMaxDistance, ErrBadInfThreshold:
//     Returned for invalid option values, before any work is done.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, "A", dijkstra.WithMaxDistance(10))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := res.PathTo("D")
//	fmt.Println(res.Dist["D"], path)
package dijkstra
