// Package labgraph is an in-memory, undirected, labeled graph library with
// deterministic traversals.
//
// A graph is generic over its vertex key V and its edge label E. Vertices are
// kept in key order; every vertex keeps its incident edges in insertion order,
// and that order drives BFS and DFS, so the same sequence of mutations always
// yields the same traversal.
//
//	core/             Graph[V,E], Edge[V,E], weights and the two renderings
//	bfs/              breadth-first search from one source, with depth and parents
//	dfs/              whole-graph depth-first search, components and cycle search
//	dijkstra/         shortest paths over numeric or Weighted labels
//	prim_kruskal/     minimum spanning trees (Kruskal, Prim)
//	builder/          paths, cycles, stars, wheels, complete graphs, grids, G(n,p)
//	internal/loader/  YAML graph documents
//	cmd/labgraph/     command-line front end
//
// Quick example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.NewGraph[string, float64]()
//	g.PutEdge("A", "B", 1)
//	g.PutEdge("A", "C", 2)
//	g.PutEdge("B", "D", 1)
//	g.PutEdge("C", "D", 1)
//	res, _ := bfs.BFS(g, "A") // res.Order: [A B C D]
//
//	go install github.com/katalvlaran/labgraph/cmd/labgraph@latest
package labgraph
