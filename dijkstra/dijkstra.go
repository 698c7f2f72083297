// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect unweighted labels
//     and negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/labgraph/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
// Edge weights are read through core.WeightOf, so any numeric or core.Weighted
// label works.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  3. g must contain source (ErrVertexNotFound).
//  4. Every edge must carry a weight (core.ErrUnweightedLabel).
//  5. No edge can have a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[V comparable, E any](g *core.Graph[V, E], source V, opts ...Option) (*Result[V], error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate source exists in the graph
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, any(source))
	}

	// 4) Pre-scan all edges; weights are cached for the relaxation phase.
	weights := make(map[*core.Edge[V, E]]float64, g.EdgeCount())
	for _, e := range g.Edges() {
		w, err := e.Weight()
		if err != nil {
			return nil, fmt.Errorf("dijkstra: edge %v: %w", e, err)
		}
		if w < 0 || math.IsNaN(w) {
			u, v := e.Endpoints()
			return nil, fmt.Errorf("%w: edge %v-%v weight=%v", ErrNegativeWeight, any(u), any(v), w)
		}
		weights[e] = w
	}

	// 5) Prepare data structures for the algorithm.
	n := g.VertexCount()
	r := &runner[V, E]{
		g:       g,
		options: cfg,
		weights: weights,
		visited: make(map[V]bool, n),
		pq:      make(nodePQ[V], 0, n),
		res: &Result[V]{
			Source: source,
			Dist:   make(map[V]float64, n),
			Prev:   make(map[V]V, n),
		},
	}

	// 6) Initialize algorithm state and run main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable, E any] struct {
	g       *core.Graph[V, E]            // The input graph; read-only within Dijkstra.
	options Options                      // Configuration options (thresholds).
	weights map[*core.Edge[V, E]]float64 // Edge weights read during the pre-scan.
	visited map[V]bool                   // Tracks if a vertex's distance is finalized.
	pq      nodePQ[V]                    // Min-heap of *nodeItem for lazy priority queue.
	res     *Result[V]
}

// init sets every distance to +Inf, the source to zero, and seeds the heap.
func (r *runner[V, E]) init() {
	for _, v := range r.g.Vertices() {
		r.res.Dist[v] = math.Inf(1)
	}
	r.res.Dist[r.res.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[V]{id: r.res.Source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its incident edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance (no need to explore farther).
func (r *runner[V, E]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[V])
		u := item.id

		// stale heap entry
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge incident to u and attempts to improve distances to its neighbors.
// Edges with weight ≥ InfEdgeThreshold are impassable.
// Assumes r.res.Dist[u] is finalized before calling relax(u).
func (r *runner[V, E]) relax(u V) error {
	edges, err := r.g.Incident(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get incident edges of %v: %w", any(u), err)
	}

	for _, e := range edges {
		v := e.Other(u)
		w := r.weights[e]
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.res.Dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// strict improvement only, so equal-cost paths keep the first predecessor found
		if newDist >= r.res.Dist[v] {
			continue
		}

		r.res.Dist[v] = newDist
		r.res.Prev[v] = u
		heap.Push(&r.pq, &nodeItem[V]{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem[V comparable] struct {
	id   V
	dist float64
}

// nodePQ is a min-heap of *nodeItem, ordered by nodeItem.dist ascending.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ[V comparable] []*nodeItem[V]

func (pq nodePQ[V]) Len() int           { return len(pq) }
func (pq nodePQ[V]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[V]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *nodeItem.
func (pq *nodePQ[V]) Push(x any) { *pq = append(*pq, x.(*nodeItem[V])) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
