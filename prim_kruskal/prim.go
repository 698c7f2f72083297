// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a root vertex using a min-heap of candidate edges.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/labgraph/core"
)

// Prim computes the Minimum Spanning Tree (MST) of g by growing outwards
// from root.
//
// Error Conditions:
//   - ErrInvalidGraph         : g is nil.
//   - ErrDisconnected         : g is empty, or |V| > 1 and g is not connected.
//   - ErrRootNotFound         : root is not a vertex (wraps core.ErrVertexNotFound).
//   - core.ErrUnweightedLabel : some edge label carries no weight.
//   - ErrInvalidWeight        : some edge weighs NaN.
//
// Steps:
//  1. Validate g and root, read every weight.
//  2. Mark root visited and push its edges to unvisited neighbors.
//  3. Pop the lightest candidate; skip it if its far end is already in the tree,
//     otherwise take it and push the new vertex's edges.
//  4. Fewer than |V|-1 edges at the end means the graph is disconnected.
//
// Candidates of equal weight pop in push order, so the tree is reproducible.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim[V comparable, E any](g *core.Graph[V, E], root V) ([]*core.Edge[V, E], float64, error) {
	// 1. Validate
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: %v", ErrRootNotFound, any(root))
	}
	_, weights, err := edgeWeights(g)
	if err != nil {
		return nil, 0, err
	}
	if n == 1 {
		return []*core.Edge[V, E]{}, 0, nil
	}

	p := &primRunner[V, E]{
		graph:   g,
		weights: weights,
		visited: make(map[V]bool, n),
		pq:      &edgePQ[V, E]{},
	}

	// 2. Seed from root
	if err = p.grow(root); err != nil {
		return nil, 0, err
	}

	// 3. Main loop
	mst := make([]*core.Edge[V, E], 0, n-1)
	var total float64
	for p.pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(p.pq).(candidate[V, E])
		if p.visited[c.to] {
			continue
		}
		mst = append(mst, c.edge)
		total += c.weight
		if err = p.grow(c.to); err != nil {
			return nil, 0, err
		}
	}

	// 4. Coverage
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// primRunner holds the growing tree and its candidate heap.
type primRunner[V comparable, E any] struct {
	graph   *core.Graph[V, E]
	weights map[*core.Edge[V, E]]float64
	visited map[V]bool
	pq      *edgePQ[V, E]
	seq     int
}

// grow adds v to the tree and pushes every edge from v to a vertex outside it.
func (p *primRunner[V, E]) grow(v V) error {
	p.visited[v] = true
	edges, err := p.graph.Incident(v)
	if err != nil {
		return fmt.Errorf("prim_kruskal: Incident(%v): %w", any(v), err)
	}
	for _, e := range edges {
		to := e.Other(v)
		if to == v || p.visited[to] {
			continue
		}
		heap.Push(p.pq, candidate[V, E]{edge: e, to: to, weight: p.weights[e], seq: p.seq})
		p.seq++
	}

	return nil
}

// candidate is an edge leaving the tree towards to.
type candidate[V comparable, E any] struct {
	edge   *core.Edge[V, E]
	to     V
	weight float64
	seq    int
}

// edgePQ implements heap.Interface: a min-heap by weight, then push order.
type edgePQ[V comparable, E any] []candidate[V, E]

func (pq edgePQ[V, E]) Len() int { return len(pq) }
func (pq edgePQ[V, E]) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	return pq[i].seq < pq[j].seq
}
func (pq edgePQ[V, E]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ[V, E]) Push(x any) { *pq = append(*pq, x.(candidate[V, E])) }

func (pq *edgePQ[V, E]) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
