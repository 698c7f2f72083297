// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It works on an undirected *core.Graph whose labels all carry weights.
package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/labgraph/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of g.
// It uses a disjoint-set (union-find) structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph         : g is nil.
//   - core.ErrUnweightedLabel : some edge label carries no weight.
//   - ErrInvalidWeight        : some edge weighs NaN.
//   - ErrDisconnected         : g is empty, or |V| > 1 and g is not connected.
//
// Steps:
//  1. Validate g; an empty graph is disconnected, a single vertex yields an empty tree.
//  2. Read every weight; self-loops never join a tree and are dropped.
//  3. Stable-sort edges by weight: ties keep g.Edges() order.
//  4. Take each edge whose endpoints lie in different sets, until |V|-1 edges.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal[V comparable, E any](g *core.Graph[V, E]) ([]*core.Edge[V, E], float64, error) {
	// 1. Validate
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}

	// 2. Weights
	edges, weights, err := edgeWeights(g)
	if err != nil {
		return nil, 0, err
	}
	if len(vertices) == 1 {
		return []*core.Edge[V, E]{}, 0, nil
	}

	// 3. Sort
	slices.SortStableFunc(edges, func(a, b *core.Edge[V, E]) int {
		return cmp.Compare(weights[a], weights[b])
	})

	// 4. Union-find over the sorted edges
	ds := newDisjointSet(vertices)
	numVerts := len(vertices)
	mst := make([]*core.Edge[V, E], 0, numVerts-1)
	var total float64
	for _, e := range edges {
		u, v := e.Endpoints()
		if !ds.union(u, v) {
			continue
		}
		mst = append(mst, e)
		total += weights[e]
		if len(mst) == numVerts-1 {
			break
		}
	}

	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// disjointSet is a union-find forest keyed by vertex.
type disjointSet[V comparable] struct {
	parent map[V]V
	rank   map[V]int
}

func newDisjointSet[V comparable](vertices []V) *disjointSet[V] {
	ds := &disjointSet[V]{
		parent: make(map[V]V, len(vertices)),
		rank:   make(map[V]int, len(vertices)),
	}
	for _, v := range vertices {
		ds.parent[v] = v
	}

	return ds
}

// find returns the root of u's set, halving the path on the way.
func (ds *disjointSet[V]) find(u V) V {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v by rank. It reports false when they were
// already one set.
func (ds *disjointSet[V]) union(u, v V) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
