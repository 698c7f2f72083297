// Package core defines the central Graph and Edge types of labgraph and the
// primitives for building, querying, rendering and cloning undirected labeled graphs.
//
// This file declares Edge, Graph, the Weighted capability, sentinel errors,
// and the NewGraph/NewGraphFunc constructors.
//
// Errors:
//
//	ErrVertexNotFound  - an operation that requires existing vertices got an unknown key.
//	ErrUnweightedLabel - the weight of an edge whose label carries no weight was requested.
package core

import (
	"cmp"
	"errors"

	"github.com/google/btree"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrUnweightedLabel indicates the edge label is neither numeric nor Weighted.
	ErrUnweightedLabel = errors.New("core: edge label cannot be evaluated as a weight")
)

// btreeDegree is the branching factor of the vertex-order B-tree.
const btreeDegree = 16

// Weighted is implemented by edge labels that carry a numeric cost.
type Weighted interface {
	Weight() float64
}

// LessFunc reports whether a sorts strictly before b.
type LessFunc[V any] func(a, b V) bool

// Edge is an undirected connection between two vertices carrying one label.
//
// The endpoints are kept in the orientation given on insertion; that orientation
// only affects rendering. Equality of edges is equality of the unordered pair.
type Edge[V comparable, E any] struct {
	u, v  V
	label E
}

// Graph is an undirected labeled graph with at most one edge per vertex pair.
//
// Vertex keys are ordered by less; whole-graph iteration follows that order.
// Each vertex maps to its incidence list, kept in edge insertion order.
// A Graph is not safe for concurrent use.
type Graph[V comparable, E any] struct {
	less LessFunc[V]

	// order holds every vertex key sorted by less.
	order *btree.BTreeG[V]

	// incidence[v] lists the edges touching v in insertion order.
	incidence map[V][]*Edge[V, E]

	edgeCount int
}

// NewGraph creates an empty Graph whose vertex keys use their natural order.
// Complexity: O(1)
func NewGraph[V cmp.Ordered, E any]() *Graph[V, E] {
	return NewGraphFunc[V, E](cmp.Less[V])
}

// NewGraphFunc creates an empty Graph whose vertex keys are ordered by less.
// less must be a strict weak order consistent with ==.
// Complexity: O(1)
func NewGraphFunc[V comparable, E any](less LessFunc[V]) *Graph[V, E] {
	return &Graph[V, E]{
		less:      less,
		order:     btree.NewG[V](btreeDegree, btree.LessFunc[V](less)),
		incidence: make(map[V][]*Edge[V, E]),
	}
}
