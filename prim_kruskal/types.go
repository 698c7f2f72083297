// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/labgraph/core"
)

var (
	// ErrInvalidGraph indicates that the graph is nil.
	ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

	// ErrDisconnected indicates that no spanning tree covers every vertex:
	// the graph is empty, or it has more than one connected component.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrInvalidWeight indicates an edge weight that cannot be ordered (NaN).
	ErrInvalidWeight = errors.New("prim_kruskal: edge weight is NaN")

	// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

	// ErrRootNotFound indicates that Prim's root is not a vertex of the graph.
	ErrRootNotFound = fmt.Errorf("prim_kruskal: root: %w", core.ErrVertexNotFound)
)

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method  string - one of MethodPrim or MethodKruskal.
//	Root    V      - start vertex for Prim; ignored when Method == MethodKruskal.
//	HasRoot bool   - Root was set; otherwise Prim starts at the first vertex in key order.
type MSTOptions[V comparable] struct {
	Method  string
	Root    V
	HasRoot bool
}

// Option configures MSTOptions.
type Option[V comparable] func(*MSTOptions[V])

// WithMethod sets the algorithm. Allowed values: MethodPrim, MethodKruskal.
func WithMethod[V comparable](m string) Option[V] {
	return func(opts *MSTOptions[V]) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot[V comparable](root V) Option[V] {
	return func(opts *MSTOptions[V]) {
		opts.Root = root
		opts.HasRoot = true
	}
}

// DefaultOptions returns MSTOptions for Kruskal with no root.
func DefaultOptions[V comparable]() MSTOptions[V] {
	return MSTOptions[V]{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm based on the options.
//
//   - MethodKruskal: Kruskal(g).
//   - MethodPrim:    Prim(g, root), root defaulting to the first vertex in key order.
//   - otherwise:     ErrUnknownMethod.
//
// It returns the tree edges (the graph's own *core.Edge values, empty for a
// single vertex) and their total weight.
func Compute[V comparable, E any](g *core.Graph[V, E], opts ...Option[V]) ([]*core.Edge[V, E], float64, error) {
	o := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		if o.HasRoot {
			return Prim(g, o.Root)
		}
		if g == nil {
			return nil, 0, ErrInvalidGraph
		}
		verts := g.Vertices()
		if len(verts) == 0 {
			return nil, 0, ErrDisconnected
		}
		return Prim(g, verts[0])
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// edgeWeights reads every edge weight once, self-loops included, so an
// unusable label fails the whole computation up front.
// It returns the non-loop edges in g.Edges() order and their weights.
func edgeWeights[V comparable, E any](g *core.Graph[V, E]) ([]*core.Edge[V, E], map[*core.Edge[V, E]]float64, error) {
	all := g.Edges()
	edges := make([]*core.Edge[V, E], 0, len(all))
	weights := make(map[*core.Edge[V, E]]float64, len(all))
	for _, e := range all {
		w, err := e.Weight()
		if err != nil {
			return nil, nil, fmt.Errorf("prim_kruskal: edge %v: %w", e, err)
		}
		if math.IsNaN(w) {
			return nil, nil, fmt.Errorf("%w: edge %v", ErrInvalidWeight, e)
		}
		if e.IsLoop() {
			continue
		}
		weights[e] = w
		edges = append(edges, e)
	}

	return edges, weights, nil
}
