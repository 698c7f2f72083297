// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// single-source mode, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/labgraph/core"
)

// Vertex visitation states used by cycle detection.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// Components, or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the vertex given to WithStart
	// does not exist in the graph. It matches core.ErrVertexNotFound under errors.Is.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start vertex: %w", core.ErrVertexNotFound)
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, opts...).
type Option[V comparable] func(*Options[V])

// Options holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering and single-source mode.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[V comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v V) error

	// OnExit, if non-nil, is invoked once all descendants of a vertex
	// have been explored (post-order), before appending to result.PostOrder.
	OnExit func(v V) error

	// MaxDepth, if non-negative, limits descent to the given depth.
	// A depth of 0 visits only the root of each tree. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before descending.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(v V) bool

	// Start, when HasStart is set, restricts DFS to the component of Start.
	Start    V
	HasStart bool
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Whole-graph traversal (no start vertex)
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit[V comparable](fn func(v V) error) Option[V] {
	return func(o *Options[V]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a vertex's descendants have been fully explored.
func WithOnExit[V comparable](fn func(v V) error) Option[V] {
	return func(o *Options[V]) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// Any negative limit means unlimited.
func WithMaxDepth[V comparable](limit int) Option[V] {
	return func(o *Options[V]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(v) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor[V comparable](fn func(v V) bool) Option[V] {
	return func(o *Options[V]) {
		o.FilterNeighbor = fn
	}
}

// WithStart returns an Option that switches DFS to single-source mode:
// only the connected component of v is traversed.
func WithStart[V comparable](v V) Option[V] {
	return func(o *Options[V]) {
		o.Start = v
		o.HasStart = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[V comparable] struct {
	// Order records vertices in the sequence they were discovered (pre-order).
	Order []V

	// PostOrder records vertices in the sequence they finished.
	PostOrder []V

	// Depth maps each vertex to its distance (#tree edges) from the root of its tree.
	Depth map[V]int

	// Parent maps each vertex to the vertex from which it was first discovered.
	// Tree roots do not appear in this map.
	Parent map[V]V

	// Visited flags which vertices were reached during the traversal.
	Visited map[V]bool

	// Roots lists the vertex that started each DFS tree, in traversal order.
	Roots []V

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
