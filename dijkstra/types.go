// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative (or NaN) edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//	– core.ErrUnweightedLabel if some edge label carries no weight.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/labgraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph. It matches core.ErrVertexNotFound under errors.Is.
	ErrVertexNotFound = fmt.Errorf("dijkstra: source vertex: %w", core.ErrVertexNotFound)

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by Result.PathTo for a vertex the search did not reach.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which edges are non-traversable

	err error
}

// Option represents a functional option for configuring Dijkstra.
// An invalid value is recorded and reported by Dijkstra before any work is done.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative or NaN values make Dijkstra fail with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Zero, negative or NaN values make Dijkstra fail with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.err = fmt.Errorf("%w: %v", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxDistance:      +Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result holds the outcome of one Dijkstra run.
type Result[V comparable] struct {
	// Source is the vertex the distances are measured from.
	Source V

	// Dist maps every vertex to its shortest distance; +Inf if unreachable.
	Dist map[V]float64

	// Prev maps each reached vertex, except Source, to its predecessor on a shortest path.
	Prev map[V]V
}

// Reachable reports whether v was reached from Source.
func (r *Result[V]) Reachable(v V) bool {
	d, ok := r.Dist[v]

	return ok && !math.IsInf(d, 1)
}

// PathTo rebuilds the shortest path from Source to dest, both included.
// Returns ErrNoPath if dest was not reached.
func (r *Result[V]) PathTo(dest V) ([]V, error) {
	if !r.Reachable(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, any(dest))
	}

	path := []V{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
