// Package dfs implements depth-first search (whole graph or single source) on core.Graph.
//
// Key features:
//   - DFS(g, opts...): traverse every component in vertex key order, or one via WithStart
//   - Neighbors are taken in incidence insertion order, so the result is reproducible
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for the work stack and metadata maps.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/labgraph/core"
)

// frame is one entry of the explicit DFS stack: a discovered vertex,
// a snapshot of its incident edges and the index of the next edge to examine.
type frame[V comparable, E any] struct {
	v     V
	edges []*core.Edge[V, E]
	next  int
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[V comparable, E any] struct {
	graph *core.Graph[V, E]
	opts  Options[V]
	stack []frame[V, E]
	res   *Result[V]
}

// DFS performs depth-first search on graph g.
//
// By default every vertex is covered: vertices are taken in key order and each
// one not yet visited roots a new tree. WithStart restricts the search to a
// single tree. The visit order equals that of a recursive pre-order walk that
// explores the incident edges of each vertex in insertion order.
//
// On abort (context or hook error) the partial result is returned with the error.
func DFS[V comparable, E any](g *core.Graph[V, E], opts ...Option[V]) (*Result[V], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify start
	if o.HasStart && !g.HasVertex(o.Start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, any(o.Start))
	}

	// 4. Initialize result with capacity hint
	n := g.VertexCount()
	w := &dfsWalker[V, E]{
		graph: g,
		opts:  o,
		stack: make([]frame[V, E], 0, 16),
		res: &Result[V]{
			Order:     make([]V, 0, n),
			PostOrder: make([]V, 0, n),
			Depth:     make(map[V]int, n),
			Parent:    make(map[V]V, n),
			Visited:   make(map[V]bool, n),
		},
	}

	// 5. Traverse: single tree or forest
	if o.HasStart {
		return w.res, w.run(o.Start)
	}
	for _, v := range g.Vertices() {
		if w.res.Visited[v] {
			continue
		}
		if err := w.run(v); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// run grows one DFS tree from root until the stack drains.
// The context is checked once per step.
func (w *dfsWalker[V, E]) run(root V) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.res.Roots = append(w.res.Roots, root)
	if err := w.enter(root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.edges) {
			if err := w.leave(); err != nil {
				return err
			}
			continue
		}
		e := top.edges[top.next]
		top.next++
		// top may be invalidated by enter below
		v, depth := top.v, top.depth

		nbr := e.Other(v)
		if nbr == v {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nbr] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nbr] = v
		if err := w.enter(nbr, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// enter marks v discovered at depth, runs the pre-order hook and pushes its frame.
func (w *dfsWalker[V, E]) enter(v V, depth int) error {
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", any(v), err)
		}
	}

	edges, err := w.graph.Incident(v)
	if err != nil {
		return fmt.Errorf("dfs: Incident(%v): %w", any(v), err)
	}
	w.stack = append(w.stack, frame[V, E]{v: v, edges: edges, depth: depth})

	return nil
}

// leave pops the finished top frame, runs the post-order hook and records it.
func (w *dfsWalker[V, E]) leave() error {
	v := w.stack[len(w.stack)-1].v
	w.stack = w.stack[:len(w.stack)-1]

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", any(v), err)
		}
	}
	w.res.PostOrder = append(w.res.PostOrder, v)

	return nil
}
