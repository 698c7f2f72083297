// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/labgraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable, E any] struct {
	graph   *core.Graph[V, E]
	opts    Options[V]
	ctx     context.Context
	queue   []queueItem[V]
	visited map[V]bool
	res     *Result[V]
}

// BFS runs breadth-first search on g starting from source,
// applying any number of functional Options.
//
// Neighbors of a vertex are enqueued in the order its incident edges were
// inserted, so the visit order is reproducible. Only the connected component
// of source is visited.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS[V comparable, E any](g *core.Graph[V, E], source V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, any(source))
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker[V, E]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[V], 0, n),
		visited: make(map[V]bool, n),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(source, 0)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks v visited at depth d, calls OnEnqueue, and adds it to the queue.
func (w *walker[V, E]) enqueue(v V, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V, E]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[V, E]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[V, E]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", any(item.v), err)
	}
	return nil
}

// enqueueNeighbors walks the incident edges of item in insertion order,
// applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker[V, E]) enqueueNeighbors(item queueItem[V]) error {
	edges, err := w.graph.Incident(item.v)
	if err != nil {
		return fmt.Errorf("bfs: incident edges of %v: %w", any(item.v), err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		nbr := e.Other(item.v)
		if w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		w.res.Parent[nbr] = item.v
		w.enqueue(nbr, nextDepth)
	}
	return nil
}
