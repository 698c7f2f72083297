// Package dfs implements cycle detection for undirected core.Graphs.
// FindCycle runs the same whole-graph depth-first walk as DFS, using
// three-color marking, and stops at the first back-edge it meets.
// Like DFS it keeps an explicit frame stack; the frames double as the
// current root-to-vertex path.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (frame stack + state map)
package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/labgraph/core"
)

// cycleFinder carries the state of one FindCycle run.
type cycleFinder[V comparable, E any] struct {
	graph *core.Graph[V, E]
	state map[V]int
	stack []frame[V, E]
}

// FindCycle reports the first cycle met by a whole-graph DFS of g.
//
// The cycle is returned closed, [v0, v1, ..., vk, v0], starting at the vertex
// the back-edge leads to. A self-loop on v yields [v, v]. Because the graph
// holds at most one edge per pair, the edge back to a vertex's DFS parent
// never forms a cycle on its own.
// If g is acyclic, FindCycle returns (nil, false, nil).
func FindCycle[V comparable, E any](g *core.Graph[V, E]) ([]V, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}

	verts := g.Vertices()
	f := &cycleFinder[V, E]{
		graph: g,
		state: make(map[V]int, len(verts)),
	}

	for _, v := range verts {
		if f.state[v] != White {
			continue
		}
		cycle, err := f.search(v)
		if err != nil {
			return nil, false, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		if cycle != nil {
			return cycle, true, nil
		}
	}

	return nil, false, nil
}

// search walks the tree rooted at root and returns the first closed cycle, or nil.
func (f *cycleFinder[V, E]) search(root V) ([]V, error) {
	if err := f.push(root); err != nil {
		return nil, err
	}

	for len(f.stack) > 0 {
		top := &f.stack[len(f.stack)-1]
		if top.next == len(top.edges) {
			f.state[top.v] = Black
			f.stack = f.stack[:len(f.stack)-1]
			continue
		}
		e := top.edges[top.next]
		top.next++
		v := top.v

		nbr := e.Other(v)
		if nbr == v {
			return []V{v, v}, nil
		}
		if len(f.stack) > 1 && nbr == f.stack[len(f.stack)-2].v {
			continue
		}

		switch f.state[nbr] {
		case White:
			if err := f.push(nbr); err != nil {
				return nil, err
			}
		case Gray:
			// back-edge: the path from nbr down to v closes through e
			idx := slices.IndexFunc(f.stack, func(fr frame[V, E]) bool { return fr.v == nbr })
			cycle := make([]V, 0, len(f.stack)-idx+1)
			for _, fr := range f.stack[idx:] {
				cycle = append(cycle, fr.v)
			}

			return append(cycle, nbr), nil
		}
	}

	return nil, nil
}

// push marks v Gray and stacks a frame over its incident edges.
func (f *cycleFinder[V, E]) push(v V) error {
	edges, err := f.graph.Incident(v)
	if err != nil {
		return fmt.Errorf("Incident(%v): %w", any(v), err)
	}
	f.state[v] = Gray
	f.stack = append(f.stack, frame[V, E]{v: v, edges: edges, depth: len(f.stack)})

	return nil
}
