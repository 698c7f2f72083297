// SPDX-License-Identifier: MIT
// Package: labgraph/builder
//
// api.go - public entry-point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options, seed and constructor order ⇒ identical graphs,
//     including the insertion order of every incidence list.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/labgraph/core"
)

// Graph is the graph type every constructor fills: string keys, float64 weights.
type Graph = core.Graph[string, float64]

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates an empty graph, resolves the builder configuration from
// bopts, and applies all constructors in order. Constructors that reuse vertex
// IDs share those vertices, so several topologies can be glued together.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g := core.NewGraph[string, float64]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
