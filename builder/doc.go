// SPDX-License-Identifier: MIT

// Package builder constructs well-known graph topologies (paths, cycles, stars,
// wheels, complete graphs, grids and random sparse graphs) as core graphs with
// string keys and float64 weights.
//
// Every constructor is deterministic: for the same options and seed it adds the
// same vertices and emits the same edges in the same order, so traversal
// results over built graphs are reproducible. Constructors compose:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithSeed(7)},
//		builder.Cycle(4),
//		builder.Path(6), // shares A..D with the cycle, adds E and F
//	)
//
// Options:
//
//	WithIDScheme / WithSymbolIDs / WithSymbNumb  vertex naming
//	WithSeed / WithRand                          random source for RandomSparse and random weights
//	WithWeightFn                                 edge weight policy (default: constant 1)
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
package builder
