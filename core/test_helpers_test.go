// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"github.com/katalvlaran/labgraph/core"
)

// Common vertex keys used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1   = 1.0
	Weight1_5 = 1.5
	Weight2_5 = 2.5
	Weight4_5 = 4.5
)

// friendship is a non-numeric label that exposes a weight.
type friendship struct {
	strength float64
}

func (f friendship) Weight() float64 { return f.strength }

// toll is a Weighted label usually handled through a pointer; a nil *toll
// is a valid label that carries no weight.
type toll struct {
	fee float64
}

func (t toll) Weight() float64 { return t.fee }

// cost is a named numeric label type.
type cost int

// newLabGraph builds the nine-vertex lab graph used by the traversal scenarios:
// edges A-B, A-C, A-I, B-C, B-D(1.5), B-G, C-D, C-H, C-I, E-F, G-H, H-I.
func newLabGraph() *core.Graph[string, float64] {
	g := core.NewGraph[string, float64]()
	for _, v := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"} {
		g.AddVertex(v)
	}
	g.PutEdge("A", "B", 1.0)
	g.PutEdge("A", "C", 1.0)
	g.PutEdge("A", "I", 1.0)
	g.PutEdge("B", "C", 1.0)
	g.PutEdge("B", "D", 1.5)
	g.PutEdge("B", "G", 1.0)
	g.PutEdge("C", "D", 1.0)
	g.PutEdge("C", "H", 1.0)
	g.PutEdge("C", "I", 1.0)
	g.PutEdge("E", "F", 1.0)
	g.PutEdge("G", "H", 1.0)
	g.PutEdge("H", "I", 1.0)

	return g
}
