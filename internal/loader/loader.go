// Package loader reads graph description files written in YAML and builds
// core graphs from them.
//
// A description lists vertices and edges:
//
//	vertices: [A, B, C, D, E]
//	edges:
//	  - {from: A, to: B, weight: 2.5}
//	  - {from: C, to: D, label: road}
//	  - {from: D, to: E, label: ferry, weight: 4}
//
// The label of each edge depends on which keys are present: weight alone gives
// a float64, label alone gives a string, both give a Tagged value, and neither
// gives a nil label. Edge endpoints need not be listed under vertices.
// A later edge on the same pair replaces the label of the earlier one.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labgraph/core"
)

// Sentinel errors for description files.
var (
	// ErrEmptyVertex indicates an empty name in the vertices list.
	ErrEmptyVertex = errors.New("loader: empty vertex name")

	// ErrInvalidEdge indicates an edge entry that is missing an endpoint.
	ErrInvalidEdge = errors.New("loader: edge needs both from and to")
)

// Tagged is the label of an edge that has both a name and a cost.
// It implements core.Weighted.
type Tagged struct {
	Name string
	Cost float64
}

// Weight returns the cost.
func (t Tagged) Weight() float64 { return t.Cost }

// String returns the name.
func (t Tagged) String() string { return t.Name }

// Document is the YAML shape of a description file.
type Document struct {
	Vertices []string   `yaml:"vertices"`
	Edges    []EdgeSpec `yaml:"edges"`
}

// EdgeSpec is one entry of the edges list.
type EdgeSpec struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight,omitempty"`
	Label  *string  `yaml:"label,omitempty"`
}

// label derives the edge label from the keys present in the entry.
func (e EdgeSpec) label() any {
	switch {
	case e.Weight != nil && e.Label != nil:
		return Tagged{Name: *e.Label, Cost: *e.Weight}
	case e.Weight != nil:
		return *e.Weight
	case e.Label != nil:
		return *e.Label
	default:
		return nil
	}
}

// Load reads the description file at path.
func Load(path string) (*core.Graph[string, any], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph file: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Decode parses one YAML description from r. Unknown keys are rejected.
// Empty input yields an empty graph.
func Decode(r io.Reader) (*core.Graph[string, any], error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return Build(&doc)
}

// Build turns a decoded Document into a graph. Vertices are added first,
// then edges in file order, which fixes the incidence order traversals follow.
func Build(doc *Document) (*core.Graph[string, any], error) {
	g := core.NewGraph[string, any]()

	for i, v := range doc.Vertices {
		if v == "" {
			return nil, fmt.Errorf("%w: vertices[%d]", ErrEmptyVertex, i)
		}
		g.AddVertex(v)
	}

	for i, e := range doc.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edges[%d] from=%q to=%q", ErrInvalidEdge, i, e.From, e.To)
		}
		g.PutEdge(e.From, e.To, e.label())
	}

	return g, nil
}
