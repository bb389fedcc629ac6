// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"iter"
	"strings"

	"github.com/google/uuid"
)

// Graph owns the top-level Block of a program, and the Registry used to resolve operator schemas.
//
// A Graph is not safe for concurrent use: analyses that mutate value types assume exclusive ownership for the
// duration of their run.
type Graph struct {
	id       uuid.UUID
	registry *Registry
	block    *Block

	numValues int
}

// NewGraph creates an empty graph. If registry is nil, an empty Registry is used, and no operator will resolve.
func NewGraph(registry *Registry) *Graph {
	if registry == nil {
		registry = NewRegistry()
	}
	g := &Graph{
		id:       uuid.New(),
		registry: registry,
	}
	g.block = &Block{graph: g}
	return g
}

// ID is a random identifier of the graph, used to tell graphs apart in logs.
func (g *Graph) ID() uuid.UUID { return g.id }

// Registry used to resolve the operators of the graph.
func (g *Graph) Registry() *Registry { return g.registry }

// Block returns the top-level block.
func (g *Graph) Block() *Block { return g.block }

// Inputs returns the graph inputs, the parameters of the top-level block.
func (g *Graph) Inputs() []*Value { return g.block.inputs }

// Outputs returns the graph outputs, the values returned by the top-level block.
func (g *Graph) Outputs() []*Value { return g.block.outputs }

// AddInput is a shortcut to Block().AddInput.
func (g *Graph) AddInput(name string, t Type) *Value { return g.block.AddInput(name, t) }

// RegisterOutput is a shortcut to Block().RegisterOutput.
func (g *Graph) RegisterOutput(v *Value) { g.block.RegisterOutput(v) }

func (g *Graph) newValue(name string, t Type) *Value {
	v := &Value{graph: g, id: g.numValues, name: name, typ: t}
	g.numValues++
	return v
}

// NumValues returns the number of values created in the graph.
func (g *Graph) NumValues() int { return g.numValues }

// Nodes iterates over all nodes of the graph, depth-first: each node is yielded before the nodes of its blocks.
func (g *Graph) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walkNodes(g.block, yield)
	}
}

func walkNodes(b *Block, yield func(*Node) bool) bool {
	for _, n := range b.nodes {
		if !yield(n) {
			return false
		}
		for _, child := range n.blocks {
			if !walkNodes(child, yield) {
				return false
			}
		}
	}
	return true
}

// Values iterates over all values of the graph in definition order: the inputs of each block come before its
// nodes, and the outputs of a compound node come after the values defined in its blocks.
func (g *Graph) Values() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		walkValues(g.block, yield)
	}
}

func walkValues(b *Block, yield func(*Value) bool) bool {
	for _, v := range b.inputs {
		if !yield(v) {
			return false
		}
	}
	for _, n := range b.nodes {
		for _, child := range n.blocks {
			if !walkValues(child, yield) {
				return false
			}
		}
		for _, v := range n.outputs {
			if !yield(v) {
				return false
			}
		}
	}
	return true
}

// String returns the textual dump of the graph. See package documentation for the format.
func (g *Graph) String() string {
	var sb strings.Builder
	writeGraph(&sb, g)
	return sb.String()
}
