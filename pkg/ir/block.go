// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"github.com/gomlx/exceptions"
)

// Block is an ordered sequence of nodes, with inputs (parameters) and outputs (returned values).
//
// The top-level block is owned by the Graph, the others by the compound Node that contains them.
// Nodes are appended in order and can only use values already defined, so the order of Nodes is a topological
// order of the block.
type Block struct {
	graph   *Graph
	owner   *Node
	nodes   []*Node
	inputs  []*Value
	outputs []*Value
}

// Nodes returns the nodes of the block in declaration order. The returned slice shouldn't be modified.
func (b *Block) Nodes() []*Node { return b.nodes }

// Inputs returns the block parameters. The returned slice shouldn't be modified.
func (b *Block) Inputs() []*Value { return b.inputs }

// Outputs returns the values returned by the block. The returned slice shouldn't be modified.
func (b *Block) Outputs() []*Value { return b.outputs }

// Owner returns the node that owns the block, or nil for the top-level block of the graph.
func (b *Block) Owner() *Node { return b.owner }

// Graph returns the graph the block belongs to.
func (b *Block) Graph() *Graph { return b.graph }

// AddInput appends a new parameter to the block.
func (b *Block) AddInput(name string, t Type) *Value {
	if t == nil {
		exceptions.Panicf("Block.AddInput(%q): type cannot be nil", name)
	}
	v := b.graph.newValue(name, t)
	v.block = b
	b.inputs = append(b.inputs, v)
	return v
}

// RegisterOutput appends v to the values returned by the block.
func (b *Block) RegisterOutput(v *Value) {
	b.checkValues("RegisterOutput", v)
	b.outputs = append(b.outputs, v)
}

// AppendNode creates a node of the given kind at the end of the block, with one output per given type.
// op is the operator name for KindOperator nodes, and an optional attribute for the others.
//
// Use AppendConstant for constants.
func (b *Block) AppendNode(kind NodeKind, op string, inputs []*Value, outputTypes ...Type) *Node {
	if kind == KindInvalid || !kind.IsANodeKind() {
		exceptions.Panicf("Block.AppendNode(%s): invalid node kind", kind)
	}
	if kind == KindConstant {
		exceptions.Panicf("Block.AppendNode(%s): use AppendConstant instead", kind)
	}
	if kind == KindOperator && op == "" {
		exceptions.Panicf("Block.AppendNode(%s): operator name is required", kind)
	}
	b.checkValues(kind.String(), inputs...)
	n := &Node{
		graph:  b.graph,
		owner:  b,
		kind:   kind,
		op:     op,
		inputs: append([]*Value(nil), inputs...),
	}
	for _, t := range outputTypes {
		if t == nil {
			exceptions.Panicf("Block.AppendNode(%s): output type cannot be nil", kind)
		}
		v := b.graph.newValue("", t)
		v.node = n
		n.outputs = append(n.outputs, v)
	}
	b.nodes = append(b.nodes, n)
	return n
}

// AppendOp is a shortcut to AppendNode(KindOperator, op, inputs, outputTypes...).
func (b *Block) AppendOp(op string, inputs []*Value, outputTypes ...Type) *Node {
	return b.AppendNode(KindOperator, op, inputs, outputTypes...)
}

// AppendConstant creates a KindConstant node holding c and returns its only output.
func (b *Block) AppendConstant(c Constant) *Value {
	if c.kind == ConstantInvalid {
		exceptions.Panicf("Block.AppendConstant(): invalid constant")
	}
	n := &Node{
		graph:    b.graph,
		owner:    b,
		kind:     KindConstant,
		constant: &c,
	}
	v := b.graph.newValue("", c.Type())
	v.node = n
	n.outputs = []*Value{v}
	b.nodes = append(b.nodes, n)
	return v
}

func (b *Block) checkValues(context string, values ...*Value) {
	for ii, v := range values {
		if v == nil {
			exceptions.Panicf("%s: value #%d is nil", context, ii)
		}
		if v.graph != b.graph {
			exceptions.Panicf("%s: value %s belongs to a different graph", context, v.DebugName())
		}
	}
}
