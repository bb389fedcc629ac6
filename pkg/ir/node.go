// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"strings"

	"github.com/gomlx/exceptions"
)

// Node is a single operation in a Block.
//
// It references its inputs (values defined earlier in the same block or in an enclosing one), owns its outputs and,
// for compound kinds (KindIf, KindLoop), its child blocks.
type Node struct {
	graph *Graph
	owner *Block
	kind  NodeKind

	// op is the operator name for KindOperator nodes, e.g. "aten::add" or the overload qualified "aten::to.device".
	// For other kinds it may hold an optional attribute (the method name of KindCallMethod, the attribute of
	// KindGetAttr).
	op string

	inputs  []*Value
	outputs []*Value
	blocks  []*Block

	// constant is set for KindConstant nodes only.
	constant *Constant
}

// Kind returns the kind of the node.
func (n *Node) Kind() NodeKind { return n.kind }

// Op returns the operator name of KindOperator nodes, or the optional attribute of other kinds.
func (n *Node) Op() string { return n.op }

// Inputs returns the input values. The returned slice shouldn't be modified.
func (n *Node) Inputs() []*Value { return n.inputs }

// Outputs returns the output values. The returned slice shouldn't be modified.
func (n *Node) Outputs() []*Value { return n.outputs }

// Output returns the i-th output.
func (n *Node) Output(i int) *Value {
	if i < 0 || i >= len(n.outputs) {
		exceptions.Panicf("Node(%s).Output(%d): out-of-range, node has %d outputs", n.Symbol(), i, len(n.outputs))
	}
	return n.outputs[i]
}

// Blocks returns the child blocks of compound nodes. The returned slice shouldn't be modified.
func (n *Node) Blocks() []*Block { return n.blocks }

// Owner returns the block containing the node.
func (n *Node) Owner() *Block { return n.owner }

// Graph returns the graph the node belongs to.
func (n *Node) Graph() *Graph { return n.graph }

// Constant returns the payload of a KindConstant node.
func (n *Node) Constant() (Constant, bool) {
	if n.constant == nil {
		return Constant{}, false
	}
	return *n.constant, true
}

// Symbol returns the qualified name of the node: the operator name for operator nodes, or the kind symbol
// (e.g. "prim::If") for the others.
func (n *Node) Symbol() string {
	if n.kind == KindOperator {
		return n.op
	}
	return n.kind.Symbol()
}

// AddBlock appends a new empty child block. Only compound nodes (KindIf, KindLoop) can have blocks.
func (n *Node) AddBlock() *Block {
	if !n.kind.IsCompound() {
		exceptions.Panicf("Node(%s).AddBlock(): kind %s can't have blocks", n.Symbol(), n.kind)
	}
	b := &Block{graph: n.graph, owner: n}
	n.blocks = append(n.blocks, b)
	return b
}

// MaybeSchema returns the schema of the operator invoked by the node, or nil if the node is not an operator
// invocation or the graph's Registry has no matching schema.
func (n *Node) MaybeSchema() *Schema {
	if n.kind != KindOperator {
		return nil
	}
	schema, _ := n.graph.registry.Lookup(n.op, n.inputs)
	return schema
}

// MaybeOperator returns the operator (schema plus implementation) invoked by the node, or nil if it is not an
// operator invocation, or if the operator is unknown or only declared.
func (n *Node) MaybeOperator() *Operator {
	if n.kind != KindOperator {
		return nil
	}
	_, op := n.graph.registry.Lookup(n.op, n.inputs)
	return op
}

// String implements fmt.Stringer: it returns the node line as in the graph dump, without child blocks.
func (n *Node) String() string {
	var sb strings.Builder
	writeNodeLine(&sb, n)
	return sb.String()
}
