// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"strconv"

	"github.com/gomlx/exceptions"
)

// Value is a single typed result of a Node, or an input of a Block (including the graph inputs).
//
// The type is the only mutable part of a Value once the graph is built: analyses refine it with SetType.
type Value struct {
	graph *Graph
	id    int
	name  string
	typ   Type

	// node that produces this value, nil for block inputs.
	node *Node

	// block for block inputs, nil for node outputs.
	block *Block
}

// ID is a unique number of the value within its graph, assigned in creation order.
func (v *Value) ID() int { return v.id }

// Name is the optional debug name of the value. It may be empty, and it's not required to be unique.
func (v *Value) Name() string { return v.name }

// SetName sets the debug name of the value.
func (v *Value) SetName(name string) { v.name = name }

// DebugName returns "%name" or, if the value has no name, "%<id>".
func (v *Value) DebugName() string {
	if v.name != "" {
		return "%" + v.name
	}
	return "%" + strconv.Itoa(v.id)
}

// Type returns the current type of the value.
func (v *Value) Type() Type { return v.typ }

// SetType replaces the type of the value.
func (v *Value) SetType(t Type) {
	if t == nil {
		exceptions.Panicf("Value(%s).SetType(nil) not allowed", v.DebugName())
	}
	v.typ = t
}

// Node returns the node that produces this value, or nil if the value is a block input.
func (v *Value) Node() *Node { return v.node }

// Graph returns the graph the value belongs to.
func (v *Value) Graph() *Graph { return v.graph }

// String implements fmt.Stringer.
func (v *Value) String() string {
	return v.DebugName() + " : " + v.typ.String()
}
