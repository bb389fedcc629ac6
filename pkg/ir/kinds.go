// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

// NodeKind distinguishes control constructs and graph primitives from ordinary operator invocations.
//
// It is a closed enum: code dispatching on it should list the kinds it doesn't handle explicitly,
// so adding a new kind forces a decision everywhere it matters.
type NodeKind int

//go:generate go tool enumer -type=NodeKind -trimprefix=Kind -transform=snake -output=gen_nodekind_enumer.go kinds.go

const (
	KindInvalid NodeKind = iota

	// KindOperator is an invocation of an operator resolved through the graph's Registry, e.g. "aten::add".
	KindOperator

	// KindConstant produces a single Constant value.
	KindConstant

	// KindIf is a conditional: one boolean input and exactly two blocks (true and false branches), whose
	// outputs are merged into the node outputs.
	KindIf

	// KindLoop executes its body block while a condition holds.
	KindLoop

	KindCallMethod
	KindCallFunction
	KindListConstruct
	KindListUnpack
	KindTupleConstruct
	KindTupleUnpack
	KindGetAttr
	KindNumToTensor
	KindUncheckedCast
)

var kindSymbols = map[NodeKind]string{
	KindConstant:       "prim::Constant",
	KindIf:             "prim::If",
	KindLoop:           "prim::Loop",
	KindCallMethod:     "prim::CallMethod",
	KindCallFunction:   "prim::CallFunction",
	KindListConstruct:  "prim::ListConstruct",
	KindListUnpack:     "prim::ListUnpack",
	KindTupleConstruct: "prim::TupleConstruct",
	KindTupleUnpack:    "prim::TupleUnpack",
	KindGetAttr:        "prim::GetAttr",
	KindNumToTensor:    "prim::NumToTensor",
	KindUncheckedCast:  "prim::unchecked_cast",
}

// Symbol returns the qualified name used in graph dumps, e.g. "prim::If".
// Operator nodes are printed with their operator name instead, and KindOperator returns "".
func (k NodeKind) Symbol() string {
	if k == KindOperator {
		return ""
	}
	if s, found := kindSymbols[k]; found {
		return s
	}
	return "prim::" + k.String()
}

// IsCompound returns whether nodes of this kind may own blocks.
func (k NodeKind) IsCompound() bool {
	return k == KindIf || k == KindLoop
}
