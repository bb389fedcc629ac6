// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ir defines a block-structured intermediate representation of tensor programs, for static analyses.
//
// A Graph owns a top-level Block; a Block is an ordered list of Node; a Node has a NodeKind, input and output
// Value, and compound nodes (conditionals and loops) own child blocks. Each Value has a Type, and TensorType
// carries the tensor refinements (dtype, symbolic shape and device) that analyses infer.
//
// Operator nodes resolve their Schema through the graph's Registry, and constant nodes carry a Constant, which
// analyses read with ToConstant.
//
// Graph.String dumps the graph in a textual format, used for logging and tests:
//
//	graph(%x : Float32(2, 3)@cuda:0, %c : bool):
//	  %d : Device = prim::Constant[value=cuda:1]()
//	  %y : Tensor = aten::relu(%x)
//	  %r : Tensor = prim::If(%c)
//	    block0():
//	      -> (%x)
//	    block1():
//	      -> (%y)
//	  return (%r)
//
// Types are printed in the format accepted by ParseType, and schemas in the format accepted by ParseSchema.
//
// Errors building a graph (nil values, values of another graph, blocks on non-compound nodes) are programming
// errors and panic with github.com/gomlx/exceptions. Parsing functions return errors.
package ir
