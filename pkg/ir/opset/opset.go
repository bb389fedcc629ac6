// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package opset provides the default set of operator schemas used to build and analyse graphs.
//
// Default returns a new Registry with all the schemas; tests and tools that need a smaller or different set of
// operators can build their own ir.Registry.
package opset

import (
	"github.com/gomlx/deviceprop/pkg/ir"
	"github.com/gomlx/exceptions"
)

// ElementWise binary and unary operators.
var ElementWise = []string{
	"aten::add.Tensor(Tensor self, Tensor other, *, Scalar alpha=1) -> Tensor",
	"aten::add.Scalar(Tensor self, Scalar other, Scalar alpha=1) -> Tensor",
	"aten::sub.Tensor(Tensor self, Tensor other, *, Scalar alpha=1) -> Tensor",
	"aten::mul.Tensor(Tensor self, Tensor other) -> Tensor",
	"aten::mul.Scalar(Tensor self, Scalar other) -> Tensor",
	"aten::div.Tensor(Tensor self, Tensor other) -> Tensor",
	"aten::where.self(Tensor condition, Tensor self, Tensor other) -> Tensor",
	"aten::relu(Tensor self) -> Tensor",
	"aten::tanh(Tensor self) -> Tensor",
	"aten::sigmoid(Tensor self) -> Tensor",
	"aten::neg(Tensor self) -> Tensor",
}

// Reductions and shape queries.
var Reductions = []string{
	"aten::sum(Tensor self, *, ScalarType? dtype=None) -> Tensor",
	"aten::max.dim(Tensor self, int dim, bool keepdim=False) -> (Tensor values, Tensor indices)",
	"aten::size.int(Tensor self, int dim) -> int",
	"aten::dim(Tensor self) -> int",
}

// LinearAlgebra operators.
var LinearAlgebra = []string{
	"aten::matmul(Tensor self, Tensor other) -> Tensor",
	"aten::mm(Tensor self, Tensor mat2) -> Tensor",
}

// Factories create new tensors, optionally on an explicitly given device.
var Factories = []string{
	"aten::zeros(int[] size, *, ScalarType? dtype=None, Layout? layout=None, Device? device=None, bool? pin_memory=None) -> Tensor",
	"aten::ones(int[] size, *, ScalarType? dtype=None, Layout? layout=None, Device? device=None, bool? pin_memory=None) -> Tensor",
	"aten::empty.memory_format(int[] size, *, ScalarType? dtype=None, Layout? layout=None, Device? device=None, " +
		"bool? pin_memory=None, MemoryFormat? memory_format=None) -> Tensor",
	"aten::randn(int[] size, *, ScalarType? dtype=None, Layout? layout=None, Device? device=None, bool? pin_memory=None) -> Tensor",
	"aten::full(int[] size, Scalar fill_value, *, ScalarType? dtype=None, Layout? layout=None, Device? device=None, " +
		"bool? pin_memory=None) -> Tensor",
	"aten::tensor.int(int t, *, ScalarType? dtype=None, Device? device=None, bool requires_grad=False) -> Tensor",
}

// Conversions between devices and dtypes, and concatenation.
var Conversions = []string{
	"aten::to.device(Tensor(a) self, Device device, ScalarType dtype, bool non_blocking=False, bool copy=False, " +
		"MemoryFormat? memory_format=None) -> Tensor(a)",
	"aten::to.dtype(Tensor(a) self, ScalarType dtype, bool non_blocking=False, bool copy=False, " +
		"MemoryFormat? memory_format=None) -> Tensor(a)",
	"aten::to.prim_Device(Tensor(a) self, Device? device, int? dtype=None, bool non_blocking=False, " +
		"bool copy=False) -> Tensor(a)",
	"aten::cat(Tensor[] tensors, int dim=0) -> Tensor",
}

// Declared operators have a schema, but no implementation: analyses can't rely on their semantics.
var Declared = []string{
	"aten::_custom_device_op(Tensor self, Device device) -> Tensor",
	"aten::_fused_kernel(Tensor[] inputs) -> Tensor",
}

// Default returns a new registry with all operators of the package registered, and the Declared ones declared.
//
// A new registry is created at each call, so callers may add their own operators to it.
func Default() *ir.Registry {
	r := ir.NewRegistry()
	for _, group := range [][]string{ElementWise, Reductions, LinearAlgebra, Factories, Conversions} {
		if err := r.RegisterText(group...); err != nil {
			exceptions.Panicf("opset.Default(): %+v", err)
		}
	}
	if err := r.DeclareText(Declared...); err != nil {
		exceptions.Panicf("opset.Default(): %+v", err)
	}
	return r
}
