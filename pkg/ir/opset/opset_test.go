// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package opset

import (
	"testing"

	"github.com/gomlx/deviceprop/pkg/core/devices"
	"github.com/gomlx/deviceprop/pkg/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	r := Default()
	total := 0
	for _, group := range [][]string{ElementWise, Reductions, LinearAlgebra, Factories, Conversions, Declared} {
		total += len(group)
	}
	assert.Equal(t, total, r.Len())
	assert.NotSame(t, r, Default(), "each call must return a new registry")

	// Schemas print back in the format they were written, except for alias annotations.
	for _, text := range ElementWise {
		assert.Equal(t, text, ir.MustParseSchema(text).String())
	}

	for _, name := range []string{"aten::zeros", "aten::ones", "aten::empty.memory_format", "aten::randn", "aten::full"} {
		s := r.Schema(name)
		require.NotNil(t, s, "schema %q", name)
		var deviceArgs int
		for _, arg := range s.Arguments {
			if ir.IsSubtypeOf(ir.DeviceObjType, arg.Type) {
				deviceArgs++
				assert.True(t, arg.KwargOnly)
				require.NotNil(t, arg.Default)
				assert.True(t, arg.Default.IsNone())
			}
		}
		assert.Equal(t, 1, deviceArgs, "%s should have one device argument", name)
	}
}

func TestOverloads(t *testing.T) {
	r := Default()
	g := ir.NewGraph(r)
	x := g.AddInput("x", ir.MustParseType("Float32(2)@cuda:0"))
	xs := g.AddInput("xs", ir.List(ir.AnyTensor()))
	b := g.Block()
	device := b.AppendConstant(ir.DeviceConstant(devices.CPU()))
	dtype := b.AppendConstant(ir.IntConstant(6))
	f := b.AppendConstant(ir.BoolConstant(false))
	none := b.AppendConstant(ir.NoneConstant())
	zero := b.AppendConstant(ir.IntConstant(0))

	for _, tc := range []struct {
		op     string
		inputs []*ir.Value
		want   string
	}{
		{"aten::to", []*ir.Value{x, device, dtype, f, f, none}, "aten::to.device"},
		{"aten::to", []*ir.Value{x, dtype, f, f, none}, "aten::to.dtype"},
		{"aten::to", []*ir.Value{x, none, none, f, f}, "aten::to.prim_Device"},
		{"aten::to", []*ir.Value{x, device, none, f, f}, "aten::to.prim_Device"},
		{"aten::add", []*ir.Value{x, x, zero}, "aten::add.Tensor"},
		{"aten::add", []*ir.Value{x, zero, zero}, "aten::add.Scalar"},
		{"aten::cat", []*ir.Value{xs, zero}, "aten::cat"},
		{"aten::max", []*ir.Value{x, zero, f}, "aten::max.dim"},
	} {
		n := b.AppendOp(tc.op, tc.inputs, ir.AnyTensor())
		op := n.MaybeOperator()
		require.NotNil(t, op, "%s", n)
		assert.Equal(t, tc.want, op.Schema().QualifiedName(), "%s", n)
	}

	n := b.AppendOp("aten::_custom_device_op", []*ir.Value{x, device}, ir.AnyTensor())
	assert.NotNil(t, n.MaybeSchema())
	assert.Nil(t, n.MaybeOperator())
}
