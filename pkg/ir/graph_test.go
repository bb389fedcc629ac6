// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"slices"
	"testing"

	"github.com/gomlx/deviceprop/pkg/core/devices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	g := NewGraph(nil)
	x := g.AddInput("x", MT("Float32(2, 3)@cuda:0"))
	c := g.AddInput("c", BoolType)
	b := g.Block()
	d := b.AppendConstant(DeviceConstant(devices.CUDA(1)))
	d.SetName("d")
	y := b.AppendOp("aten::relu", []*Value{x}, AnyTensor()).Output(0)
	y.SetName("y")
	b.AppendNode(KindCallMethod, "forward", []*Value{x, d})
	ifNode := b.AppendNode(KindIf, "", []*Value{c}, AnyTensor())
	r := ifNode.Output(0)
	r.SetName("r")
	b0 := ifNode.AddBlock()
	b0.RegisterOutput(x)
	b1 := ifNode.AddBlock()
	z := b1.AppendOp("aten::neg", []*Value{y}, AnyTensor()).Output(0)
	b1.RegisterOutput(z)
	g.RegisterOutput(r)

	want := `graph(%x : Float32(2, 3)@cuda:0, %c : bool):
  %d : Device = prim::Constant[value=cuda:1]()
  %y : Tensor = aten::relu(%x)
  prim::CallMethod[name="forward"](%x, %d)
  %r : Tensor = prim::If(%c)
    block0():
      -> (%x)
    block1():
      %5 : Tensor = aten::neg(%y)
      -> (%5)
  return (%r)
`
	assert.Equal(t, want, g.String())
	assert.Equal(t, `%y : Tensor = aten::relu(%x)`, y.Node().String())
	assert.Equal(t, 6, g.NumValues())
	assert.NotEqual(t, g.ID(), NewGraph(nil).ID())

	// Iteration order.
	var symbols []string
	for n := range g.Nodes() {
		symbols = append(symbols, n.Symbol())
	}
	assert.Equal(t, []string{"prim::Constant", "aten::relu", "prim::CallMethod", "prim::If", "aten::neg"}, symbols)
	var ids []int
	for v := range g.Values() {
		ids = append(ids, v.ID())
	}
	assert.Equal(t, []int{0, 1, 2, 3, 5, 4}, ids)

	// Early termination of the iterators.
	count := 0
	for range g.Nodes() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)

	// Ownership.
	assert.Nil(t, b.Owner())
	assert.Same(t, ifNode, b1.Owner())
	assert.Same(t, b1, z.Node().Owner())
	assert.Same(t, g, z.Graph())
	assert.Nil(t, x.Node())
	assert.True(t, slices.Equal([]*Value{r}, g.Outputs()))
	assert.Equal(t, "", KindOperator.Symbol())
	assert.Equal(t, "call_method", KindCallMethod.String())

	// Errors building the graph.
	other := NewGraph(nil)
	require.Panics(t, func() { b.AppendOp("aten::relu", []*Value{other.AddInput("o", AnyTensor())}, AnyTensor()) })
	require.Panics(t, func() { b.AppendOp("aten::relu", []*Value{nil}, AnyTensor()) })
	require.Panics(t, func() { b.AppendOp("", []*Value{x}, AnyTensor()) })
	require.Panics(t, func() { b.AppendNode(KindConstant, "", nil, IntType) })
	require.Panics(t, func() { b.AppendNode(KindInvalid, "", nil) })
	require.Panics(t, func() { y.Node().AddBlock() })
	require.Panics(t, func() { y.Node().Output(1) })
	require.Panics(t, func() { y.SetType(nil) })
	require.Panics(t, func() { b.AppendConstant(Constant{}) })
	require.Panics(t, func() { g.AddInput("bad", nil) })
}

func TestConstant(t *testing.T) {
	for _, tc := range []struct {
		c    Constant
		str  string
		kind ConstantKind
		typ  Type
	}{
		{NoneConstant(), "None", ConstantNone, NoneType},
		{BoolConstant(true), "True", ConstantBool, BoolType},
		{IntConstant(-7), "-7", ConstantInt, IntType},
		{FloatConstant(2), "2.0", ConstantFloat, FloatType},
		{FloatConstant(1e-9), "1e-09", ConstantFloat, FloatType},
		{StringConstant("a b"), `"a b"`, ConstantString, StrType},
		{DeviceConstant(devices.CUDA(1)), "cuda:1", ConstantDevice, DeviceObjType},
		{DeviceUnionConstant(devices.CPU(), devices.CUDA(0)), "{cpu|cuda:0}", ConstantDeviceUnion, DeviceObjType},
	} {
		assert.Equal(t, tc.str, tc.c.String())
		assert.Equal(t, tc.kind, tc.c.Kind(), "kind of %s", tc.c)
		assert.True(t, tc.typ.Equal(tc.c.Type()), "type of %s", tc.c)
	}

	assert.True(t, NoneConstant().IsNone())
	assert.True(t, DeviceConstant(devices.CPU()).IsDevice())
	assert.False(t, DeviceUnionConstant(devices.CPU(), devices.CUDA(0)).IsDevice())
	assert.Equal(t, devices.CUDA(1), DeviceConstant(devices.CUDA(1)).Device())
	assert.Len(t, DeviceUnionConstant(devices.CPU(), devices.CUDA(0)).Devices(), 2)
	assert.True(t, IntConstant(3).Equal(IntConstant(3)))
	assert.False(t, IntConstant(3).Equal(FloatConstant(3)))
	assert.False(t, DeviceConstant(devices.CPU()).Equal(DeviceConstant(devices.CUDA(0))))
	assert.Equal(t, "bool", ConstantBool.String())
	assert.Equal(t, "device_union", ConstantDeviceUnion.String())

	require.Panics(t, func() { DeviceConstant(devices.Unknown) })
	require.Panics(t, func() { DeviceUnionConstant(devices.CPU()) })
	require.Panics(t, func() { DeviceUnionConstant(devices.CPU(), devices.Unknown) })
	require.Panics(t, func() { IntConstant(1).Device() })

	// ToConstant only knows values produced by constant nodes.
	g := NewGraph(nil)
	x := g.AddInput("x", DeviceObjType)
	d := g.Block().AppendConstant(DeviceConstant(devices.CUDA(0)))
	got, ok := ToConstant(d)
	require.True(t, ok)
	assert.Equal(t, devices.CUDA(0), got.Device())
	payload, ok := d.Node().Constant()
	require.True(t, ok)
	assert.True(t, payload.Equal(got))
	_, ok = ToConstant(x)
	assert.False(t, ok)
	_, ok = ToConstant(nil)
	assert.False(t, ok)
	y := g.Block().AppendNode(KindGetAttr, "device", []*Value{x}, DeviceObjType).Output(0)
	_, ok = ToConstant(y)
	assert.False(t, ok)
}
