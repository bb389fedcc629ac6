// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"testing"

	"github.com/gomlx/deviceprop/pkg/core/devices"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Aliases
var (
	F32 = dtypes.Float32
	I64 = dtypes.Int64
	MT  = MustParseType
)

func TestParseType(t *testing.T) {
	// Canonical forms print back the same.
	for _, text := range []string{
		"Tensor", "Float32", "Float32(2, 3)", "Float32(2, ?)@cuda:0", "Tensor()@cpu", "Int64()", "Bool(1)",
		"Tensor@mps", "int", "float", "bool", "str", "None", "Device", "ScalarType", "Scalar", "Any",
		"Device?", "int[]", "Tensor[]", "Tensor?", "Float32(4)@cuda:1[]", "Union(str, Device)", "Union(str, Device)?",
	} {
		typ, err := ParseType(text)
		require.NoError(t, err, "parsing %q", text)
		assert.Equal(t, text, typ.String(), "round trip of %q", text)
	}

	// Non-canonical forms.
	for text, want := range map[string]string{
		"F32(2,3)":          "Float32(2, 3)",
		"  Tensor":          "Tensor",
		"Tensor(a!)":        "Tensor",
		"int[2]":            "int[]",
		"Device ?":          "Device?",
		"Float32(?)@CUDA:0": "Float32(?)@cuda:0",
	} {
		typ, err := ParseType(text)
		require.NoError(t, err, "parsing %q", text)
		assert.Equal(t, want, typ.String(), "parsing %q", text)
	}

	// Dimensions and devices must follow the type name immediately.
	for _, text := range []string{"Tensor (2)", "Tensor() @cpu", "Tensor()@ cpu"} {
		_, err := ParseType(text)
		require.Error(t, err, "parsing %q should fail", text)
	}

	for _, text := range []string{
		"", "Foo", "Float32(2", "Float32(2, x)", "Float32(-2)", "Tensor@gpu", "int extra", "Union(int)", "Union(int, )",
		"int[", "Tensor(a", "?",
	} {
		_, err := ParseType(text)
		require.Error(t, err, "parsing %q should fail", text)
	}
}

func TestTensorType(t *testing.T) {
	tt := NewTensorType(F32, 2, UnknownDim)
	rank, known := tt.Rank()
	require.True(t, known)
	assert.Equal(t, 2, rank)
	assert.Equal(t, []int{2, -1}, tt.Dimensions())
	assert.False(t, tt.IsZeroDim())
	assert.Equal(t, devices.Unknown, tt.Device())

	onDevice := tt.WithDevice(devices.CUDA(0))
	assert.Equal(t, devices.CUDA(0), onDevice.Device())
	assert.Equal(t, devices.Unknown, tt.Device(), "WithDevice must not modify the original")
	assert.Equal(t, "Float32(2, ?)@cuda:0", onDevice.String())
	assert.False(t, tt.Equal(onDevice))
	assert.True(t, onDevice.Equal(MT("Float32(2, ?)@cuda:0")))

	_, known = UnrankedTensorType(I64).Rank()
	assert.False(t, known)
	assert.Nil(t, AnyTensor().Dimensions())
	assert.False(t, AnyTensor().IsZeroDim(), "unknown rank is never zero-dim")
	assert.True(t, NewTensorType(I64).IsZeroDim())
	assert.Equal(t, "Int64()", NewTensorType(I64).String())
	assert.Equal(t, "Tensor", AnyTensor().String())

	_, ok := AsTensor(IntType)
	assert.False(t, ok)
	_, ok = AsTensor((*TensorType)(nil))
	assert.False(t, ok)
	require.Panics(t, func() { NewTensorType(F32, -2) })
}

func TestIsSubtypeOf(t *testing.T) {
	for _, tc := range []struct {
		sub, super string
		want       bool
	}{
		{"Device", "Device", true},
		{"Device", "Device?", true},
		{"None", "Device?", true},
		{"Device?", "Device?", true},
		{"Device", "Union(str, Device)", true},
		{"Device", "str", false},
		{"str", "Device?", false},
		{"int", "Device?", false},
		{"Float32(2, 3)@cuda:0", "Tensor", true},
		{"Float32(2, 3)", "Float32(?, 3)", true},
		{"Float32(2, 3)", "Float32(?)", false},
		{"Float32(2, 3)", "Int32", false},
		{"Tensor", "Float32", false},
		{"Tensor()@cpu", "Tensor@cuda:0", false},
		{"Tensor()@cpu", "Tensor@cpu", true},
		{"Tensor", "Tensor?", true},
		{"int", "Scalar", true},
		{"float", "Scalar", true},
		{"str", "Scalar", false},
		{"int", "ScalarType", true},
		{"int", "ScalarType?", true},
		{"float", "ScalarType", false},
		{"Float32(2)[]", "Tensor[]", true},
		{"Tensor[]", "Tensor", false},
		{"int[]", "int[]", true},
		{"Tensor", "Any", true},
		{"Tensor", "int", false},
		{"Union(str, Device)", "Union(Device, str, int)", true},
		{"Union(str, Device)", "Device?", false},
	} {
		got := IsSubtypeOf(MT(tc.sub), MT(tc.super))
		assert.Equal(t, tc.want, got, "IsSubtypeOf(%s, %s)", tc.sub, tc.super)
	}
	assert.False(t, IsSubtypeOf(nil, AnyType))
}
