// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gomlx/deviceprop/pkg/core/devices"
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
)

// Type of a Value. Types are immutable: to change the type of Value, a new Type is set with Value.SetType.
//
// Implementations: PrimitiveType, *TensorType, *OptionalType, *ListType and *UnionType.
type Type interface {
	fmt.Stringer

	// Equal returns whether both types are the same.
	Equal(other Type) bool
}

// PrimitiveType enumerates the non-parametric types.
type PrimitiveType int

const (
	InvalidType PrimitiveType = iota
	IntType
	FloatType
	BoolType
	StrType
	NoneType

	// DeviceObjType is the type of a device object (as opposed to the device of a tensor).
	DeviceObjType

	// DTypeObjType is the type of a tensor element type argument. Printed as "ScalarType".
	DTypeObjType

	LayoutType
	MemoryFormatType

	// NumberType is any of IntType, FloatType or BoolType. Printed as "Scalar".
	NumberType

	// AnyType is a super-type of every type.
	AnyType
)

var primitiveNames = []string{
	InvalidType:      "Invalid",
	IntType:          "int",
	FloatType:        "float",
	BoolType:         "bool",
	StrType:          "str",
	NoneType:         "None",
	DeviceObjType:    "Device",
	DTypeObjType:     "ScalarType",
	LayoutType:       "Layout",
	MemoryFormatType: "MemoryFormat",
	NumberType:       "Scalar",
	AnyType:          "Any",
}

// String implements fmt.Stringer and Type.
func (t PrimitiveType) String() string {
	if t < 0 || int(t) >= len(primitiveNames) {
		return fmt.Sprintf("PrimitiveType(%d)", int(t))
	}
	return primitiveNames[t]
}

// Equal implements Type.
func (t PrimitiveType) Equal(other Type) bool {
	o, ok := other.(PrimitiveType)
	return ok && o == t
}

// TensorType is the refinement type of a tensor value: element type, (symbolic) shape and device.
// Any of the properties may be unknown.
//
// It is immutable: use WithDevice to create a variant with a different device.
type TensorType struct {
	dtype dtypes.DType

	// dimensions are only meaningful if rankKnown. A dimension of -1 is unknown.
	dimensions []int
	rankKnown  bool

	device devices.Device
}

// UnknownDim is the value of a dimension not statically known.
const UnknownDim = -1

// NewTensorType returns a tensor type with known rank. Use UnknownDim for unknown dimensions, and
// dtypes.InvalidDType if the dtype is not known. The device is unknown.
func NewTensorType(dtype dtypes.DType, dimensions ...int) *TensorType {
	for _, dim := range dimensions {
		if dim < UnknownDim {
			exceptions.Panicf("ir.NewTensorType(%s, %v): invalid dimension %d", dtype, dimensions, dim)
		}
	}
	return &TensorType{dtype: dtype, dimensions: slices.Clone(dimensions), rankKnown: true}
}

// UnrankedTensorType returns a tensor type with unknown rank and unknown device.
// Use dtypes.InvalidDType if the dtype is not known either.
func UnrankedTensorType(dtype dtypes.DType) *TensorType {
	return &TensorType{dtype: dtype}
}

// AnyTensor returns the tensor type without any refinement: "Tensor".
func AnyTensor() *TensorType {
	return &TensorType{dtype: dtypes.InvalidDType}
}

// AsTensor returns t as a *TensorType, if it is one.
func AsTensor(t Type) (*TensorType, bool) {
	tt, ok := t.(*TensorType)
	return tt, ok && tt != nil
}

// DType returns the element type, or dtypes.InvalidDType if unknown.
func (t *TensorType) DType() dtypes.DType { return t.dtype }

// Rank returns the rank and whether it is known.
func (t *TensorType) Rank() (rank int, known bool) {
	if !t.rankKnown {
		return 0, false
	}
	return len(t.dimensions), true
}

// Dimensions returns a copy of the dimensions, or nil if the rank is not known.
func (t *TensorType) Dimensions() []int {
	if !t.rankKnown {
		return nil
	}
	return slices.Clone(t.dimensions)
}

// IsZeroDim returns whether the rank is statically known to be 0.
func (t *TensorType) IsZeroDim() bool {
	rank, known := t.Rank()
	return known && rank == 0
}

// Device returns the device of the tensor, or devices.Unknown.
func (t *TensorType) Device() devices.Device { return t.device }

// WithDevice returns a copy of t that differs only in the device.
func (t *TensorType) WithDevice(device devices.Device) *TensorType {
	t2 := *t
	t2.dimensions = slices.Clone(t.dimensions)
	t2.device = device
	return &t2
}

// String implements fmt.Stringer and Type. It uses the format accepted by ParseType, e.g.: "Float32(2, ?)@cuda:0".
func (t *TensorType) String() string {
	var sb strings.Builder
	if t.dtype == dtypes.InvalidDType {
		sb.WriteString("Tensor")
	} else {
		sb.WriteString(t.dtype.String())
	}
	if t.rankKnown {
		sb.WriteByte('(')
		for ii, dim := range t.dimensions {
			if ii > 0 {
				sb.WriteString(", ")
			}
			if dim == UnknownDim {
				sb.WriteByte('?')
			} else {
				sb.WriteString(strconv.Itoa(dim))
			}
		}
		sb.WriteByte(')')
	}
	if t.device.IsKnown() {
		sb.WriteByte('@')
		sb.WriteString(t.device.String())
	}
	return sb.String()
}

// Equal implements Type.
func (t *TensorType) Equal(other Type) bool {
	o, ok := AsTensor(other)
	if !ok {
		return false
	}
	return t.dtype == o.dtype && t.rankKnown == o.rankKnown && slices.Equal(t.dimensions, o.dimensions) &&
		t.device == o.device
}

// isRefinementOf returns whether every property known in t2 matches t.
func (t *TensorType) isRefinementOf(t2 *TensorType) bool {
	if t2.dtype != dtypes.InvalidDType && t.dtype != t2.dtype {
		return false
	}
	if t2.device.IsKnown() && t.device != t2.device {
		return false
	}
	if !t2.rankKnown {
		return true
	}
	if !t.rankKnown || len(t.dimensions) != len(t2.dimensions) {
		return false
	}
	for ii, dim := range t2.dimensions {
		if dim != UnknownDim && t.dimensions[ii] != dim {
			return false
		}
	}
	return true
}

// OptionalType is either None or a value of Elem type. Printed as "Elem?".
type OptionalType struct {
	Elem Type
}

// Optional returns the optional type of elem.
func Optional(elem Type) *OptionalType { return &OptionalType{Elem: elem} }

// String implements fmt.Stringer and Type.
func (t *OptionalType) String() string { return t.Elem.String() + "?" }

// Equal implements Type.
func (t *OptionalType) Equal(other Type) bool {
	o, ok := other.(*OptionalType)
	return ok && t.Elem.Equal(o.Elem)
}

// ListType is a list of Elem. Printed as "Elem[]".
type ListType struct {
	Elem Type
}

// List returns the list type of elem.
func List(elem Type) *ListType { return &ListType{Elem: elem} }

// String implements fmt.Stringer and Type.
func (t *ListType) String() string { return t.Elem.String() + "[]" }

// Equal implements Type.
func (t *ListType) Equal(other Type) bool {
	o, ok := other.(*ListType)
	return ok && t.Elem.Equal(o.Elem)
}

// UnionType is a value of any of its member types.
type UnionType struct {
	Members []Type
}

// Union returns the union of the given types.
func Union(members ...Type) *UnionType {
	if len(members) < 2 {
		exceptions.Panicf("ir.Union requires at least 2 members, got %d", len(members))
	}
	return &UnionType{Members: slices.Clone(members)}
}

// String implements fmt.Stringer and Type.
func (t *UnionType) String() string {
	parts := make([]string, len(t.Members))
	for ii, member := range t.Members {
		parts[ii] = member.String()
	}
	return "Union(" + strings.Join(parts, ", ") + ")"
}

// Equal implements Type.
func (t *UnionType) Equal(other Type) bool {
	o, ok := other.(*UnionType)
	return ok && slices.EqualFunc(t.Members, o.Members, func(a, b Type) bool { return a.Equal(b) })
}

// IsSubtypeOf returns whether a value of type sub can be used where a value of type super is expected.
//
// The rules: equal types; AnyType accepts everything; a refined TensorType is a subtype of any tensor type whose
// known properties it matches; None and T are subtypes of T?; T is a subtype of any union containing a super-type
// of T; lists are covariant; int, float and bool are Scalar; int is accepted for ScalarType, Layout and
// MemoryFormat, which are encoded as integers.
func IsSubtypeOf(sub, super Type) bool {
	if sub == nil || super == nil {
		return false
	}
	if super.Equal(sub) || super.Equal(AnyType) {
		return true
	}
	switch s := super.(type) {
	case *TensorType:
		t, ok := AsTensor(sub)
		return ok && t.isRefinementOf(s)
	case *OptionalType:
		if sub.Equal(NoneType) {
			return true
		}
		if o, ok := sub.(*OptionalType); ok {
			return IsSubtypeOf(o.Elem, s.Elem)
		}
		return IsSubtypeOf(sub, s.Elem)
	case *UnionType:
		if u, ok := sub.(*UnionType); ok {
			for _, member := range u.Members {
				if !IsSubtypeOf(member, s) {
					return false
				}
			}
			return true
		}
		for _, member := range s.Members {
			if IsSubtypeOf(sub, member) {
				return true
			}
		}
		return false
	case *ListType:
		l, ok := sub.(*ListType)
		return ok && IsSubtypeOf(l.Elem, s.Elem)
	case PrimitiveType:
		p, ok := sub.(PrimitiveType)
		if !ok {
			return false
		}
		switch s {
		case NumberType:
			return p == IntType || p == FloatType || p == BoolType
		case DTypeObjType, LayoutType, MemoryFormatType:
			return p == IntType
		}
	}
	return false
}
