// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gomlx/deviceprop/pkg/core/devices"
	"github.com/gomlx/exceptions"
)

// ConstantKind enumerates the kinds of statically known values.
type ConstantKind int

//go:generate go tool enumer -type=ConstantKind -trimprefix=Constant -transform=snake -output=gen_constantkind_enumer.go constant.go

const (
	ConstantInvalid ConstantKind = iota
	ConstantNone
	ConstantBool
	ConstantInt
	ConstantFloat
	ConstantString
	ConstantDevice

	// ConstantDeviceUnion is a device known to be one of a set of devices, but not which one.
	ConstantDeviceUnion
)

// Constant is a statically known value, the payload of KindConstant nodes.
// The zero value is invalid.
type Constant struct {
	kind    ConstantKind
	b       bool
	i       int64
	f       float64
	s       string
	devices []devices.Device
}

// NoneConstant returns the None constant.
func NoneConstant() Constant { return Constant{kind: ConstantNone} }

// BoolConstant returns a boolean constant.
func BoolConstant(b bool) Constant { return Constant{kind: ConstantBool, b: b} }

// IntConstant returns an integer constant.
func IntConstant(i int64) Constant { return Constant{kind: ConstantInt, i: i} }

// FloatConstant returns a float constant.
func FloatConstant(f float64) Constant { return Constant{kind: ConstantFloat, f: f} }

// StringConstant returns a string constant.
func StringConstant(s string) Constant { return Constant{kind: ConstantString, s: s} }

// DeviceConstant returns a constant holding a single concrete device.
func DeviceConstant(device devices.Device) Constant {
	if !device.IsKnown() {
		exceptions.Panicf("ir.DeviceConstant: device must be known")
	}
	return Constant{kind: ConstantDevice, devices: []devices.Device{device}}
}

// DeviceUnionConstant returns a constant that holds one of the given devices, not statically known which one.
func DeviceUnionConstant(options ...devices.Device) Constant {
	if len(options) < 2 {
		exceptions.Panicf("ir.DeviceUnionConstant requires at least 2 devices, got %d", len(options))
	}
	for _, device := range options {
		if !device.IsKnown() {
			exceptions.Panicf("ir.DeviceUnionConstant: devices must be known, got %v", options)
		}
	}
	return Constant{kind: ConstantDeviceUnion, devices: slices.Clone(options)}
}

// Kind of the constant.
func (c Constant) Kind() ConstantKind { return c.kind }

// IsNone returns whether c is the None constant.
func (c Constant) IsNone() bool { return c.kind == ConstantNone }

// IsDevice returns whether c holds a single concrete device.
func (c Constant) IsDevice() bool { return c.kind == ConstantDevice }

// Device returns the device held by c. It panics if c is not a ConstantDevice.
func (c Constant) Device() devices.Device {
	if c.kind != ConstantDevice {
		exceptions.Panicf("Constant(%s).Device(): constant is not a device", c)
	}
	return c.devices[0]
}

// Devices returns the candidate devices of a ConstantDeviceUnion, or the device of a ConstantDevice.
func (c Constant) Devices() []devices.Device { return slices.Clone(c.devices) }

// Bool returns the value of a ConstantBool.
func (c Constant) Bool() bool { return c.b }

// Int returns the value of a ConstantInt.
func (c Constant) Int() int64 { return c.i }

// Float returns the value of a ConstantFloat.
func (c Constant) Float() float64 { return c.f }

// Str returns the value of a ConstantString.
func (c Constant) Str() string { return c.s }

// Type returns the type of the value produced by a constant node holding c.
func (c Constant) Type() Type {
	switch c.kind {
	case ConstantNone:
		return NoneType
	case ConstantBool:
		return BoolType
	case ConstantInt:
		return IntType
	case ConstantFloat:
		return FloatType
	case ConstantString:
		return StrType
	case ConstantDevice, ConstantDeviceUnion:
		return DeviceObjType
	default:
		return InvalidType
	}
}

// Equal returns whether both constants hold the same value.
func (c Constant) Equal(c2 Constant) bool {
	return c.kind == c2.kind && c.b == c2.b && c.i == c2.i && c.f == c2.f && c.s == c2.s &&
		slices.Equal(c.devices, c2.devices)
}

// String implements fmt.Stringer.
func (c Constant) String() string {
	switch c.kind {
	case ConstantNone:
		return "None"
	case ConstantBool:
		if c.b {
			return "True"
		}
		return "False"
	case ConstantInt:
		return strconv.FormatInt(c.i, 10)
	case ConstantFloat:
		s := strconv.FormatFloat(c.f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEIN") {
			s += ".0"
		}
		return s
	case ConstantString:
		return strconv.Quote(c.s)
	case ConstantDevice:
		return c.devices[0].String()
	case ConstantDeviceUnion:
		parts := make([]string, len(c.devices))
		for ii, device := range c.devices {
			parts[ii] = device.String()
		}
		return "{" + strings.Join(parts, "|") + "}"
	default:
		return "<invalid>"
	}
}

// ToConstant returns the statically known value of v, if v is produced by a constant node.
// Values that depend on graph inputs or on any computation are not statically known.
func ToConstant(v *Value) (Constant, bool) {
	if v == nil || v.node == nil || v.node.kind != KindConstant || v.node.constant == nil {
		return Constant{}, false
	}
	return *v.node.constant, true
}
