// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package devices defines Device, the placement target of a tensor's storage.
//
// A Device is a Kind (CPU, CUDA, ...) and an optional index. Two devices are equal (with ==) only if
// both the kind and the index match, so "cuda" and "cuda:0" are different devices.
//
// The zero value of Device is Unknown: it is used by static analyses to represent "device not known",
// which is a valid state distinct from any concrete device.
package devices

import (
	"strconv"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Kind of device. KindInvalid is only used by Unknown.
type Kind int

//go:generate go tool enumer -type=Kind -trimprefix=Kind -transform=lower -output=gen_kind_enumer.go devices.go

const (
	KindInvalid Kind = iota
	KindCPU
	KindCUDA
	KindHIP
	KindMPS
	KindXLA
	KindXPU
	KindMeta
	KindVulkan
)

// NoIndex is the Device.Index of a device that doesn't specify one, e.g. "cuda".
const NoIndex = -1

// Device where a tensor is stored. Devices are only created with New or Parse, so that each device has exactly
// one representation and can be compared with ==.
type Device struct {
	kind Kind

	// index of the device, or NoIndex. Always 0 for Unknown.
	index int
}

// Unknown is the zero value of Device and represents a device not (yet) known.
var Unknown = Device{}

// New returns a Device of the given kind and optional index.
// It panics if kind is not a valid device kind, or if the index is negative.
func New(kind Kind, index ...int) Device {
	if kind == KindInvalid || !kind.IsAKind() {
		exceptions.Panicf("devices.New(%s): invalid device kind", kind)
	}
	if len(index) > 1 {
		exceptions.Panicf("devices.New(%s): takes at most one index, %v given", kind, index)
	}
	d := Device{kind: kind, index: NoIndex}
	if len(index) == 1 {
		if index[0] < 0 {
			exceptions.Panicf("devices.New(%s): negative index %d", kind, index[0])
		}
		d.index = index[0]
	}
	return d
}

// CPU returns the host device, without index.
func CPU() Device { return New(KindCPU) }

// CUDA returns the CUDA device with the given index.
func CUDA(index int) Device { return New(KindCUDA, index) }

// Kind of the device, KindInvalid for Unknown.
func (d Device) Kind() Kind { return d.kind }

// Index of the device, or NoIndex if it doesn't specify one or if it is Unknown.
func (d Device) Index() int {
	if !d.IsKnown() {
		return NoIndex
	}
	return d.index
}

// IsKnown returns whether d is a concrete device, as opposed to Unknown.
func (d Device) IsKnown() bool { return d.kind != KindInvalid }

// IsCPU returns whether d is a CPU device, with or without index.
func (d Device) IsCPU() bool { return d.kind == KindCPU }

// HasIndex returns whether d is a known device with an explicit index.
func (d Device) HasIndex() bool { return d.Index() != NoIndex }

// String implements fmt.Stringer. It uses the same format accepted by Parse, and "unknown" for Unknown.
func (d Device) String() string {
	if !d.IsKnown() {
		return "unknown"
	}
	if d.index == NoIndex {
		return d.kind.String()
	}
	return d.kind.String() + ":" + strconv.Itoa(d.index)
}

// Parse a device in the format "<kind>[:<index>]", e.g.: "cpu", "cuda:1". The kind is case-insensitive.
func Parse(s string) (Device, error) {
	kindStr, indexStr, hasIndex := strings.Cut(strings.TrimSpace(s), ":")
	kind, err := KindString(kindStr)
	if err != nil || kind == KindInvalid {
		return Unknown, errors.Errorf("invalid device %q: unknown device kind %q, valid kinds are %v",
			s, kindStr, KindStrings()[1:])
	}
	if !hasIndex {
		return New(kind), nil
	}
	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 0 {
		return Unknown, errors.Errorf("invalid device %q: index %q is not a non-negative integer", s, indexStr)
	}
	return New(kind, index), nil
}

// MustParse is like Parse, but panics on error.
func MustParse(s string) Device {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}
