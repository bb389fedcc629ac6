// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package devicetype

import (
	"github.com/gomlx/deviceprop/pkg/core/devices"
	"github.com/gomlx/deviceprop/pkg/ir"
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// applyOperatorRule sets the devices of the tensor outputs of an operator node, and returns whether any changed.
//
// The first argument of type Device bound to a known device decides the outputs' device. Arguments bound to None
// are skipped. If a Device argument is not statically known, or is known to be one of several devices, nothing is
// changed.
//
// Without a Device argument, the device is inferred from the tensor inputs, see deviceMerger.
func applyOperatorRule(n *ir.Node, schema *ir.Schema) bool {
	inputs := n.Inputs()
	for ii, arg := range schema.Arguments {
		if !ir.IsSubtypeOf(ir.DeviceObjType, arg.Type) {
			continue
		}
		if ii >= len(inputs) {
			exceptions.Panicf("devicetype: argument #%d (%s) of %s has no corresponding input in node %s",
				ii, arg.Name, schema.QualifiedName(), n)
		}
		c, known := ir.ToConstant(inputs[ii])
		if !known {
			klog.V(3).Infof("devicetype: device argument %q of %s is dynamic", arg.Name, n)
			return false
		}
		if c.IsNone() {
			continue
		}
		if !c.IsDevice() {
			klog.V(3).Infof("devicetype: device argument %q of %s is not a single device: %s", arg.Name, n, c)
			return false
		}
		return setOutputsDevice(n, c.Device())
	}

	var merger deviceMerger
	for _, input := range inputs {
		t, ok := ir.AsTensor(input.Type())
		if !ok {
			continue
		}
		merger.add(t)
		if merger.conflicting() {
			klog.V(3).Infof("devicetype: inputs of %s are on different devices", n)
			break
		}
	}
	return setOutputsDevice(n, merger.device)
}

// mergeState of deviceMerger.
type mergeState int

const (
	// noneSeen: no tensor input yet.
	noneSeen mergeState = iota

	// placeholderOnly: all tensor inputs so far were rank-0 CPU tensors.
	placeholderOnly

	// confirmed: device agreed by all non-placeholder inputs so far.
	confirmed

	// conflict: non-placeholder inputs on different devices. Terminal.
	conflict
)

// deviceMerger finds the common device of a sequence of tensors.
//
// Rank-0 tensors on CPU ("placeholders", usually scalar constants) take the device of the other tensors. All other
// tensors must agree on their device, and the first disagreement makes the result unknown: an unknown device is a
// device like any other here, so an unknown and a known device also conflict.
//
// The zero value is ready to use, and its device is unknown.
type deviceMerger struct {
	state  mergeState
	device devices.Device
}

// add the tensor to the merge.
func (m *deviceMerger) add(t *ir.TensorType) {
	device := t.Device()
	placeholder := isCPUZeroDim(t)
	switch m.state {
	case noneSeen:
		m.device = device
		m.state = confirmed
		if placeholder {
			m.state = placeholderOnly
		}
	case placeholderOnly:
		if placeholder {
			return
		}
		m.device = device
		m.state = confirmed
	case confirmed:
		if placeholder || device == m.device {
			return
		}
		m.device = devices.Unknown
		m.state = conflict
	case conflict:
	}
}

// conflicting returns whether the merge reached a conflict, after which adding more tensors won't change the result.
func (m *deviceMerger) conflicting() bool { return m.state == conflict }

// isCPUZeroDim returns whether t is known to be a rank-0 tensor on a CPU.
func isCPUZeroDim(t *ir.TensorType) bool {
	return t.IsZeroDim() && t.Device().IsCPU()
}

func isTensor(v *ir.Value) bool {
	_, ok := ir.AsTensor(v.Type())
	return ok
}

// setOutputsDevice sets the device of all tensor outputs of n, and returns whether any changed.
func setOutputsDevice(n *ir.Node, device devices.Device) bool {
	changed := false
	for _, v := range n.Outputs() {
		if !isTensor(v) {
			continue
		}
		if setDevice(v, device) {
			changed = true
		}
	}
	return changed
}

// setDevice sets the device of the tensor value v, and returns whether it changed. It panics if v is not a tensor.
func setDevice(v *ir.Value, device devices.Device) bool {
	t, ok := ir.AsTensor(v.Type())
	if !ok {
		exceptions.Panicf("devicetype: cannot set device of non-tensor value %s", v)
	}
	if t.Device() == device {
		return false
	}
	klog.V(3).Infof("devicetype: %s: device %s -> %s", v.DebugName(), t.Device(), device)
	v.SetType(t.WithDevice(device))
	return true
}
