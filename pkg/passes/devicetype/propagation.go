// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package devicetype

import (
	"slices"

	"github.com/gomlx/deviceprop/pkg/core/devices"
	"github.com/gomlx/deviceprop/pkg/ir"
	"github.com/gomlx/deviceprop/pkg/passes"
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// PassName is the name of the pass returned by Pass.
const PassName = "device-type-propagation"

// Pass returns Propagate as a passes.Pass.
func Pass() passes.Pass {
	return passes.Func(PassName, Propagate)
}

// Propagate infers the device of the tensor values of the graph, and returns whether the device of any value changed.
//
// It visits each node once, so it doesn't reach a fixed point over graphs with loops: a second run on an
// unmodified graph returns false.
//
// It panics (with exceptions.Panicf) if the graph is malformed: conditionals without exactly two blocks, or whose
// blocks return a different number of values than the conditional outputs.
func Propagate(g *ir.Graph) bool {
	p := &propagation{}
	p.processBlock(g.Block())
	return p.changed
}

// propagation holds the state of one run of Propagate.
type propagation struct {
	changed bool
}

func (p *propagation) processBlock(b *ir.Block) {
	if klog.V(3).Enabled() {
		owner := "graph"
		if b.Owner() != nil {
			owner = b.Owner().Symbol()
		}
		klog.Infof("devicetype: processing block of %s with %d nodes", owner, len(b.Nodes()))
	}
	for _, n := range b.Nodes() {
		p.processNode(n)
	}
}

func (p *propagation) processNode(n *ir.Node) {
	klog.V(3).Infof("devicetype: processing node %s", n)
	switch n.Kind() {
	case ir.KindIf:
		p.processIf(n)
		return
	case ir.KindLoop, ir.KindCallMethod, ir.KindCallFunction:
		// Opaque.
		return
	default:
	}

	if !slices.ContainsFunc(n.Outputs(), isTensor) {
		return
	}

	switch n.Kind() {
	case ir.KindOperator:
		p.processOperator(n)
	case ir.KindConstant:
		// Constants are created with their devices.
	case ir.KindListConstruct, ir.KindListUnpack:
		// Not handled, even if they produce tensors.
	case ir.KindTupleConstruct, ir.KindTupleUnpack, ir.KindGetAttr, ir.KindNumToTensor, ir.KindUncheckedCast:
		// Not handled.
	case ir.KindIf, ir.KindLoop, ir.KindCallMethod, ir.KindCallFunction:
		// Handled above.
	default:
		exceptions.Panicf("devicetype: unexpected node kind %s for node %s", n.Kind(), n)
	}
}

func (p *propagation) processIf(n *ir.Node) {
	blocks := n.Blocks()
	if len(blocks) != 2 {
		exceptions.Panicf("devicetype: conditional %s must have 2 blocks, got %d", n, len(blocks))
	}
	p.processBlock(blocks[0])
	p.processBlock(blocks[1])
	if mergeAndApply(blocks[0].Outputs(), blocks[1].Outputs(), n.Outputs()) {
		p.changed = true
	}
}

func (p *propagation) processOperator(n *ir.Node) {
	op := n.MaybeOperator()
	if op == nil {
		klog.V(3).Infof("devicetype: no operator found for %s", n)
		return
	}
	if applyOperatorRule(n, op.Schema()) {
		p.changed = true
	}
}

// mergeAndApply sets the device of each dst value to the device of the corresponding values of both branches,
// if they are known and equal, or to unknown otherwise. Positions where either branch value is not a tensor are
// skipped.
//
// It returns whether the device of any of the dst values changed.
func mergeAndApply(branch0, branch1, dst []*ir.Value) bool {
	if len(branch0) != len(branch1) || len(branch0) != len(dst) {
		exceptions.Panicf("devicetype: conditional branches return %d and %d values, but it has %d outputs",
			len(branch0), len(branch1), len(dst))
	}
	changed := false
	for ii, v := range dst {
		t0, ok0 := ir.AsTensor(branch0[ii].Type())
		t1, ok1 := ir.AsTensor(branch1[ii].Type())
		if !ok0 || !ok1 {
			continue
		}
		device := t0.Device()
		if !device.IsKnown() || device != t1.Device() {
			device = devices.Unknown
		}
		if setDevice(v, device) {
			changed = true
		}
	}
	return changed
}
