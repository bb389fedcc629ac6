// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"time"

	"github.com/gomlx/deviceprop/pkg/ir"
	"github.com/gomlx/deviceprop/pkg/ir/iryaml"
	"github.com/gomlx/deviceprop/pkg/passes"
	"github.com/gomlx/deviceprop/pkg/passes/devicetype"
)

// valueChange is a value whose type changed during the propagation.
type valueChange struct {
	Value         *ir.Value
	Before, After ir.Type
}

// LostDevice returns whether the value had a known device before the propagation, and doesn't anymore.
func (c valueChange) LostDevice() bool {
	return knownDevice(c.Before) && !knownDevice(c.After)
}

// graphReport holds the results of the propagation on one graph.
type graphReport struct {
	Path    string
	Graph   *ir.Graph
	Changed bool
	Elapsed time.Duration

	NumNodes, NumValues, NumTensors int
	KnownBefore, KnownAfter         int

	// Changes in value definition order.
	Changes []valueChange
}

func analyseFile(path string, registry *ir.Registry) (*graphReport, error) {
	g, err := iryaml.LoadFile(path, registry)
	if err != nil {
		return nil, err
	}
	return analyseGraph(path, g), nil
}

// analyseGraph runs the device type propagation on g, and reports what changed.
func analyseGraph(path string, g *ir.Graph) *graphReport {
	r := &graphReport{Path: path, Graph: g}
	for range g.Nodes() {
		r.NumNodes++
	}
	before := make(map[*ir.Value]ir.Type, g.NumValues())
	for v := range g.Values() {
		before[v] = v.Type()
		r.NumValues++
		if _, ok := ir.AsTensor(v.Type()); ok {
			r.NumTensors++
		}
		if knownDevice(v.Type()) {
			r.KnownBefore++
		}
	}

	start := time.Now()
	r.Changed = passes.Run(g, devicetype.Pass())
	r.Elapsed = time.Since(start)

	for v := range g.Values() {
		if knownDevice(v.Type()) {
			r.KnownAfter++
		}
		if !v.Type().Equal(before[v]) {
			r.Changes = append(r.Changes, valueChange{Value: v, Before: before[v], After: v.Type()})
		}
	}
	return r
}

func knownDevice(t ir.Type) bool {
	tt, ok := ir.AsTensor(t)
	return ok && tt.Device().IsKnown()
}
