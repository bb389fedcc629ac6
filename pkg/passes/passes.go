// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package passes defines the interface of graph analyses and transformations, and runs them in sequence.
package passes

import (
	"time"

	"github.com/gomlx/deviceprop/pkg/ir"
	"k8s.io/klog/v2"
)

// Pass is an analysis or transformation of a graph, that may modify it in place.
type Pass interface {
	// Name of the pass, used for logging.
	Name() string

	// Run the pass on the graph, and return whether it changed anything.
	Run(g *ir.Graph) bool
}

// Func adapts a function to the Pass interface.
func Func(name string, fn func(g *ir.Graph) bool) Pass {
	return funcPass{name: name, fn: fn}
}

type funcPass struct {
	name string
	fn   func(g *ir.Graph) bool
}

func (p funcPass) Name() string         { return p.name }
func (p funcPass) Run(g *ir.Graph) bool { return p.fn(g) }

// Run the passes in order on the graph, and return whether any of them changed it.
//
// Each pass is logged with klog.V(1), and the graph is dumped with klog.V(2) after each pass that changed it.
func Run(g *ir.Graph, passes ...Pass) bool {
	changed := false
	for _, pass := range passes {
		start := time.Now()
		passChanged := pass.Run(g)
		klog.V(1).Infof("pass %q on graph %s: changed=%v, elapsed %s", pass.Name(), g.ID(), passChanged, time.Since(start))
		if passChanged {
			changed = true
			if klog.V(2).Enabled() {
				klog.Infof("graph %s after pass %q:\n%s", g.ID(), pass.Name(), g)
			}
		}
	}
	return changed
}
