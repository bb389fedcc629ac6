// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package passes

import (
	"testing"

	"github.com/gomlx/deviceprop/pkg/ir"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	g := ir.NewGraph(nil)
	x := g.AddInput("x", ir.AnyTensor())
	var order []string
	setType := Func("set", func(g *ir.Graph) bool {
		order = append(order, "set")
		if x.Type().Equal(ir.IntType) {
			return false
		}
		x.SetType(ir.IntType)
		return true
	})
	noop := Func("noop", func(g *ir.Graph) bool {
		order = append(order, "noop")
		return false
	})
	assert.Equal(t, "set", setType.Name())

	assert.True(t, Run(g, noop, setType, noop))
	assert.Equal(t, []string{"noop", "set", "noop"}, order)
	assert.True(t, x.Type().Equal(ir.IntType))

	// Second time nothing changes.
	assert.False(t, Run(g, setType, noop))
	assert.False(t, Run(g))
}
