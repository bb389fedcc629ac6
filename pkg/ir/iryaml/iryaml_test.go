// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package iryaml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gomlx/deviceprop/pkg/core/devices"
	"github.com/gomlx/deviceprop/pkg/ir"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `
inputs:
  - {name: x, type: "Float32(2, 3)@cuda:0"}
  - {name: c, type: bool}
nodes:
  - {kind: constant, device: "cuda:1", outputs: [{name: d}]}
  - {kind: constant, devices: ["cpu", "cuda:0"], outputs: [{name: u}]}
  - {kind: constant, none: true, outputs: [{name: n}]}
  - {kind: constant, value: 3, outputs: [{name: i}]}
  - {kind: constant, value: 0.5}
  - {kind: constant, value: false}
  - {kind: constant, value: "abc"}
  - op: aten::relu
    inputs: [x]
    outputs: [{name: y}]
  - kind: if
    inputs: [c]
    outputs: [{name: r}]
    blocks:
      - returns: [x]
      - nodes:
          - {op: aten::neg, inputs: [y], outputs: [{name: z, type: "Float32(2, 3)"}]}
        returns: [z]
  - {kind: call_method, op: forward, inputs: [r]}
returns: [r]
`

func TestParse(t *testing.T) {
	g, err := Parse([]byte(example), nil)
	require.NoError(t, err)
	want := `graph(%x : Float32(2, 3)@cuda:0, %c : bool):
  %d : Device = prim::Constant[value=cuda:1]()
  %u : Device = prim::Constant[value={cpu|cuda:0}]()
  %n : None = prim::Constant[value=None]()
  %i : int = prim::Constant[value=3]()
  %6 : float = prim::Constant[value=0.5]()
  %7 : bool = prim::Constant[value=False]()
  %8 : str = prim::Constant[value="abc"]()
  %y : Tensor = aten::relu(%x)
  %r : Tensor = prim::If(%c)
    block0():
      -> (%x)
    block1():
      %z : Float32(2, 3) = aten::neg(%y)
      -> (%z)
  prim::CallMethod[name="forward"](%r)
  return (%r)
`
	assert.Equal(t, want, g.String())

	// Operators resolve through the default operator set.
	var relu *ir.Node
	for n := range g.Nodes() {
		if n.Op() == "aten::relu" {
			relu = n
		}
	}
	require.NotNil(t, relu)
	require.NotNil(t, relu.MaybeOperator())
	c, ok := ir.ToConstant(g.Block().Nodes()[0].Output(0))
	require.True(t, ok)
	assert.Equal(t, devices.CUDA(1), c.Device())
}

func TestLoad(t *testing.T) {
	g := must.M1(Load(strings.NewReader(example), ir.NewRegistry()))
	var relu *ir.Node
	for n := range g.Nodes() {
		if n.Op() == "aten::relu" {
			relu = n
		}
	}
	require.NotNil(t, relu)
	assert.Nil(t, relu.MaybeSchema(), "empty registry given")

	path := filepath.Join(t.TempDir(), "graph.yaml")
	must.M(os.WriteFile(path, []byte(example), 0o644))
	g2 := must.M1(LoadFile(path, nil))
	assert.Equal(t, g.String(), g2.String())

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		yaml, want string
	}{
		{"nodes: [", "failed to parse YAML"},
		{"inputs: [{name: x, type: Foo}]", "unknown type"},
		{"inputs: [{name: x}, {name: x}]", `value "x" defined more than once`},
		{"nodes:\n  - {op: aten::relu, inputs: [x]}", `node #0 (line 2): unknown input value "x"`},
		{"nodes:\n  - {kind: frobnicate}", `unknown node kind "frobnicate"`},
		{"nodes:\n  - {kind: invalid}", `unknown node kind "invalid"`},
		{"nodes:\n  - {inputs: []}", `operator nodes require an "op"`},
		{"nodes:\n  - {kind: constant}", "exactly one of"},
		{"nodes:\n  - {kind: constant, value: 1, device: cpu}", "exactly one of"},
		{"nodes:\n  - {kind: constant, devices: [cpu]}", "at least 2 devices"},
		{"nodes:\n  - {kind: constant, device: gpu}", "gpu"},
		{"nodes:\n  - {kind: constant, value: [1, 2]}", "must be a scalar"},
		{"nodes:\n  - {kind: constant, value: 1, outputs: [{name: a, type: int}]}", "given by their value"},
		{"nodes:\n  - {kind: list_construct, blocks: [{}]}", "can't have blocks"},
		{"returns: [z]", `returns unknown value "z"`},
		{`
inputs: [{name: c, type: bool}]
nodes:
  - kind: if
    inputs: [c]
    outputs: [{name: r}]
    blocks:
      - nodes:
          - {op: aten::relu, inputs: [r]}
      - {}
`, `node #0 (line 4): block #0: node #0 (line 9): unknown input value "r"`},
		{`
nodes:
  - kind: if
    blocks:
      - nodes:
          - {kind: constant, value: 1, outputs: [{name: inner}]}
returns: [inner]
`, `returns unknown value "inner"`},
	} {
		_, err := Parse([]byte(tc.yaml), nil)
		require.Error(t, err, "parsing %q", tc.yaml)
		assert.Contains(t, err.Error(), tc.want, "parsing %q", tc.yaml)
	}
}
