// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/deviceprop/pkg/ir/opset"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const graphYAML = `
inputs:
  - {name: s, type: "Float32()@cpu"}
  - {name: x, type: "Float32(2, 2)@cuda:0"}
  - {name: y, type: "Float32(2, 2)@cuda:1"}
nodes:
  - {kind: constant, value: 1, outputs: [{name: alpha}]}
  - {op: aten::add, inputs: [s, x, alpha], outputs: [{name: z}]}
  - {op: aten::add, inputs: [x, y, alpha], outputs: [{name: w, type: "Tensor@cuda:0"}]}
returns: [z, w]
`

func TestAnalyseFile(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	path := filepath.Join(t.TempDir(), "graph.yaml")
	must.M(os.WriteFile(path, []byte(graphYAML), 0o644))

	r, err := analyseFile(path, opset.Default())
	require.NoError(t, err)
	assert.True(t, r.Changed)
	assert.Equal(t, 3, r.NumNodes)
	assert.Equal(t, 6, r.NumValues)
	assert.Equal(t, 5, r.NumTensors)
	assert.Equal(t, 4, r.KnownBefore)
	assert.Equal(t, 4, r.KnownAfter)
	require.Len(t, r.Changes, 2)
	assert.Equal(t, "%z", r.Changes[0].Value.DebugName())
	assert.Equal(t, "Tensor@cuda:0", r.Changes[0].After.String())
	assert.False(t, r.Changes[0].LostDevice())
	assert.Equal(t, "%w", r.Changes[1].Value.DebugName())
	assert.True(t, r.Changes[1].LostDevice())

	summary := summaryTable(r).Render()
	assert.Contains(t, summary, path)
	assert.Contains(t, summary, "4 -> 4")
	changes := changesTable(r).Render()
	assert.Contains(t, changes, "aten::add")
	assert.Contains(t, changes, "Tensor@cuda:0")

	_, err = analyseFile(filepath.Join(t.TempDir(), "missing.yaml"), opset.Default())
	require.Error(t, err)
}
