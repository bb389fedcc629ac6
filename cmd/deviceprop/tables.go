// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Faint(false).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Faint(true).
			PaddingLeft(1).PaddingRight(1)
	redRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}).
			Bold(true).
			PaddingLeft(1).PaddingRight(1)
)

// highlightTable is a table where some rows can be highlighted in red.
type highlightTable struct {
	Table *lgtable.Table
	count int
	reds  map[int]bool
}

// Row appends a row, highlighted if isRed is set.
func (t *highlightTable) Row(isRed bool, row ...string) {
	if isRed {
		t.reds[t.count] = true
	}
	t.Table.Row(row...)
	t.count++
}

// newTable creates a table with alternating row styles. Each column is aligned with the corresponding alignment,
// and the last alignment is used for the remaining columns.
func newTable(alignments ...lipgloss.Position) *highlightTable {
	t := &highlightTable{reds: make(map[int]bool)}
	t.Table = lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			switch {
			case row < 0:
				return headerRowStyle
			case t.reds[row]:
				s = redRowStyle
			case row%2 == 0:
				s = oddRowStyle
			default:
				s = evenRowStyle
			}
			alignment := lipgloss.Left
			if col < len(alignments) {
				alignment = alignments[col]
			} else if len(alignments) > 0 {
				alignment = alignments[len(alignments)-1]
			}
			return s.Align(alignment)
		})
	return t
}

func summaryTable(r *graphReport) *lgtable.Table {
	t := newTable(lipgloss.Right, lipgloss.Left)
	t.Row(false, "graph", r.Path)
	t.Row(false, "graph id", r.Graph.ID().String())
	t.Row(false, "# nodes", humanize.Comma(int64(r.NumNodes)))
	t.Row(false, "# values", humanize.Comma(int64(r.NumValues)))
	t.Row(false, "# tensors", humanize.Comma(int64(r.NumTensors)))
	t.Row(false, "known devices", fmt.Sprintf("%s -> %s",
		humanize.Comma(int64(r.KnownBefore)), humanize.Comma(int64(r.KnownAfter))))
	t.Row(false, "# changes", humanize.Comma(int64(len(r.Changes))))
	t.Row(false, "elapsed", r.Elapsed.String())
	return t.Table
}

// changesTable lists the values whose type changed. Values that lost their known device are highlighted.
func changesTable(r *graphReport) *lgtable.Table {
	t := newTable(lipgloss.Left)
	t.Table.Headers("Value", "Defined by", "Before", "After")
	for _, c := range r.Changes {
		definedBy := "input"
		if n := c.Value.Node(); n != nil {
			definedBy = n.Symbol()
		}
		t.Row(c.LostDevice(), c.Value.DebugName(), definedBy, c.Before.String(), c.After.String())
	}
	return t.Table
}
