// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"strconv"
	"strings"
)

func writeGraph(sb *strings.Builder, g *Graph) {
	sb.WriteString("graph(")
	writeValueDecls(sb, g.block.inputs)
	sb.WriteString("):\n")
	writeBlockNodes(sb, g.block, 1)
	writeIndent(sb, 1)
	sb.WriteString("return (")
	writeValueNames(sb, g.block.outputs)
	sb.WriteString(")\n")
}

func writeBlockNodes(sb *strings.Builder, b *Block, depth int) {
	for _, n := range b.nodes {
		writeIndent(sb, depth)
		writeNodeLine(sb, n)
		sb.WriteByte('\n')
		for ii, child := range n.blocks {
			writeIndent(sb, depth+1)
			sb.WriteString("block")
			sb.WriteString(strconv.Itoa(ii))
			sb.WriteByte('(')
			writeValueDecls(sb, child.inputs)
			sb.WriteString("):\n")
			writeBlockNodes(sb, child, depth+2)
			writeIndent(sb, depth+2)
			sb.WriteString("-> (")
			writeValueNames(sb, child.outputs)
			sb.WriteString(")\n")
		}
	}
}

// writeNodeLine writes "%out : T, ... = symbol[attr](%in, ...)".
func writeNodeLine(sb *strings.Builder, n *Node) {
	if len(n.outputs) > 0 {
		writeValueDecls(sb, n.outputs)
		sb.WriteString(" = ")
	}
	sb.WriteString(n.Symbol())
	switch {
	case n.constant != nil:
		sb.WriteString("[value=")
		sb.WriteString(n.constant.String())
		sb.WriteByte(']')
	case n.kind != KindOperator && n.op != "":
		sb.WriteString("[name=")
		sb.WriteString(strconv.Quote(n.op))
		sb.WriteByte(']')
	}
	sb.WriteByte('(')
	writeValueNames(sb, n.inputs)
	sb.WriteByte(')')
}

func writeValueDecls(sb *strings.Builder, values []*Value) {
	for ii, v := range values {
		if ii > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
}

func writeValueNames(sb *strings.Builder, values []*Value) {
	for ii, v := range values {
		if ii > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.DebugName())
	}
}

func writeIndent(sb *strings.Builder, depth int) {
	for range depth {
		sb.WriteString("  ")
	}
}
