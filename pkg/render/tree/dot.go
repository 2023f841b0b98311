package tree

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// Options configures call tree rendering.
type Options struct {
	// Colored fills each move leaf with the color of the disk it moves.
	Colored bool
}

// ToDOT converts a call tree to Graphviz DOT format. The result can be
// rendered with [RenderSVG]. A nil tree yields an empty graph.
func ToDOT(root *hanoi.Call, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph hanoi {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  ordering=out;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.05\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	root.Walk(func(c *hanoi.Call) bool {
		fmt.Fprintf(&buf, "  %s [label=%q];\n", callID(c), callLabel(c))
		fmt.Fprintf(&buf, "  %s [%s];\n", moveID(c), moveAttrs(c, opts))
		return true
	})

	buf.WriteString("\n")
	root.Walk(func(c *hanoi.Call) bool {
		if c.Before != nil {
			fmt.Fprintf(&buf, "  %s -> %s;\n", callID(c), callID(c.Before))
		}
		fmt.Fprintf(&buf, "  %s -> %s;\n", callID(c), moveID(c))
		if c.After != nil {
			fmt.Fprintf(&buf, "  %s -> %s;\n", callID(c), callID(c.After))
		}
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

// Calls and moves share the move index, which is unique within a tree.
func callID(c *hanoi.Call) string { return "call" + strconv.Itoa(c.Index) }
func moveID(c *hanoi.Call) string { return "move" + strconv.Itoa(c.Index) }

func callLabel(c *hanoi.Call) string {
	return fmt.Sprintf("hanoi(%d, %d→%d via %d)", c.N, c.Source, c.Destination, c.Auxiliary)
}

func moveAttrs(c *hanoi.Call, opts Options) string {
	label := fmt.Sprintf("#%d  %s", c.Index, c.Move)
	attrs := fmt.Sprintf("label=%q, shape=ellipse", label)
	if opts.Colored {
		// The call with n disks always moves disk n.
		attrs += fmt.Sprintf(", fillcolor=%q", hanoi.Disk{Size: c.N}.Color())
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one whose
// viewBox starts at the origin, so the tree scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
