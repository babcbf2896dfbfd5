package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/levelplot/levelplot/pkg/diagram"
	"github.com/levelplot/levelplot/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed appends the raw energy value to each node label.
	// When false, only the level's label (or its energy, if unlabeled)
	// is shown.
	Detailed bool
}

// ToDOT converts a diagram's coupling structure to Graphviz DOT format.
// Each column becomes a cluster, each level a box node, and each annotation
// an edge styled like its positional counterpart: connections dashed and
// undirected, vertical arrows double-headed, transitions directed solid,
// emissions directed dashed, each in its annotation color.
//
// Annotations referencing levels outside the diagram are skipped, matching
// the positional renderer.
func ToDOT(d *diagram.Diagram, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	known := make(map[string]struct{})
	for i, col := range d.Columns() {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", columnCaption(col, i))
		buf.WriteString("    style=dashed;\n")
		for _, lvl := range col.Levels() {
			known[lvl.ID()] = struct{}{}
			fmt.Fprintf(&buf, "    %q [label=%q];\n", lvl.ID(), levelCaption(lvl, opts.Detailed))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	edge := func(a, b *diagram.Level, attrs string) {
		if _, ok := known[a.ID()]; !ok {
			return
		}
		if _, ok := known[b.ID()]; !ok {
			return
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", a.ID(), b.ID(), attrs)
	}

	for _, c := range d.Connections() {
		edge(c.A, c.B, `dir=none, style=dashed, color=gray`)
	}
	for _, a := range d.VerticalArrows() {
		edge(a.From, a.To, fmt.Sprintf("dir=both, color=%q%s", a.Color, labelAttr(a.Label)))
	}
	for _, a := range d.BrokenArrows() {
		edge(a.From, a.To, fmt.Sprintf("dir=both, style=dotted, color=%q%s", a.Color, labelAttr(a.Label)))
	}
	for _, a := range d.Transitions() {
		edge(a.From, a.To, fmt.Sprintf("color=%q%s", a.Color, labelAttr(a.Label)))
	}
	for _, a := range d.Emissions() {
		edge(a.From, a.To, fmt.Sprintf("style=dashed, color=%q%s", a.Color, labelAttr(a.Label)))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func columnCaption(col *diagram.Column, index int) string {
	if col.Label() != "" {
		return col.Label()
	}
	return fmt.Sprintf("column %d", index)
}

func levelCaption(lvl *diagram.Level, detailed bool) string {
	label := lvl.Label()
	if label == "" {
		return fmt.Sprintf("E=%g", lvl.Energy())
	}
	if detailed {
		return fmt.Sprintf("%s\nE=%g", label, lvl.Energy())
	}
	return label
}

func labelAttr(label string) string {
	if label == "" {
		return ""
	}
	return fmt.Sprintf(", label=%q", label)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
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

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
