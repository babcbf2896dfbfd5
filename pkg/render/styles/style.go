package styles

import "bytes"

// Style defines the visual appearance for diagram rendering.
// Implementations write SVG fragments for each primitive kind; all
// coordinates are in pixel space, already projected by the sink.
type Style interface {
	// RenderDefs writes SVG <defs> content (background, shared CSS).
	RenderDefs(buf *bytes.Buffer, frameW, frameH float64)
	// RenderLevel writes the SVG for a single level bar.
	RenderLevel(buf *bytes.Buffer, l Line)
	// RenderConnection writes the SVG for a dashed level connection.
	RenderConnection(buf *bytes.Buffer, l Line)
	// RenderArrow writes the SVG for a vertical annotation arrow.
	RenderArrow(buf *bytes.Buffer, a Arrow)
	// RenderGap writes the SVG for a broken arrow's erasure band.
	RenderGap(buf *bytes.Buffer, g Gap)
	// RenderLabel writes the SVG for a text label.
	RenderLabel(buf *bytes.Buffer, l Label)
}

// Line contains positioning data for level bars and connections.
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          string
	Dashed         bool
}

// Arrow contains positioning data for a vertical arrow. The head sits at
// (X2, Y2); TwoHeaded adds a second head at (X1, Y1).
type Arrow struct {
	X1, Y1, X2, Y2 float64
	Color          string
	Dashed         bool
	TwoHeaded      bool
}

// Gap is the erasure band drawn over a broken arrow.
type Gap struct {
	X1, Y1, X2, Y2 float64
}

// Label is a positioned piece of text. Anchor is an SVG text-anchor value
// and Baseline a dominant-baseline value; Size 0 uses the style default.
type Label struct {
	X, Y     float64
	Text     string
	Anchor   string
	Baseline string
	Size     float64
}
