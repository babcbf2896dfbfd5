// Package nodelink renders the coupling structure of a diagram as a
// traditional node-link graph.
//
// # Overview
//
// This package produces a Graphviz view where every level appears as a box
// grouped into its column's cluster, and every annotation (connection,
// arrow, transition, emission) appears as an edge. It is a debugging
// alternative to the positional rendering in the sink package: instead of
// showing where levels sit, it shows how they are coupled.
//
// # Usage
//
// Convert a diagram to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(d, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include the raw energy value
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// Edge styling mirrors the positional rendering: connections are dashed and
// undirected, vertical arrows are double-headed, transitions are solid
// directed edges and spontaneous emissions dashed ones, each in its
// annotation color.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
