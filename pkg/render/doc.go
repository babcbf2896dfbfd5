// Package render resolves a laid-out diagram into renderer-agnostic
// drawing instructions.
//
// # Overview
//
// The resolver ([Draw], [Resolve]) walks the diagram's annotation records,
// looks up each referenced level in the layout's coordinate map, and emits
// primitives - level bars, dashed connections, vertical arrows, break
// glyphs, text anchors - onto a [Canvas]. Annotations referencing levels
// that were never laid out are skipped silently.
//
// After drawing, the resolver queries the canvas for the realized extent of
// everything drawn and requests a final visible window equal to that extent
// expanded by [Padding]. Primitives without a finite extent are excluded
// from the bounding union but still drawn; if nothing has a finite extent,
// no window is requested and the backend keeps its default.
//
// [Scene] is the canonical Canvas implementation: it records primitives
// instead of producing pixels, which is what the sink subpackage consumes
// and what tests inspect.
//
// # Output formats
//
// Key subpackages:
//   - [sink]: output formats (SVG natively; PNG/PDF via rsvg-convert; JSON)
//   - [styles]: visual styles and TOML themes
//   - [nodelink]: Graphviz node-link view of the level couplings
//
// [sink]: github.com/levelplot/levelplot/pkg/render/sink
// [styles]: github.com/levelplot/levelplot/pkg/render/styles
// [nodelink]: github.com/levelplot/levelplot/pkg/render/nodelink
package render
