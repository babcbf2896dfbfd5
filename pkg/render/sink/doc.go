// Package sink converts resolved scenes into output formats.
//
// SVG is the native format: [RenderSVG] projects scene coordinates into a
// pixel frame (flipping the y axis, since scene y grows upward) and hands
// each primitive to a [styles.Style]. PNG and PDF are produced from the SVG
// via rsvg-convert and require librsvg to be installed. [RenderJSON] exports
// the scene itself for external tooling and cache keying.
//
// [styles.Style]: github.com/levelplot/levelplot/pkg/render/styles
package sink
