package pipeline

import (
	"github.com/levelplot/levelplot/pkg/diagram"
	"github.com/levelplot/levelplot/pkg/errors"
	"github.com/levelplot/levelplot/pkg/render"
	"github.com/levelplot/levelplot/pkg/render/nodelink"
	"github.com/levelplot/levelplot/pkg/render/sink"
	"github.com/levelplot/levelplot/pkg/render/styles"
)

// RenderScene generates output artifacts in the requested formats.
// For the nodelink visualization the scene is ignored and the coupling
// graph is generated directly from the diagram.
func RenderScene(scene *render.Scene, d *diagram.Diagram, opts Options) (map[string][]byte, error) {
	if opts.IsNodelink() {
		return renderNodelink(d, opts)
	}
	return renderPlot(scene, opts)
}

// renderPlot generates positional plot outputs from a resolved scene.
func renderPlot(scene *render.Scene, opts Options) (map[string][]byte, error) {
	svgOpts, err := buildSVGOptions(opts)
	if err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(scene, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(scene, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(scene, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(scene, sink.WithJSONStyle(opts.Style))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported plot format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderNodelink generates coupling-graph outputs directly from a diagram.
func renderNodelink(d *diagram.Diagram, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(d, nodelink.Options{Detailed: opts.DebugMode})

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(dot, opts.Scale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(dot)
		case FormatJSON:
			return nil, errors.New(errors.ErrCodeUnsupported, "nodelink has no json output")
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options from pipeline options.
func buildSVGOptions(opts Options) ([]sink.SVGOption, error) {
	svgOpts := []sink.SVGOption{
		sink.WithFrameSize(opts.FrameWidth, opts.FrameHeight),
	}

	if opts.ThemeFile != "" {
		theme, err := styles.LoadTheme(opts.ThemeFile)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme %s", opts.ThemeFile)
		}
		svgOpts = append(svgOpts, sink.WithTheme(theme))
	}

	return svgOpts, nil
}
