// Package pkg provides the core libraries for levelplot energy level diagrams.
//
// # Overview
//
// Levelplot turns a structured description of quantized energy levels into
// publication-ready diagrams: horizontal level bars grouped into columns,
// with arrows, transitions and emissions annotating the couplings between
// them. The pkg directory is organized into four main areas:
//
//  1. [diagram] - The domain model (columns, levels, annotations)
//  2. [layout] - Geometry (column positions, per-column energy normalization)
//  3. [render] - Scene resolution and output (SVG, PNG, PDF, JSON, Graphviz)
//  4. [pipeline] - Orchestration (layout → resolve → render) with caching
//
// # Architecture
//
// The typical data flow through levelplot:
//
//	Diagram (columns + levels + annotations)
//	         ↓
//	    [layout] package (x positions, normalized energies)
//	         ↓
//	    [render] package (resolve annotations into a scene)
//	         ↓
//	    [render/sink] package (project + style)
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
// Build a diagram and render it:
//
//	import (
//	    "context"
//	    "github.com/levelplot/levelplot/pkg/diagram"
//	    "github.com/levelplot/levelplot/pkg/pipeline"
//	)
//
//	// 1. Describe the system
//	d := diagram.New()
//	col := d.AddColumn(nil, diagram.WithLabel("Rb87"))
//	g := col.AddLevel(0, "5s1/2")
//	e := col.AddLevel(1, "5p3/2")
//	d.AddTransition(g, e, 0.25, "780 nm", "")
//
//	// 2. Run the pipeline
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Plot(context.Background(), d, pipeline.Options{
//	    Formats: []string{"svg"},
//	})
//	svg := result.Artifacts["svg"]
//
// # Main Packages
//
// [diagram] - The mutable model: columns own levels, the diagram owns the
// annotation lists. Levels are identified by opaque IDs, never by value.
//
// [layout] - Pure geometry: cursor-accumulated column positions and
// per-column [0, 1] energy normalization.
//
// [render] - Resolves a laid-out diagram into a renderer-agnostic [render.Scene]
// plus format conversion helpers (SVG to PDF/PNG via rsvg-convert).
//
//   - [render/sink]: output formats (SVG, PNG, PDF, JSON)
//   - [render/styles]: visual styles and TOML themes
//   - [render/nodelink]: Graphviz coupling-graph view for debugging
//
// [pipeline] - Complete plotting pipeline with artifact caching, structured
// logging and observability hooks. Ensures consistent behavior across all
// entry points.
//
// [cache] - File and null cache backends plus the artifact key scheme.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Optional hooks for metrics and tracing backends.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/layout/...     # Specific package
//	go test -run Example         # Examples only
//
// [diagram]: https://pkg.go.dev/github.com/levelplot/levelplot/pkg/diagram
// [layout]: https://pkg.go.dev/github.com/levelplot/levelplot/pkg/layout
// [render]: https://pkg.go.dev/github.com/levelplot/levelplot/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/levelplot/levelplot/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/levelplot/levelplot/pkg/render/styles
// [render/nodelink]: https://pkg.go.dev/github.com/levelplot/levelplot/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/levelplot/levelplot/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/levelplot/levelplot/pkg/cache
// [errors]: https://pkg.go.dev/github.com/levelplot/levelplot/pkg/errors
// [observability]: https://pkg.go.dev/github.com/levelplot/levelplot/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/levelplot/levelplot/pkg/buildinfo
// [render.Scene]: https://pkg.go.dev/github.com/levelplot/levelplot/pkg/render#Scene
package pkg
