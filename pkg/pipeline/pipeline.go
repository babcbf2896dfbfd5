// Package pipeline provides the core plotting pipeline for levelplot.
//
// This package implements the complete layout → resolve → render pipeline
// on top of the diagram model. By centralizing this logic, every entry point
// (library callers, scripts, services) gets the same caching, logging and
// validation behavior.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Layout: Compute column positions and per-column energy normalization
//  2. Resolve: Turn the laid-out diagram into a renderer-agnostic scene
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Connect: true,
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Plot(ctx, d, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/levelplot/levelplot/pkg/cache"
	"github.com/levelplot/levelplot/pkg/errors"
	"github.com/levelplot/levelplot/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for All Entry Points
// =============================================================================

const (
	// DefaultPadding is the uniform viewport padding in data units.
	DefaultPadding = 0.05

	// DefaultFrameWidth is the default output frame width in pixels.
	DefaultFrameWidth = 800.0

	// DefaultFrameHeight is the default output frame height in pixels.
	DefaultFrameHeight = 600.0

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0
)

// Visualization types.
const (
	VizTypePlot     = "plot"
	VizTypeNodelink = "nodelink"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypePlot

// Style names.
const StyleSimple = "simple"

// DefaultStyle is the default visual style.
const DefaultStyle = StyleSimple

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleSimple: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypePlot:     true,
	VizTypeNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the plotting pipeline.
// This struct supports JSON serialization for request payloads.
type Options struct {
	// Resolve options
	Connect         bool    `json:"connect,omitempty"`
	ShowLevelNames  bool    `json:"show_level_names,omitempty"`
	ShowColumnNames bool    `json:"show_column_names,omitempty"`
	DebugMode       bool    `json:"debug_mode,omitempty"`
	ColumnLabelGap  float64 `json:"column_label_gap,omitempty"`
	Title           string  `json:"title,omitempty"`

	// Padding is the uniform viewport padding in data units (0 = default).
	// The per-side fields override it individually when non-nil.
	Padding       float64  `json:"padding,omitempty"`
	PaddingLeft   *float64 `json:"padding_left,omitempty"`
	PaddingRight  *float64 `json:"padding_right,omitempty"`
	PaddingTop    *float64 `json:"padding_top,omitempty"`
	PaddingBottom *float64 `json:"padding_bottom,omitempty"`

	// Render options
	VizType     string   `json:"viz_type,omitempty"`
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	ThemeFile   string   `json:"theme_file,omitempty"`
	FrameWidth  float64  `json:"frame_width,omitempty"`
	FrameHeight float64  `json:"frame_height,omitempty"`
	Scale       float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the resolved drawing description.
	Scene *render.Scene

	// SceneHash is the content hash of the serialized scene.
	SceneHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ColumnCount int
	LevelCount  int
	LayoutTime  time.Duration
	ResolveTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be: simple)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid viz_type: %q (must be one of: plot, nodelink)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetResolveDefaults()
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetResolveDefaults sets default values for scene resolution.
func (o *Options) SetResolveDefaults() {
	if o.Padding == 0 {
		o.Padding = DefaultPadding
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.FrameWidth == 0 {
		o.FrameWidth = DefaultFrameWidth
	}
	if o.FrameHeight == 0 {
		o.FrameHeight = DefaultFrameHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// ResolveOptions converts pipeline options into resolver options.
func (o *Options) ResolveOptions() render.Options {
	return render.Options{
		Connect:         o.Connect,
		ShowLevelNames:  o.ShowLevelNames,
		ShowColumnNames: o.ShowColumnNames,
		DebugMode:       o.DebugMode,
		ColumnLabelGap:  o.ColumnLabelGap,
		Title:           o.Title,
		Padding: render.Padding{
			Uniform: o.Padding,
			Left:    o.PaddingLeft,
			Right:   o.PaddingRight,
			Top:     o.PaddingTop,
			Bottom:  o.PaddingBottom,
		},
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Style:       o.Style,
		VizType:     o.VizType,
		Theme:       o.ThemeFile,
		FrameWidth:  o.FrameWidth,
		FrameHeight: o.FrameHeight,
		Scale:       o.Scale,
	}
}
