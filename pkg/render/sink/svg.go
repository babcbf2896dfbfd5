package sink

import (
	"bytes"
	"fmt"

	"github.com/levelplot/levelplot/pkg/render"
	"github.com/levelplot/levelplot/pkg/render/styles"
)

const (
	defaultFrameWidth  = 800.0
	defaultFrameHeight = 600.0

	titleBand   = 48.0
	margin      = 24.0
	captionBand = 36.0
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style  styles.Style
	theme  styles.Theme
	frameW float64
	frameH float64
}

// WithStyle selects the rendering style (default [styles.Simple]).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithTheme applies a theme to the default style. Ignored when [WithStyle]
// is also given.
func WithTheme(t styles.Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// WithFrameSize sets the output frame in pixels (default 800x600).
func WithFrameSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.frameW, r.frameH = w, h }
}

// projector maps scene coordinates into the pixel frame. The y axis is
// flipped: scene y grows upward, SVG y grows downward.
type projector struct {
	viewport       render.Rect
	left, top      float64
	scaleX, scaleY float64
}

func newProjector(s *render.Scene, frameW, frameH float64) projector {
	vp := s.Viewport
	if !s.HasViewport {
		vp = render.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	}

	left, top := margin, titleBand
	right, bottom := margin, margin
	if s.Debug {
		left += captionBand
		bottom += captionBand
	}

	w, h := vp.Width(), vp.Height()
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}

	return projector{
		viewport: vp,
		left:     left,
		top:      top,
		scaleX:   (frameW - left - right) / w,
		scaleY:   (frameH - top - bottom) / h,
	}
}

func (p projector) x(x float64) float64 { return p.left + (x-p.viewport.MinX)*p.scaleX }
func (p projector) y(y float64) float64 { return p.top + (p.viewport.MaxY-y)*p.scaleY }

// RenderSVG renders a resolved scene as a standalone SVG document.
//
// Primitives are drawn in painter order: level bars, connections, arrows,
// break gaps (which erase part of the arrow shaft underneath), then text.
func RenderSVG(s *render.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{frameW: defaultFrameWidth, frameH: defaultFrameHeight}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = styles.Simple{Theme: r.theme}
	}

	p := newProjector(s, r.frameW, r.frameH)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.frameW, r.frameH, r.frameW, r.frameH)

	r.style.RenderDefs(&buf, r.frameW, r.frameH)
	renderContent(&buf, r.style, s, p)
	renderTitle(&buf, r.style, s.Title, r.frameW)
	if s.Debug {
		renderAxisCaptions(&buf, r.style, r.frameW, r.frameH)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderContent(buf *bytes.Buffer, st styles.Style, s *render.Scene, p projector) {
	for _, l := range s.Levels {
		st.RenderLevel(buf, styles.Line{
			X1: p.x(l.X1), Y1: p.y(l.Y),
			X2: p.x(l.X2), Y2: p.y(l.Y),
			Color: l.Color,
		})
	}
	for _, seg := range s.Segments {
		st.RenderConnection(buf, styles.Line{
			X1: p.x(seg.X1), Y1: p.y(seg.Y1),
			X2: p.x(seg.X2), Y2: p.y(seg.Y2),
			Color: seg.Color, Dashed: seg.Dashed,
		})
	}
	for _, a := range s.Arrows {
		st.RenderArrow(buf, styles.Arrow{
			X1: p.x(a.X), Y1: p.y(a.FromY),
			X2: p.x(a.X), Y2: p.y(a.ToY),
			Color: a.Color, Dashed: a.Dashed, TwoHeaded: a.TwoHeaded,
		})
	}
	for _, br := range s.Breaks {
		st.RenderGap(buf, styles.Gap{
			X1: p.x(br.X), Y1: p.y(br.Y - br.HalfGap),
			X2: p.x(br.X), Y2: p.y(br.Y + br.HalfGap),
		})
	}
	for _, txt := range s.Texts {
		st.RenderLabel(buf, styles.Label{
			X: p.x(txt.X), Y: p.y(txt.Y),
			Text:     txt.Content,
			Anchor:   anchorFor(txt.H),
			Baseline: baselineFor(txt.V),
		})
	}
}

// anchorFor maps horizontal alignment to an SVG text-anchor value.
func anchorFor(h render.HAlign) string {
	if h == render.AlignCenter {
		return "middle"
	}
	return "start"
}

// baselineFor maps vertical alignment to an SVG dominant-baseline value.
// The y flip does not change the mapping: alignment is relative to the
// anchor point, which is projected independently.
func baselineFor(v render.VAlign) string {
	switch v {
	case render.VAlignTop:
		return "hanging"
	case render.VAlignCenter:
		return "middle"
	default:
		return "auto"
	}
}

func renderTitle(buf *bytes.Buffer, st styles.Style, title string, frameW float64) {
	if title == "" {
		return
	}
	st.RenderLabel(buf, styles.Label{
		X: frameW / 2, Y: titleBand / 2,
		Text:     title,
		Anchor:   "middle",
		Baseline: "middle",
		Size:     18,
	})
}

// renderAxisCaptions labels the axes in debug mode: the x axis carries
// column positions, the y axis normalized energy.
func renderAxisCaptions(buf *bytes.Buffer, st styles.Style, frameW, frameH float64) {
	st.RenderLabel(buf, styles.Label{
		X: frameW / 2, Y: frameH - captionBand/2,
		Text:     "Column",
		Anchor:   "middle",
		Baseline: "middle",
	})
	fmt.Fprintf(buf, `  <g transform="rotate(-90 %.1f %.1f)">`+"\n", captionBand/2, frameH/2)
	st.RenderLabel(buf, styles.Label{
		X: captionBand / 2, Y: frameH / 2,
		Text:     "Energy",
		Anchor:   "middle",
		Baseline: "middle",
	})
	buf.WriteString("  </g>\n")
}
