package render

// Canvas is the narrow capability set the resolver needs from a rendering
// backend: draw calls in data coordinates, an extent query over everything
// drawn so far, and a final visible-window request. Keeping the surface
// this small lets the layout/resolution core run headlessly against a
// recording implementation in tests.
type Canvas interface {
	// HLine draws a solid horizontal segment at y from x1 to x2.
	HLine(y, x1, x2 float64, color string)
	// Line draws a segment between two arbitrary points.
	Line(x1, y1, x2, y2 float64, color string, dashed bool)
	// Arrow draws a vertical arrow at x spanning fromY to toY.
	Arrow(x, fromY, toY float64, color string, dashed, twoHeaded bool)
	// Break draws a gap glyph centered at (x, y) with the given half height.
	Break(x, y, halfGap float64)
	// Text draws a string anchored at (x, y) with the given alignment.
	Text(x, y float64, content string, h HAlign, v VAlign)
	// Extent reports the union of finite extents of everything drawn.
	// ok is false when nothing drawn so far has a finite extent.
	Extent() (ext Rect, ok bool)
	// SetViewport requests the final visible window.
	SetViewport(Rect)
}

// Scene is the renderer-agnostic drawing description: a [Canvas] that
// records primitives instead of producing pixels. Sinks consume a Scene to
// emit SVG, PNG, PDF or JSON; tests inspect it directly.
type Scene struct {
	Title string `json:"title"`
	Debug bool   `json:"debug,omitempty"`

	Levels   []LevelLine `json:"levels,omitempty"`
	Segments []Segment   `json:"segments,omitempty"`
	Arrows   []Arrow     `json:"arrows,omitempty"`
	Breaks   []Break     `json:"breaks,omitempty"`
	Texts    []Text      `json:"texts,omitempty"`

	Viewport    Rect `json:"viewport"`
	HasViewport bool `json:"has_viewport"`
}

// NewScene creates an empty scene with the given title and debug flag.
func NewScene(title string, debug bool) *Scene {
	return &Scene{Title: title, Debug: debug}
}

// HLine implements [Canvas].
func (s *Scene) HLine(y, x1, x2 float64, color string) {
	s.Levels = append(s.Levels, LevelLine{Y: y, X1: x1, X2: x2, Color: color})
}

// Line implements [Canvas].
func (s *Scene) Line(x1, y1, x2, y2 float64, color string, dashed bool) {
	s.Segments = append(s.Segments, Segment{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: color, Dashed: dashed})
}

// Arrow implements [Canvas].
func (s *Scene) Arrow(x, fromY, toY float64, color string, dashed, twoHeaded bool) {
	s.Arrows = append(s.Arrows, Arrow{X: x, FromY: fromY, ToY: toY, Color: color, Dashed: dashed, TwoHeaded: twoHeaded})
}

// Break implements [Canvas].
func (s *Scene) Break(x, y, halfGap float64) {
	s.Breaks = append(s.Breaks, Break{X: x, Y: y, HalfGap: halfGap})
}

// Text implements [Canvas].
func (s *Scene) Text(x, y float64, content string, h HAlign, v VAlign) {
	s.Texts = append(s.Texts, Text{X: x, Y: y, Content: content, H: h, V: v})
}

// Extent implements [Canvas]: the union of all finite primitive bounds.
// Primitives with a non-finite extent stay in the scene (they are still
// drawn) but do not contribute to the union.
func (s *Scene) Extent() (Rect, bool) {
	var ext Rect
	found := false

	add := func(r Rect) {
		if !r.IsFinite() {
			return
		}
		if !found {
			ext = r
			found = true
			return
		}
		ext = ext.Union(r)
	}

	for _, p := range s.Levels {
		add(p.Bounds())
	}
	for _, p := range s.Segments {
		add(p.Bounds())
	}
	for _, p := range s.Arrows {
		add(p.Bounds())
	}
	for _, p := range s.Breaks {
		add(p.Bounds())
	}
	for _, p := range s.Texts {
		add(p.Bounds())
	}
	return ext, found
}

// SetViewport implements [Canvas].
func (s *Scene) SetViewport(r Rect) {
	s.Viewport = r
	s.HasViewport = true
}

// Ensure Scene implements Canvas.
var _ Canvas = (*Scene)(nil)
