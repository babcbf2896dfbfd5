package render

import (
	"github.com/levelplot/levelplot/pkg/diagram"
	"github.com/levelplot/levelplot/pkg/layout"
)

// Defaults for resolver options, in data units.
const (
	DefaultTitle          = "Energy Level Diagram"
	DefaultColumnLabelGap = 0.1
	DefaultPadding        = 0.05

	levelLabelOffset = 0.02
	arrowLabelOffset = 0.05
	breakMarkOffset  = 0.02
	breakGapFraction = 0.05

	levelColor      = "black"
	connectionColor = "gray"
)

// Padding expands a bounding box before it becomes the visible window.
// Uniform applies to every side unless a side-specific override is set.
type Padding struct {
	Uniform float64  `json:"uniform"`
	Left    *float64 `json:"left,omitempty"`
	Right   *float64 `json:"right,omitempty"`
	Top     *float64 `json:"top,omitempty"`
	Bottom  *float64 `json:"bottom,omitempty"`
}

// UniformPadding returns a padding with the same value on all four sides.
func UniformPadding(v float64) Padding { return Padding{Uniform: v} }

// Side returns a side override for use in [Padding].
func Side(v float64) *float64 { return &v }

// Sides returns the effective per-side values, falling back to Uniform for
// any side without an override.
func (p Padding) Sides() (left, right, top, bottom float64) {
	left, right, top, bottom = p.Uniform, p.Uniform, p.Uniform, p.Uniform
	if p.Left != nil {
		left = *p.Left
	}
	if p.Right != nil {
		right = *p.Right
	}
	if p.Top != nil {
		top = *p.Top
	}
	if p.Bottom != nil {
		bottom = *p.Bottom
	}
	return left, right, top, bottom
}

// Expand grows the rectangle by the padding's per-side values.
func (p Padding) Expand(r Rect) Rect {
	left, right, top, bottom := p.Sides()
	return Rect{
		MinX: r.MinX - left,
		MinY: r.MinY - bottom,
		MaxX: r.MaxX + right,
		MaxY: r.MaxY + top,
	}
}

// Options controls annotation resolution and viewport computation.
type Options struct {
	// Connect enables the default auto-connect mode: when no explicit
	// connections were registered and the diagram has at least two columns,
	// every level of each adjacent column pair is connected with a dashed
	// segment.
	Connect bool

	// ShowLevelNames draws each labeled level's name above its left edge.
	ShowLevelNames bool

	// ShowColumnNames draws each labeled column's name below the lowest
	// plotted level.
	ShowColumnNames bool

	// DebugMode keeps axis captions visible instead of the bare
	// presentation view.
	DebugMode bool

	// ColumnLabelGap is the space between the lowest level and the column
	// labels. Zero means [DefaultColumnLabelGap].
	ColumnLabelGap float64

	// Padding expands the drawn extent into the final visible window.
	Padding Padding

	// Title overrides the diagram label; empty falls back to the diagram's
	// own label, then to [DefaultTitle].
	Title string
}

func (o Options) columnLabelGap() float64 {
	if o.ColumnLabelGap == 0 {
		return DefaultColumnLabelGap
	}
	return o.ColumnLabelGap
}

// Resolve lays the diagram's annotations onto a fresh [Scene] and returns
// it with the viewport fitted. It is the recording form of [Draw].
func Resolve(d *diagram.Diagram, l layout.Layout, opts Options) *Scene {
	title := opts.Title
	if title == "" {
		title = d.Label
	}
	if title == "" {
		title = DefaultTitle
	}
	s := NewScene(title, opts.DebugMode)
	Draw(d, l, s, opts)
	return s
}

// Draw issues all draw calls for the diagram onto the canvas, then queries
// the realized extent and requests a visible window equal to that extent
// plus padding. Annotations referencing levels without a mark in the layout
// are skipped entirely: no partial draw, no error.
func Draw(d *diagram.Diagram, l layout.Layout, c Canvas, opts Options) {
	cols := d.Columns()

	drawLevels(cols, l, c, opts)
	drawColumnLabels(cols, l, c, opts)
	drawConnections(d, l, c)
	drawArrows(d, l, c)
	drawBrokenArrows(d, l, c)
	drawOneWayArrows(d.Transitions(), l, c, false)
	drawOneWayArrows(d.Emissions(), l, c, true)
	drawAutoConnections(d, l, c, opts)

	if ext, ok := c.Extent(); ok {
		c.SetViewport(opts.Padding.Expand(ext))
	}
}

func drawLevels(cols []*diagram.Column, l layout.Layout, c Canvas, opts Options) {
	for i, col := range cols {
		x := l.Columns[i].X
		for j, lvl := range col.Levels() {
			y := l.Columns[i].Ys[j]
			c.HLine(y, x, x+col.Width(), levelColor)
			if opts.ShowLevelNames && lvl.Label() != "" {
				c.Text(x, y+levelLabelOffset, lvl.Label(), AlignLeft, VAlignBottom)
			}
		}
	}
}

func drawColumnLabels(cols []*diagram.Column, l layout.Layout, c Canvas, opts Options) {
	if !opts.ShowColumnNames || !l.HasMarks() {
		return
	}
	labelY := l.MinLevelY - opts.columnLabelGap()
	for i, col := range cols {
		if col.Label() == "" {
			continue
		}
		x := l.Columns[i].X
		c.Text(x+col.Width()/2, labelY, col.Label(), AlignCenter, VAlignTop)
	}
}

func drawConnections(d *diagram.Diagram, l layout.Layout, c Canvas) {
	for _, conn := range d.Connections() {
		a, okA := l.Mark(conn.A)
		b, okB := l.Mark(conn.B)
		if !okA || !okB {
			continue
		}
		c.Line(a.Right, a.Y, b.Left, b.Y, connectionColor, true)
	}
}

func drawArrows(d *diagram.Diagram, l layout.Layout, c Canvas) {
	for _, a := range d.VerticalArrows() {
		from, okF := l.Mark(a.From)
		to, okT := l.Mark(a.To)
		if !okF || !okT {
			continue
		}
		c.Arrow(a.X, from.Y, to.Y, a.Color, false, true)
		drawArrowLabel(c, a, from.Y, to.Y)
	}
}

func drawBrokenArrows(d *diagram.Diagram, l layout.Layout, c Canvas) {
	for _, a := range d.BrokenArrows() {
		from, okF := l.Mark(a.From)
		to, okT := l.Mark(a.To)
		if !okF || !okT {
			continue
		}
		c.Arrow(a.X, from.Y, to.Y, a.Color, false, true)

		breakY := from.Y + (to.Y-from.Y)*a.BreakPosition
		halfGap := (to.Y - from.Y) * breakGapFraction
		c.Break(a.X, breakY, halfGap)
		c.Text(a.X+breakMarkOffset, breakY, "~~", AlignLeft, VAlignCenter)

		drawArrowLabel(c, a.Arrow, from.Y, to.Y)
	}
}

func drawOneWayArrows(arrows []diagram.Arrow, l layout.Layout, c Canvas, dashed bool) {
	for _, a := range arrows {
		from, okF := l.Mark(a.From)
		to, okT := l.Mark(a.To)
		if !okF || !okT {
			continue
		}
		c.Arrow(a.X, from.Y, to.Y, a.Color, dashed, false)
		drawArrowLabel(c, a, from.Y, to.Y)
	}
}

func drawArrowLabel(c Canvas, a diagram.Arrow, y0, y1 float64) {
	if a.Label == "" {
		return
	}
	c.Text(a.X+arrowLabelOffset, (y0+y1)/2, a.Label, AlignLeft, VAlignCenter)
}

func drawAutoConnections(d *diagram.Diagram, l layout.Layout, c Canvas, opts Options) {
	cols := d.Columns()
	if !opts.Connect || len(cols) < 2 || len(d.Connections()) > 0 {
		return
	}
	for i := 1; i < len(cols); i++ {
		for _, left := range cols[i-1].Levels() {
			for _, right := range cols[i].Levels() {
				a, okA := l.Mark(left)
				b, okB := l.Mark(right)
				if !okA || !okB {
					continue
				}
				c.Line(a.Right, a.Y, b.Left, b.Y, connectionColor, true)
			}
		}
	}
}
