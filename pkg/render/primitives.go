package render

import "math"

// HAlign is the horizontal alignment of a text anchor.
type HAlign string

// VAlign is the vertical alignment of a text anchor.
type VAlign string

const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"

	VAlignTop    VAlign = "top"
	VAlignBottom VAlign = "bottom"
	VAlignCenter VAlign = "center"
)

// Rect is an axis-aligned rectangle in data coordinates.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// IsFinite reports whether all four corners are finite numbers.
func (r Rect) IsFinite() bool {
	for _, v := range [...]float64{r.MinX, r.MinY, r.MaxX, r.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func rectAround(x1, y1, x2, y2 float64) Rect {
	return Rect{
		MinX: math.Min(x1, x2),
		MinY: math.Min(y1, y2),
		MaxX: math.Max(x1, x2),
		MaxY: math.Max(y1, y2),
	}
}

// LevelLine is the solid horizontal bar of a single level.
type LevelLine struct {
	Y     float64 `json:"y"`
	X1    float64 `json:"x1"`
	X2    float64 `json:"x2"`
	Color string  `json:"color"`
}

// Bounds returns the line's extent.
func (p LevelLine) Bounds() Rect { return rectAround(p.X1, p.Y, p.X2, p.Y) }

// Segment is a straight line between two arbitrary points, used for dashed
// connections between level edges.
type Segment struct {
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	Color  string  `json:"color"`
	Dashed bool    `json:"dashed,omitempty"`
}

// Bounds returns the segment's extent.
func (p Segment) Bounds() Rect { return rectAround(p.X1, p.Y1, p.X2, p.Y2) }

// Arrow is a vertical arrow at a fixed x position spanning two level ys.
// TwoHeaded arrows carry arrowheads on both ends; otherwise the single head
// sits at ToY. Dashed arrows mark spontaneous emission.
type Arrow struct {
	X         float64 `json:"x"`
	FromY     float64 `json:"from_y"`
	ToY       float64 `json:"to_y"`
	Color     string  `json:"color"`
	Dashed    bool    `json:"dashed,omitempty"`
	TwoHeaded bool    `json:"two_headed,omitempty"`
}

// Bounds returns the arrow's extent.
func (p Arrow) Bounds() Rect { return rectAround(p.X, p.FromY, p.X, p.ToY) }

// Break is the gap glyph of a broken arrow: a short erasure band centered
// at Y, indicating a discontinuous or compressed scale. HalfGap is signed
// like the arrow span it was derived from.
type Break struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	HalfGap float64 `json:"half_gap"`
}

// Bounds returns the break band's extent.
func (p Break) Bounds() Rect { return rectAround(p.X, p.Y-p.HalfGap, p.X, p.Y+p.HalfGap) }

// Text is a text anchor with alignment options. Extent-wise a text counts
// as its anchor point; realized glyph metrics are a renderer concern.
type Text struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Content string  `json:"content"`
	H       HAlign  `json:"h_align"`
	V       VAlign  `json:"v_align"`
}

// Bounds returns the anchor point as a degenerate rectangle.
func (p Text) Bounds() Rect { return rectAround(p.X, p.Y, p.X, p.Y) }
