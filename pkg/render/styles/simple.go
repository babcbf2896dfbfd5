package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const headLength = 9.0

// Simple is the default clean style: solid level bars, gray dashes for
// connections, filled triangle arrowheads. The zero value renders with
// [DefaultTheme].
type Simple struct {
	Theme Theme
}

func (s Simple) theme() Theme { return s.Theme.withDefaults() }

// RenderDefs writes the background rectangle.
func (s Simple) RenderDefs(buf *bytes.Buffer, frameW, frameH float64) {
	fmt.Fprintf(buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		frameW, frameH, s.theme().Background)
}

// RenderLevel writes a solid horizontal level bar.
func (s Simple) RenderLevel(buf *bytes.Buffer, l Line) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`+"\n",
		l.X1, l.Y1, l.X2, l.Y2, l.Color, s.theme().LevelWidth)
}

// RenderConnection writes a dashed connection segment.
func (s Simple) RenderConnection(buf *bytes.Buffer, l Line) {
	dash := ""
	if l.Dashed {
		dash = ` stroke-dasharray="6,4"`
	}
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"%s/>`+"\n",
		l.X1, l.Y1, l.X2, l.Y2, l.Color, s.theme().ConnectionWidth, dash)
}

// RenderArrow writes the arrow shaft plus filled triangle heads. The shaft
// is shortened by the head length at each head so the tip stays sharp.
func (s Simple) RenderArrow(buf *bytes.Buffer, a Arrow) {
	dir := 1.0
	if a.Y2 < a.Y1 {
		dir = -1.0
	}

	shaftY1, shaftY2 := a.Y1, a.Y2-dir*headLength
	if a.TwoHeaded {
		shaftY1 = a.Y1 + dir*headLength
	}

	dash := ""
	if a.Dashed {
		dash = ` stroke-dasharray="5,3"`
	}
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"%s/>`+"\n",
		a.X1, shaftY1, a.X2, shaftY2, a.Color, s.theme().ArrowWidth, dash)

	s.renderHead(buf, a.X2, a.Y2, dir, a.Color)
	if a.TwoHeaded {
		s.renderHead(buf, a.X1, a.Y1, -dir, a.Color)
	}
}

// renderHead writes a triangle with the tip at (x, y), pointing along dir
// (+1 down the SVG y axis, -1 up).
func (s Simple) renderHead(buf *bytes.Buffer, x, y, dir float64, color string) {
	baseY := y - dir*headLength
	fmt.Fprintf(buf, `  <polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s"/>`+"\n",
		x, y, x-headLength/2.5, baseY, x+headLength/2.5, baseY, color)
}

// RenderGap writes the white erasure band over a broken arrow.
func (s Simple) RenderGap(buf *bytes.Buffer, g Gap) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`+"\n",
		g.X1, g.Y1, g.X2, g.Y2, s.theme().Background, s.theme().GapWidth)
}

// RenderLabel writes a text element.
func (s Simple) RenderLabel(buf *bytes.Buffer, l Label) {
	size := l.Size
	if size == 0 {
		size = s.theme().FontSize
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="%s" dominant-baseline="%s" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
		l.X, l.Y, l.Anchor, l.Baseline, s.theme().FontFamily, size, s.theme().TextColor, EscapeXML(l.Text))
}

// EscapeXML escapes text for embedding in SVG.
func EscapeXML(text string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(text))
	return buf.String()
}

// Ensure Simple implements Style.
var _ Style = Simple{}
