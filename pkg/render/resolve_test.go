package render

import (
	"math"
	"testing"

	"github.com/levelplot/levelplot/pkg/diagram"
	"github.com/levelplot/levelplot/pkg/layout"
)

func resolve(t *testing.T, d *diagram.Diagram, opts Options) *Scene {
	t.Helper()
	return Resolve(d, layout.Compute(d), opts)
}

func TestResolveLevels(t *testing.T) {
	d := diagram.New()
	d.AddColumn([]float64{0, 1, 2})

	s := resolve(t, d, Options{})

	if len(s.Levels) != 3 {
		t.Fatalf("Levels = %d, want 3", len(s.Levels))
	}
	wantYs := []float64{0.0, 0.5, 1.0}
	for i, lvl := range s.Levels {
		if lvl.Y != wantYs[i] {
			t.Errorf("level[%d].Y = %v, want %v", i, lvl.Y, wantYs[i])
		}
		if lvl.X1 != 0.0 || lvl.X2 != 0.5 {
			t.Errorf("level[%d] extent = [%v, %v], want [0, 0.5]", i, lvl.X1, lvl.X2)
		}
		if lvl.Color != "black" {
			t.Errorf("level[%d].Color = %q, want black", i, lvl.Color)
		}
	}
}

func TestResolveConnection(t *testing.T) {
	d := diagram.New()
	a := d.AddColumn([]float64{0, 1})
	b := d.AddColumn([]float64{0, 1})
	d.Connect(a.Levels()[0], b.Levels()[1])

	s := resolve(t, d, Options{})

	if len(s.Segments) != 1 {
		t.Fatalf("Segments = %d, want 1", len(s.Segments))
	}
	seg := s.Segments[0]
	// Right edge of column A (x=0.5) to left edge of column B (x=1.5).
	if seg.X1 != 0.5 || seg.X2 != 1.5 {
		t.Errorf("segment x = [%v, %v], want [0.5, 1.5]", seg.X1, seg.X2)
	}
	if seg.Y1 != 0.0 || seg.Y2 != 1.0 {
		t.Errorf("segment y = [%v, %v], want [0, 1]", seg.Y1, seg.Y2)
	}
	if !seg.Dashed || seg.Color != "gray" {
		t.Errorf("segment = %+v, want dashed gray", seg)
	}
}

func TestResolveSkipsUnknownLevels(t *testing.T) {
	d := diagram.New()
	col := d.AddColumn([]float64{0, 1})

	other := diagram.New()
	foreign := other.AddColumn([]float64{5}).Levels()[0]

	d.Connect(col.Levels()[0], foreign)
	d.AddVerticalArrow(foreign, col.Levels()[1], 0.3, "x", "")
	d.AddTransition(col.Levels()[1], foreign, 0.4, "", "")

	s := resolve(t, d, Options{})

	if len(s.Segments) != 0 {
		t.Errorf("Segments = %d, want 0 (unknown level skipped)", len(s.Segments))
	}
	if len(s.Arrows) != 0 {
		t.Errorf("Arrows = %d, want 0 (unknown level skipped)", len(s.Arrows))
	}
}

func TestResolveVerticalArrow(t *testing.T) {
	d := diagram.New()
	col := d.AddColumn([]float64{0, 1, 2, 3})
	d.AddVerticalArrow(col.Levels()[0], col.Levels()[3], 0.25, "transition", "")

	s := resolve(t, d, Options{})

	if len(s.Arrows) != 1 {
		t.Fatalf("Arrows = %d, want 1", len(s.Arrows))
	}
	a := s.Arrows[0]
	if a.X != 0.25 || a.FromY != 0.0 || a.ToY != 1.0 {
		t.Errorf("arrow = %+v, want x=0.25 span [0, 1]", a)
	}
	if !a.TwoHeaded || a.Dashed {
		t.Errorf("arrow = %+v, want two-headed solid", a)
	}

	// Label at the midpoint, offset right.
	var label *Text
	for i := range s.Texts {
		if s.Texts[i].Content == "transition" {
			label = &s.Texts[i]
		}
	}
	if label == nil {
		t.Fatal("arrow label not drawn")
	}
	if label.X != 0.25+0.05 || label.Y != 0.5 {
		t.Errorf("label at (%v, %v), want (0.3, 0.5)", label.X, label.Y)
	}
	if label.H != AlignLeft || label.V != VAlignCenter {
		t.Errorf("label alignment = %v/%v, want left/center", label.H, label.V)
	}
}

func TestResolveBrokenArrow(t *testing.T) {
	d := diagram.New()
	col := d.AddColumn([]float64{0, 1})
	d.AddVerticalBrokenArrow(col.Levels()[0], col.Levels()[1], 0.5, "gap", 0.6, "")

	s := resolve(t, d, Options{})

	if len(s.Breaks) != 1 {
		t.Fatalf("Breaks = %d, want 1", len(s.Breaks))
	}
	br := s.Breaks[0]
	// Span [0, 1] with break position 0.6: glyph at y=0.6, half gap 5% of span.
	if math.Abs(br.Y-0.6) > 1e-12 {
		t.Errorf("break Y = %v, want 0.6", br.Y)
	}
	if math.Abs(br.HalfGap-0.05) > 1e-12 {
		t.Errorf("break HalfGap = %v, want 0.05", br.HalfGap)
	}

	var marker bool
	for _, txt := range s.Texts {
		if txt.Content == "~~" {
			marker = true
		}
	}
	if !marker {
		t.Error("break marker glyph not drawn")
	}
}

func TestResolveTransitionAndEmission(t *testing.T) {
	d := diagram.New()
	col := d.AddColumn([]float64{0, 1, 2})
	d.AddTransition(col.Levels()[2], col.Levels()[1], 0.3, "", "")
	d.AddSpontaneousEmission(col.Levels()[1], col.Levels()[0], 0.4, "", "")

	s := resolve(t, d, Options{})

	if len(s.Arrows) != 2 {
		t.Fatalf("Arrows = %d, want 2", len(s.Arrows))
	}
	trans, emis := s.Arrows[0], s.Arrows[1]
	if trans.TwoHeaded || trans.Dashed || trans.Color != "blue" {
		t.Errorf("transition = %+v, want one-way solid blue", trans)
	}
	if trans.FromY != 1.0 || trans.ToY != 0.5 {
		t.Errorf("transition span = [%v, %v], want [1, 0.5]", trans.FromY, trans.ToY)
	}
	if emis.TwoHeaded || !emis.Dashed || emis.Color != "red" {
		t.Errorf("emission = %+v, want one-way dashed red", emis)
	}
}

func TestResolveAutoConnect(t *testing.T) {
	d := diagram.New()
	d.AddColumn([]float64{0, 1})
	d.AddColumn([]float64{0, 1, 2})

	s := resolve(t, d, Options{Connect: true})

	// Full bipartite set between the adjacent pair: 2*3 dashed segments.
	if len(s.Segments) != 6 {
		t.Errorf("Segments = %d, want 6", len(s.Segments))
	}
}

func TestResolveAutoConnectSuppressedByExplicit(t *testing.T) {
	d := diagram.New()
	a := d.AddColumn([]float64{0, 1})
	b := d.AddColumn([]float64{0, 1})
	d.Connect(a.Levels()[0], b.Levels()[0])

	s := resolve(t, d, Options{Connect: true})

	if len(s.Segments) != 1 {
		t.Errorf("Segments = %d, want 1 (explicit connection wins)", len(s.Segments))
	}
}

func TestResolveAutoConnectSingleColumn(t *testing.T) {
	d := diagram.New()
	d.AddColumn([]float64{0, 1})

	s := resolve(t, d, Options{Connect: true})
	if len(s.Segments) != 0 {
		t.Errorf("Segments = %d, want 0 (needs at least two columns)", len(s.Segments))
	}
}

func TestResolveLevelAndColumnNames(t *testing.T) {
	d := diagram.New()
	col := d.AddColumn(nil, diagram.WithLabel("A"))
	col.AddLevel(0, "g")
	col.AddLevel(1, "e")

	s := resolve(t, d, Options{ShowLevelNames: true, ShowColumnNames: true})

	var levelNames, columnNames int
	for _, txt := range s.Texts {
		switch txt.Content {
		case "g", "e":
			levelNames++
			if txt.H != AlignLeft || txt.V != VAlignBottom {
				t.Errorf("level name alignment = %v/%v, want left/bottom", txt.H, txt.V)
			}
		case "A":
			columnNames++
			// Centered under the column, one gap below the lowest level.
			if txt.X != 0.25 || txt.Y != -0.1 {
				t.Errorf("column label at (%v, %v), want (0.25, -0.1)", txt.X, txt.Y)
			}
		}
	}
	if levelNames != 2 || columnNames != 1 {
		t.Errorf("drew %d level names and %d column names, want 2 and 1", levelNames, columnNames)
	}
}

func TestResolveTitleFallbacks(t *testing.T) {
	d := diagram.New()
	d.AddColumn([]float64{0})

	if s := resolve(t, d, Options{}); s.Title != "Energy Level Diagram" {
		t.Errorf("Title = %q, want default", s.Title)
	}

	d.Label = "Rb87 D2"
	if s := resolve(t, d, Options{}); s.Title != "Rb87 D2" {
		t.Errorf("Title = %q, want diagram label", s.Title)
	}

	if s := resolve(t, d, Options{Title: "override"}); s.Title != "override" {
		t.Errorf("Title = %q, want override", s.Title)
	}
}

func TestResolveViewportPadding(t *testing.T) {
	d := diagram.New()
	d.AddColumn([]float64{0, 1})

	s := resolve(t, d, Options{Padding: Padding{
		Uniform: 0.05,
		Left:    Side(0.1),
		Top:     Side(0.3),
	}})

	if !s.HasViewport {
		t.Fatal("no viewport set")
	}
	// Drawn extent is [0, 0.5] x [0, 1]; left/top overridden, right/bottom
	// fall back to the uniform value.
	v := s.Viewport
	if v.MinX != -0.1 || v.MaxX != 0.55 {
		t.Errorf("viewport x = [%v, %v], want [-0.1, 0.55]", v.MinX, v.MaxX)
	}
	if v.MinY != -0.05 || v.MaxY != 1.3 {
		t.Errorf("viewport y = [%v, %v], want [-0.05, 1.3]", v.MinY, v.MaxY)
	}
}

func TestResolveIdempotent(t *testing.T) {
	d := diagram.New()
	a := d.AddColumn([]float64{0, 1})
	b := d.AddColumn([]float64{2, 3})
	d.Connect(a.Levels()[0], b.Levels()[1])
	d.AddVerticalArrow(a.Levels()[0], a.Levels()[1], 0.2, "w", "")

	first := resolve(t, d, Options{})
	second := resolve(t, d, Options{})

	if len(first.Levels) != len(second.Levels) ||
		len(first.Segments) != len(second.Segments) ||
		len(first.Arrows) != len(second.Arrows) ||
		first.Viewport != second.Viewport {
		t.Error("resolving the same diagram twice produced different scenes")
	}
}

func TestExtentSkipsNonFinite(t *testing.T) {
	// A NaN energy survives layout (auto-regulation off) but must not
	// poison the bounding box: the primitive stays drawn, its extent is
	// ignored.
	d := diagram.New()
	d.AutoRegulation = false
	d.AddColumn([]float64{0, 1, math.NaN()})

	s := resolve(t, d, Options{})

	if len(s.Levels) != 3 {
		t.Fatalf("Levels = %d, want 3 (non-finite still drawn)", len(s.Levels))
	}
	if !s.HasViewport {
		t.Fatal("finite primitives should still produce a viewport")
	}
	if !s.Viewport.IsFinite() {
		t.Errorf("viewport %+v is not finite", s.Viewport)
	}
}

func TestExtentAllNonFinite(t *testing.T) {
	d := diagram.New()
	d.AutoRegulation = false
	d.AddColumn([]float64{math.NaN()})

	s := resolve(t, d, Options{})
	if s.HasViewport {
		t.Error("no finite extent: viewport should stay at backend default")
	}
}

func TestEmptySceneExtent(t *testing.T) {
	s := NewScene("t", false)
	if _, ok := s.Extent(); ok {
		t.Error("empty scene should have no extent")
	}
}
