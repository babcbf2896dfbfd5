package sink

import (
	"encoding/json"
	"testing"

	"github.com/levelplot/levelplot/pkg/render"
)

func TestRenderJSON(t *testing.T) {
	s := render.NewScene("Sample", false)
	s.HLine(0.5, 0, 1, "black")
	s.SetViewport(render.Rect{MinX: -0.05, MinY: 0.45, MaxX: 1.05, MaxY: 0.55})

	data, err := RenderJSON(s, WithJSONStyle("simple"))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out struct {
		Style  string `json:"style"`
		Title  string `json:"title"`
		Levels []struct {
			Y float64 `json:"y"`
		} `json:"levels"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Style != "simple" || out.Title != "Sample" {
		t.Errorf("style/title = %q/%q", out.Style, out.Title)
	}
	if len(out.Levels) != 1 || out.Levels[0].Y != 0.5 {
		t.Errorf("levels = %+v", out.Levels)
	}
}

func TestRenderJSONDeterministic(t *testing.T) {
	s := render.NewScene("Sample", false)
	s.HLine(0.5, 0, 1, "black")
	s.Arrow(0.2, 0, 0.5, "blue", false, false)

	a, err := RenderJSON(s)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	b, err := RenderJSON(s)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	if string(a) != string(b) {
		t.Error("same scene must serialize identically")
	}
}
