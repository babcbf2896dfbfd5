package nodelink

import (
	"fmt"
	"strings"
	"testing"

	"github.com/levelplot/levelplot/pkg/diagram"
)

func TestToDOTClusters(t *testing.T) {
	d := diagram.New()
	d.AddColumn([]float64{0, 1}, diagram.WithLabel("ground"))
	d.AddColumn([]float64{2})

	dot := ToDOT(d, Options{})

	if !strings.Contains(dot, "subgraph cluster_0") || !strings.Contains(dot, "subgraph cluster_1") {
		t.Errorf("missing column clusters:\n%s", dot)
	}
	if !strings.Contains(dot, `label="ground"`) {
		t.Errorf("labeled column must use its label:\n%s", dot)
	}
	if !strings.Contains(dot, `label="column 1"`) {
		t.Errorf("unlabeled column falls back to its index:\n%s", dot)
	}
}

func TestToDOTNodeCaptions(t *testing.T) {
	d := diagram.New()
	col := d.AddColumn(nil)
	col.AddLevel(0.5, "5s1/2")
	col.AddLevel(1.25, "")

	dot := ToDOT(d, Options{})
	if !strings.Contains(dot, `label="5s1/2"`) {
		t.Errorf("labeled level caption missing:\n%s", dot)
	}
	if !strings.Contains(dot, `label="E=1.25"`) {
		t.Errorf("unlabeled level must show its energy:\n%s", dot)
	}

	detailed := ToDOT(d, Options{Detailed: true})
	if !strings.Contains(detailed, "5s1/2\\nE=0.5") {
		t.Errorf("detailed caption must append the energy:\n%s", detailed)
	}
}

func TestToDOTEdgeStyles(t *testing.T) {
	d := diagram.New()
	col := d.AddColumn([]float64{0, 1, 2})
	lv := col.Levels()

	d.Connect(lv[0], lv[1])
	d.AddVerticalArrow(lv[0], lv[2], 0.2, "pump", "")
	d.AddTransition(lv[2], lv[1], 0.3, "", "")
	d.AddSpontaneousEmission(lv[1], lv[0], 0.4, "", "")

	dot := ToDOT(d, Options{})

	if !strings.Contains(dot, "dir=none, style=dashed, color=gray") {
		t.Errorf("connection edge style missing:\n%s", dot)
	}
	if !strings.Contains(dot, `dir=both, color="black", label="pump"`) {
		t.Errorf("vertical arrow edge missing:\n%s", dot)
	}
	if !strings.Contains(dot, `[color="blue"]`) {
		t.Errorf("transition edge missing:\n%s", dot)
	}
	if !strings.Contains(dot, `style=dashed, color="red"`) {
		t.Errorf("emission edge missing:\n%s", dot)
	}
}

func TestToDOTSkipsUnknownLevels(t *testing.T) {
	d := diagram.New()
	col := d.AddColumn([]float64{0})

	foreign := diagram.New().AddColumn([]float64{9}).Levels()[0]
	d.Connect(col.Levels()[0], foreign)

	dot := ToDOT(d, Options{})
	if strings.Contains(dot, "->") {
		t.Errorf("edge to unknown level must be skipped:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="134pt" height="116pt" viewBox="0.00 0.00 134.00 116.00" xmlns="http://www.w3.org/2000/svg">`)
	out := string(normalizeViewBox(in))

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 134.00 116.00" width="134" height="116">`
	if out != want {
		t.Errorf("normalizeViewBox = %s, want %s", out, want)
	}
}

func TestNormalizeViewBoxPassthrough(t *testing.T) {
	in := []byte(`<svg><rect/></svg>`)
	if got := normalizeViewBox(in); string(got) != string(in) {
		t.Errorf("svg without viewBox must pass through unchanged: %s", got)
	}
}

func ExampleToDOT() {
	d := diagram.New()
	col := d.AddColumn(nil, diagram.WithLabel("Rb"))
	col.AddLevel(0, "g")
	col.AddLevel(1, "e")

	dot := ToDOT(d, Options{})
	fmt.Println(strings.Contains(dot, `label="Rb"`))
	// Output: true
}
