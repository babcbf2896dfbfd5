// Package diagram provides the declarative data model for energy level
// diagrams: discrete energy states as horizontal bars grouped into vertical
// columns, with dashed connections and transition arrows between levels.
//
// # Model
//
// A [Diagram] owns an ordered sequence of [Column] values; each column owns
// an ordered sequence of [Level] values. Levels are referenced by identity
// (an opaque ID assigned at creation), never by value - two levels with
// equal energy and label are distinct entities.
//
// # Building
//
// Diagrams are built incrementally through explicit mutating calls:
//
//	d := diagram.New()
//	ground := d.AddColumn([]float64{0, 1, 2}, diagram.WithLabel("A"))
//	excited := d.AddColumn([]float64{0.5, 1.5}, diagram.WithLabel("B"))
//	d.Connect(ground.Levels()[1], excited.Levels()[0])
//	d.AddTransition(ground.Levels()[2], ground.Levels()[1], 0.3, "pump", "")
//
// Annotations reference already-created levels; registration accepts any
// level reference without validation, and annotations whose levels do not
// belong to the diagram are skipped at render time.
//
// Layout and rendering live in the layout and render packages - this
// package is pure in-memory model with no I/O.
package diagram
