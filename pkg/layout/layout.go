package layout

import (
	"math"

	"github.com/levelplot/levelplot/pkg/diagram"
)

// Mark is the plotted position of a single level: the horizontal extent of
// its bar and the regulated y coordinate.
type Mark struct {
	LevelID string
	Left    float64
	Right   float64
	Y       float64
}

// Column holds the computed geometry for one column: its left x edge and
// the regulated y coordinate of each level, parallel to the column's
// level order.
type Column struct {
	X  float64
	Ys []float64
}

// Layout is the result of laying out a diagram. Marks is the coordinate map
// used to resolve annotations, keyed by level identity.
type Layout struct {
	Columns []Column
	Marks   map[string]Mark

	// MinLevelY is the lowest plotted level y, used to place column labels
	// below the columns. It is +Inf when the diagram has no levels.
	MinLevelY float64
}

// HasMarks reports whether any level was laid out.
func (l Layout) HasMarks() bool { return len(l.Marks) > 0 }

// Mark returns the mark for a level and whether it was laid out.
// Levels not attached to any column of the diagram have no mark.
func (l Layout) Mark(lvl *diagram.Level) (Mark, bool) {
	if lvl == nil {
		return Mark{}, false
	}
	m, ok := l.Marks[lvl.ID()]
	return m, ok
}

// ColumnPositions returns the x coordinate of the left edge of each column.
//
// Positions accumulate sequentially: starting at 0, each column records the
// cursor and advances it by its width plus its separation. No two columns
// overlap, and the gap between neighbours equals the left column's
// separation. The computation is deterministic and idempotent.
func ColumnPositions(cols []*diagram.Column) []float64 {
	positions := make([]float64, 0, len(cols))
	cursor := 0.0
	for _, col := range cols {
		positions = append(positions, cursor)
		cursor += col.Width()
		cursor += col.Separation()
	}
	return positions
}

// Regulate maps a column's energies to plot-space y coordinates.
//
// With auto disabled the energies pass through unchanged. With auto enabled
// each energy is normalized column-locally to the unit interval via
// (e-min)/span; a degenerate span of zero (single value or all equal) is
// substituted with 1, collapsing every entry to 0 instead of producing NaN.
//
// Normalization is strictly per column: two columns with different energy
// ranges are rescaled independently, so absolute energy comparisons across
// columns are not preserved under auto-regulation.
func Regulate(energies []float64, auto bool) []float64 {
	if len(energies) == 0 {
		return nil
	}
	if !auto {
		out := make([]float64, len(energies))
		copy(out, energies)
		return out
	}

	min, max := energies[0], energies[0]
	for _, e := range energies[1:] {
		if e < min {
			min = e
		}
		if e > max {
			max = e
		}
	}
	span := max - min
	if span == 0 {
		span = 1.0
	}

	out := make([]float64, len(energies))
	for i, e := range energies {
		out[i] = (e - min) / span
	}
	return out
}

// Compute lays out the whole diagram: column x positions, per-column
// regulated level ys, and the identity-keyed coordinate map consumed by the
// annotation resolver.
func Compute(d *diagram.Diagram) Layout {
	cols := d.Columns()
	positions := ColumnPositions(cols)

	l := Layout{
		Columns:   make([]Column, len(cols)),
		Marks:     make(map[string]Mark),
		MinLevelY: math.Inf(1),
	}

	for i, col := range cols {
		levels := col.Levels()
		energies := make([]float64, len(levels))
		for j, lvl := range levels {
			energies[j] = lvl.Energy()
		}
		ys := Regulate(energies, d.AutoRegulation)

		x := positions[i]
		l.Columns[i] = Column{X: x, Ys: ys}

		for j, lvl := range levels {
			y := ys[j]
			l.Marks[lvl.ID()] = Mark{
				LevelID: lvl.ID(),
				Left:    x,
				Right:   x + col.Width(),
				Y:       y,
			}
			if y < l.MinLevelY {
				l.MinLevelY = y
			}
		}
	}
	return l
}
