// Package layout computes plot-space geometry for energy level diagrams.
//
// The layout engine has two independent parts:
//
//   - [ColumnPositions] assigns a left x edge to each column by sequential
//     accumulation of widths and separations.
//   - [Regulate] normalizes a column's energies into plottable y
//     coordinates, column-locally, to the unit interval.
//
// [Compute] combines both into a [Layout] whose coordinate map (level
// identity → [Mark]) is what the render package uses to resolve symbolic
// level references into concrete coordinate pairs.
package layout
