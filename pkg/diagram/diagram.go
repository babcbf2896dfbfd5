package diagram

import (
	"github.com/google/uuid"
)

// Default column geometry, in data units.
const (
	DefaultWidth      = 0.5
	DefaultSeparation = 1.0
)

// Default annotation colors, as SVG color names.
const (
	DefaultArrowColor      = "black"
	DefaultTransitionColor = "blue"
	DefaultEmissionColor   = "red"
)

// Level is a single energy level inside a column.
//
// Levels carry no natural unique value - two levels can share energy and
// label - so every level is assigned an opaque identifier at creation and
// all annotation lookups go through that identity, never through structural
// equality. Levels are created exclusively via [Column.AddLevel] and never
// move between columns.
type Level struct {
	id     string
	energy float64
	label  string
	column *Column
}

// ID returns the level's opaque identifier, assigned at creation.
func (l *Level) ID() string { return l.id }

// Energy returns the level's energy value in caller units.
func (l *Level) Energy() float64 { return l.energy }

// Label returns the optional display label ("" when unset).
func (l *Level) Label() string { return l.label }

// Column returns the owning column. The reference is non-owning and exists
// only for convenience lookups; the column remains the sole owner.
func (l *Level) Column() *Column { return l.column }

// Column is an ordered collection of levels sharing one horizontal slot.
// Insertion order is significant for rendering; it is not energy order.
//
// The zero value is not usable - create columns via [Diagram.AddColumn].
type Column struct {
	levels     []*Level
	width      float64
	separation float64
	label      string
}

// Width returns the horizontal extent of the column in data units.
func (c *Column) Width() float64 { return c.width }

// Separation returns the gap between this column and the next one.
// The last column's separation is unused by the layout.
func (c *Column) Separation() float64 { return c.separation }

// Label returns the optional column label ("" when unset).
func (c *Column) Label() string { return c.label }

// Levels returns the column's levels in insertion order.
// The returned slice is a copy; the level pointers are the live objects.
func (c *Column) Levels() []*Level {
	out := make([]*Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// Len returns the number of levels in the column.
func (c *Column) Len() int { return len(c.levels) }

// AddLevel appends a level with the given energy and optional label ("")
// to this column and returns it. The level's back-reference to the column
// is set here and never changes afterwards.
func (c *Column) AddLevel(energy float64, label string) *Level {
	lvl := &Level{
		id:     uuid.NewString(),
		energy: energy,
		label:  label,
		column: c,
	}
	c.levels = append(c.levels, lvl)
	return lvl
}

// Connection is an undirected dashed link between two levels.
type Connection struct {
	A, B *Level
}

// Arrow is a vertical annotation between two levels drawn at a fixed x
// position. It is used for bidirectional arrows, transitions and emissions;
// the diagram keeps them in independent lists, so the kind is implied by
// the list an arrow lives in.
type Arrow struct {
	From, To *Level
	X        float64
	Label    string
	Color    string
}

// BrokenArrow is an [Arrow] with a visual break along its length.
// BreakPosition is the fraction (0-1) of the span at which the break
// glyph is drawn.
type BrokenArrow struct {
	Arrow
	BreakPosition float64
}

// Diagram owns an ordered sequence of columns plus the annotation records
// referencing pairs of levels by identity.
//
// Annotation registration never validates that the referenced levels belong
// to this diagram; annotations with unknown levels are silently skipped at
// render time. Annotation lists grow monotonically - nothing is removed or
// mutated once added.
//
// Diagram is not safe for concurrent use. Each diagram owns its columns and
// levels exclusively; two diagrams never share a level.
type Diagram struct {
	columns        []*Column
	AutoRegulation bool
	Label          string

	connections  []Connection
	arrows       []Arrow
	brokenArrows []BrokenArrow
	transitions  []Arrow
	emissions    []Arrow
}

// New creates an empty diagram with auto-regulation enabled.
func New() *Diagram {
	return &Diagram{AutoRegulation: true}
}

// ColumnOption configures a column at creation time.
type ColumnOption func(*Column)

// WithWidth sets the column width (default 0.5).
func WithWidth(w float64) ColumnOption { return func(c *Column) { c.width = w } }

// WithSeparation sets the gap to the next column (default 1.0).
func WithSeparation(s float64) ColumnOption { return func(c *Column) { c.separation = s } }

// WithLabel sets the column label.
func WithLabel(label string) ColumnOption { return func(c *Column) { c.label = label } }

// AddColumn appends a column, optionally seeded with initial energies
// (unlabeled levels, in order), and returns it. More levels can be added
// afterwards via [Column.AddLevel].
func (d *Diagram) AddColumn(energies []float64, opts ...ColumnOption) *Column {
	col := &Column{
		width:      DefaultWidth,
		separation: DefaultSeparation,
	}
	for _, opt := range opts {
		opt(col)
	}
	for _, e := range energies {
		col.AddLevel(e, "")
	}
	d.columns = append(d.columns, col)
	return col
}

// Columns returns the diagram's columns in left-to-right order.
// The returned slice is a copy; the column pointers are the live objects.
func (d *Diagram) Columns() []*Column {
	out := make([]*Column, len(d.columns))
	copy(out, d.columns)
	return out
}

// Connect registers a dashed connection between two levels.
func (d *Diagram) Connect(a, b *Level) {
	d.connections = append(d.connections, Connection{A: a, B: b})
}

// AddVerticalArrow registers a double-headed vertical arrow between two
// levels at a fixed x position. An empty color defaults to black.
func (d *Diagram) AddVerticalArrow(from, to *Level, x float64, label, color string) {
	if color == "" {
		color = DefaultArrowColor
	}
	d.arrows = append(d.arrows, Arrow{From: from, To: to, X: x, Label: label, Color: color})
}

// AddVerticalBrokenArrow registers a double-headed vertical arrow with a
// break glyph at breakPos (fraction 0-1 along the span). An empty color
// defaults to black.
func (d *Diagram) AddVerticalBrokenArrow(from, to *Level, x float64, label string, breakPos float64, color string) {
	if color == "" {
		color = DefaultArrowColor
	}
	d.brokenArrows = append(d.brokenArrows, BrokenArrow{
		Arrow:         Arrow{From: from, To: to, X: x, Label: label, Color: color},
		BreakPosition: breakPos,
	})
}

// AddTransition registers a one-way transition arrow from one level to
// another, arrowhead at the target. An empty color defaults to blue.
func (d *Diagram) AddTransition(from, to *Level, x float64, label, color string) {
	if color == "" {
		color = DefaultTransitionColor
	}
	d.transitions = append(d.transitions, Arrow{From: from, To: to, X: x, Label: label, Color: color})
}

// AddSpontaneousEmission registers a one-way dashed emission arrow from one
// level to another. An empty color defaults to red, distinguishing
// spontaneous decay from driven transitions.
func (d *Diagram) AddSpontaneousEmission(from, to *Level, x float64, label, color string) {
	if color == "" {
		color = DefaultEmissionColor
	}
	d.emissions = append(d.emissions, Arrow{From: from, To: to, X: x, Label: label, Color: color})
}

// Connections returns a copy of the registered connections.
func (d *Diagram) Connections() []Connection {
	out := make([]Connection, len(d.connections))
	copy(out, d.connections)
	return out
}

// VerticalArrows returns a copy of the registered double-headed arrows.
func (d *Diagram) VerticalArrows() []Arrow {
	out := make([]Arrow, len(d.arrows))
	copy(out, d.arrows)
	return out
}

// BrokenArrows returns a copy of the registered broken arrows.
func (d *Diagram) BrokenArrows() []BrokenArrow {
	out := make([]BrokenArrow, len(d.brokenArrows))
	copy(out, d.brokenArrows)
	return out
}

// Transitions returns a copy of the registered transition arrows.
func (d *Diagram) Transitions() []Arrow {
	out := make([]Arrow, len(d.transitions))
	copy(out, d.transitions)
	return out
}

// Emissions returns a copy of the registered emission arrows.
func (d *Diagram) Emissions() []Arrow {
	out := make([]Arrow, len(d.emissions))
	copy(out, d.emissions)
	return out
}
