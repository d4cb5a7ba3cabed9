package dash

import "image"

// Display dimensions the layout is designed for.
const (
	Width  = 160
	Height = 128
)

// Grid dimensions.
const (
	Columns = 2
	Rows    = 3
)

// The top and bottom rows are taller than the middle row: they absorb the
// margin above and below the grid. Static layout, not computed from content.
var rowSpans = [Rows]struct{ min, max int }{
	{0, 45},
	{45, 83},
	{83, Height},
}

// GridPos identifies one cell on the 2×3 grid.
type GridPos struct {
	Col int
	Row int
}

func (p GridPos) valid() bool {
	return p.Col >= 0 && p.Col < Columns && p.Row >= 0 && p.Row < Rows
}

// index maps the position to its cache slot.
func (p GridPos) index() int {
	return p.Row*Columns + p.Col
}

// Region returns the screen rectangle owned by the cell, and whether the
// position is on the grid at all.
func (p GridPos) Region() (image.Rectangle, bool) {
	if !p.valid() {
		return image.Rectangle{}, false
	}
	span := rowSpans[p.Row]
	x0 := p.Col * Width / Columns
	return image.Rect(x0, span.min, x0+Width/Columns, span.max), true
}

// CellSpec binds a reading to its grid cell, formatting rule and threshold
// table.
type CellSpec struct {
	Kind  Kind
	Pos   GridPos
	Label string
	Unit  string
	Field Field
	Bands Table
}

// Cells is the fixed dashboard layout.
var Cells = [...]CellSpec{
	{OilTemp, GridPos{0, 0}, "OIL", "°C", Field{Width: 3, Prec: 0}, oilTempBands},
	{OilPress, GridPos{1, 0}, "", "Bar", Field{Width: 3, Prec: 1}, oilPressBands},
	{WaterTemp, GridPos{0, 1}, "WATER", "°C", Field{Width: 3, Prec: 0}, waterTempBands},
	{Boost, GridPos{1, 1}, "BOOST", "Bar", Field{Width: 3, Prec: 1}, neutralBands},
	{RPM, GridPos{0, 2}, "RPM", "", Field{Width: 4, Prec: 0}, neutralBands},
	{Volt, GridPos{1, 2}, "VOLT", "V", Field{Width: 4, Prec: 1}, neutralBands},
}
