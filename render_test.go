package dash

import (
	"image"
	"image/color"
	"testing"
)

type fillCall struct {
	rect image.Rectangle
	c    color.Color
}

type printCall struct {
	p      image.Point
	size   TextSize
	s      string
	fg, bg color.Color
}

// testCanvas records every drawing operation.
type testCanvas struct {
	bounds     image.Rectangle
	fills      []fillCall
	prints     []printCall
	pixels     map[image.Point]color.Color
	clears     int
	refreshes  int
	backlights []uint8
	events     []string
	refreshErr error
}

func newTestCanvas() *testCanvas {
	return &testCanvas{
		bounds: image.Rect(0, 0, Width, Height),
		pixels: make(map[image.Point]color.Color),
	}
}

func (c *testCanvas) Bounds() image.Rectangle { return c.bounds }

func (c *testCanvas) SetPixel(x, y int, col color.Color) {
	c.pixels[image.Pt(x, y)] = col
}

func (c *testCanvas) Fill(r image.Rectangle, col color.Color) {
	c.fills = append(c.fills, fillCall{r, col})
	c.events = append(c.events, "fill")
}

func (c *testCanvas) Print(p image.Point, size TextSize, s string, fg, bg color.Color) int {
	c.prints = append(c.prints, printCall{p, size, s, fg, bg})
	c.events = append(c.events, "print")
	return c.TextWidth(size, s)
}

func (c *testCanvas) TextWidth(size TextSize, s string) int {
	if size == LargeText {
		return 10 * len([]rune(s))
	}
	return 6 * len([]rune(s))
}

func (c *testCanvas) Clear() {
	c.clears++
	c.events = append(c.events, "clear")
}

func (c *testCanvas) Refresh() error {
	c.refreshes++
	c.events = append(c.events, "refresh")
	return c.refreshErr
}

func (c *testCanvas) Backlight(level uint8) error {
	c.backlights = append(c.backlights, level)
	c.events = append(c.events, "backlight")
	return nil
}

// valuePrints returns the large text draws, one per rendered cell.
func (c *testCanvas) valuePrints() []printCall {
	var calls []printCall
	for _, p := range c.prints {
		if p.size == LargeText {
			calls = append(calls, p)
		}
	}
	return calls
}

func TestRendererSkipsUnchangedBackground(t *testing.T) {
	canvas := newTestCanvas()
	r := NewRenderer(canvas)
	pos := GridPos{0, 0}

	if err := r.Cell(pos, "OIL", "°C", "120", colorWarn); err != nil {
		t.Fatal(err)
	}
	if err := r.Cell(pos, "OIL", "°C", "121", colorWarn); err != nil {
		t.Fatal(err)
	}
	if v := len(canvas.fills); v != 1 {
		t.Fatalf("expected exactly 1 background fill across two renders, got %d", v)
	}

	if err := r.Cell(pos, "OIL", "°C", "130", colorAlert); err != nil {
		t.Fatal(err)
	}
	if v := len(canvas.fills); v != 2 {
		t.Fatalf("expected a second fill after a color change, got %d", v)
	}
	if v := canvas.fills[1].c; v != colorAlert {
		t.Errorf("expected second fill in the alert color, got %#+v", v)
	}
}

func TestRendererNeutralSeed(t *testing.T) {
	canvas := newTestCanvas()
	r := NewRenderer(canvas)

	// The cache starts out neutral; a cell that opens in the neutral color
	// must not repaint on the first frame.
	if err := r.Cell(GridPos{1, 2}, "VOLT", "V", "12.1", colorNeutral); err != nil {
		t.Fatal(err)
	}
	if v := len(canvas.fills); v != 0 {
		t.Fatalf("expected no fill for a neutral first frame, got %d", v)
	}
}

func TestRendererFillsOwnRegionOnly(t *testing.T) {
	canvas := newTestCanvas()
	r := NewRenderer(canvas)
	pos := GridPos{1, 1}

	if err := r.Cell(pos, "BOOST", "Bar", "1.2", colorAlert); err != nil {
		t.Fatal(err)
	}

	region, _ := pos.Region()
	if v := len(canvas.fills); v != 1 {
		t.Fatalf("expected 1 fill, got %d", v)
	}
	if v := canvas.fills[0].rect; v != region {
		t.Errorf("expected fill of %s, got %s", region, v)
	}
}

func TestRendererUnitFollowsValue(t *testing.T) {
	canvas := newTestCanvas()
	r := NewRenderer(canvas)
	pos := GridPos{0, 2}

	if err := r.Cell(pos, "RPM", "x100", " 900", colorNeutral); err != nil {
		t.Fatal(err)
	}
	if err := r.Cell(pos, "RPM", "x100", "12345", colorNeutral); err != nil {
		t.Fatal(err)
	}

	var units []printCall
	for _, p := range canvas.prints {
		if p.s == "x100" {
			units = append(units, p)
		}
	}
	if len(units) != 2 {
		t.Fatalf("expected 2 unit draws, got %d", len(units))
	}

	region, _ := pos.Region()
	want := region.Min.X + valueOffset.X + canvas.TextWidth(LargeText, " 900") + unitGap
	if v := units[0].p.X; v != want {
		t.Errorf("expected first unit at x=%d, got %d", want, v)
	}
	if units[1].p.X <= units[0].p.X {
		t.Errorf("expected the unit to shift right with a wider value, got x=%d then x=%d", units[0].p.X, units[1].p.X)
	}
}

func TestRendererBadPosition(t *testing.T) {
	r := NewRenderer(newTestCanvas())
	for _, pos := range []GridPos{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		if err := r.Cell(pos, "", "", "0", colorNeutral); err == nil {
			t.Errorf("expected an error for position (%d,%d)", pos.Col, pos.Row)
		}
	}
}
