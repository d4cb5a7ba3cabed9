package display

import (
	"image"
	"image/color"

	"github.com/BeatGlow/dash"
	"github.com/BeatGlow/dash/draw"
	"github.com/BeatGlow/dash/font"
)

// Canvas binds a Display and the dashboard type faces into the drawing
// surface the dash package consumes.
type Canvas struct {
	d     Display
	small font.Face
	large font.Face
}

var _ dash.Canvas = (*Canvas)(nil)

// NewCanvas wraps d. The type faces are loaded on first use.
func NewCanvas(d Display) (*Canvas, error) {
	small, large, err := font.Faces()
	if err != nil {
		return nil, err
	}
	return &Canvas{d: d, small: small, large: large}, nil
}

func (c *Canvas) face(size dash.TextSize) font.Face {
	if size == dash.LargeText {
		return c.large
	}
	return c.small
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.d.Bounds()
}

func (c *Canvas) SetPixel(x, y int, col color.Color) {
	c.d.Set(x, y, col)
}

func (c *Canvas) Fill(r image.Rectangle, col color.Color) {
	draw.Box(c.d, r, col)
}

// Print paints the glyph box in bg first so stale digits from the previous
// frame never show through, then draws s on top.
func (c *Canvas) Print(p image.Point, size dash.TextSize, s string, fg, bg color.Color) int {
	if s == "" {
		return 0
	}
	face := c.face(size)
	w := font.Measure(face, s)
	draw.Box(c.d, image.Rect(p.X, p.Y, p.X+w, p.Y+font.Height(face)), bg)
	return font.Draw(c.d, p, face, s, fg)
}

func (c *Canvas) TextWidth(size dash.TextSize, s string) int {
	return font.Measure(c.face(size), s)
}

func (c *Canvas) Clear() {
	c.d.Clear()
}

func (c *Canvas) Refresh() error {
	return c.d.Refresh()
}

func (c *Canvas) Backlight(level uint8) error {
	return c.d.SetContrast(level)
}
