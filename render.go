package dash

import (
	"fmt"
	"image"

	"github.com/BeatGlow/dash/pixel"
)

// Text positions within a cell, relative to its top-left corner.
var (
	labelOffset = image.Pt(4, 3)
	valueOffset = image.Pt(4, 16)
)

const (
	unitGap     = 3  // pixels between value and unit
	unitOffsetY = 25 // unit top, aligns the small face with the value baseline
)

// Renderer paints grid cells, repainting a cell background only when its
// color changed since the last frame. Repainting all six cells every tick
// causes visible flicker on the display class this targets; text redraws
// unconditionally since the digits change even when the color does not.
type Renderer struct {
	canvas Canvas
	cache  [Columns * Rows]pixel.RGB565
}

// NewRenderer returns a renderer for c. The background cache starts out as
// the neutral color: the frame loop clears the screen to neutral before the
// first frame, so a cell whose first reading resolves to neutral correctly
// skips its first repaint.
func NewRenderer(c Canvas) *Renderer {
	r := &Renderer{canvas: c}
	for i := range r.cache {
		r.cache[i] = colorNeutral
	}
	return r
}

// Cell renders one grid cell: background (only on color change), then
// label, value and unit text. The unit follows the rendered value text, so
// its position shifts with the value's width. Print covers only the glyph
// box: when the value narrows, glyphs left behind at the unit's previous
// position persist until the next background repaint.
func (r *Renderer) Cell(pos GridPos, label, unit, value string, bg pixel.RGB565) error {
	region, ok := pos.Region()
	if !ok {
		return fmt.Errorf("dash: grid position (%d,%d) is not on the %d×%d grid", pos.Col, pos.Row, Columns, Rows)
	}

	if r.cache[pos.index()] != bg {
		r.canvas.Fill(region, bg)
		r.cache[pos.index()] = bg
	}

	org := region.Min
	r.canvas.Print(org.Add(labelOffset), SmallText, label, colorText, bg)
	w := r.canvas.Print(org.Add(valueOffset), LargeText, value, colorText, bg)
	r.canvas.Print(image.Pt(org.X+valueOffset.X+w+unitGap, org.Y+unitOffsetY), SmallText, unit, colorText, bg)
	return nil
}
