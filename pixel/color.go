package pixel

import "image/color"

// RGB565Model is the color model for 16-bit 5-6-5 RGB colors.
var RGB565Model color.Model = color.ModelFunc(rgb565Model)

// RGB565 represents a 16-bit 5-6-5 RGB color.
type RGB565 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

// Colors used by the dashboard.
var (
	Black  = RGB565{0x0000}
	White  = RGB565{0xffff}
	Red    = RGB565{0xf800}
	Orange = RGB565{0xfd20}
	Blue   = RGB565{0x051f}
)

// New packs 8-bit RGB channels into a 5-6-5 color.
func New(r, g, b uint8) RGB565 {
	return RGB565{uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)}
}

func (c RGB565) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red := (c.V & 0xF800) >> 8
	grn := (c.V & 0x07E0) >> 3
	blu := (c.V & 0x001F) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return uint32(red), uint32(grn), uint32(blu), 0xffff
}

func rgb565Model(c color.Color) color.Color {
	if _, ok := c.(RGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	r &= 0xF800
	g = (g & 0xFC00) >> 5
	b = (b & 0xF800) >> 11
	return RGB565{uint16(r | g | b)}
}

// Gray4 expands a 4-bit gray level (0..15) to a 5-6-5 color by scaling
// each channel independently to its full depth.
func Gray4(level uint8) RGB565 {
	level &= 0xf
	r := uint16(level) * 31 / 15
	g := uint16(level) * 63 / 15
	b := uint16(level) * 31 / 15
	return RGB565{r<<11 | g<<5 | b}
}
