package dash

import (
	"image"
	"image/color"
)

// TextSize selects one of the two dashboard type faces.
type TextSize int

// Text sizes.
const (
	SmallText TextSize = iota // labels and units
	LargeText                 // values
)

// Canvas is the drawing surface the dashboard core renders to. The display
// package binds it to real hardware; tests substitute recording fakes.
type Canvas interface {
	// Bounds is the drawable area.
	Bounds() image.Rectangle

	// SetPixel sets a single pixel.
	SetPixel(x, y int, c color.Color)

	// Fill paints a rectangle in a single color.
	Fill(r image.Rectangle, c color.Color)

	// Print draws s with its top-left corner at p, glyph boxes painted in
	// bg, and returns the advance width in pixels.
	Print(p image.Point, size TextSize, s string, fg, bg color.Color) int

	// TextWidth returns the advance width of s in pixels without drawing.
	TextWidth(size TextSize, s string) int

	// Clear resets every pixel to black.
	Clear()

	// Refresh pushes the buffer to the output.
	Refresh() error

	// Backlight sets the backlight level, 0 (off) to 255 (full).
	Backlight(level uint8) error
}
