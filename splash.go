package dash

import (
	"errors"

	"github.com/BeatGlow/dash/pixel"
)

// ErrSplashData is returned when a splash bitmap is shorter than its
// declared dimensions require.
var ErrSplashData = errors.New("dash: splash bitmap shorter than declared size")

// DrawSplash unpacks a packed 4-bit grayscale bitmap onto the canvas. Each
// word carries four pixels, most significant nibble first; each gray level
// expands to full color depth via [pixel.Gray4]. The image is centered
// vertically and starts at the left edge.
func DrawSplash(c Canvas, words []uint16, width, height int) error {
	perRow := width / 4
	if len(words) < perRow*height {
		return ErrSplashData
	}

	y0 := (c.Bounds().Dy() - height) / 2
	for y := 0; y < height; y++ {
		for i := 0; i < perRow; i++ {
			word := words[y*perRow+i]
			for n := 0; n < 4; n++ {
				level := uint8(word >> (12 - 4*n) & 0xf)
				c.SetPixel(i*4+n, y0+y, pixel.Gray4(level))
			}
		}
	}
	return nil
}
