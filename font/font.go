// Package font provides the two type faces used by the dashboard: a small
// face for labels and units, and a large face for values.
package font

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Face is an alias for [golang.org/x/image/font.Face].
type Face = font.Face

// Face sizes in points, rendered at 72 DPI.
const (
	smallSize = 10
	largeSize = 19
)

var (
	loadOnce sync.Once
	loadErr  error
	small    Face
	large    Face
)

func load() {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		loadErr = err
		return
	}
	small = truetype.NewFace(f, &truetype.Options{Size: smallSize})
	large = truetype.NewFace(f, &truetype.Options{Size: largeSize})
}

// Faces returns the small and large dashboard faces. The underlying font is
// parsed on first use and shared by all callers.
func Faces() (smallFace, largeFace Face, err error) {
	loadOnce.Do(load)
	return small, large, loadErr
}

// Draw renders s with its top-left corner at p and returns the advance
// width in pixels.
func Draw(dst draw.Image, p image.Point, face Face, s string, c color.Color) int {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		// Adjust by the ascent so the text draws at the baseline.
		Dot: fixed.P(p.X, p.Y+face.Metrics().Ascent.Round()),
	}
	d.DrawString(s)
	return d.MeasureString(s).Round()
}

// Measure returns the advance width of s in pixels.
func Measure(face Face, s string) int {
	return font.MeasureString(face, s).Round()
}

// Height returns the line height of face in pixels.
func Height(face Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Round()
}
