package display

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/BeatGlow/dash/pixel"
)

// term is a display emulator that renders the frame buffer to the terminal
// using ANSI color blocks, one pixel per character cell. It permits local
// development of the dashboard without hardware attached.
type term struct {
	*pixel.RGB565Image
	w       io.Writer
	palette ansi256.Palette
	buf     bytes.Buffer
	shown   bool
}

// Terminal returns a Display that renders to stdout.
func Terminal(config *Config) Display {
	width, height := config.Width, config.Height
	if width == 0 {
		width = st7735DefaultHeight
	}
	if height == 0 {
		height = st7735DefaultWidth
	}
	return &term{
		RGB565Image: pixel.NewRGB565Image(width, height),
		w:           colorable.NewColorableStdout(),
		palette:     *ansi256.Default,
		shown:       true,
	}
}

func (d *term) String() string {
	bounds := d.Bounds()
	return fmt.Sprintf("Terminal %dx%d", bounds.Dx(), bounds.Dy())
}

func (d *term) Close() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

func (d *term) Show(show bool) error {
	d.shown = show
	return nil
}

func (d *term) SetContrast(_ uint8) error {
	return nil
}

// Refresh repaints the whole emulated screen in place.
func (d *term) Refresh() error {
	if !d.shown {
		return nil
	}

	bounds := d.Bounds()
	d.buf.Reset()
	_, _ = d.buf.WriteString("\033[H")
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _ = io.WriteString(&d.buf, d.palette.Block(nrgba(d.At(x, y))))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

func nrgba(c color.Color) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
}
