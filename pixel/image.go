package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
)

// Image is a draw.Image that can also be cleared and filled at once.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the raw pixel values backing an image.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// RGB565Image is a 16-bits per pixel 5-6-5 RGB image.
type RGB565Image struct {
	Buffer

	// Order is the in-memory byte order of each pixel.
	Order binary.ByteOrder
}

func NewRGB565Image(w, h int) *RGB565Image {
	return &RGB565Image{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    make([]byte, w*2*h),
			Stride: w * 2,
		},
		Order: binary.BigEndian,
	}
}

func (p *RGB565Image) ColorModel() color.Model {
	return RGB565Model
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *RGB565Image) PixOffset(x, y int) int {
	return y*p.Stride + x*2
}

func (p *RGB565Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	return RGB565{p.Order.Uint16(p.Pix[p.PixOffset(x, y):])}
}

func (p *RGB565Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	p.Order.PutUint16(p.Pix[p.PixOffset(x, y):], rgb565Model(c).(RGB565).V)
}

func (p *RGB565Image) Fill(c color.Color) {
	var pix [2]byte
	p.Order.PutUint16(pix[:], rgb565Model(c).(RGB565).V)
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		copy(p.Pix[i:], pix[:])
	}
}
