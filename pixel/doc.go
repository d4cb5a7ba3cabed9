// Package pixel implements the packed 16-bit 5-6-5 RGB color model and
// image buffer used by the dashboard core and its display drivers.
//
// The color model is compatible with Go's native [image/color.Color] and
// [image/color.Model] interfaces, the image buffer with [image/draw.Image].
package pixel
