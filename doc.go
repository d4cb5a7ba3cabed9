// Package dash implements a six-cell engine dashboard for small color
// displays: oil temperature and pressure, coolant temperature, boost, RPM
// and battery voltage, each rendered as a labeled, color-coded numeric cell
// on a fixed 2×3 grid.
//
// The package holds the rendering core only. It draws through the [Canvas]
// capability interface; the display and conn packages provide the hardware
// behind it.
package dash
