package dash

import "github.com/BeatGlow/dash/pixel"

// Cell background colors.
var (
	colorInfo    = pixel.Blue   // below normal operating range
	colorNeutral = pixel.Black  // normal
	colorWarn    = pixel.Orange // elevated
	colorAlert   = pixel.Red    // critical, also the error color
	colorText    = pixel.White
)

// Band is one threshold step: Min is the inclusive lower bound at which
// Color starts to apply.
type Band struct {
	Min   float64
	Color pixel.RGB565
}

// Table maps a reading to its background color. Bands must be ordered by
// ascending Min; the last band whose bound the value meets or exceeds wins.
type Table struct {
	// Base applies below the first band.
	Base pixel.RGB565

	Bands []Band
}

// Color returns the background color for v. NaN meets no band and resolves
// to the base color; the caller's error override is responsible for never
// presenting an undefined value in a safe color.
func (t Table) Color(v float64) pixel.RGB565 {
	c := t.Base
	for _, band := range t.Bands {
		if v >= band.Min {
			c = band.Color
		}
	}
	return c
}

var (
	oilTempBands = Table{Base: colorInfo, Bands: []Band{
		{50, colorNeutral},
		{100, colorWarn},
		{115, colorAlert},
	}}

	oilPressBands = Table{Base: colorNeutral, Bands: []Band{
		{2.5, colorAlert},
	}}

	waterTempBands = Table{Base: colorInfo, Bands: []Band{
		{50, colorNeutral},
		{90, colorWarn},
		{100, colorAlert},
	}}

	// No alert bands; boost, RPM and voltage are informational only.
	neutralBands = Table{Base: colorNeutral}
)
