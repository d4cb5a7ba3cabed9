package dash

import (
	"fmt"
	"math"
)

// ErrText replaces the value text of a cell whose reading is undefined or
// does not fit its field. A truncated number is more dangerous to a driver
// than a visible error marker.
const ErrText = "ERR"

// Field describes a fixed-width numeric display field.
type Field struct {
	// Width is the total character width of the field.
	Width int

	// Prec is the number of decimal places.
	Prec int
}

// Format renders v into the field. It reports false when v is NaN or when
// the rendered text does not exactly fill the field width; the caller is
// expected to show [ErrText] instead.
func (f Field) Format(v float64) (string, bool) {
	if math.IsNaN(v) {
		return "", false
	}
	s := fmt.Sprintf("%*.*f", f.Width, f.Prec, v)
	if len(s) != f.Width {
		return s, false
	}
	return s, true
}
