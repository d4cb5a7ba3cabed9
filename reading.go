package dash

import "math"

// Kind identifies one of the six dashboard readings.
type Kind int

// Readings shown on the dashboard.
const (
	OilTemp Kind = iota
	OilPress
	WaterTemp
	Boost
	RPM
	Volt

	numKinds
)

func (k Kind) String() string {
	switch k {
	case OilTemp:
		return "oil temperature"
	case OilPress:
		return "oil pressure"
	case WaterTemp:
		return "water temperature"
	case Boost:
		return "boost"
	case RPM:
		return "rpm"
	case Volt:
		return "voltage"
	default:
		return "unknown"
	}
}

// Readings is one frame worth of sensor values. A reading that could not
// be acquired is NaN.
type Readings struct {
	OilTemp   float64
	OilPress  float64
	WaterTemp float64
	Boost     float64
	RPM       float64
	Volt      float64
}

// Value returns the reading for k, or NaN for an unknown kind.
func (r Readings) Value(k Kind) float64 {
	switch k {
	case OilTemp:
		return r.OilTemp
	case OilPress:
		return r.OilPress
	case WaterTemp:
		return r.WaterTemp
	case Boost:
		return r.Boost
	case RPM:
		return r.RPM
	case Volt:
		return r.Volt
	default:
		return math.NaN()
	}
}

// Source produces one set of readings per frame.
type Source interface {
	Read() Readings
}
