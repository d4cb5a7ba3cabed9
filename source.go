package dash

// wave is a triangle oscillator reflecting at its range ends.
type wave struct {
	v    float64
	min  float64
	max  float64
	step float64
}

func (w *wave) next() float64 {
	w.v += w.step
	if w.v >= w.max {
		w.v = w.max
		w.step = -w.step
	} else if w.v <= w.min {
		w.v = w.min
		w.step = -w.step
	}
	return w.v
}

// WaveSource substitutes for real sensor acquisition with a deterministic
// triangle wave per channel. The ranges sweep every threshold band, and the
// oil pressure wave deliberately exceeds its 3-character field near the top
// of its range so the error path is exercised too.
type WaveSource struct {
	waves [numKinds]wave
}

// NewWaveSource returns a source with all channels at the bottom of their
// range.
func NewWaveSource() *WaveSource {
	s := &WaveSource{}
	s.waves[OilTemp] = wave{v: 20, min: 20, max: 125, step: 1.5}
	s.waves[OilPress] = wave{v: 0.5, min: 0.5, max: 10.5, step: 0.1}
	s.waves[WaterTemp] = wave{v: 20, min: 20, max: 110, step: 1}
	s.waves[Boost] = wave{v: -0.8, min: -0.8, max: 1.6, step: 0.05}
	s.waves[RPM] = wave{v: 700, min: 700, max: 7200, step: 90}
	s.waves[Volt] = wave{v: 10.8, min: 10.8, max: 14.6, step: 0.1}
	return s
}

// Read advances every channel one step and returns the new readings.
func (s *WaveSource) Read() Readings {
	return Readings{
		OilTemp:   s.waves[OilTemp].next(),
		OilPress:  s.waves[OilPress].next(),
		WaterTemp: s.waves[WaterTemp].next(),
		Boost:     s.waves[Boost].next(),
		RPM:       s.waves[RPM].next(),
		Volt:      s.waves[Volt].next(),
	}
}
