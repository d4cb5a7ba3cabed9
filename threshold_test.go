package dash

import (
	"math"
	"testing"

	"github.com/BeatGlow/dash/pixel"
)

func TestOilTempBands(t *testing.T) {
	for _, test := range []struct {
		value float64
		want  pixel.RGB565
	}{
		{-10, colorInfo},
		{49.999, colorInfo},
		{50, colorNeutral}, // bounds are inclusive
		{99.999, colorNeutral},
		{100, colorWarn},
		{114.999, colorWarn},
		{115, colorAlert},
		{130, colorAlert},
	} {
		if v := oilTempBands.Color(test.value); v != test.want {
			t.Errorf("expected oil temp %v to be %#04x, got %#04x", test.value, test.want.V, v.V)
		}
	}
}

func TestOilPressBands(t *testing.T) {
	for _, test := range []struct {
		value float64
		want  pixel.RGB565
	}{
		{0, colorNeutral},
		{1.0, colorNeutral},
		{2.499, colorNeutral},
		{2.5, colorAlert},
		{6.0, colorAlert},
	} {
		if v := oilPressBands.Color(test.value); v != test.want {
			t.Errorf("expected oil pressure %v to be %#04x, got %#04x", test.value, test.want.V, v.V)
		}
	}
}

func TestWaterTempBands(t *testing.T) {
	for _, test := range []struct {
		value float64
		want  pixel.RGB565
	}{
		{20, colorInfo},
		{50, colorNeutral},
		{85, colorNeutral},
		{90, colorWarn},
		{100, colorAlert},
	} {
		if v := waterTempBands.Color(test.value); v != test.want {
			t.Errorf("expected water temp %v to be %#04x, got %#04x", test.value, test.want.V, v.V)
		}
	}
}

func TestNeutralBands(t *testing.T) {
	for _, v := range []float64{-1000, 0, 1000, 99999} {
		if c := neutralBands.Color(v); c != colorNeutral {
			t.Errorf("expected %v to be neutral, got %#04x", v, c.V)
		}
	}
}

func TestBandsNaN(t *testing.T) {
	// NaN meets no band; the frame loop's error override is what forces
	// the alert color on screen.
	if v := oilTempBands.Color(math.NaN()); v != colorInfo {
		t.Errorf("expected NaN to resolve to the base color, got %#04x", v.V)
	}
}
