package dash

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/BeatGlow/dash/pixel"
)

type fixedSource struct {
	readings Readings
}

func (s fixedSource) Read() Readings { return s.readings }

func newTestApp(canvas Canvas, source Source) (*App, *[]time.Duration) {
	app := New(canvas, source)
	sleeps := new([]time.Duration)
	app.sleep = func(d time.Duration) {
		*sleeps = append(*sleeps, d)
	}
	return app, sleeps
}

func TestFrameScenario(t *testing.T) {
	canvas := newTestCanvas()
	app, _ := newTestApp(canvas, fixedSource{Readings{
		OilTemp:   120,
		OilPress:  1.0,
		WaterTemp: 85,
		Boost:     math.NaN(),
		RPM:       2000,
		Volt:      12.1,
	}})

	if err := app.Frame(); err != nil {
		t.Fatal(err)
	}

	values := canvas.valuePrints()
	if len(values) != len(Cells) {
		t.Fatalf("expected %d value draws, got %d", len(Cells), len(values))
	}

	want := []struct {
		text string
		bg   pixel.RGB565
	}{
		{"120", colorAlert},    // oil temp at or above 115 is critical
		{"1.0", colorNeutral},  // oil pressure below alert
		{" 85", colorNeutral},  // water temp in the neutral band
		{ErrText, colorAlert},  // undefined boost collapses to ERR
		{"2000", colorNeutral}, // rpm has no bands
		{"12.1", colorNeutral}, // voltage has no bands
	}
	for i, w := range want {
		if v := values[i].s; v != w.text {
			t.Errorf("cell %d (%s): expected text %q, got %q", i, Cells[i].Kind, w.text, v)
		}
		if v := values[i].bg; v != w.bg {
			t.Errorf("cell %d (%s): expected background %#04x, got %#+v", i, Cells[i].Kind, w.bg.V, v)
		}
	}

	// Only the cells that left the neutral seed color repaint.
	if v := len(canvas.fills); v != 2 {
		t.Errorf("expected 2 background fills (oil temp, boost), got %d", v)
	}

	// Each frame ends with a buffer push and the backlight held at full.
	if canvas.refreshes != 1 {
		t.Errorf("expected 1 refresh, got %d", canvas.refreshes)
	}
	if len(canvas.backlights) != 1 || canvas.backlights[0] != 0xff {
		t.Errorf("expected the backlight at full, got %v", canvas.backlights)
	}
}

func TestFrameErrorIsPerCell(t *testing.T) {
	canvas := newTestCanvas()
	app, _ := newTestApp(canvas, fixedSource{Readings{
		OilTemp:   math.NaN(),
		OilPress:  3.2,
		WaterTemp: 85,
		RPM:       900,
		Volt:      12.0,
		Boost:     0.4,
	}})

	if err := app.Frame(); err != nil {
		t.Fatal(err)
	}

	values := canvas.valuePrints()
	if v := values[0].s; v != ErrText {
		t.Errorf("expected the oil temp cell in error, got %q", v)
	}
	for i, p := range values[1:] {
		if p.s == ErrText {
			t.Errorf("expected cell %d (%s) unaffected by the oil temp error, got ERR", i+1, Cells[i+1].Kind)
		}
	}
}

func TestStartupSequence(t *testing.T) {
	canvas := newTestCanvas()
	app, sleeps := newTestApp(canvas, fixedSource{})

	if err := app.Startup(); err != nil {
		t.Fatal(err)
	}

	// One splash paint.
	if v := len(canvas.pixels); v != LogoWidth*LogoHeight {
		t.Errorf("expected one splash paint of %d pixels, got %d", LogoWidth*LogoHeight, v)
	}
	var title, vehicle bool
	for _, p := range canvas.prints {
		title = title || p.s == app.Title
		vehicle = vehicle || p.s == app.Vehicle
	}
	if !title || !vehicle {
		t.Errorf("expected title and vehicle text, got title=%v vehicle=%v", title, vehicle)
	}

	// One ramp up to full, one ramp down to zero, in that order.
	levels := canvas.backlights
	if len(levels) != 2*fadeSteps {
		t.Fatalf("expected %d backlight updates, got %d", 2*fadeSteps, len(levels))
	}
	up, down := levels[:fadeSteps], levels[fadeSteps:]
	for i := 1; i < len(up); i++ {
		if up[i] < up[i-1] {
			t.Fatalf("expected a monotonic ramp up, got %v", up)
		}
	}
	if up[len(up)-1] != 0xff {
		t.Errorf("expected the ramp up to end at full, got %d", up[len(up)-1])
	}
	for i := 1; i < len(down); i++ {
		if down[i] > down[i-1] {
			t.Fatalf("expected a monotonic ramp down, got %v", down)
		}
	}
	if down[len(down)-1] != 0 {
		t.Errorf("expected the ramp down to end at zero, got %d", down[len(down)-1])
	}

	// The hold sits between the two ramps.
	if v := len(*sleeps); v != 2*fadeSteps+1 {
		t.Errorf("expected %d waits, got %d", 2*fadeSteps+1, v)
	}
	if v := (*sleeps)[fadeSteps]; v != app.Hold {
		t.Errorf("expected the hold wait of %s between the ramps, got %s", app.Hold, v)
	}

	// The screen is cleared before the splash and again after the fade out.
	if canvas.clears != 2 {
		t.Errorf("expected 2 clears, got %d", canvas.clears)
	}
	if n := len(canvas.events); canvas.events[n-2] != "clear" || canvas.events[n-1] != "refresh" {
		t.Errorf("expected the sequence to end with a cleared screen, got %v", canvas.events[n-2:])
	}
}

func TestRunStopsOnRenderError(t *testing.T) {
	canvas := newTestCanvas()
	canvas.refreshErr = errors.New("spi gone")
	app, _ := newTestApp(canvas, fixedSource{})

	if err := app.Run(); err == nil {
		t.Fatal("expected Run to surface the render error")
	}
}
