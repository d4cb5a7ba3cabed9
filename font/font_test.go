package font

import (
	"image"
	"testing"

	"github.com/BeatGlow/dash/pixel"
)

func TestFaces(t *testing.T) {
	small, large, err := Faces()
	if err != nil {
		t.Fatal(err)
	}
	if small == nil || large == nil {
		t.Fatal("expected both faces to be loaded")
	}
	if s, l := Height(small), Height(large); s >= l {
		t.Errorf("expected small line height %d below large line height %d", s, l)
	}
}

func TestDraw(t *testing.T) {
	small, _, err := Faces()
	if err != nil {
		t.Fatal(err)
	}

	i := pixel.NewRGB565Image(64, 24)
	w := Draw(i, image.Pt(0, 0), small, "123", pixel.White)
	if w <= 0 {
		t.Fatalf("expected a positive advance width, got %d", w)
	}
	if v := Measure(small, "123"); v != w {
		t.Errorf("expected measured width %d to match drawn width %d", v, w)
	}

	var lit bool
	for y := 0; y < 24 && !lit; y++ {
		for x := 0; x < 64 && !lit; x++ {
			lit = i.At(x, y) != pixel.Black
		}
	}
	if !lit {
		t.Error("expected at least one pixel to be drawn")
	}
}

func TestMeasure(t *testing.T) {
	small, large, err := Faces()
	if err != nil {
		t.Fatal(err)
	}
	if v := Measure(small, ""); v != 0 {
		t.Errorf("expected empty string to measure 0, got %d", v)
	}
	if s, l := Measure(small, "8888"), Measure(large, "8888"); s >= l {
		t.Errorf("expected small width %d below large width %d", s, l)
	}
}
