package dash

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	for _, test := range []struct {
		field Field
		value float64
		want  string
		ok    bool
	}{
		{Field{3, 0}, 120, "120", true},
		{Field{3, 0}, 85, " 85", true},
		{Field{3, 0}, 5, "  5", true},
		{Field{3, 0}, -10, "-10", true},
		{Field{3, 1}, 1.0, "1.0", true},
		{Field{3, 1}, 9.9, "9.9", true},
		{Field{4, 0}, 2000, "2000", true},
		{Field{4, 0}, 700, " 700", true},
		{Field{4, 1}, 12.1, "12.1", true},
		{Field{4, 1}, 9.5, " 9.5", true},

		// Values that do not fit the field are a hard failure, never a
		// silent truncation.
		{Field{3, 0}, 1234, "1234", false},
		{Field{3, 0}, -100, "-100", false},
		{Field{3, 1}, 10.0, "10.0", false},
		{Field{4, 0}, 12345, "12345", false},
		{Field{4, 1}, 123.4, "123.4", false},
	} {
		text, ok := test.field.Format(test.value)
		if ok != test.ok {
			t.Errorf("expected ok=%v formatting %v into %+v, got %v", test.ok, test.value, test.field, ok)
		}
		if ok && text != test.want {
			t.Errorf("expected %q formatting %v into %+v, got %q", test.want, test.value, test.field, text)
		}
		if ok && len(text) != test.field.Width {
			t.Errorf("expected width %d formatting %v, got %d", test.field.Width, test.value, len(text))
		}
	}
}

func TestFormatNaN(t *testing.T) {
	for _, field := range []Field{{3, 0}, {3, 1}, {4, 0}, {4, 1}} {
		if _, ok := field.Format(math.NaN()); ok {
			t.Errorf("expected NaN to fail in %+v", field)
		}
	}
}
