package ui

import (
	"strings"
	"testing"

	"github.com/five82/thermodial/internal/state"
)

func TestNewDial_UnitScales(t *testing.T) {
	cases := []struct {
		unit                   state.Unit
		min, max, major, minor float64
		majorTicks, minorTicks int
	}{
		{state.UnitFahrenheit, 60, 220, 20, 10, 9, 8},
		{state.UnitCelsius, 0, 100, 10, 0, 11, 0},
	}
	for _, tc := range cases {
		t.Run(tc.unit.String(), func(t *testing.T) {
			d := NewDial(tc.unit)
			if d.Min != tc.min || d.Max != tc.max || d.MajorStep != tc.major || d.MinorStep != tc.minor {
				t.Fatalf("NewDial(%v) = [%v,%v] major %v minor %v, want [%v,%v] major %v minor %v",
					tc.unit, d.Min, d.Max, d.MajorStep, d.MinorStep, tc.min, tc.max, tc.major, tc.minor)
			}
			if got := len(d.MajorTicks()); got != tc.majorTicks {
				t.Fatalf("MajorTicks = %v, want %d values", d.MajorTicks(), tc.majorTicks)
			}
			if got := len(d.MinorTicks()); got != tc.minorTicks {
				t.Fatalf("MinorTicks = %v, want %d values", d.MinorTicks(), tc.minorTicks)
			}
		})
	}
}

func TestDial_MinorTicksSkipMajors(t *testing.T) {
	d := NewDial(state.UnitFahrenheit)
	for _, v := range d.MinorTicks() {
		for _, major := range d.MajorTicks() {
			if v == major {
				t.Fatalf("minor tick %v coincides with a major tick", v)
			}
		}
	}
	if got := d.MinorTicks()[0]; got != 70 {
		t.Fatalf("first minor tick = %v, want 70", got)
	}
}

func TestDial_ValueAndReadout(t *testing.T) {
	d := NewDial(state.UnitCelsius)
	if _, ok := d.Value(); ok {
		t.Fatalf("new dial has a value")
	}
	if got := d.Readout(); got != "-- °C" {
		t.Fatalf("Readout = %q, want -- °C", got)
	}

	d.SetValue(20)
	if v, ok := d.Value(); !ok || v != 20 {
		t.Fatalf("Value = %v,%v, want 20,true", v, ok)
	}
	if got := d.Readout(); got != "20.0 °C" {
		t.Fatalf("Readout = %q, want 20.0 °C", got)
	}

	d.Clear()
	if _, ok := d.Value(); ok {
		t.Fatalf("Clear kept the value")
	}
}

func TestDial_FractionClamps(t *testing.T) {
	d := NewDial(state.UnitFahrenheit)
	cases := map[float64]float64{
		-40: 0,
		60:  0,
		140: 0.5,
		220: 1,
		500: 1,
	}
	for v, want := range cases {
		if got := d.fraction(v); got != want {
			t.Fatalf("fraction(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestDial_NeedlePosition(t *testing.T) {
	d := NewDial(state.UnitCelsius)

	// No value: needle rests on Min, pointing left.
	c := d.canvas()
	if c.kinds[dialCenterY][dialCenterX-2] != cellNeedle {
		t.Fatalf("needle not on the left with no value")
	}

	d.SetValue(100)
	c = d.canvas()
	if c.kinds[dialCenterY][dialCenterX+2] != cellNeedle {
		t.Fatalf("needle not on the right at Max")
	}
	if c.kinds[dialCenterY][dialCenterX-2] == cellNeedle {
		t.Fatalf("needle still drawn on the left at Max")
	}

	d.SetValue(50)
	c = d.canvas()
	if c.kinds[dialCenterY-2][dialCenterX] != cellNeedle || c.runes[dialCenterY-2][dialCenterX] != '│' {
		t.Fatalf("needle not vertical at mid-scale")
	}
	if c.runes[dialCenterY][dialCenterX] != '◉' {
		t.Fatalf("hub missing")
	}
}

func TestDial_ViewShowsLabels(t *testing.T) {
	th := GetTheme("Nightfox")

	f := NewDial(state.UnitFahrenheit)
	out := f.View(th)
	for _, label := range []string{"60", "140", "220", "-- °F"} {
		if !strings.Contains(out, label) {
			t.Fatalf("Fahrenheit dial missing %q:\n%s", label, out)
		}
	}

	c := NewDial(state.UnitCelsius)
	c.SetValue(21.5)
	out = c.View(th)
	for _, label := range []string{"0", "50", "100", "21.5 °C"} {
		if !strings.Contains(out, label) {
			t.Fatalf("Celsius dial missing %q:\n%s", label, out)
		}
	}
	if strings.Contains(out, "220") {
		t.Fatalf("Celsius dial shows a Fahrenheit label:\n%s", out)
	}
}
