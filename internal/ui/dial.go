package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/thermodial/internal/state"
)

// dialScale is the range and tick granularity for one unit.
type dialScale struct {
	min, max  float64
	majorStep float64
	minorStep float64
}

var dialScales = map[state.Unit]dialScale{
	state.UnitFahrenheit: {min: 60, max: 220, majorStep: 20, minorStep: 10},
	state.UnitCelsius:    {min: 0, max: 100, majorStep: 10, minorStep: 0},
}

// Dial geometry in terminal cells. Cells are about twice as tall as wide, so
// the horizontal radius is double the vertical one.
const (
	dialRadiusY    = 9
	dialRadiusX    = 2 * dialRadiusY
	dialLabelGapX  = 3
	dialLabelGapY  = 1
	dialNeedleLen  = 0.75
	dialPadX       = dialLabelGapX + 2
	dialCols       = 2*(dialRadiusX+dialPadX) + 1
	dialRows       = dialRadiusY + dialLabelGapY + 1
	dialArcSamples = 240
)

// Dial is an analog gauge for one unit. A Dial is rebuilt, not rescaled, when
// the unit changes.
type Dial struct {
	Unit      state.Unit
	Min       float64
	Max       float64
	MajorStep float64
	MinorStep float64

	value    float64
	hasValue bool
}

// NewDial returns an empty gauge with the scale of unit.
func NewDial(unit state.Unit) Dial {
	scale := dialScales[unit]
	return Dial{
		Unit:      unit,
		Min:       scale.min,
		Max:       scale.max,
		MajorStep: scale.majorStep,
		MinorStep: scale.minorStep,
	}
}

func (d *Dial) SetValue(v float64) {
	d.value = v
	d.hasValue = true
}

// Clear removes the value; the needle rests on Min.
func (d *Dial) Clear() {
	d.value = 0
	d.hasValue = false
}

func (d Dial) Value() (float64, bool) {
	return d.value, d.hasValue
}

// fraction maps v onto [0,1] across the scale.
func (d Dial) fraction(v float64) float64 {
	if d.Max <= d.Min {
		return 0
	}
	f := (v - d.Min) / (d.Max - d.Min)
	return math.Max(0, math.Min(1, f))
}

// Readout is the numeric text under the gauge.
func (d Dial) Readout() string {
	if !d.hasValue {
		return "-- " + d.Unit.Symbol()
	}
	return fmt.Sprintf("%.1f %s", d.value, d.Unit.Symbol())
}

// MajorTicks returns the labelled scale values from Min to Max.
func (d Dial) MajorTicks() []float64 {
	return steps(d.Min, d.Max, d.MajorStep)
}

// MinorTicks returns the unlabelled values that do not coincide with a major tick.
func (d Dial) MinorTicks() []float64 {
	var ticks []float64
	for _, v := range steps(d.Min, d.Max, d.MinorStep) {
		if d.MajorStep > 0 && math.Abs(math.Remainder(v-d.Min, d.MajorStep)) < 1e-9 {
			continue
		}
		ticks = append(ticks, v)
	}
	return ticks
}

func steps(lo, hi, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	var out []float64
	for i := 0; ; i++ {
		v := lo + float64(i)*step
		if v > hi+1e-9 {
			break
		}
		out = append(out, v)
	}
	return out
}

type cellKind int

const (
	cellBlank cellKind = iota
	cellArc
	cellMinor
	cellMajor
	cellLabel
	cellNeedle
	cellHub
)

type dialCanvas struct {
	runes [dialRows][dialCols]rune
	kinds [dialRows][dialCols]cellKind
}

const (
	dialCenterX = dialCols / 2
	dialCenterY = dialRows - 1
)

func (c *dialCanvas) set(x, y int, r rune, kind cellKind) {
	if x < 0 || y < 0 || x >= dialCols || y >= dialRows {
		return
	}
	if c.kinds[y][x] > kind {
		return
	}
	c.runes[y][x] = r
	c.kinds[y][x] = kind
}

// point returns the cell at angle theta (0 = right, pi = left) scaled by the
// radii rx, ry.
func point(theta, rx, ry float64) (int, int) {
	x := float64(dialCenterX) + rx*math.Cos(theta)
	y := float64(dialCenterY) - ry*math.Sin(theta)
	return int(math.Round(x)), int(math.Round(y))
}

func (d Dial) angle(v float64) float64 {
	return math.Pi * (1 - d.fraction(v))
}

func needleRune(theta float64) rune {
	switch {
	case theta < math.Pi/8 || theta > 7*math.Pi/8:
		return '─'
	case theta < 3*math.Pi/8:
		return '/'
	case theta <= 5*math.Pi/8:
		return '│'
	default:
		return '\\'
	}
}

// canvas draws the gauge face and needle.
func (d Dial) canvas() dialCanvas {
	var c dialCanvas
	for y := range c.runes {
		for x := range c.runes[y] {
			c.runes[y][x] = ' '
		}
	}

	rx, ry := float64(dialRadiusX), float64(dialRadiusY)
	for i := 0; i <= dialArcSamples; i++ {
		x, y := point(math.Pi*float64(i)/dialArcSamples, rx, ry)
		c.set(x, y, '·', cellArc)
	}

	for _, v := range d.MinorTicks() {
		x, y := point(d.angle(v), rx, ry)
		c.set(x, y, '•', cellMinor)
	}

	for _, v := range d.MajorTicks() {
		theta := d.angle(v)
		x, y := point(theta, rx, ry)
		c.set(x, y, '●', cellMajor)

		label := strconv.FormatFloat(v, 'f', -1, 64)
		lx, ly := point(theta, rx+dialLabelGapX, ry+dialLabelGapY)
		start := lx - len(label)/2
		for i, r := range label {
			c.set(start+i, ly, r, cellLabel)
		}
	}

	theta := d.angle(d.Min)
	if d.hasValue {
		theta = d.angle(d.value)
	}
	needle := needleRune(theta)
	const needleSamples = 40
	for i := 1; i <= needleSamples; i++ {
		r := dialNeedleLen * float64(i) / needleSamples
		x, y := point(theta, r*rx, r*ry)
		c.set(x, y, needle, cellNeedle)
	}
	c.set(dialCenterX, dialCenterY, '◉', cellHub)

	return c
}

// View renders the gauge, the readout and a linear fill bar.
func (d Dial) View(theme Theme) string {
	styles := theme.Styles()
	kindStyles := map[cellKind]lipgloss.Style{
		cellBlank:  styles.Text,
		cellArc:    styles.FaintText,
		cellMinor:  styles.MutedText,
		cellMajor:  styles.Text,
		cellLabel:  styles.Text,
		cellNeedle: styles.DangerText,
		cellHub:    styles.WarningText,
	}

	c := d.canvas()
	lines := make([]string, 0, dialRows+2)
	for y := 0; y < dialRows; y++ {
		var line strings.Builder
		start := 0
		for x := 1; x <= dialCols; x++ {
			if x < dialCols && c.kinds[y][x] == c.kinds[y][start] {
				continue
			}
			line.WriteString(kindStyles[c.kinds[y][start]].Render(string(c.runes[y][start:x])))
			start = x
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}

	readout := styles.AccentText.Bold(true).Render(d.Readout())
	lines = append(lines, lipgloss.PlaceHorizontal(dialCols, lipgloss.Center, readout))

	bar := progress.New(
		progress.WithSolidFill(theme.Accent),
		progress.WithoutPercentage(),
		progress.WithWidth(dialCols),
	)
	bar.EmptyColor = theme.BorderMuted
	fill := 0.0
	if d.hasValue {
		fill = d.fraction(d.value)
	}
	lines = append(lines, bar.ViewAs(fill))

	return strings.Join(lines, "\n")
}
