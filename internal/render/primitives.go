package render

import (
	"image/color"
	"math"
)

// FieldLineStyle parameterises the decorative sine lines drawn across a frame.
// Line i starts at x0 = i·w/Count, y0 = h/2 + sin(i·Spread + t·Drift)·Offset
// and traces y0 + sin((x-x0)·Wavelength + t·Speed)·Amplitude.
type FieldLineStyle struct {
	Count      int
	Step       float64
	Offset     float64
	Amplitude  float64
	Wavelength float64
	Speed      float64
	Drift      float64
	Spread     float64
	Width      float64
	Color      color.NRGBA
}

// DefaultFieldLines returns the style used by the particle field.
func DefaultFieldLines() FieldLineStyle {
	return FieldLineStyle{
		Count:      20,
		Step:       10,
		Offset:     50,
		Amplitude:  30,
		Wavelength: 0.1,
		Speed:      1,
		Drift:      1,
		Spread:     0.5,
		Width:      1,
		Color:      color.NRGBA{R: 0x9c, G: 0x27, B: 0xb0, A: 0x33},
	}
}

// WaveLine returns a polyline anchored at (x0, y0) followed by samples at
// x0, x0+step, ... while x < w, each at y0 + sin((x-x0)·wavelength + phase)·amp.
func WaveLine(x0, y0, w, step, wavelength, phase, amp float64) []Point {
	if step <= 0 {
		step = 10
	}
	pts := []Point{{X: x0, Y: y0}}
	for x := x0; x < w; x += step {
		pts = append(pts, Point{X: x, Y: y0 + math.Sin((x-x0)*wavelength+phase)*amp})
	}
	return pts
}

// FieldLine computes the polyline for line i at time t (seconds). Lines are
// stateless: the same inputs always produce the same points.
func FieldLine(style FieldLineStyle, w, h float64, i int, t float64) []Point {
	if style.Count <= 0 {
		return nil
	}
	x0 := float64(i) * w / float64(style.Count)
	y0 := h/2 + math.Sin(float64(i)*style.Spread+t*style.Drift)*style.Offset
	return WaveLine(x0, y0, w, style.Step, style.Wavelength, t*style.Speed, style.Amplitude)
}

// DrawFieldLines strokes every field line for time t.
func DrawFieldLines(s Surface, style FieldLineStyle, t float64) {
	w, h := s.Width(), s.Height()
	for i := 0; i < style.Count; i++ {
		pts := FieldLine(style, w, h, i, t)
		if len(pts) < 2 {
			continue
		}
		s.StrokePath(pts, style.Width, style.Color)
	}
}

// Ghosts returns n positions spaced evenly around (x, y) at distance d,
// rotated by phase. Angle a maps to the offset (sin a, cos a).
func Ghosts(x, y, d, phase float64, n int) []Point {
	if n <= 0 {
		return nil
	}
	pts := make([]Point, n)
	for k := 0; k < n; k++ {
		a := phase + float64(k)*2*math.Pi/float64(n)
		pts[k] = Point{X: x + math.Sin(a)*d, Y: y + math.Cos(a)*d}
	}
	return pts
}
