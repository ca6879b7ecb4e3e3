package core

import "math"

// Bounds describes a continuous W×H plane with toroidal topology.
type Bounds struct {
	W, H float64
}

// Contains reports whether (x, y) lies in [0, W) × [0, H).
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Wrap applies toroidal wrapping to the provided coordinates. A coordinate
// landing exactly on the far edge wraps to 0.
func (b Bounds) Wrap(x, y float64) (float64, float64) {
	return wrapAxis(x, b.W), wrapAxis(y, b.H)
}

// Random returns a uniform point inside the bounds.
func (b Bounds) Random(src Source) (float64, float64) {
	x := src.Float64() * b.W
	y := src.Float64() * b.H
	return b.Wrap(x, y)
}

func wrapAxis(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	if v < 0 {
		v += limit
	}
	if v >= limit {
		v -= limit
	}
	if v < 0 || v >= limit {
		v = math.Mod(v, limit)
		if v < 0 {
			v += limit
		}
		// -tiny + limit rounds up to limit in float64.
		if v >= limit {
			v = 0
		}
	}
	return v
}
