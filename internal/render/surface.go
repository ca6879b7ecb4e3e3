// Package render holds the drawing surfaces scenes paint into and the
// primitives shared between the animated scenes and the gallery.
package render

import (
	"image/color"
	"math"
)

// Point is a position in surface space.
type Point struct {
	X, Y float64
}

// Surface is the raster target a scene owns. All colours are interpreted as
// straight (non-premultiplied) alpha once converted through color.NRGBAModel.
type Surface interface {
	// Width and Height report the surface dimensions in pixels.
	Width() float64
	Height() float64
	// Clear paints the whole surface with an opaque colour.
	Clear(c color.Color)
	// FillCircle fills a disc of radius r centred on (x, y).
	FillCircle(x, y, r float64, c color.Color)
	// FillRadial fills a disc of radius r with a radial gradient that starts
	// at c scaled to alpha in the centre and fades to transparent at r.
	FillRadial(x, y, r float64, c color.Color, alpha float64)
	// StrokePath strokes an open polyline.
	StrokePath(pts []Point, width float64, c color.Color)
}

// NRGBA converts any colour to straight alpha.
func NRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c color.Color, a float64) color.NRGBA {
	n := NRGBA(c)
	n.A = uint8(math.Round(clamp01(a) * 255))
	return n
}

// Opaque returns c with full alpha.
func Opaque(c color.Color) color.NRGBA {
	n := NRGBA(c)
	n.A = 0xff
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
