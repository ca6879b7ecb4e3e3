package render

import (
	"image"
	"image/color"
	"math"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"
)

// Canvas is a pure-Go Surface backed by an *image.RGBA. Headless tools, the
// gallery and tests paint into it.
type Canvas struct {
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
	w, h    int
}

// NewCanvas allocates a w×h software canvas.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	backend := softwarebackend.New(w, h)
	return &Canvas{backend: backend, cv: canvas.New(backend), w: w, h: h}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() float64 { return float64(c.w) }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() float64 { return float64(c.h) }

// Image exposes the pixels painted so far. The image is owned by the canvas.
func (c *Canvas) Image() *image.RGBA { return c.backend.Image }

// Snapshot returns a copy of the current pixels.
func (c *Canvas) Snapshot() *image.RGBA {
	src := c.backend.Image
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// Clear paints the whole canvas with an opaque colour.
func (c *Canvas) Clear(col color.Color) {
	c.cv.SetGlobalAlpha(1)
	c.cv.SetFillStyle(Hex(col))
	c.cv.FillRect(0, 0, float64(c.w), float64(c.h))
}

// FillCircle fills a disc, honouring the colour's alpha.
func (c *Canvas) FillCircle(x, y, r float64, col color.Color) {
	if r <= 0 {
		return
	}
	n := NRGBA(col)
	if n.A == 0 {
		return
	}
	c.cv.SetGlobalAlpha(float64(n.A) / 255)
	c.cv.SetFillStyle(Hex(n))
	c.disc(x, y, r)
	c.cv.SetGlobalAlpha(1)
}

// FillRadial fills a disc with a centre-to-edge fade.
func (c *Canvas) FillRadial(x, y, r float64, col color.Color, alpha float64) {
	if r <= 0 || alpha <= 0 {
		return
	}
	g := c.cv.CreateRadialGradient(x, y, 0, x, y, r)
	g.AddColorStop(0, HexAlpha(WithAlpha(col, alpha)))
	g.AddColorStop(1, HexAlpha(WithAlpha(col, 0)))
	c.cv.SetGlobalAlpha(1)
	c.cv.SetFillStyle(g)
	c.disc(x, y, r)
}

// FillLinear covers the whole canvas with a two-stop linear gradient running
// from (x0, y0) to (x1, y1). Stop alphas are honoured.
func (c *Canvas) FillLinear(x0, y0, x1, y1 float64, from, to color.Color) {
	g := c.cv.CreateLinearGradient(x0, y0, x1, y1)
	g.AddColorStop(0, HexAlpha(from))
	g.AddColorStop(1, HexAlpha(to))
	c.cv.SetGlobalAlpha(1)
	c.cv.SetFillStyle(g)
	c.cv.FillRect(0, 0, float64(c.w), float64(c.h))
}

// StrokePath strokes an open polyline.
func (c *Canvas) StrokePath(pts []Point, width float64, col color.Color) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	n := NRGBA(col)
	if n.A == 0 {
		return
	}
	c.cv.SetGlobalAlpha(float64(n.A) / 255)
	c.cv.SetStrokeStyle(Hex(n))
	c.cv.SetLineWidth(width)
	c.cv.BeginPath()
	c.cv.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.cv.LineTo(p.X, p.Y)
	}
	c.cv.Stroke()
	c.cv.SetGlobalAlpha(1)
}

func (c *Canvas) disc(x, y, r float64) {
	c.cv.BeginPath()
	c.cv.Arc(x, y, r, 0, 2*math.Pi, false)
	c.cv.ClosePath()
	c.cv.Fill()
}
