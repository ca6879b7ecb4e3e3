//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const radialSpriteSize = 128

// Screen adapts an offscreen ebiten.Image to the Surface interface.
type Screen struct {
	img    *ebiten.Image
	radial *ebiten.Image
}

// NewScreen allocates a w×h offscreen image to paint into.
func NewScreen(w, h int) *Screen {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Screen{img: ebiten.NewImage(w, h)}
}

// Image exposes the offscreen target so the host can blit it.
func (s *Screen) Image() *ebiten.Image { return s.img }

// Width returns the image width in pixels.
func (s *Screen) Width() float64 { return float64(s.img.Bounds().Dx()) }

// Height returns the image height in pixels.
func (s *Screen) Height() float64 { return float64(s.img.Bounds().Dy()) }

// Clear paints the whole image with an opaque colour.
func (s *Screen) Clear(c color.Color) {
	s.img.Fill(Opaque(c))
}

// FillCircle fills an anti-aliased disc.
func (s *Screen) FillCircle(x, y, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), NRGBA(c), true)
}

// FillRadial draws the shared radial sprite scaled to r and tinted with c.
func (s *Screen) FillRadial(x, y, r float64, c color.Color, alpha float64) {
	if r <= 0 || alpha <= 0 {
		return
	}
	if s.radial == nil {
		buf := make([]byte, 4*radialSpriteSize*radialSpriteSize)
		fillRadialAlpha(buf, radialSpriteSize)
		s.radial = ebiten.NewImage(radialSpriteSize, radialSpriteSize)
		s.radial.WritePixels(buf)
	}
	scale := 2 * r / radialSpriteSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-r, y-r)
	op.ColorScale.ScaleWithColor(Opaque(c))
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(s.radial, op)
}

// StrokePath strokes each segment of the polyline.
func (s *Screen) StrokePath(pts []Point, width float64, c color.Color) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	col := NRGBA(c)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(s.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), col, true)
	}
}
