package field

import (
	"time"

	"superpose/internal/render"
	"superpose/internal/scene"
)

// Draw repaints the whole frame as of instant at. Field lines are derived
// from the time elapsed since the field was built.
func (f *Field) Draw(at time.Time) error {
	if f == nil || f.surface == nil {
		return scene.ErrNoSurface
	}
	s := f.surface
	s.Clear(f.background)

	for _, w := range f.waves {
		if w.Radius <= 0 {
			continue
		}
		s.FillRadial(w.X, w.Y, w.Radius, w.Color, w.Opacity)
	}

	p := f.cfg.Params
	for _, pt := range f.particles {
		if f.mode == ModeObserving {
			s.FillCircle(pt.X, pt.Y, pt.Size, pt.Color)
			continue
		}
		ghost := render.WithAlpha(pt.Color, p.GhostAlpha)
		for _, g := range render.Ghosts(pt.X, pt.Y, p.GhostOffset, pt.Phase, p.GhostCount) {
			s.FillCircle(g.X, g.Y, pt.Size/2, ghost)
		}
	}

	render.DrawFieldLines(s, f.lines, at.Sub(f.epoch).Seconds())
	return nil
}
