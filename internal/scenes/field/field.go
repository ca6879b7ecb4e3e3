// Package field implements the particle field: drifting particles drawn as
// superposed ghosts or observed discs over expanding radial waves and
// decorative sine field lines.
package field

import (
	"fmt"
	"image/color"
	"time"

	"superpose/internal/core"
	"superpose/internal/loop"
	"superpose/internal/render"
	"superpose/internal/scene"
)

// Field owns its populations, its surface and the driver that animates it.
type Field struct {
	cfg        Config
	surface    render.Surface
	rand       core.Source
	epoch      time.Time
	palette    render.Palette
	background color.NRGBA
	lines      render.FieldLineStyle

	particles []Particle
	waves     []Wave
	mode      Mode
	jitters   int

	driver *loop.Driver
}

// New builds a field painting into env.Surface, generates both populations
// and starts looping on env.Scheduler.
func New(cfg Config, env scene.Env) (*Field, error) {
	if env.Surface == nil {
		return nil, scene.ErrNoSurface
	}
	env = env.WithDefaults()

	palette, err := render.ParsePalette(cfg.Palette)
	if err != nil {
		return nil, fmt.Errorf("field palette: %w", err)
	}
	bg, err := render.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("field background: %w", err)
	}

	f := &Field{
		cfg:        cfg,
		surface:    env.Surface,
		rand:       env.Rand,
		epoch:      env.Clock.Now(),
		palette:    palette,
		background: bg,
		lines:      render.DefaultFieldLines(),
	}
	if cfg.Seed != 0 {
		f.rand = core.NewRNG(cfg.Seed)
	}
	f.lines.Count = cfg.Params.FieldLineCount

	f.Regenerate()
	f.driver = loop.NewDriver(env.Scheduler, f.frame)
	f.driver.Start()
	return f, nil
}

func (f *Field) frame(now time.Time) error {
	f.Step()
	return f.Draw(now)
}

// Name identifies the scene.
func (f *Field) Name() string { return "field" }

// Size returns the surface dimensions.
func (f *Field) Size() core.Size {
	return core.Size{W: int(f.surface.Width()), H: int(f.surface.Height())}
}

// Surface returns the surface the field paints into.
func (f *Field) Surface() render.Surface { return f.surface }

// Particles exposes the current particle slice. Callers must not retain it
// across Regenerate.
func (f *Field) Particles() []Particle { return f.particles }

// Waves exposes the current wave slice.
func (f *Field) Waves() []Wave { return f.waves }

// Mode returns the current drawing mode.
func (f *Field) Mode() Mode { return f.mode }

// Jitters reports how many times Observe has disturbed the particles.
func (f *Field) Jitters() int { return f.jitters }

// Start resumes the frame loop.
func (f *Field) Start() { f.driver.Start() }

// Stop halts the frame loop; no further updates or paints happen until Start.
func (f *Field) Stop() { f.driver.Stop() }

// Running reports whether the frame loop is active.
func (f *Field) Running() bool { return f.driver.Running() }

// Frames reports how many frames the loop has run.
func (f *Field) Frames() uint64 { return f.driver.Frames() }

func (f *Field) bounds() core.Bounds {
	return core.Bounds{W: f.surface.Width(), H: f.surface.Height()}
}

func init() {
	scene.Register("field", func(env scene.Env) (scene.Scene, error) {
		f, err := New(FromMap(env.Options), env)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}
