// Package logo animates a small badge: particles orbiting a solid centre
// disc, each at its own constant angular velocity.
package logo

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"time"

	"superpose/internal/core"
	"superpose/internal/loop"
	"superpose/internal/render"
	"superpose/internal/scene"
)

// Config controls the orbit layout. Each orbiter draws its own radius,
// angular speed, size and colour from the configured ranges.
type Config struct {
	Count      int
	RadiusMin  float64
	RadiusMax  float64
	SpeedMin   float64
	SpeedMax   float64
	SizeMin    float64
	SizeMax    float64
	CoreRadius float64
	Seed       int64
	Palette    string
	Background string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Count:      20,
		RadiusMin:  10,
		RadiusMax:  30,
		SpeedMin:   0.01,
		SpeedMax:   0.03,
		SizeMin:    1,
		SizeMax:    3,
		CoreRadius: 15,
		Palette:    render.DefaultPalette,
		Background: "#000000",
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Count = parsed
		}
	}
	floatOpt(cfg, "radius_min", &c.RadiusMin)
	floatOpt(cfg, "radius_max", &c.RadiusMax)
	floatOpt(cfg, "speed_min", &c.SpeedMin)
	floatOpt(cfg, "speed_max", &c.SpeedMax)
	floatOpt(cfg, "size_min", &c.SizeMin)
	floatOpt(cfg, "size_max", &c.SizeMax)
	floatOpt(cfg, "core", &c.CoreRadius)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["palette"]; ok && v != "" {
		c.Palette = v
	}
	if v, ok := cfg["background"]; ok && v != "" {
		c.Background = v
	}
	return c
}

func floatOpt(cfg map[string]string, key string, dst *float64) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
}

// Orbiter is one particle circling the centre.
type Orbiter struct {
	Angle  float64
	Radius float64
	Speed  float64
	Size   float64
	Color  color.NRGBA
}

// Position returns the orbiter's location around (cx, cy).
func (o Orbiter) Position(cx, cy float64) render.Point {
	return render.Point{X: cx + math.Cos(o.Angle)*o.Radius, Y: cy + math.Sin(o.Angle)*o.Radius}
}

// Logo is the orbiting badge. It has no modes and never regenerates.
type Logo struct {
	cfg        Config
	surface    render.Surface
	background color.NRGBA
	centre     color.NRGBA
	orbiters   []Orbiter
	driver     *loop.Driver
}

// New spaces the orbiters evenly by starting angle and starts the loop.
func New(cfg Config, env scene.Env) (*Logo, error) {
	if env.Surface == nil {
		return nil, scene.ErrNoSurface
	}
	env = env.WithDefaults()
	palette, err := render.ParsePalette(cfg.Palette)
	if err != nil {
		return nil, fmt.Errorf("logo palette: %w", err)
	}
	bg, err := render.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("logo background: %w", err)
	}
	src := env.Rand
	if cfg.Seed != 0 {
		src = core.NewRNG(cfg.Seed)
	}

	l := &Logo{cfg: cfg, surface: env.Surface, background: bg, centre: palette[0]}
	l.orbiters = make([]Orbiter, cfg.Count)
	for i := range l.orbiters {
		l.orbiters[i] = Orbiter{
			Angle:  float64(i) * 2 * math.Pi / float64(cfg.Count),
			Radius: core.Between(src, cfg.RadiusMin, cfg.RadiusMax),
			Speed:  core.Between(src, cfg.SpeedMin, cfg.SpeedMax),
			Size:   core.Between(src, cfg.SizeMin, cfg.SizeMax),
			Color:  palette.Pick(src),
		}
	}
	l.driver = loop.NewDriver(env.Scheduler, l.frame)
	l.driver.Start()
	return l, nil
}

func (l *Logo) frame(time.Time) error {
	l.Step()
	return l.Draw()
}

// Step advances every orbiter by its own angular speed.
func (l *Logo) Step() {
	for i := range l.orbiters {
		l.orbiters[i].Angle += l.orbiters[i].Speed
	}
}

// Draw paints the badge.
func (l *Logo) Draw() error {
	if l == nil || l.surface == nil {
		return scene.ErrNoSurface
	}
	s := l.surface
	cx, cy := s.Width()/2, s.Height()/2
	s.Clear(l.background)
	s.FillCircle(cx, cy, l.cfg.CoreRadius, l.centre)
	for _, o := range l.orbiters {
		p := o.Position(cx, cy)
		s.FillCircle(p.X, p.Y, o.Size, o.Color)
	}
	return nil
}

// Orbiters exposes the current orbiters.
func (l *Logo) Orbiters() []Orbiter { return l.orbiters }

// Name identifies the scene.
func (l *Logo) Name() string { return "logo" }

// Size returns the surface dimensions.
func (l *Logo) Size() core.Size {
	return core.Size{W: int(l.surface.Width()), H: int(l.surface.Height())}
}

// Surface returns the surface the logo paints into.
func (l *Logo) Surface() render.Surface { return l.surface }

// Start resumes the frame loop.
func (l *Logo) Start() { l.driver.Start() }

// Stop halts the frame loop.
func (l *Logo) Stop() { l.driver.Stop() }

// Running reports whether the frame loop is active.
func (l *Logo) Running() bool { return l.driver.Running() }

// Parameters describes the orbit for the overlay.
func (l *Logo) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Orbit",
		Params: []core.Parameter{
			core.IntParam("count", "Orbiters", len(l.orbiters)),
			core.FloatParam("core", "Core radius", l.cfg.CoreRadius),
			core.StringParam("loop", "Loop", l.driver.State().String()),
		},
	}}}
}

func init() {
	scene.Register("logo", func(env scene.Env) (scene.Scene, error) {
		l, err := New(FromMap(env.Options), env)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
