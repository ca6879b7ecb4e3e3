package field

import (
	"image/color"
	"math"

	"superpose/internal/core"
)

// Particle is an animated point with a phase driving its superposed ghosts.
type Particle struct {
	X, Y      float64
	VX, VY    float64
	Size      float64
	Color     color.NRGBA
	Phase     float64
	Frequency float64
}

// Wave is an expanding radial glow that restarts elsewhere once fully grown.
type Wave struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Speed     float64
	Opacity   float64
	Color     color.NRGBA
}

// Mode selects how particles are drawn.
type Mode uint8

const (
	// ModeSuperposed draws every particle as a ring of faint candidates.
	ModeSuperposed Mode = iota
	// ModeObserving draws every particle as one solid disc.
	ModeObserving
)

func (m Mode) String() string {
	if m == ModeObserving {
		return "Observing"
	}
	return "Superposed"
}

// GenerateParticles replaces the particle population.
func (f *Field) GenerateParticles() {
	p := f.cfg.Params
	b := f.bounds()
	out := make([]Particle, p.ParticleCount)
	for i := range out {
		x, y := b.Random(f.rand)
		out[i] = Particle{
			X:         x,
			Y:         y,
			VX:        core.Between(f.rand, -p.VelocityMax, p.VelocityMax),
			VY:        core.Between(f.rand, -p.VelocityMax, p.VelocityMax),
			Size:      core.Between(f.rand, p.SizeMin, p.SizeMax),
			Color:     f.palette.Pick(f.rand),
			Phase:     f.rand.Float64() * 2 * math.Pi,
			Frequency: core.Between(f.rand, p.FrequencyMin, p.FrequencyMax),
		}
	}
	f.particles = out
}

// GenerateWaves replaces the wave population. Every wave starts at radius 0.
func (f *Field) GenerateWaves() {
	p := f.cfg.Params
	b := f.bounds()
	out := make([]Wave, p.WaveCount)
	for i := range out {
		x, y := b.Random(f.rand)
		out[i] = Wave{
			X:         x,
			Y:         y,
			MaxRadius: core.Between(f.rand, p.WaveRadiusMin, p.WaveRadiusMax),
			Speed:     core.Between(f.rand, p.WaveSpeedMin, p.WaveSpeedMax),
			Opacity:   core.Between(f.rand, p.WaveOpacityMin, p.WaveOpacityMax),
			Color:     f.palette.Pick(f.rand),
		}
	}
	f.waves = out
}

// Regenerate re-seeds both populations. It neither starts nor stops the loop.
func (f *Field) Regenerate() {
	f.GenerateParticles()
	f.GenerateWaves()
}

// Step advances every wave and particle by one tick.
func (f *Field) Step() {
	b := f.bounds()
	for i := range f.waves {
		w := &f.waves[i]
		w.Radius += w.Speed
		if w.Radius > w.MaxRadius {
			w.Radius = 0
			w.X, w.Y = b.Random(f.rand)
		}
	}
	for i := range f.particles {
		p := &f.particles[i]
		p.Phase += p.Frequency
		p.X, p.Y = b.Wrap(p.X+p.VX, p.Y+p.VY)
	}
}

// Observe toggles the mode and returns the new one. Entering ModeObserving
// nudges every particle once; leaving it does not.
func (f *Field) Observe() Mode {
	if f.mode == ModeObserving {
		f.mode = ModeSuperposed
		return f.mode
	}
	f.mode = ModeObserving
	f.jitter()
	return f.mode
}

func (f *Field) jitter() {
	j := f.cfg.Params.JitterMax
	b := f.bounds()
	for i := range f.particles {
		p := &f.particles[i]
		dx := core.Between(f.rand, -j, j)
		dy := core.Between(f.rand, -j, j)
		p.X, p.Y = b.Wrap(p.X+dx, p.Y+dy)
	}
	f.jitters++
}
