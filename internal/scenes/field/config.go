package field

import (
	"strconv"

	"superpose/internal/render"
)

// Params holds the population sizes and sampling ranges of the field.
type Params struct {
	ParticleCount int
	WaveCount     int

	VelocityMax  float64
	SizeMin      float64
	SizeMax      float64
	FrequencyMin float64
	FrequencyMax float64

	WaveRadiusMin  float64
	WaveRadiusMax  float64
	WaveSpeedMin   float64
	WaveSpeedMax   float64
	WaveOpacityMin float64
	WaveOpacityMax float64

	GhostCount  int
	GhostOffset float64
	GhostAlpha  float64
	JitterMax   float64

	FieldLineCount int
}

// Config controls the field scene. Dimensions come from the surface.
type Config struct {
	// Seed, when non-zero, replaces the environment's random source with a
	// deterministic one.
	Seed int64

	Palette    string
	Background string

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Palette:    render.DefaultPalette,
		Background: "#000000",
		Params: Params{
			ParticleCount:  150,
			WaveCount:      5,
			VelocityMax:    0.25,
			SizeMin:        1,
			SizeMax:        4,
			FrequencyMin:   0.01,
			FrequencyMax:   0.03,
			WaveRadiusMin:  200,
			WaveRadiusMax:  500,
			WaveSpeedMin:   1,
			WaveSpeedMax:   3,
			WaveOpacityMin: 0.1,
			WaveOpacityMax: 0.4,
			GhostCount:     3,
			GhostOffset:    10,
			GhostAlpha:     0.4,
			JitterMax:      10,
			FieldLineCount: 20,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable values are ignored and inverted ranges collapse onto their minimum.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
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

	p := &c.Params
	intOpt(cfg, "particles", &p.ParticleCount)
	intOpt(cfg, "waves", &p.WaveCount)
	floatOpt(cfg, "velocity_max", &p.VelocityMax)
	floatOpt(cfg, "size_min", &p.SizeMin)
	floatOpt(cfg, "size_max", &p.SizeMax)
	floatOpt(cfg, "frequency_min", &p.FrequencyMin)
	floatOpt(cfg, "frequency_max", &p.FrequencyMax)
	floatOpt(cfg, "wave_radius_min", &p.WaveRadiusMin)
	floatOpt(cfg, "wave_radius_max", &p.WaveRadiusMax)
	floatOpt(cfg, "wave_speed_min", &p.WaveSpeedMin)
	floatOpt(cfg, "wave_speed_max", &p.WaveSpeedMax)
	floatOpt(cfg, "wave_opacity_min", &p.WaveOpacityMin)
	floatOpt(cfg, "wave_opacity_max", &p.WaveOpacityMax)
	intOpt(cfg, "ghosts", &p.GhostCount)
	floatOpt(cfg, "ghost_offset", &p.GhostOffset)
	floatOpt(cfg, "ghost_alpha", &p.GhostAlpha)
	floatOpt(cfg, "jitter", &p.JitterMax)
	intOpt(cfg, "field_lines", &p.FieldLineCount)

	if p.SizeMax < p.SizeMin {
		p.SizeMax = p.SizeMin
	}
	if p.FrequencyMax < p.FrequencyMin {
		p.FrequencyMax = p.FrequencyMin
	}
	if p.WaveRadiusMax < p.WaveRadiusMin {
		p.WaveRadiusMax = p.WaveRadiusMin
	}
	if p.WaveSpeedMax < p.WaveSpeedMin {
		p.WaveSpeedMax = p.WaveSpeedMin
	}
	if p.WaveOpacityMax < p.WaveOpacityMin {
		p.WaveOpacityMax = p.WaveOpacityMin
	}
	return c
}

func intOpt(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
}

func floatOpt(cfg map[string]string, key string, dst *float64) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
}
