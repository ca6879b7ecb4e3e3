package field

import "superpose/internal/core"

// Parameters describes the field's tunables and live state for the overlay.
func (f *Field) Parameters() core.ParameterSnapshot {
	p := f.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Population",
			Params: []core.Parameter{
				core.IntParam("particles", "Particles", len(f.particles)),
				core.IntParam("waves", "Waves", len(f.waves)),
				core.StringParam("palette", "Palette", f.palette.String()),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				core.FloatParam("velocity_max", "Max velocity", p.VelocityMax),
				core.FloatParam("frequency_min", "Min frequency", p.FrequencyMin),
				core.FloatParam("frequency_max", "Max frequency", p.FrequencyMax),
				core.FloatParam("jitter", "Observe jitter", p.JitterMax),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.StringParam("mode", "Mode", f.mode.String()),
				core.StringParam("loop", "Loop", f.driver.State().String()),
				core.IntParam("frames", "Frames", int(f.driver.Frames())),
			},
		},
	}}
}
