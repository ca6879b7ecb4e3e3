package app

import (
	"fmt"
	"strings"

	"superpose/internal/core"
	"superpose/internal/loop"
	"superpose/internal/render"
	"superpose/internal/scene"
)

// NewScene constructs the configured scene on the given surface. The
// scheduler may be nil, in which case the scene gets its own.
func NewScene(c *Config, f *File, surface render.Surface, sched *loop.Scheduler) (scene.Scene, error) {
	factory, ok := scene.Lookup(c.Scene)
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (have %s)", c.Scene, strings.Join(scene.Names(), ", "))
	}
	env := scene.Env{Surface: surface, Scheduler: sched, Options: c.SceneOptions(f, c.Scene)}
	if c.Seed != 0 {
		env.Rand = core.NewRNG(c.Seed)
	}
	return factory(env)
}
